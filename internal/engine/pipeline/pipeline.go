// Package pipeline turns a pipeline spec into the final remapped jar through
// six ordered, individually cached stages.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"

	"go.trai.ch/anvil/internal/adapters/zipfs"
)

const (
	configEntryName = "config.json"

	// userdevInjectRoot is the userdev archive subtree overlaid onto the
	// patched jar.
	userdevInjectRoot = "inject"

	// transformationServiceSuffix marks service declarations that hijack the
	// launch unless the mixin-compatible patch set is selected.
	transformationServiceSuffix = "cpw.mods.modlauncher.api.ITransformationService"
)

// Pipeline executes the stage sequence for one spec. It is single-use per
// run: Initialize, then RunPrimaryStages, then RunFinalStages.
type Pipeline struct {
	spec      *domain.PipelineSpec
	tools     ports.Toolchain
	logger    ports.Logger
	telemetry ports.Telemetry

	fingerprint *Fingerprint

	plan         domain.ArtifactPlan
	state        domain.DirtyState
	overlayDirty bool
}

// PlanLayout derives the artifact plan without touching cache validity.
// Initialize calls it; clean-only callers use it directly.
func (p *Pipeline) PlanLayout() error {
	plan, err := PlanArtifacts(p.spec.GlobalCacheDir, p.spec.ProjectCacheDir, p.spec.Version, p.spec.HasOverlay())
	if err != nil {
		return err
	}
	p.plan = plan
	return nil
}

// Initialize plans the artifact locations, evaluates the overlay fingerprint
// and invalidates whichever cache tiers can no longer be trusted. It must be
// called before any stage runs.
func (p *Pipeline) Initialize() error {
	if err := p.PlanLayout(); err != nil {
		return err
	}

	_, overlayDirty, err := p.fingerprint.Evaluate(p.plan.FingerprintFile, p.spec.OverlayPath, p.spec.ForceRefresh)
	if err != nil {
		return err
	}
	p.overlayDirty = overlayDirty

	switch {
	case p.spec.ForceRefresh || anyMissing(p.plan.GlobalArtifacts()):
		if err := p.CleanAll(); err != nil {
			return err
		}
	case overlayDirty || anyMissing(p.plan.ProjectArtifacts()):
		if err := p.CleanProject(); err != nil {
			return err
		}
	}

	p.state = domain.CleanState()
	return nil
}

// RunPrimaryStages executes the version-scoped half of the pipeline: merge,
// intermediate remap, patching and injection. Outputs land in the global
// cache tier.
func (p *Pipeline) RunPrimaryStages(ctx context.Context) error {
	state := p.state

	state, err := p.runStage(ctx, state, p.plan.Merged, "merge client and server", p.stageMerge)
	if err != nil {
		return err
	}

	state, err = p.runStage(ctx, state, p.plan.Remapped, "remap merged jar to "+domain.NamespaceSRG, p.stageRemapIntermediate)
	if err != nil {
		return err
	}

	state, err = p.runStage(ctx, state, p.plan.Patched, "apply patches", p.stageApplyPatches)
	if err != nil {
		return err
	}

	// Injection shares the patched artifact, so its cache decision rides the
	// cascade alone: a committed patched jar already carries the injections.
	state, err = p.runStage(ctx, state, p.plan.Patched, "inject supplemental archives", p.stageInject)
	if err != nil {
		return err
	}

	p.state = state
	return nil
}

// RunFinalStages executes the project-scoped half: access transformation and
// the final remap. A dirty overlay forces both even when the primary stages
// were all cache hits.
func (p *Pipeline) RunFinalStages(ctx context.Context) error {
	state := p.state
	if p.overlayDirty {
		state = state.Mark()
	}

	state, err := p.runStage(ctx, state, p.plan.PatchedAt, "apply access wideners", p.stageAccessTransform)
	if err != nil {
		return err
	}

	_, err = p.runStage(ctx, state, p.plan.Final, "remap patched jar to "+domain.NamespaceOfficial, p.stageRemapFinal)
	if err != nil {
		return err
	}

	p.state = domain.CleanState()
	return nil
}

// CleanAll removes every artifact of both cache tiers.
func (p *Pipeline) CleanAll() error {
	if err := p.removeAll(p.plan.GlobalArtifacts()); err != nil {
		return err
	}
	return p.CleanProject()
}

// CleanProject removes the project-tier artifacts only. The shared global
// tier stays intact for other consumers of the same version.
func (p *Pipeline) CleanProject() error {
	return p.removeAll(p.plan.ProjectArtifacts())
}

// FinalJar returns the planned location of the final remapped jar.
func (p *Pipeline) FinalJar() string {
	return p.plan.Final.Path
}

// PatchedJar returns the planned location of the patched intermediate jar.
func (p *Pipeline) PatchedJar() string {
	return p.plan.Patched.Path
}

// OverlayDirty reports whether the overlay fingerprint changed since the
// last run. Valid after Initialize.
func (p *Pipeline) OverlayDirty() bool {
	return p.overlayDirty
}

// Plan returns the artifact plan. Valid after Initialize.
func (p *Pipeline) Plan() domain.ArtifactPlan {
	return p.plan
}

func (p *Pipeline) removeAll(artifacts []domain.StageArtifact) error {
	for _, art := range artifacts {
		if err := art.Remove(); err != nil {
			return zerr.With(errors.Join(domain.ErrCacheCleanFailed, err), "path", art.Path)
		}
	}
	return nil
}

// runStage executes one stage unless both the cascade is clean and the
// artifact is present. The returned state is marked whenever the stage ran,
// so every later stage re-executes on top of the fresh output.
func (p *Pipeline) runStage(ctx context.Context, state domain.DirtyState, art domain.StageArtifact, name string, fn func(ctx context.Context) error) (domain.DirtyState, error) {
	ctx, vertex := p.telemetry.Record(ctx, name)

	if !state.Stale() && art.Exists() {
		vertex.Cached()
		vertex.Complete(nil)
		return state, nil
	}

	p.logger.Info(name)

	err := fn(ports.ContextWithVertex(ctx, vertex))
	vertex.Complete(err)

	if err != nil {
		return state, zerr.With(err, "stage", string(art.Stage))
	}

	return state.Mark(), nil
}

// withTempOutput runs fn against a sibling temp path and promotes the result
// over the artifact only after verifying it is present and non-empty. A
// failed stage never leaves a partial artifact behind.
func withTempOutput(art domain.StageArtifact, fn func(tmp string) error) error {
	tmp := art.Path + ".tmp"
	defer os.Remove(tmp) //nolint:errcheck // Best-effort cleanup

	if err := fn(tmp); err != nil {
		return err
	}

	info, err := os.Stat(tmp)
	if err != nil {
		return zerr.With(domain.ErrStageOutputMissing, "path", art.Path)
	}
	if info.Size() == 0 {
		return zerr.With(domain.ErrStageOutputEmpty, "path", art.Path)
	}

	return os.Rename(tmp, art.Path)
}

func (p *Pipeline) stageMerge(ctx context.Context) error {
	return withTempOutput(p.plan.Merged, func(tmp string) error {
		return p.tools.Merge(ctx, p.spec.ClientJar, p.spec.ServerJar, tmp)
	})
}

func (p *Pipeline) stageRemapIntermediate(ctx context.Context) error {
	mappings, cleanup, err := p.intermediateMappings()
	if err != nil {
		return err
	}
	defer cleanup()

	return withTempOutput(p.plan.Remapped, func(tmp string) error {
		return p.tools.Remap(ctx, domain.RemapRequest{
			Input:    p.plan.Merged.Path,
			Output:   tmp,
			Mappings: mappings,
			From:     domain.NamespaceOfficial,
			To:       domain.NamespaceSRG,
		})
	})
}

func (p *Pipeline) stageApplyPatches(ctx context.Context) error {
	return withTempOutput(p.plan.Patched, func(tmp string) error {
		if err := p.tools.ApplyPatches(ctx, p.plan.Remapped.Path, p.spec.PatchSet, tmp); err != nil {
			return err
		}

		// Patch tools only emit the classes they touched.
		if err := CopyMissingClasses(p.plan.Remapped.Path, tmp); err != nil {
			return err
		}

		if p.spec.Tools.Normalize.Configured() {
			if err := RewriteEntries(ctx, tmp, IsClassEntry, p.tools.Normalize, p.spec.Workers); err != nil {
				return err
			}
		}

		// Resources never survive the remap+patch path, so they come straight
		// from the original distributions. Server first, client wins.
		if err := CopyNonClassEntries(p.spec.ServerJar, tmp); err != nil {
			return err
		}
		return CopyNonClassEntries(p.spec.ClientJar, tmp)
	})
}

func (p *Pipeline) stageInject(_ context.Context) error {
	if p.spec.UniversalJar != "" {
		if err := CopyAll(p.spec.UniversalJar, p.plan.Patched.Path); err != nil {
			return err
		}
	}

	if p.spec.UserdevJar != "" {
		err := MergeEntries(p.spec.UserdevJar, p.plan.Patched.Path, MergeOptions{
			Roots:  []string{userdevInjectRoot},
			Policy: Replace,
		})
		if err != nil {
			return err
		}
	}

	if p.spec.InjectionJar != "" {
		err := MergeEntries(p.spec.InjectionJar, p.plan.Patched.Path, MergeOptions{
			Filter: p.injectionFilter,
			Policy: Replace,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// injectionFilter drops the injection archive's own manifest and, unless the
// mixin-compatible patch set is selected, its launch service declarations.
func (p *Pipeline) injectionFilter(name string) bool {
	if name == "META-INF/MANIFEST.MF" {
		return false
	}
	if !p.spec.Version.MixinCompat && strings.HasSuffix(name, transformationServiceSuffix) {
		return false
	}
	return true
}

func (p *Pipeline) stageAccessTransform(ctx context.Context) error {
	builtin, cleanup, err := p.extractBuiltinRules()
	if err != nil {
		return err
	}
	defer cleanup()

	var rules []string
	if builtin != "" {
		rules = append(rules, builtin)
	}
	if p.spec.HasOverlay() {
		rules = append(rules, p.spec.OverlayPath)
	}

	return withTempOutput(p.plan.PatchedAt, func(tmp string) error {
		return p.tools.Transform(ctx, p.plan.Patched.Path, tmp, rules)
	})
}

func (p *Pipeline) stageRemapFinal(ctx context.Context) error {
	return withTempOutput(p.plan.Final, func(tmp string) error {
		return p.tools.Remap(ctx, domain.RemapRequest{
			Input:     p.plan.PatchedAt.Path,
			Output:    tmp,
			Mappings:  p.spec.Mappings,
			From:      domain.NamespaceSRG,
			To:        domain.NamespaceOfficial,
			Classpath: p.spec.RemapClasspath,
		})
	})
}

// intermediateMappings resolves the mapping file for the intermediate remap.
// When a tool config archive is given, its config.json names the mapping
// entry to extract; otherwise the configured mapping file is used directly.
func (p *Pipeline) intermediateMappings() (string, func(), error) {
	if p.spec.ToolConfigJar == "" {
		return p.spec.Mappings, func() {}, nil
	}

	a, err := zipfs.Open(p.spec.ToolConfigJar)
	if err != nil {
		return "", nil, err
	}
	defer a.Close() //nolint:errcheck // Read-only mount

	raw, err := a.Read(configEntryName)
	if err != nil {
		return "", nil, err
	}

	var cfg struct {
		Data struct {
			Mappings string `json:"mappings"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return "", nil, zerr.With(zerr.Wrap(err, "parse tool config"), "archive", p.spec.ToolConfigJar)
	}

	entry := strings.TrimPrefix(cfg.Data.Mappings, "/")
	data, err := a.Read(entry)
	if err != nil {
		return "", nil, err
	}

	return writeTempFile(filepath.Dir(p.plan.Remapped.Path), "mappings-*"+filepath.Ext(entry), data)
}

// extractBuiltinRules writes the patched jar's bundled access rules to a temp
// file. An absent entry yields no rule file rather than an error; some patch
// sets carry none.
func (p *Pipeline) extractBuiltinRules() (string, func(), error) {
	a, err := zipfs.Open(p.plan.Patched.Path)
	if err != nil {
		return "", nil, err
	}
	defer a.Close() //nolint:errcheck // Read-only mount

	if !a.Has(domain.OverlayEntryName) {
		return "", func() {}, nil
	}

	data, err := a.Read(domain.OverlayEntryName)
	if err != nil {
		return "", nil, err
	}

	return writeTempFile(filepath.Dir(p.plan.PatchedAt.Path), "rules-*.cfg", data)
}

func writeTempFile(dir, pattern string, data []byte) (string, func(), error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", nil, zerr.Wrap(err, "create temp file")
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, zerr.With(zerr.Wrap(err, "write temp file"), "path", path)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, zerr.With(zerr.Wrap(err, "close temp file"), "path", path)
	}

	return path, cleanup, nil
}

func anyMissing(artifacts []domain.StageArtifact) bool {
	for _, art := range artifacts {
		if art.Missing() {
			return true
		}
	}
	return false
}
