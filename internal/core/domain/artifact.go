package domain

import (
	"os"
)

// Stage identifies one of the six ordered pipeline stages.
type Stage string

const (
	// StageMerge combines the client and server jars into one merged jar.
	StageMerge Stage = "merge"
	// StageRemapIntermediate remaps the merged jar into the intermediate
	// namespace used by the patch set.
	StageRemapIntermediate Stage = "remap-intermediate"
	// StageApplyPatches applies the binary patch set, backfills classes the
	// patcher did not emit and normalizes class metadata.
	StageApplyPatches Stage = "apply-patches"
	// StageInject overlays the universal, userdev and injection jars onto the
	// patched jar.
	StageInject Stage = "inject"
	// StageAccessTransform widens member access according to the built-in
	// rules and the optional project overlay.
	StageAccessTransform Stage = "access-transform"
	// StageRemapFinal remaps the transformed jar back into the final
	// namespace.
	StageRemapFinal Stage = "remap-final"
)

// Stages lists all stages in execution order.
func Stages() []Stage {
	return []Stage{
		StageMerge,
		StageRemapIntermediate,
		StageApplyPatches,
		StageInject,
		StageAccessTransform,
		StageRemapFinal,
	}
}

// StageArtifact is the planned on-disk location of one stage output.
//
// Existence of the file proves nothing about validity on its own; validity is
// the orchestrator's concern via the dirty cascade.
type StageArtifact struct {
	Stage Stage
	Path  string
}

// Exists reports whether the artifact file is present and non-empty.
func (a StageArtifact) Exists() bool {
	info, err := os.Stat(a.Path)
	if err != nil {
		return false
	}
	return info.Size() > 0
}

// Missing is the negation of Exists.
func (a StageArtifact) Missing() bool {
	return !a.Exists()
}

// Remove deletes the artifact file. A missing file is not an error.
func (a StageArtifact) Remove() error {
	err := os.Remove(a.Path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ArtifactPlan holds the deterministic locations of every pipeline artifact
// across the two cache tiers, plus the fingerprint file guarding the project
// tier.
type ArtifactPlan struct {
	// Global tier, shared by every consumer of the same VersionID.
	Merged   StageArtifact
	Remapped StageArtifact
	Patched  StageArtifact

	// Project tier, additionally keyed by the caller's overlay.
	PatchedAt StageArtifact
	Final     StageArtifact

	// FingerprintFile persists the last-seen overlay hash.
	FingerprintFile string
}

// GlobalArtifacts returns the artifacts that depend only on the VersionID.
func (p ArtifactPlan) GlobalArtifacts() []StageArtifact {
	return []StageArtifact{p.Merged, p.Remapped, p.Patched}
}

// ProjectArtifacts returns the artifacts that additionally depend on the
// project configuration overlay.
func (p ArtifactPlan) ProjectArtifacts() []StageArtifact {
	return []StageArtifact{p.PatchedAt, p.Final}
}
