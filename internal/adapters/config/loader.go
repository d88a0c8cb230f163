// Package config provides the configuration loader for anvil.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the configuration file at path and returns the pipeline spec.
func (l *Loader) Load(path string) (*domain.PipelineSpec, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by the user
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	var file Anvilfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}

	return specFromFile(file)
}

func specFromFile(file Anvilfile) (*domain.PipelineSpec, error) {
	required := map[string]string{
		"game":           file.Game,
		"patchSet":       file.PatchSet,
		"inputs.client":  file.Inputs.Client,
		"inputs.server":  file.Inputs.Server,
		"inputs.patches": file.Inputs.Patches,
	}

	for field, value := range required {
		if value == "" {
			return nil, zerr.With(domain.ErrMissingInput, "field", field)
		}
	}

	overlay, err := resolveOverlay(file.Overlay)
	if err != nil {
		return nil, err
	}

	spec := &domain.PipelineSpec{
		Version: domain.VersionID{
			Game:        file.Game,
			PatchSet:    file.PatchSet,
			MixinCompat: file.MixinCompat,
		},
		ClientJar:       file.Inputs.Client,
		ServerJar:       file.Inputs.Server,
		PatchSet:        file.Inputs.Patches,
		ToolConfigJar:   file.Inputs.ToolConfig,
		Mappings:        file.Inputs.Mappings,
		RemapClasspath:  file.Inputs.Classpath,
		UniversalJar:    file.Inputs.Universal,
		UserdevJar:      file.Inputs.Userdev,
		InjectionJar:    file.Inputs.Injection,
		OverlayPath:     overlay,
		GlobalCacheDir:  file.Cache.Global,
		ProjectCacheDir: file.Cache.Project,
		Tools: domain.ToolsConfig{
			Merge:           domain.ToolCommand(file.Tools.Merge),
			Remap:           domain.ToolCommand(file.Tools.Remap),
			Patch:           domain.ToolCommand(file.Tools.Patch),
			AccessTransform: domain.ToolCommand(file.Tools.AccessTransform),
			Normalize:       domain.ToolCommand(file.Tools.Normalize),
		},
		Workers: file.Workers,
	}

	if spec.GlobalCacheDir == "" {
		spec.GlobalCacheDir = domain.DefaultGlobalCachePath()
	}
	if spec.ProjectCacheDir == "" {
		spec.ProjectCacheDir = domain.DefaultProjectCachePath()
	}

	return spec, nil
}

// resolveOverlay keeps the overlay only when the file actually exists. A
// project without the file behaves exactly like one that never configured it,
// matching the fingerprint's empty-input convention.
func resolveOverlay(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", zerr.With(errors.Join(domain.ErrOverlayUnreadable, err), "path", path)
	}

	return path, nil
}
