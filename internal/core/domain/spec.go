package domain

import "strings"

// PipelineSpec carries everything a pipeline run needs. It is assembled once
// by the config loader and treated as immutable afterwards.
type PipelineSpec struct {
	Version VersionID

	// Input archives, resolved by the caller. The pipeline never downloads.
	ClientJar string
	ServerJar string

	// PatchSet is the binary patch file applied to the remapped jar.
	PatchSet string

	// ToolConfigJar is the archive whose config.json names the mapping entry
	// used for the intermediate remap.
	ToolConfigJar string

	// Mappings is the mapping set for the final remap.
	Mappings string

	// RemapClasspath lists library jars consulted during the final remap.
	RemapClasspath []string

	// Supplemental archives overlaid onto the patched jar.
	UniversalJar string
	UserdevJar   string
	InjectionJar string

	// OverlayPath is the project access-rule overlay. Empty means none; an
	// empty file and no file fingerprint identically on purpose.
	OverlayPath string

	// Cache tier roots.
	GlobalCacheDir  string
	ProjectCacheDir string

	// Tools holds the external tool command templates.
	Tools ToolsConfig

	// Workers bounds the parallel rewrite pool. Zero means one worker per
	// CPU.
	Workers int

	// ForceRefresh invalidates every cache tier before the run.
	ForceRefresh bool
}

// HasOverlay reports whether a project overlay is configured.
func (s PipelineSpec) HasOverlay() bool {
	return s.OverlayPath != ""
}

// ToolsConfig holds the argv templates of the external tool collaborators.
type ToolsConfig struct {
	Merge           ToolCommand
	Remap           ToolCommand
	Patch           ToolCommand
	AccessTransform ToolCommand
	// Normalize filters one class file through stdin/stdout. Optional; the
	// normalization pass is skipped when unset.
	Normalize ToolCommand
}

// ToolCommand is an argv template. Arguments may contain {placeholder}
// tokens substituted per invocation.
type ToolCommand []string

// Configured reports whether the template has a command to run.
func (c ToolCommand) Configured() bool {
	return len(c) > 0
}

// Render substitutes {key} tokens from vars in every argument. Unknown
// tokens are left untouched so tool-native brace syntax survives.
func (c ToolCommand) Render(vars map[string]string) []string {
	rendered := make([]string, len(c))

	for i, arg := range c {
		for key, value := range vars {
			arg = strings.ReplaceAll(arg, "{"+key+"}", value)
		}
		rendered[i] = arg
	}

	return rendered
}

// RemapRequest describes one symbol remap invocation.
type RemapRequest struct {
	Input    string
	Output   string
	Mappings string
	// From and To are the source and target namespaces. Inner-class
	// references must be remapped consistently with the outer mapping set;
	// that is the tool's contract.
	From      string
	To        string
	Classpath []string
}
