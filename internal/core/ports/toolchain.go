// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/anvil/internal/core/domain"
)

// MergeTool combines the client and server editions into one archive.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type MergeTool interface {
	// Merge writes the merged archive to output. Deterministic given
	// identical inputs.
	Merge(ctx context.Context, clientJar, serverJar, output string) error
}

// RemapTool rewrites symbol references between namespaces.
type RemapTool interface {
	// Remap applies the mapping set described by the request.
	Remap(ctx context.Context, req domain.RemapRequest) error
}

// PatchTool applies a binary patch set to a base archive.
type PatchTool interface {
	// ApplyPatches fails if the base archive's entries do not match the
	// patch set's expected checksums.
	ApplyPatches(ctx context.Context, baseJar, patchSet, output string) error
}

// AccessTransformTool widens member access according to rule files.
type AccessTransformTool interface {
	// Transform applies the rule files in order; later files extend or
	// override rules from earlier ones.
	Transform(ctx context.Context, input, output string, ruleFiles []string) error
}

// ClassNormalizer rewrites the metadata of a single class entry. It must be
// a pure function of the entry bytes so the parallel pass stays
// deterministic.
type ClassNormalizer interface {
	Normalize(ctx context.Context, name string, data []byte) ([]byte, error)
}

// Toolchain groups every external tool the pipeline delegates to.
type Toolchain interface {
	MergeTool
	RemapTool
	PatchTool
	AccessTransformTool
	ClassNormalizer
}

// ToolchainFactory builds a Toolchain bound to concrete command templates.
// The templates only become known once the configuration is loaded, so the
// factory is what gets wired, not the toolchain itself.
type ToolchainFactory interface {
	Toolchain(cfg domain.ToolsConfig) Toolchain
}
