package pipeline

import (
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
)

// Factory assembles pipelines from wired collaborators. Tool command
// templates only become known at config-load time, so the factory is the
// injectable unit, not the pipeline.
type Factory struct {
	tools     ports.ToolchainFactory
	checksum  ports.ChecksumService
	store     ports.FingerprintStore
	logger    ports.Logger
	telemetry ports.Telemetry
}

// NewFactory creates a new pipeline factory.
func NewFactory(tools ports.ToolchainFactory, checksum ports.ChecksumService, store ports.FingerprintStore, logger ports.Logger, telemetry ports.Telemetry) *Factory {
	return &Factory{
		tools:     tools,
		checksum:  checksum,
		store:     store,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Pipeline builds a pipeline bound to the given spec.
func (f *Factory) Pipeline(spec *domain.PipelineSpec) *Pipeline {
	return &Pipeline{
		spec:        spec,
		tools:       f.tools.Toolchain(spec.Tools),
		logger:      f.logger,
		telemetry:   f.telemetry,
		fingerprint: NewFingerprint(f.checksum, f.store),
	}
}
