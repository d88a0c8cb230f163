package ports

import "go.trai.ch/anvil/internal/core/domain"

// ConfigLoader defines the interface for loading the pipeline configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given path and returns the
	// pipeline spec.
	Load(path string) (*domain.PipelineSpec, error)
}
