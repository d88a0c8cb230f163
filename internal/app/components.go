package app

import (
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/anvil/internal/engine/pipeline"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader ports.ConfigLoader
	Pipelines    *pipeline.Factory
}
