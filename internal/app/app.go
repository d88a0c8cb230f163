// Package app implements the application layer for anvil.
package app

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/anvil/internal/engine/pipeline"
	"go.trai.ch/anvil/internal/tui"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	pipelines    *pipeline.Factory
	logger       ports.Logger
	telemetry    ports.Telemetry
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, pipelines *pipeline.Factory, logger ports.Logger, telemetry ports.Telemetry) *App {
	return &App{
		configLoader: loader,
		pipelines:    pipelines,
		logger:       logger,
		telemetry:    telemetry,
	}
}

// RunOptions carries the per-invocation flags of the run command.
type RunOptions struct {
	// Force invalidates every cache tier before the run.
	Force bool
	// Progress renders a live stage view on stderr while the run executes.
	Progress bool
}

// Run executes the full pipeline for the configuration at configPath.
func (a *App) Run(ctx context.Context, configPath string, opts RunOptions) error {
	uiDone := a.startProgressView(ctx, opts)

	defer func() {
		if err := a.telemetry.Close(); err != nil {
			a.logger.Warn("telemetry close failed: " + err.Error())
		}
		if uiDone != nil {
			<-uiDone
		}
	}()

	spec, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if opts.Force {
		spec.ForceRefresh = true
	}

	p := a.pipelines.Pipeline(spec)

	if err := p.Initialize(); err != nil {
		return zerr.Wrap(err, "failed to initialize pipeline")
	}

	if err := p.RunPrimaryStages(ctx); err != nil {
		return zerr.Wrap(err, "pipeline execution failed")
	}

	if err := p.RunFinalStages(ctx); err != nil {
		return zerr.Wrap(err, "pipeline execution failed")
	}

	a.logger.Info("final jar ready at " + p.FinalJar())
	return nil
}

// startProgressView launches the live stage view when requested and the
// telemetry backend can be followed. The returned channel closes once the
// view has shut down; nil when no view was started.
func (a *App) startProgressView(ctx context.Context, opts RunOptions) chan struct{} {
	if !opts.Progress {
		return nil
	}

	follower, ok := a.telemetry.(tui.Follower)
	if !ok {
		return nil
	}

	source := follower.Follow()
	if source == nil {
		return nil
	}

	program := tea.NewProgram(
		tui.NewModel(source),
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := program.Run(); err != nil {
			a.logger.Warn("progress view failed: " + err.Error())
		}
	}()

	return done
}

// Clean removes cached artifacts for the configuration at configPath. With
// projectOnly set, the shared global tier survives.
func (a *App) Clean(configPath string, projectOnly bool) error {
	spec, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	p := a.pipelines.Pipeline(spec)

	if err := p.PlanLayout(); err != nil {
		return zerr.Wrap(err, "failed to plan cache layout")
	}

	if projectOnly {
		return p.CleanProject()
	}

	if err := p.CleanAll(); err != nil {
		return err
	}

	// Drop the persisted fingerprint as well so the next run starts from a
	// blank project tier.
	if err := os.Remove(p.Plan().FingerprintFile); err != nil && !os.IsNotExist(err) {
		return zerr.Wrap(err, "failed to remove fingerprint file")
	}

	return nil
}
