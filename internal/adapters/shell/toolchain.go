// Package shell implements the external tool ports by spawning configured
// commands.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ToolchainFactory = (*Factory)(nil)

// Factory builds Toolchains bound to a concrete tool configuration.
type Factory struct {
	logger ports.Logger
}

// NewFactory creates a new Factory.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// Toolchain binds the factory to the given command templates.
func (f *Factory) Toolchain(cfg domain.ToolsConfig) ports.Toolchain {
	return &Toolchain{cfg: cfg, logger: f.logger}
}

var _ ports.Toolchain = (*Toolchain)(nil)

// Toolchain implements the five tool ports by rendering argv templates and
// running them with os/exec. Tool output streams to the telemetry vertex of
// the calling stage when one is attached to the context, falling back to the
// logger.
type Toolchain struct {
	cfg    domain.ToolsConfig
	logger ports.Logger
}

// Merge combines the client and server jars into output.
func (t *Toolchain) Merge(ctx context.Context, clientJar, serverJar, output string) error {
	return t.run(ctx, "merge", t.cfg.Merge, map[string]string{
		"client": clientJar,
		"server": serverJar,
		"output": output,
	})
}

// Remap applies the mapping set described by the request.
func (t *Toolchain) Remap(ctx context.Context, req domain.RemapRequest) error {
	return t.run(ctx, "remap", t.cfg.Remap, map[string]string{
		"input":     req.Input,
		"output":    req.Output,
		"mappings":  req.Mappings,
		"from":      req.From,
		"to":        req.To,
		"classpath": strings.Join(req.Classpath, string(os.PathListSeparator)),
	})
}

// ApplyPatches applies the binary patch set to baseJar.
func (t *Toolchain) ApplyPatches(ctx context.Context, baseJar, patchSet, output string) error {
	return t.run(ctx, "patch", t.cfg.Patch, map[string]string{
		"clean":   baseJar,
		"patches": patchSet,
		"output":  output,
	})
}

// Transform widens member access using the rule files, in order.
func (t *Toolchain) Transform(ctx context.Context, input, output string, ruleFiles []string) error {
	return t.run(ctx, "access-transform", t.cfg.AccessTransform, map[string]string{
		"input":  input,
		"output": output,
		"rules":  strings.Join(ruleFiles, string(os.PathListSeparator)),
	})
}

// Normalize filters one class entry through the configured command's
// stdin/stdout. Identity when no normalizer is configured.
func (t *Toolchain) Normalize(ctx context.Context, name string, data []byte) ([]byte, error) {
	if !t.cfg.Normalize.Configured() {
		return data, nil
	}

	argv := t.cfg.Normalize.Render(map[string]string{"entry": name})

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // Command comes from the user's config
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = &out
	cmd.Stderr = t.errSink(ctx)

	if err := cmd.Run(); err != nil {
		return nil, zerr.With(zerr.With(zerr.With(errors.Join(domain.ErrToolFailed, err),
			"tool", "normalize"), "entry", name), "exit_code", exitCode(err))
	}

	return out.Bytes(), nil
}

func (t *Toolchain) run(ctx context.Context, name string, tmpl domain.ToolCommand, vars map[string]string) error {
	if !tmpl.Configured() {
		return zerr.With(domain.ErrToolNotConfigured, "tool", name)
	}

	argv := tmpl.Render(vars)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // Command comes from the user's config
	cmd.Stdout = t.outSink(ctx)
	cmd.Stderr = t.errSink(ctx)

	if err := cmd.Run(); err != nil {
		return zerr.With(zerr.With(errors.Join(domain.ErrToolFailed, err),
			"tool", name), "exit_code", exitCode(err))
	}

	return nil
}

// outSink prefers the stage's telemetry vertex over the logger so tool chatter
// lands on the vertex that invoked it, never on a process-wide stream.
func (t *Toolchain) outSink(ctx context.Context) io.Writer {
	if v := ports.VertexFromContext(ctx); v != nil {
		return v.Stdout()
	}
	return &logWriter{logger: t.logger, level: "info"}
}

func (t *Toolchain) errSink(ctx context.Context) io.Writer {
	if v := ports.VertexFromContext(ctx); v != nil {
		return v.Stderr()
	}
	return &logWriter{logger: t.logger, level: "error"}
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (int, error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
