package telemetry

import (
	"context"
	"io"

	"go.trai.ch/anvil/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry, used in tests and when
// progress recording is disabled.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards everything.
func (t *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := &NoOpVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Stdout discards output.
func (v *NoOpVertex) Stdout() io.Writer { return io.Discard }

// Stderr discards output.
func (v *NoOpVertex) Stderr() io.Writer { return io.Discard }

// Complete does nothing.
func (v *NoOpVertex) Complete(_ error) {}

// Cached does nothing.
func (v *NoOpVertex) Cached() {}
