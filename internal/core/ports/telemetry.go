package ports

import (
	"context"
	"io"
)

// Telemetry records the progress of pipeline stages.
type Telemetry interface {
	// Record starts recording a new vertex for the named unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Stdout returns a writer capturing the unit's standard output.
	Stdout() io.Writer

	// Stderr returns a writer capturing the unit's error output.
	Stderr() io.Writer

	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)

	// Cached marks the vertex as a cache hit.
	Cached()
}

type vertexKey struct{}

// ContextWithVertex attaches a vertex to the context.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex attached to the context, or nil.
func VertexFromContext(ctx context.Context) Vertex {
	v, _ := ctx.Value(vertexKey{}).(Vertex)
	return v
}
