// Package telemetry provides the Progrock implementation of the stage
// progress recorder.
package telemetry

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/anvil/internal/tui"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry using the progrock library. Every
// pipeline stage becomes one vertex; external tool output is attached to the
// vertex instead of any process-wide stream.
type Recorder struct {
	w    progrock.Writer
	feed *Feed
	rec  *progrock.Recorder
}

// New creates a new Recorder with a default tape and a followable feed.
func New() ports.Telemetry {
	feed := NewFeed(progrock.NewTape())
	r := NewRecorder(feed)
	r.feed = feed
	return r
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Follow exposes the live update stream. Nil when the recorder was built
// around a plain writer.
func (r *Recorder) Follow() tui.TapeSource {
	if r.feed == nil {
		return nil
	}
	return r.feed
}

// Record starts recording a new vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	vertex := &Vertex{vertex: v}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
