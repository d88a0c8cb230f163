package telemetry

import (
	"io"

	"github.com/vito/progrock"
)

// Feed tees recorded status updates into a bounded channel so a UI can
// follow the run live. Without a reader attached, updates are dropped once
// the buffer fills; the underlying writer always gets every update.
type Feed struct {
	next progrock.Writer
	ch   chan *progrock.StatusUpdate
}

// NewFeed wraps the given writer.
func NewFeed(next progrock.Writer) *Feed {
	return &Feed{
		next: next,
		ch:   make(chan *progrock.StatusUpdate, 64),
	}
}

// WriteStatus forwards the update and offers a copy to the follower.
func (f *Feed) WriteStatus(update *progrock.StatusUpdate) error {
	select {
	case f.ch <- update:
	default:
	}
	return f.next.WriteStatus(update)
}

// Close ends the follower stream and closes the underlying writer.
func (f *Feed) Close() error {
	close(f.ch)
	if c, ok := f.next.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Read returns the next update, or io.EOF once the session is closed.
func (f *Feed) Read() (*progrock.StatusUpdate, error) {
	update, ok := <-f.ch
	if !ok {
		return nil, io.EOF
	}
	return update, nil
}
