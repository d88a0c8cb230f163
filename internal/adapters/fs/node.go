package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/anvil/internal/core/ports"
)

const (
	// ChecksumNodeID is the unique identifier for the checksum service node.
	ChecksumNodeID graft.ID = "adapter.fs.checksum"
)

func init() {
	graft.Register(graft.Node[ports.ChecksumService]{
		ID:        ChecksumNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ChecksumService, error) {
			return NewChecksum(), nil
		},
	})
}
