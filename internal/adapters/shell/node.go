package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/anvil/internal/adapters/logger"
	"go.trai.ch/anvil/internal/core/ports"
)

// NodeID is the unique identifier for the toolchain factory node.
const NodeID graft.ID = "adapter.toolchain_factory"

func init() {
	graft.Register(graft.Node[ports.ToolchainFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ToolchainFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}
