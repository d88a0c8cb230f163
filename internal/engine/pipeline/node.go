package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/anvil/internal/adapters/fs"
	"go.trai.ch/anvil/internal/adapters/logger"
	"go.trai.ch/anvil/internal/adapters/shell"
	"go.trai.ch/anvil/internal/adapters/state"
	"go.trai.ch/anvil/internal/adapters/telemetry"
	"go.trai.ch/anvil/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline factory node.
const NodeID graft.ID = "engine.pipeline_factory"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, fs.ChecksumNodeID, state.NodeID, logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			tools, err := graft.Dep[ports.ToolchainFactory](ctx)
			if err != nil {
				return nil, err
			}
			checksum, err := graft.Dep[ports.ChecksumService](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.FingerprintStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(tools, checksum, store, log, tel), nil
		},
	})
}
