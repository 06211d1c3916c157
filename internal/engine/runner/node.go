package runner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nest/internal/adapters/cas"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nest/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nest/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nest/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nest/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nest/internal/core/ports"
	"go.trai.ch/nest/internal/engine/stack"
)

// NodeID is the unique identifier for the runner Graft node.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			stack.NodeID,
			shell.NodeID,
			fs.HasherNodeID,
			cas.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			owner, err := graft.Dep[*stack.Owner](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.BuildInfoStore](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewRunner(owner, executor, hasher, store, tel, log), nil
		},
	})
}
