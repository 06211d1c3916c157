package stack

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nest/internal/adapters/fs" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nest/internal/core/ports"
)

// NodeID is the unique identifier for the stack owner Graft node.
const NodeID graft.ID = "engine.stack"

func init() {
	graft.Register(graft.Node[*Owner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ModTimerNodeID,
			fs.WorkdirNodeID,
		},
		Run: func(ctx context.Context) (*Owner, error) {
			timer, err := graft.Dep[ports.ModTimer](ctx)
			if err != nil {
				return nil, err
			}

			wd, err := graft.Dep[ports.Workdir](ctx)
			if err != nil {
				return nil, err
			}

			return NewOwner(timer, wd), nil
		},
	})
}
