package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nest/internal/core/ports"
)

const (
	ModTimerNodeID graft.ID = "adapter.fs.modtimer"
	WorkdirNodeID  graft.ID = "adapter.fs.workdir"
	HasherNodeID   graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.ModTimer]{
		ID:        ModTimerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ModTimer, error) {
			return NewModTimer(), nil
		},
	})

	graft.Register(graft.Node[ports.Workdir]{
		ID:        WorkdirNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Workdir, error) {
			return NewWorkdir(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
