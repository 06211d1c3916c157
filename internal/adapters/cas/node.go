package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nest/internal/core/ports"
)

// DefaultPath is where the build-info store lives relative to the
// invocation directory.
const DefaultPath = ".nest/build_info.json"

const NodeID graft.ID = "adapter.build_info_store"

func init() {
	graft.Register(graft.Node[ports.BuildInfoStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.BuildInfoStore, error) {
			return NewStore(DefaultPath)
		},
	})
}
