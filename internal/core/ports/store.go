package ports

import "go.trai.ch/nest/internal/core/domain"

// BuildInfoStore defines the interface for storing and retrieving
// per-step build information across runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildInfoStore interface {
	// Get retrieves the build info recorded under the given key.
	// Returns nil, nil if not found.
	Get(key string) (*domain.StepInfo, error)

	// Put stores the build info under the given key.
	Put(key string, info domain.StepInfo) error

	// Clear drops all recorded build info.
	Clear() error
}
