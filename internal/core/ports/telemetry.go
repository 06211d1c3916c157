package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry is the entry point for recording build progress.
type Telemetry interface {
	// Record starts recording a new vertex for a unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Announce emits a one-shot banner for the named project. Used by
	// the announce-once protocol: it is called at most once per
	// continuous period a project spends at the top of the stack.
	Announce(name string)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Stdout returns a writer capturing the unit's standard output.
	Stdout() io.Writer
	// Stderr returns a writer capturing the unit's error output.
	Stderr() io.Writer
	// Complete marks the vertex as finished, with err non-nil on failure.
	Complete(err error)
	// Cached marks the vertex as skipped due to a cache hit.
	Cached()
}
