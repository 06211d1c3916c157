// Package stack implements the project-context stack owner: the single
// serialization point for the stack of active project frames, the
// pending-configuration-override buffer, and the build-run cache.
package stack

import (
	"time"

	"go.trai.ch/nest/internal/core/domain"
	"go.trai.ch/nest/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// OpTimeout bounds how long a synchronous call waits for the owner
	// goroutine before failing with domain.ErrTimeout. A hit means the
	// owner is deadlocked or overloaded; callers should abort the
	// triggering build step rather than retry.
	OpTimeout = 30 * time.Second

	// opQueueDepth is the mailbox size. Fire-and-forget updates block
	// only when this many operations are already queued, which keeps
	// FIFO order without unbounded memory.
	opQueueDepth = 256
)

// state is the three-part record owned exclusively by the run goroutine.
// frames[0] is the head (currently active project), the tail holds
// ancestors.
type state struct {
	frames  []*domain.Frame
	pending domain.Config
	cache   map[any]any
}

// An op is one unit of work applied to the state by the run goroutine.
type op func(st *state)

// Owner serializes every read and mutation of the project-context state
// through a single goroutine consuming a single op channel. Two access
// patterns exist: sync (caller blocks, bounded by OpTimeout) and async
// (fire-and-forget, never reports failure). Operations are applied in
// FIFO arrival order, so an async update followed by a sync call from
// the same caller always observes the update.
//
// Owners are constructed explicitly and passed by handle; there is no
// process-global instance, so tests can run independent owners.
type Owner struct {
	timer ports.ModTimer
	wd    ports.Workdir

	ops     chan op
	quit    chan struct{}
	stopped chan struct{}
}

// NewOwner creates a stack owner with an empty stack, no pending
// overrides, and an empty cache, and starts its run goroutine.
// Call Close to stop it.
func NewOwner(timer ports.ModTimer, wd ports.Workdir) *Owner {
	o := &Owner{
		timer:   timer,
		wd:      wd,
		ops:     make(chan op, opQueueDepth),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go o.run()
	return o
}

func (o *Owner) run() {
	defer close(o.stopped)

	st := &state{cache: make(map[any]any)}
	for {
		select {
		case <-o.quit:
			return
		case fn := <-o.ops:
			fn(st)
		}
	}
}

// Close stops the owner goroutine. Queued fire-and-forget updates may be
// dropped; synchronous callers still blocked receive ErrOwnerClosed.
// Close is safe to call more than once.
func (o *Owner) Close() {
	select {
	case <-o.quit:
	default:
		close(o.quit)
	}
	<-o.stopped
}

// sync applies fn on the owner goroutine and blocks until it has run,
// the owner closes, or OpTimeout elapses. The op name only feeds error
// metadata.
func (o *Owner) sync(name string, fn op) error {
	done := make(chan struct{})
	wrapped := func(st *state) {
		fn(st)
		close(done)
	}

	timer := time.NewTimer(OpTimeout)
	defer timer.Stop()

	select {
	case o.ops <- wrapped:
	case <-o.stopped:
		return zerr.With(domain.ErrOwnerClosed, "op", name)
	case <-timer.C:
		return zerr.With(domain.ErrTimeout, "op", name)
	}

	select {
	case <-done:
		return nil
	case <-o.stopped:
		// The op may have been applied right before shutdown.
		select {
		case <-done:
			return nil
		default:
		}
		return zerr.With(domain.ErrOwnerClosed, "op", name)
	case <-timer.C:
		return zerr.With(domain.ErrTimeout, "op", name)
	}
}

// async queues fn and returns without waiting for it to run. Updates
// enter the same FIFO mailbox as sync calls, preserving per-caller
// causal order. After Close the update is silently dropped.
func (o *Owner) async(fn op) {
	select {
	case o.ops <- fn:
	case <-o.stopped:
	}
}
