package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicateProject is returned when pushing a frame whose non-empty
	// name is already present on the stack. The conflicting frame's
	// manifest path is attached as "conflicting_file" metadata.
	ErrDuplicateProject = zerr.New("project already on stack")

	// ErrTimeout is returned when a synchronous call against the stack
	// owner does not complete within the operation timeout.
	ErrTimeout = zerr.New("stack owner operation timed out")

	// ErrOwnerClosed is returned when an operation is issued against a
	// closed stack owner.
	ErrOwnerClosed = zerr.New("stack owner closed")

	// ErrNoRecursingFrame is returned by Root when no frame below the head
	// is marked recursing. This indicates a caller bug, not a recoverable
	// condition.
	ErrNoRecursingFrame = zerr.New("no recursing frame on stack")

	// ErrUnknownStep is returned when a requested step does not exist in
	// the active project's manifest.
	ErrUnknownStep = zerr.New("unknown step")
)
