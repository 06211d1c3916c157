package stack

import (
	"go.trai.ch/nest/internal/core/domain"
	"go.trai.ch/zerr"
)

// Push builds a new frame for the project and makes it the head.
//
// The frame's config is the supplied config with the pending overrides
// merged on top (override keys win); the pending buffer is cleared in
// the same atomic step. Its position is the stack depth before the
// push, and IODone is preset only for the bottom-most frame (the root
// project never announces itself). A non-empty name already present on
// the stack rejects the push with ErrDuplicateProject carrying the
// existing frame's manifest path as "conflicting_file" metadata, and
// leaves both stack and pending buffer untouched.
func (o *Owner) Push(name string, cfg domain.Config, file string) error {
	var conflict string
	var dup bool

	err := o.sync("push", func(st *state) {
		for _, f := range st.frames {
			if f.Name != "" && f.Name == name {
				dup = true
				conflict = f.File
				return
			}
		}
		frame := &domain.Frame{
			Name:        name,
			Config:      cfg.Merge(st.pending),
			File:        file,
			Position:    len(st.frames),
			IODone:      len(st.frames) == 0,
			ConfigFiles: []string{file},
		}
		st.pending = nil
		st.frames = append([]*domain.Frame{frame}, st.frames...)
	})
	if err != nil {
		return err
	}
	if dup {
		return zerr.With(zerr.With(domain.ErrDuplicateProject, "project", name), "conflicting_file", conflict)
	}
	return nil
}

// Pop removes the head frame and returns its restricted view, or nil if
// the stack is empty.
func (o *Owner) Pop() (*domain.FrameView, error) {
	var view *domain.FrameView
	err := o.sync("pop", func(st *state) {
		if len(st.frames) == 0 {
			return
		}
		view = st.frames[0].View()
		st.frames = st.frames[1:]
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Peek returns the restricted view of the head frame without removing
// it, or nil if the stack is empty.
func (o *Owner) Peek() (*domain.FrameView, error) {
	var view *domain.FrameView
	err := o.sync("peek", func(st *state) {
		if len(st.frames) == 0 {
			return
		}
		view = st.frames[0].View()
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Depth returns the number of frames on the stack.
func (o *Owner) Depth() (int, error) {
	var n int
	err := o.sync("depth", func(st *state) {
		n = len(st.frames)
	})
	return n, err
}

// PostConfig merges cfg into the pending override buffer. The buffer is
// applied to the next pushed frame only, then cleared. Fire-and-forget.
func (o *Owner) PostConfig(cfg domain.Config) {
	cfg = cfg.Clone()
	o.async(func(st *state) {
		st.pending = st.pending.Merge(cfg)
	})
}

// PrintableAppName implements the announce-once protocol. If the stack
// is empty or the head frame has already announced itself, it reports
// ok=false. Otherwise it marks the head announced, resets every other
// frame so ancestors re-announce when control returns to them, and
// returns the head's application identifier.
func (o *Owner) PrintableAppName() (string, bool, error) {
	var name string
	var ok bool

	err := o.sync("printable_app_name", func(st *state) {
		if len(st.frames) == 0 || st.frames[0].IODone {
			return
		}
		for _, f := range st.frames[1:] {
			f.IODone = false
		}
		st.frames[0].IODone = true
		name = st.frames[0].AppName()
		ok = true
	})
	if err != nil {
		return "", false, err
	}
	return name, ok, nil
}

// ClearStack drops every frame and the pending override buffer. The
// general cache is untouched. Fire-and-forget.
func (o *Owner) ClearStack() {
	o.async(func(st *state) {
		st.frames = nil
		st.pending = nil
	})
}
