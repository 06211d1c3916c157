package domain

import "path/filepath"

// Frame is one project's tracked state while it is part of the active
// build stack. Frames are created by Push, mutated in place by the
// stack owner, and destroyed by Pop or ClearStack.
type Frame struct {
	// Name identifies the project. May be empty for anonymous projects;
	// non-empty names must be unique across the stack.
	Name string
	// Config is the project's effective configuration, pending overrides
	// already merged in.
	Config Config
	// File is the path to the manifest that defines the project.
	File string
	// Position is the stack depth before this frame was pushed. The
	// bottom-most frame gets 0; deeper nesting means larger positions.
	Position int
	// Recursing is true while a recursive re-entry into this frame's
	// subtree is in progress.
	Recursing bool
	// IODone is true once the frame has announced itself. It is reset
	// when control moves away so the frame re-announces exactly once per
	// continuous period at the top of the stack.
	IODone bool
	// ConfigApps accumulates application identifiers contributed by
	// configuration loads, newest first.
	ConfigApps []string
	// ConfigFiles accumulates the files that contributed configuration,
	// newest first. The defining manifest is the initial member.
	ConfigFiles []string
	// ConfigMtime caches the maximum modification time (UnixNano) across
	// ConfigFiles. Zero means not yet computed; any append to
	// ConfigFiles resets it.
	ConfigMtime int64
}

// AppName returns the identifier the frame announces itself under: the
// "app" config key when set, else the project name, else the base name
// of the defining manifest.
func (f *Frame) AppName() string {
	if app, ok := f.Config.GetString("app"); ok && app != "" {
		return app
	}
	if f.Name != "" {
		return f.Name
	}
	return filepath.Base(f.File)
}

// View returns the restricted view of the frame handed out by Pop and
// Peek. The config slice is cloned so later in-place frame mutation
// cannot leak through.
func (f *Frame) View() *FrameView {
	return &FrameView{
		Name:     f.Name,
		Config:   f.Config.Clone(),
		File:     f.File,
		Position: f.Position,
	}
}

// FrameView is the subset of a frame exposed outside the stack owner.
type FrameView struct {
	Name     string
	Config   Config
	File     string
	Position int
}
