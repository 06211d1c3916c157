package stack

import (
	"path/filepath"

	"go.trai.ch/nest/internal/core/domain"
	"go.trai.ch/zerr"
)

// Recur brackets a recursive re-entry into a sub-build: it marks the
// current head frame recursing, runs fn, and unmarks whichever frame is
// head afterwards, even when fn fails. An empty stack marks nothing and
// still runs fn.
func (o *Owner) Recur(fn func() error) error {
	if err := o.sync("recur", func(st *state) {
		if len(st.frames) > 0 {
			st.frames[0].Recursing = true
		}
	}); err != nil {
		return err
	}

	defer func() {
		_ = o.sync("recur_done", func(st *state) {
			if len(st.frames) > 0 {
				st.frames[0].Recursing = false
			}
		})
	}()

	return fn()
}

// Recursing returns the name of the first recursing frame scanning from
// the head, or ok=false when no frame is recursing.
func (o *Owner) Recursing() (string, bool, error) {
	var name string
	var ok bool

	err := o.sync("recursing", func(st *state) {
		for _, f := range st.frames {
			if f.Recursing {
				name = f.Name
				ok = true
				return
			}
		}
	})
	if err != nil {
		return "", false, err
	}
	return name, ok, nil
}

// Root runs fn with the working context moved to the nearest recursing
// ancestor. The frames above that ancestor are hidden from the visible
// stack for the duration of fn, the ancestor is temporarily unmarked,
// and the working directory is changed to the ancestor manifest's
// directory. On every exit path the hidden frames are reattached on top
// of whatever fn left on the stack and the ancestor is re-marked
// recursing.
//
// The working directory is intentionally NOT restored after Root
// returns: subsequent operations continue rooted at the ancestor. The
// chdir is process-wide, so concurrent Root calls need external
// coordination.
//
// Calling Root with no recursing frame on the stack is a caller bug and
// fails with ErrNoRecursingFrame.
func (o *Owner) Root(fn func() error) error {
	var top []*domain.Frame
	var mid *domain.Frame

	if err := o.sync("root", func(st *state) {
		i := 0
		for ; i < len(st.frames); i++ {
			if st.frames[i].Recursing {
				break
			}
		}
		if i == len(st.frames) {
			return
		}
		top = append([]*domain.Frame(nil), st.frames[:i]...)
		mid = st.frames[i]
		mid.Recursing = false
		st.frames = append([]*domain.Frame(nil), st.frames[i:]...)
	}); err != nil {
		return err
	}
	if mid == nil {
		return domain.ErrNoRecursingFrame
	}

	defer func() {
		_ = o.sync("root_done", func(st *state) {
			mid.Recursing = true
			st.frames = append(append([]*domain.Frame(nil), top...), st.frames...)
		})
	}()

	if err := o.wd.Chdir(filepath.Dir(mid.File)); err != nil {
		return zerr.Wrap(err, "failed to enter root project directory")
	}
	return fn()
}
