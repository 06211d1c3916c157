package fs

import (
	"os"

	"go.trai.ch/nest/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Workdir = (*Workdir)(nil)

// Workdir changes the real process working directory. The change is
// process-wide state; the stack owner is the single coordinator gating
// its use.
type Workdir struct{}

// NewWorkdir creates a new Workdir.
func NewWorkdir() *Workdir {
	return &Workdir{}
}

// Chdir changes the working directory.
func (w *Workdir) Chdir(dir string) error {
	if err := os.Chdir(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to change directory"), "dir", dir)
	}
	return nil
}

// Getwd reports the current working directory.
func (w *Workdir) Getwd() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to read working directory")
	}
	return wd, nil
}
