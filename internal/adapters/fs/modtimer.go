// Package fs provides file system adapters: modification-time probing,
// content fingerprinting, and the process working directory.
package fs

import (
	"os"

	"go.trai.ch/nest/internal/core/ports"
)

var _ ports.ModTimer = (*ModTimer)(nil)

// ModTimer probes file modification times with os.Stat.
type ModTimer struct{}

// NewModTimer creates a new ModTimer.
func NewModTimer() *ModTimer {
	return &ModTimer{}
}

// MaxMtime returns the maximum last-modified time (UnixNano) across the
// given files. Files that cannot be stat'ed contribute nothing, so a
// config file deleted mid-run does not fail the staleness probe.
func (m *ModTimer) MaxMtime(files []string) (int64, error) {
	var max int64
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if mt := info.ModTime().UnixNano(); mt > max {
			max = mt
		}
	}
	return max, nil
}
