package domain

import "time"

// StepInfo records the outcome of a completed build step in the
// build-info store so later runs can skip unchanged work.
type StepInfo struct {
	// Project is the owning project's name.
	Project string `json:"project"`
	// Step is the step name within the project.
	Step string `json:"step"`
	// Fingerprint is the content hash of the step's inputs at the time
	// it last completed.
	Fingerprint string `json:"fingerprint"`
	// ConfigMtime is the project's config staleness fingerprint
	// (UnixNano) at the time the step last completed.
	ConfigMtime int64 `json:"config_mtime"`
	// CompletedAt is when the step last completed successfully.
	CompletedAt time.Time `json:"completed_at"`
}
