package ports

import (
	"context"
	"io"

	"go.trai.ch/nest/internal/core/domain"
)

// Executor defines the interface for executing build steps.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the given step in dir with the specified environment,
	// streaming the command's output to out and errOut. Either writer
	// may be nil.
	//
	// The env parameter contains environment variables in "KEY=VALUE"
	// format, appended to the inherited process environment.
	Execute(ctx context.Context, step *domain.Step, dir string, env []string, out, errOut io.Writer) error
}
