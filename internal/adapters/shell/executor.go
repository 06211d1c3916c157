// Package shell provides the shell executor adapter for build steps.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/nest/internal/core/domain"
	"go.trai.ch/nest/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// Execute runs the step's command in dir. The environment is the
// inherited process environment, then the extra env entries, then the
// step's own env map, later entries winning. Output is streamed both
// to the logger and to out/errOut when given. A step with no command
// is a no-op.
func (e *Executor) Execute(ctx context.Context, step *domain.Step, dir string, env []string, out, errOut io.Writer) error {
	if len(step.Cmd) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, step.Cmd[0], step.Cmd[1:]...) //nolint:gosec // user provided command
	cmd.Dir = dir
	cmd.Env = mergeEnv(os.Environ(), env, step.Env)
	cmd.Stdout = tee(&logWriter{logger: e.logger, stderr: false}, out)
	cmd.Stderr = tee(&logWriter{logger: e.logger, stderr: true}, errOut)

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(err, "step command failed"), "step", step.Name), "exit_code", exitCode)
	}
	return nil
}

// tee duplicates the log stream into an optional extra sink.
func tee(w io.Writer, extra io.Writer) io.Writer {
	if extra == nil {
		return w
	}
	return io.MultiWriter(w, extra)
}

type logWriter struct {
	logger ports.Logger
	stderr bool
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	for _, line := range strings.Split(strings.TrimSuffix(string(p), "\n"), "\n") {
		if w.stderr {
			w.logger.Warn(line)
		} else {
			w.logger.Info(line)
		}
	}
	return len(p), nil
}

// mergeEnv flattens the base environment with extra "KEY=VALUE" entries
// and the step's env map, later sources winning per key.
func mergeEnv(base, extra []string, stepEnv map[string]string) []string {
	envMap := make(map[string]string, len(base)+len(extra)+len(stepEnv))
	order := make([]string, 0, len(base)+len(extra)+len(stepEnv))

	set := func(k, v string) {
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for _, entry := range base {
		if k, v, ok := strings.Cut(entry, "="); ok {
			set(k, v)
		}
	}
	for _, entry := range extra {
		if k, v, ok := strings.Cut(entry, "="); ok {
			set(k, v)
		}
	}
	for k, v := range stepEnv {
		set(k, v)
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}
