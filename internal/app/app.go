// Package app implements the application layer for nest.
package app

import (
	"context"
	"path/filepath"

	"go.trai.ch/nest/internal/core/domain"
	"go.trai.ch/nest/internal/core/ports"
	"go.trai.ch/nest/internal/engine/runner"
	"go.trai.ch/nest/internal/engine/stack"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.ProjectLoader
	owner     *stack.Owner
	runner    *runner.Runner
	store     ports.BuildInfoStore
	telemetry ports.Telemetry
	log       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ProjectLoader,
	owner *stack.Owner,
	run *runner.Runner,
	store ports.BuildInfoStore,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		loader:    loader,
		owner:     owner,
		runner:    run,
		store:     store,
		telemetry: telemetry,
		log:       log,
	}
}

// Build loads the manifest in dir and builds the project: its own steps
// first, then every subproject recursively. CLI overrides apply to the
// top-level project only.
func (a *App) Build(ctx context.Context, dir string, overrides domain.Config, parallelism int) error {
	if len(overrides) > 0 {
		a.owner.PostConfig(overrides)
	}
	return a.build(ctx, dir, parallelism)
}

// BuildStep loads the manifest in dir and runs just the named step.
// Subprojects are not descended into.
func (a *App) BuildStep(ctx context.Context, dir, step string, overrides domain.Config) error {
	if len(overrides) > 0 {
		a.owner.PostConfig(overrides)
	}

	project, err := a.enter(dir)
	if err != nil {
		return err
	}
	defer a.leave()

	return a.runner.RunStep(ctx, project, step)
}

// Clean drops all recorded build info and resets the owner's general
// cache, forcing the next build to run every step.
func (a *App) Clean() error {
	if err := a.store.Clear(); err != nil {
		return zerr.Wrap(err, "failed to clear build info")
	}
	a.owner.ClearCache()
	a.log.Info("build info cleared")
	return nil
}

// build pushes the project in dir, runs its steps, and recurses into
// its subprojects inside a recursion bracket so nested builds can reach
// back to this project's directory.
func (a *App) build(ctx context.Context, dir string, parallelism int) error {
	project, err := a.enter(dir)
	if err != nil {
		return err
	}
	defer a.leave()

	if err := a.runner.Run(ctx, project, parallelism); err != nil {
		return err
	}

	base := filepath.Dir(project.File)
	for _, sub := range project.Subprojects {
		err := a.owner.Recur(func() error {
			return a.build(ctx, filepath.Join(base, sub), parallelism)
		})
		if err != nil {
			return zerr.With(zerr.Wrap(err, "subproject build failed"), "subproject", sub)
		}
	}
	return nil
}

// enter loads the manifest in dir, pushes its frame, records its config
// contributions, and announces the project if it has not announced
// since it last became the active project.
func (a *App) enter(dir string) (*domain.Project, error) {
	project, err := a.loader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load project manifest")
	}

	if err := a.owner.Push(project.Name, project.Config, project.File); err != nil {
		return nil, err
	}
	if len(project.Apps) > 0 || len(project.Files) > 0 {
		a.owner.LoadedConfig(project.Apps, project.Files)
	}

	name, ok, err := a.owner.PrintableAppName()
	if err != nil {
		a.leave()
		return nil, err
	}
	if ok {
		a.telemetry.Announce(name)
	}
	return project, nil
}

func (a *App) leave() {
	if _, err := a.owner.Pop(); err != nil {
		a.log.Error(zerr.Wrap(err, "failed to pop project frame"))
	}
}
