// Package runner executes a project's build steps with bounded
// parallelism and fingerprint-based skipping of unchanged work.
package runner

import (
	"context"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/nest/internal/core/domain"
	"go.trai.ch/nest/internal/core/ports"
	"go.trai.ch/nest/internal/engine/stack"
	"go.trai.ch/zerr"
)

// DefaultParallelism bounds concurrent step execution when the caller
// does not ask for a specific limit.
const DefaultParallelism = 4

// fingerprintKey namespaces memoized step fingerprints in the owner's
// general cache so they cannot collide with other cache users.
type fingerprintKey struct {
	project domain.InternedString
	step    domain.InternedString
}

// Runner executes the steps of the active project.
type Runner struct {
	owner     *stack.Owner
	executor  ports.Executor
	hasher    ports.Hasher
	store     ports.BuildInfoStore
	telemetry ports.Telemetry
	log       ports.Logger
}

// NewRunner creates a Runner wired to the given collaborators.
func NewRunner(
	owner *stack.Owner,
	executor ports.Executor,
	hasher ports.Hasher,
	store ports.BuildInfoStore,
	telemetry ports.Telemetry,
	log ports.Logger,
) *Runner {
	return &Runner{
		owner:     owner,
		executor:  executor,
		hasher:    hasher,
		store:     store,
		telemetry: telemetry,
		log:       log,
	}
}

// Run executes all steps of the project with at most parallelism steps
// in flight. A parallelism of zero or less falls back to
// DefaultParallelism. The first step failure cancels the remaining
// steps.
//
// AtRoot steps are held back and run one at a time after the parallel
// batch: each one moves the process working directory through the
// owner's root scope, so two in flight would race on the recursing
// ancestor and the chdir.
func (r *Runner) Run(ctx context.Context, project *domain.Project, parallelism int) error {
	if parallelism <= 0 {
		parallelism = DefaultParallelism
	}

	configMtime, err := r.owner.ConfigMtime()
	if err != nil {
		return zerr.Wrap(err, "failed to determine config staleness")
	}
	env, err := r.configEnv()
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	var atRoot []domain.Step
	for _, step := range project.Steps {
		if step.AtRoot {
			atRoot = append(atRoot, step)
			continue
		}
		g.Go(func() error {
			return r.runStep(gctx, project, step, configMtime, env)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, step := range atRoot {
		if err := r.runStep(ctx, project, step, configMtime, env); err != nil {
			return err
		}
	}
	return nil
}

// RunStep executes a single named step of the project.
func (r *Runner) RunStep(ctx context.Context, project *domain.Project, name string) error {
	step, ok := project.Step(name)
	if !ok {
		return zerr.With(zerr.With(domain.ErrUnknownStep, "project", project.Name), "step", name)
	}

	configMtime, err := r.owner.ConfigMtime()
	if err != nil {
		return zerr.Wrap(err, "failed to determine config staleness")
	}
	env, err := r.configEnv()
	if err != nil {
		return err
	}
	return r.runStep(ctx, project, step, configMtime, env)
}

// configEnv renders the active frame's configuration as KEY=VALUE
// entries for step commands. An empty stack yields no entries.
func (r *Runner) configEnv() ([]string, error) {
	view, err := r.owner.Peek()
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, nil
	}
	return view.Config.Environ(), nil
}

// runStep checks the build-info store for an up-to-date record of the
// step and executes it only when stale. Successful executions are
// recorded back into the store.
func (r *Runner) runStep(ctx context.Context, project *domain.Project, step domain.Step, configMtime int64, env []string) error {
	ctx, vertex := r.telemetry.Record(ctx, project.Name+":"+step.Name)

	fingerprint, err := r.fingerprint(project, step)
	if err != nil {
		vertex.Complete(err)
		return err
	}

	key := buildInfoKey(project.Name, step.Name)
	stored, err := r.store.Get(key)
	if err != nil {
		vertex.Complete(err)
		return zerr.Wrap(err, "failed to read build info")
	}
	if stored != nil && stored.Fingerprint == fingerprint && stored.ConfigMtime == configMtime {
		r.log.Info("step " + key + " is up to date")
		vertex.Cached()
		vertex.Complete(nil)
		return nil
	}

	if err := r.execute(ctx, project, step, env, vertex); err != nil {
		vertex.Complete(err)
		return err
	}

	info := domain.StepInfo{
		Project:     project.Name,
		Step:        step.Name,
		Fingerprint: fingerprint,
		ConfigMtime: configMtime,
		CompletedAt: time.Now(),
	}
	if err := r.store.Put(key, info); err != nil {
		vertex.Complete(err)
		return zerr.Wrap(err, "failed to record build info")
	}

	vertex.Complete(nil)
	return nil
}

// execute runs the step's command, streaming its output into the
// step's telemetry vertex. Steps marked AtRoot run inside the owner's
// root scope so the command executes in the nearest recursing
// ancestor's directory.
func (r *Runner) execute(ctx context.Context, project *domain.Project, step domain.Step, env []string, vertex ports.Vertex) error {
	if step.AtRoot {
		return r.owner.Root(func() error {
			return r.executor.Execute(ctx, &step, ".", env, vertex.Stdout(), vertex.Stderr())
		})
	}
	return r.executor.Execute(ctx, &step, filepath.Dir(project.File), env, vertex.Stdout(), vertex.Stderr())
}

// fingerprint computes the content hash of the step's inputs, memoized
// in the owner's general cache for the lifetime of the owner. Steps
// without inputs always hash to the same empty fingerprint.
func (r *Runner) fingerprint(project *domain.Project, step domain.Step) (string, error) {
	key := fingerprintKey{
		project: domain.NewInternedString(project.Name),
		step:    domain.NewInternedString(step.Name),
	}

	if val, ok, err := r.owner.ReadCache(key); err != nil {
		return "", err
	} else if ok {
		return val.(string), nil
	}

	fingerprint, err := r.hasher.Fingerprint(step.Inputs)
	if err != nil {
		return "", zerr.Wrap(err, "failed to fingerprint step inputs")
	}
	r.owner.WriteCache(key, fingerprint)
	return fingerprint, nil
}

// buildInfoKey is the build-info store key for a project step.
func buildInfoKey(project, step string) string {
	return project + "/" + step
}
