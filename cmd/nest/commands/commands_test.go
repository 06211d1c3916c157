package commands_test

import (
	"context"
	"io"
	"testing"

	"go.trai.ch/nest/cmd/nest/commands"
	"go.trai.ch/nest/internal/app"
	"go.trai.ch/nest/internal/core/domain"
	"go.trai.ch/nest/internal/core/ports/mocks"
	"go.trai.ch/nest/internal/engine/runner"
	"go.trai.ch/nest/internal/engine/stack"
	"go.uber.org/mock/gomock"
)

type cliFixture struct {
	loader   *mocks.MockProjectLoader
	timer    *mocks.MockModTimer
	executor *mocks.MockExecutor
	hasher   *mocks.MockHasher
	store    *mocks.MockBuildInfoStore
	tel      *mocks.MockTelemetry
	vertex   *mocks.MockVertex
	cli      *commands.CLI
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &cliFixture{
		loader:   mocks.NewMockProjectLoader(ctrl),
		timer:    mocks.NewMockModTimer(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
		store:    mocks.NewMockBuildInfoStore(ctrl),
		tel:      mocks.NewMockTelemetry(ctrl),
		vertex:   mocks.NewMockVertex(ctrl),
	}
	f.vertex.EXPECT().Stdout().Return(io.Discard).AnyTimes()
	f.vertex.EXPECT().Stderr().Return(io.Discard).AnyTimes()

	owner := stack.NewOwner(f.timer, mocks.NewMockWorkdir(ctrl))
	t.Cleanup(owner.Close)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	run := runner.NewRunner(owner, f.executor, f.hasher, f.store, f.tel, log)
	f.cli = commands.New(app.New(f.loader, owner, run, f.store, f.tel, log))
	return f
}

func TestBuild_Success(t *testing.T) {
	f := newCLIFixture(t)

	f.loader.EXPECT().Load(".").Return(&domain.Project{
		Name:  "umbrella",
		File:  "/src/nest.yaml",
		Steps: []domain.Step{{Name: "build", Cmd: []string{"make"}}},
	}, nil)
	f.timer.EXPECT().MaxMtime(gomock.Any()).Return(int64(1), nil)
	f.hasher.EXPECT().Fingerprint(gomock.Any()).Return("fp", nil)
	f.store.EXPECT().Get("umbrella/build").Return(nil, nil)
	f.tel.EXPECT().Record(gomock.Any(), "umbrella:build").Return(context.Background(), f.vertex)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), "/src", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.store.EXPECT().Put("umbrella/build", gomock.Any()).Return(nil)
	f.vertex.EXPECT().Complete(nil)

	f.cli.SetArgs([]string{"build"})
	if err := f.cli.Execute(context.Background()); err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
}

func TestRun_NoStep(t *testing.T) {
	f := newCLIFixture(t)

	// No step argument just displays help.
	f.cli.SetArgs([]string{"run"})
	if err := f.cli.Execute(context.Background()); err != nil {
		t.Errorf("expected no error for missing step, got: %v", err)
	}
}

func TestBuild_BadOverride(t *testing.T) {
	f := newCLIFixture(t)

	f.cli.SetArgs([]string{"build", "--set", "not-a-pair"})
	if err := f.cli.Execute(context.Background()); err == nil {
		t.Error("expected an error for a malformed override")
	}
}

func TestClean(t *testing.T) {
	f := newCLIFixture(t)

	f.store.EXPECT().Clear().Return(nil)

	f.cli.SetArgs([]string{"clean"})
	if err := f.cli.Execute(context.Background()); err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
}

func TestRoot_Help(t *testing.T) {
	f := newCLIFixture(t)

	f.cli.SetArgs([]string{"--help"})
	if err := f.cli.Execute(context.Background()); err != nil {
		t.Errorf("expected no error for help, got: %v", err)
	}
}
