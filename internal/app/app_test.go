package app_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"go.trai.ch/nest/internal/app"
	"go.trai.ch/nest/internal/core/domain"
	"go.trai.ch/nest/internal/core/ports/mocks"
	"go.trai.ch/nest/internal/engine/runner"
	"go.trai.ch/nest/internal/engine/stack"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	owner    *stack.Owner
	timer    *mocks.MockModTimer
	wd       *mocks.MockWorkdir
	loader   *mocks.MockProjectLoader
	executor *mocks.MockExecutor
	hasher   *mocks.MockHasher
	store    *mocks.MockBuildInfoStore
	tel      *mocks.MockTelemetry
	vertex   *mocks.MockVertex
	log      *mocks.MockLogger
	app      *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		timer:    mocks.NewMockModTimer(ctrl),
		wd:       mocks.NewMockWorkdir(ctrl),
		loader:   mocks.NewMockProjectLoader(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
		store:    mocks.NewMockBuildInfoStore(ctrl),
		tel:      mocks.NewMockTelemetry(ctrl),
		vertex:   mocks.NewMockVertex(ctrl),
		log:      mocks.NewMockLogger(ctrl),
	}
	f.owner = stack.NewOwner(f.timer, f.wd)
	t.Cleanup(f.owner.Close)

	f.vertex.EXPECT().Stdout().Return(io.Discard).AnyTimes()
	f.vertex.EXPECT().Stderr().Return(io.Discard).AnyTimes()

	run := runner.NewRunner(f.owner, f.executor, f.hasher, f.store, f.tel, f.log)
	f.app = app.New(f.loader, f.owner, run, f.store, f.tel, f.log)
	return f
}

// expectStep wires the mocks for one cache-miss step execution.
func (f *fixture) expectStep(project, step, dir string) {
	f.hasher.EXPECT().Fingerprint(gomock.Any()).Return("fp-"+step, nil)
	f.store.EXPECT().Get(project + "/" + step).Return(nil, nil)
	f.tel.EXPECT().Record(gomock.Any(), project+":"+step).Return(context.Background(), f.vertex)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), dir, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.store.EXPECT().Put(project+"/"+step, gomock.Any()).Return(nil)
	f.vertex.EXPECT().Complete(nil)
}

func TestApp_Build(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(&domain.Project{
		Name:  "umbrella",
		File:  "/src/nest.yaml",
		Steps: []domain.Step{{Name: "build", Cmd: []string{"make"}}},
	}, nil)
	f.timer.EXPECT().MaxMtime([]string{"/src/nest.yaml"}).Return(int64(10), nil)
	f.expectStep("umbrella", "build", "/src")

	if err := f.app.Build(context.Background(), ".", nil, 1); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	depth, err := f.owner.Depth()
	if err != nil {
		t.Fatal(err)
	}
	if depth != 0 {
		t.Errorf("expected empty stack after build, depth=%d", depth)
	}
}

func TestApp_Build_RecursesIntoSubprojects(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(&domain.Project{
		Name:        "umbrella",
		File:        "/src/nest.yaml",
		Steps:       []domain.Step{{Name: "build", Cmd: []string{"make"}}},
		Subprojects: []string{"child"},
	}, nil)
	f.loader.EXPECT().Load("/src/child").Return(&domain.Project{
		Name:   "child",
		File:   "/src/child/nest.yaml",
		Config: domain.Config{{Key: "app", Value: "childapp"}},
		Steps:  []domain.Step{{Name: "build", Cmd: []string{"make"}}},
	}, nil)

	f.timer.EXPECT().MaxMtime([]string{"/src/nest.yaml"}).Return(int64(10), nil)
	f.timer.EXPECT().MaxMtime([]string{"/src/child/nest.yaml"}).Return(int64(20), nil)

	// The root project never announces itself; the subproject does.
	f.tel.EXPECT().Announce("childapp")

	f.expectStep("umbrella", "build", "/src")
	f.expectStep("child", "build", "/src/child")

	if err := f.app.Build(context.Background(), ".", nil, 1); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	depth, err := f.owner.Depth()
	if err != nil {
		t.Fatal(err)
	}
	if depth != 0 {
		t.Errorf("expected empty stack after build, depth=%d", depth)
	}
}

func TestApp_Build_DuplicateSubprojectFails(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(&domain.Project{
		Name:        "umbrella",
		File:        "/src/nest.yaml",
		Subprojects: []string{"vendored"},
	}, nil)
	f.loader.EXPECT().Load("/src/vendored").Return(&domain.Project{
		Name: "umbrella",
		File: "/src/vendored/nest.yaml",
	}, nil)
	f.timer.EXPECT().MaxMtime(gomock.Any()).Return(int64(10), nil)

	err := f.app.Build(context.Background(), ".", nil, 1)
	if !errors.Is(err, domain.ErrDuplicateProject) {
		t.Fatalf("expected ErrDuplicateProject, got %v", err)
	}

	depth, derr := f.owner.Depth()
	if derr != nil {
		t.Fatal(derr)
	}
	if depth != 0 {
		t.Errorf("expected empty stack after failed build, depth=%d", depth)
	}
}

func TestApp_Build_LoadFailure(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(nil, errors.New("no manifest"))

	if err := f.app.Build(context.Background(), ".", nil, 1); err == nil {
		t.Fatal("expected build to fail")
	}
}

func TestApp_BuildStep_Unknown(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(&domain.Project{
		Name: "umbrella",
		File: "/src/nest.yaml",
	}, nil)

	err := f.app.BuildStep(context.Background(), ".", "missing", nil)
	if !errors.Is(err, domain.ErrUnknownStep) {
		t.Fatalf("expected ErrUnknownStep, got %v", err)
	}
}

func TestApp_Clean(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().Clear().Return(nil)
	f.log.EXPECT().Info(gomock.Any())

	if err := f.app.Clean(); err != nil {
		t.Fatalf("clean failed: %v", err)
	}
}
