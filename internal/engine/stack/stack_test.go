package stack_test

import (
	"errors"
	"testing"

	"go.trai.ch/nest/internal/core/domain"
	"go.trai.ch/nest/internal/core/ports/mocks"
	"go.trai.ch/nest/internal/engine/stack"
	"go.uber.org/mock/gomock"
)

func newTestOwner(t *testing.T) *stack.Owner {
	t.Helper()
	ctrl := gomock.NewController(t)
	o := stack.NewOwner(mocks.NewMockModTimer(ctrl), mocks.NewMockWorkdir(ctrl))
	t.Cleanup(o.Close)
	return o
}

func TestPushPop_Discipline(t *testing.T) {
	o := newTestOwner(t)

	cfg := domain.Config{{Key: "jobs", Value: 4}}
	if err := o.Push("umbrella", cfg, "/src/nest.yaml"); err != nil {
		t.Fatalf("push failed: %v", err)
	}

	view, err := o.Pop()
	if err != nil {
		t.Fatalf("pop failed: %v", err)
	}
	if view == nil {
		t.Fatal("expected a frame view, got nil")
	}
	if view.Name != "umbrella" || view.File != "/src/nest.yaml" || view.Position != 0 {
		t.Errorf("unexpected view: %+v", view)
	}
	if v, _ := view.Config.Get("jobs"); v != 4 {
		t.Errorf("expected jobs=4, got %v", v)
	}

	view, err = o.Pop()
	if err != nil {
		t.Fatalf("pop on empty stack failed: %v", err)
	}
	if view != nil {
		t.Errorf("expected nil view on empty stack, got %+v", view)
	}
}

func TestPush_Position(t *testing.T) {
	o := newTestOwner(t)

	if err := o.Push("a", nil, "a/nest.yaml"); err != nil {
		t.Fatal(err)
	}
	if err := o.Push("b", nil, "b/nest.yaml"); err != nil {
		t.Fatal(err)
	}
	if err := o.Push("c", nil, "c/nest.yaml"); err != nil {
		t.Fatal(err)
	}

	for want := 2; want >= 0; want-- {
		v, err := o.Pop()
		if err != nil {
			t.Fatal(err)
		}
		if v.Position != want {
			t.Errorf("expected position %d, got %d", want, v.Position)
		}
	}
}

func TestPush_DuplicateName(t *testing.T) {
	o := newTestOwner(t)

	if err := o.Push("web", nil, "/a/nest.yaml"); err != nil {
		t.Fatal(err)
	}
	if err := o.Push("api", nil, "/b/nest.yaml"); err != nil {
		t.Fatal(err)
	}

	err := o.Push("web", nil, "/c/nest.yaml")
	if !errors.Is(err, domain.ErrDuplicateProject) {
		t.Fatalf("expected ErrDuplicateProject, got %v", err)
	}

	// Stack unchanged: head is still api at depth 2.
	v, err := o.Peek()
	if err != nil {
		t.Fatal(err)
	}
	if v.Name != "api" {
		t.Errorf("expected head api after rejected push, got %q", v.Name)
	}
	if n, _ := o.Depth(); n != 2 {
		t.Errorf("expected depth 2 after rejected push, got %d", n)
	}
}

func TestPush_AnonymousFramesDoNotConflict(t *testing.T) {
	o := newTestOwner(t)

	if err := o.Push("", nil, "/a/nest.yaml"); err != nil {
		t.Fatal(err)
	}
	if err := o.Push("", nil, "/b/nest.yaml"); err != nil {
		t.Errorf("anonymous frames should not conflict: %v", err)
	}
}

func TestPostConfig_AppliesToNextPushOnly(t *testing.T) {
	o := newTestOwner(t)

	o.PostConfig(domain.Config{{Key: "a", Value: 1}})

	if err := o.Push("m", domain.Config{{Key: "a", Value: 2}, {Key: "b", Value: 3}}, "m/nest.yaml"); err != nil {
		t.Fatal(err)
	}

	v, err := o.Peek()
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := v.Config.Get("a"); got != 1 {
		t.Errorf("expected override a=1, got %v", got)
	}
	if got, _ := v.Config.Get("b"); got != 3 {
		t.Errorf("expected b=3, got %v", got)
	}

	// No leftover overrides for the following push.
	if err := o.Push("n", domain.Config{{Key: "b", Value: 9}}, "n/nest.yaml"); err != nil {
		t.Fatal(err)
	}
	v, err = o.Peek()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v.Config.Get("a"); ok {
		t.Error("pending overrides leaked into a later push")
	}
}

func TestPush_RejectedPushKeepsPendingOverrides(t *testing.T) {
	o := newTestOwner(t)

	if err := o.Push("web", nil, "/a/nest.yaml"); err != nil {
		t.Fatal(err)
	}
	o.PostConfig(domain.Config{{Key: "a", Value: 1}})

	if err := o.Push("web", nil, "/b/nest.yaml"); !errors.Is(err, domain.ErrDuplicateProject) {
		t.Fatalf("expected ErrDuplicateProject, got %v", err)
	}

	if err := o.Push("child", nil, "/c/nest.yaml"); err != nil {
		t.Fatal(err)
	}
	v, err := o.Peek()
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := v.Config.Get("a"); got != 1 {
		t.Errorf("expected overrides to survive a rejected push, got a=%v", got)
	}
}

func TestPrintableAppName_AnnounceOnce(t *testing.T) {
	o := newTestOwner(t)

	if err := o.Push("root", domain.Config{{Key: "app", Value: "umbrella"}}, "/nest.yaml"); err != nil {
		t.Fatal(err)
	}

	// Root project has io_done preset: nothing to print.
	if _, ok, err := o.PrintableAppName(); err != nil || ok {
		t.Fatalf("expected nothing to print for root, ok=%v err=%v", ok, err)
	}

	if err := o.Push("child", domain.Config{{Key: "app", Value: "webapp"}}, "/child/nest.yaml"); err != nil {
		t.Fatal(err)
	}

	name, ok, err := o.PrintableAppName()
	if err != nil {
		t.Fatal(err)
	}
	if !ok || name != "webapp" {
		t.Errorf("expected webapp announcement, got %q ok=%v", name, ok)
	}

	// Second consecutive call: already announced.
	if _, ok, _ := o.PrintableAppName(); ok {
		t.Error("expected nothing to print on second consecutive call")
	}

	// Popping the child resets the root's announcement state.
	if _, err := o.Pop(); err != nil {
		t.Fatal(err)
	}
	name, ok, err = o.PrintableAppName()
	if err != nil {
		t.Fatal(err)
	}
	if !ok || name != "umbrella" {
		t.Errorf("expected root to re-announce as umbrella, got %q ok=%v", name, ok)
	}
}

func TestPrintableAppName_EmptyStack(t *testing.T) {
	o := newTestOwner(t)
	if _, ok, err := o.PrintableAppName(); err != nil || ok {
		t.Errorf("expected nothing to print on empty stack, ok=%v err=%v", ok, err)
	}
}

func TestClearStack_LeavesCache(t *testing.T) {
	o := newTestOwner(t)

	if err := o.Push("a", nil, "a/nest.yaml"); err != nil {
		t.Fatal(err)
	}
	o.PostConfig(domain.Config{{Key: "x", Value: 1}})
	o.WriteCache("k", "v")

	o.ClearStack()

	if n, _ := o.Depth(); n != 0 {
		t.Errorf("expected empty stack, depth=%d", n)
	}
	// Pending overrides were cleared too.
	if err := o.Push("b", nil, "b/nest.yaml"); err != nil {
		t.Fatal(err)
	}
	v, _ := o.Peek()
	if _, ok := v.Config.Get("x"); ok {
		t.Error("pending overrides survived ClearStack")
	}
	// The general cache did not.
	val, ok, err := o.ReadCache("k")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || val != "v" {
		t.Errorf("expected cache to survive ClearStack, got %v ok=%v", val, ok)
	}
}
