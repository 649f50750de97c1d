package winforms

import "testing"

func TestSuspendLayoutDefersPass(t *testing.T) {
	parent := New(WithSize(100, 50))
	child := New(WithDock(DockFill))

	parent.SuspendLayout()
	parent.AddChild(child)
	if got, want := child.Bounds(), NewRect(0, 0, 0, 0); got != want {
		t.Fatalf("child laid out while suspended: %v", got)
	}

	parent.ResumeLayout(true)
	if got, want := child.Bounds(), NewRect(0, 0, 100, 50); got != want {
		t.Errorf("child bounds after resume = %v, want %v", got, want)
	}
}

func TestSuspendLayoutNests(t *testing.T) {
	parent := New(WithSize(100, 50))
	child := New(WithDock(DockFill))

	parent.SuspendLayout()
	parent.SuspendLayout()
	parent.AddChild(child)

	parent.ResumeLayout(true)
	if !parent.LayoutSuspended() {
		t.Fatal("inner resume ended the outer suspension")
	}
	if got := child.Bounds(); got.Width != 0 {
		t.Fatalf("child laid out under outer suspension: %v", got)
	}

	parent.ResumeLayout(true)
	if parent.LayoutSuspended() {
		t.Fatal("still suspended after matching resumes")
	}
	if got, want := child.Bounds(), NewRect(0, 0, 100, 50); got != want {
		t.Errorf("child bounds = %v, want %v", got, want)
	}
}

func TestResumeLayoutWithoutPerform(t *testing.T) {
	parent := New(WithSize(100, 50))
	child := New(WithDock(DockFill))

	parent.SuspendLayout()
	parent.AddChild(child)
	parent.ResumeLayout(false)

	if got := child.Bounds(); got.Width != 0 {
		t.Fatalf("ResumeLayout(false) ran the pending pass: %v", got)
	}

	// The pending pass still runs on the next explicit request.
	parent.PerformLayout()
	if got, want := child.Bounds(), NewRect(0, 0, 100, 50); got != want {
		t.Errorf("child bounds = %v, want %v", got, want)
	}
}

func TestResumeLayoutUnmatchedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	New().ResumeLayout(true)
}

func TestAddChildLaysOutAutoSized(t *testing.T) {
	child := New(
		WithBounds(5, 5, 10, 10),
		WithPreferredSize(40, 12),
		WithAutoSize(),
	)
	parent := New(WithSize(100, 100))

	parent.AddChild(child)
	if got, want := child.Bounds(), NewRect(5, 5, 40, 12); got != want {
		t.Errorf("child bounds = %v, want %v", got, want)
	}
}

func TestRootAutoSizeGrowsToPreferred(t *testing.T) {
	e := New(
		WithBounds(2, 3, 10, 10),
		WithPreferredSize(30, 20),
		WithAutoSize(),
	)

	e.PerformLayout()
	if got, want := e.Bounds(), NewRect(2, 3, 30, 20); got != want {
		t.Errorf("bounds = %v, want %v", got, want)
	}
}

func TestRootAutoSizeGrowOnlyNeverShrinks(t *testing.T) {
	e := New(
		WithBounds(0, 0, 50, 50),
		WithPreferredSize(30, 20),
		WithAutoSize(),
	)

	e.PerformLayout()
	if got, want := e.Size(), NewSize(50, 50); got != want {
		t.Errorf("Size() = %v, want %v", got, want)
	}
}

func TestRootAutoSizeGrowAndShrink(t *testing.T) {
	e := New(
		WithBounds(0, 0, 50, 50),
		WithPreferredSize(30, 20),
		WithAutoSizeMode(GrowAndShrink),
	)

	e.PerformLayout()
	if got, want := e.Size(), NewSize(30, 20); got != want {
		t.Errorf("Size() = %v, want %v", got, want)
	}
}

// A resize must flow through the whole tree: the engine stretches the
// child, and the child's own pass refits its grandchildren.
func TestResizeCascadesToGrandchildren(t *testing.T) {
	grandchild := New(WithDock(DockFill))
	child := New(
		WithBounds(0, 0, 60, 10),
		WithAnchors(AnchorLeft|AnchorTop|AnchorRight),
		WithChildren(grandchild),
	)
	parent := New(WithSize(60, 40), WithChildren(child))
	parent.PerformLayout()

	parent.SetBounds(NewRect(0, 0, 80, 40), BoundsWidth)

	if got, want := child.Bounds(), NewRect(0, 0, 80, 10); got != want {
		t.Fatalf("child bounds = %v, want %v", got, want)
	}
	if got, want := grandchild.Bounds(), NewRect(0, 0, 80, 10); got != want {
		t.Errorf("grandchild bounds = %v, want %v", got, want)
	}
}

func TestOnLayoutCallback(t *testing.T) {
	parent := New(WithSize(100, 50))
	calls := 0
	parent.SetOnLayout(func() { calls++ })

	parent.PerformLayout()
	if calls != 1 {
		t.Errorf("onLayout ran %d times, want 1", calls)
	}

	parent.SuspendLayout()
	parent.PerformLayout()
	if calls != 1 {
		t.Errorf("onLayout ran while suspended")
	}
	parent.ResumeLayout(true)
	if calls != 2 {
		t.Errorf("onLayout ran %d times after resume, want 2", calls)
	}
}
