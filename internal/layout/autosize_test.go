package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGrowthBounds(t *testing.T) {
	tests := map[string]struct {
		bounds  Rect
		anchors AnchorStyles
		newSize Size
		want    Rect
	}{
		"default grows rightward and downward": {
			bounds:  NewRect(10, 10, 50, 20),
			anchors: AnchorTopLeft,
			newSize: Size{Width: 70, Height: 30},
			want:    NewRect(10, 10, 70, 30),
		},
		"right-only grows leftward": {
			bounds:  NewRect(190, 10, 100, 30),
			anchors: AnchorRight,
			newSize: Size{Width: 120, Height: 30},
			want:    NewRect(170, 10, 120, 30),
		},
		"bottom-only grows upward": {
			bounds:  NewRect(10, 150, 50, 20),
			anchors: AnchorBottom | AnchorLeft,
			newSize: Size{Width: 50, Height: 35},
			want:    NewRect(10, 135, 50, 35),
		},
		"right and bottom grow toward top-left": {
			bounds:  NewRect(100, 100, 40, 20),
			anchors: AnchorRight | AnchorBottom,
			newSize: Size{Width: 60, Height: 30},
			want:    NewRect(80, 90, 60, 30),
		},
		"left and right pin both edges": {
			bounds:  NewRect(10, 10, 50, 20),
			anchors: AnchorLeft | AnchorRight | AnchorTop,
			newSize: Size{Width: 70, Height: 25},
			want:    NewRect(10, 10, 70, 25),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := growthBounds(tt.bounds, tt.anchors, tt.newSize)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("growthBounds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// For GrowOnly semantics the grown rectangle must always contain the old
// one, whatever the anchor configuration.
func TestGrowthBounds_Containment(t *testing.T) {
	old := NewRect(40, 30, 50, 20)
	for anchors := AnchorStyles(0); anchors < 32; anchors++ {
		grown := old.Size().Union(Size{Width: 80, Height: 45})
		got := growthBounds(old, anchors, grown)
		if !got.ContainsRect(old) {
			t.Errorf("anchors=%s: %+v does not contain %+v", anchors, got, old)
		}
	}
}

func TestResolveAutoSized_GrowAndShrink(t *testing.T) {
	container := newTestElement(NewRect(0, 0, 300, 200))
	el := newTestElement(NewRect(190, 10, 100, 30))
	el.anchors = AnchorRight
	el.autoSize = true
	el.mode = GrowAndShrink
	el.preferred = fixedPreferred(120, 30)
	container.add(el)

	ov := newOverlay()
	resolveAutoSized(container, ov)

	if diff := cmp.Diff(NewRect(170, 10, 120, 30), ov.get(el)); diff != "" {
		t.Errorf("staged bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveAutoSized_GrowAndShrinkShrinks(t *testing.T) {
	container := newTestElement(NewRect(0, 0, 300, 200))
	el := newTestElement(NewRect(10, 10, 100, 60))
	el.autoSize = true
	el.mode = GrowAndShrink
	el.preferred = fixedPreferred(40, 25)
	container.add(el)

	ov := newOverlay()
	resolveAutoSized(container, ov)

	if diff := cmp.Diff(NewRect(10, 10, 40, 25), ov.get(el)); diff != "" {
		t.Errorf("staged bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveAutoSized_GrowOnly(t *testing.T) {
	tests := map[string]struct {
		current   Rect
		preferred Size
		want      Rect
	}{
		"grows when preferred exceeds current": {
			current:   NewRect(10, 10, 50, 20),
			preferred: Size{Width: 80, Height: 15},
			want:      NewRect(10, 10, 80, 20), // union: height keeps current
		},
		"never shrinks": {
			current:   NewRect(10, 10, 50, 20),
			preferred: Size{Width: 30, Height: 15},
			want:      NewRect(10, 10, 50, 20),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			container := newTestElement(NewRect(0, 0, 300, 200))
			el := newTestElement(tt.current)
			el.autoSize = true
			el.mode = GrowOnly
			el.preferred = fixedPreferred(tt.preferred.Width, tt.preferred.Height)
			container.add(el)

			ov := newOverlay()
			resolveAutoSized(container, ov)

			if diff := cmp.Diff(tt.want, ov.get(el)); diff != "" {
				t.Errorf("staged bounds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Axes pinned by opposing anchors must not be allowed to grow: the
// preferred-size query is constrained to the current extent there.
func TestResolveAutoSized_PinnedAxisConstraint(t *testing.T) {
	container := newTestElement(NewRect(0, 0, 300, 200))
	el := newTestElement(NewRect(10, 10, 120, 30))
	el.anchors = AnchorLeft | AnchorRight | AnchorTop
	el.autoSize = true
	el.mode = GrowOnly

	var seen Size
	el.preferred = func(proposed Size) Size {
		seen = proposed
		return Size{Width: 120, Height: 50}
	}
	container.add(el)

	resolveAutoSized(container, newOverlay())

	if seen.Width != 120 {
		t.Errorf("width constraint = %d, want pinned to 120", seen.Width)
	}
	if seen.Height != Unbounded {
		t.Errorf("height constraint = %d, want Unbounded", seen.Height)
	}
}

// The auto-size resolver overrides whatever the anchor resolver staged.
func TestResolveAutoSized_OverridesAnchorStaging(t *testing.T) {
	container := newTestElement(NewRect(0, 0, 300, 200))
	el := newTestElement(NewRect(10, 10, 50, 20))
	el.autoSize = true
	el.mode = GrowOnly
	el.preferred = fixedPreferred(90, 40)
	container.add(el)

	ov := newOverlay()
	resolveAnchored(container, ov)
	resolveAutoSized(container, ov)

	if diff := cmp.Diff(NewRect(10, 10, 90, 40), ov.get(el)); diff != "" {
		t.Errorf("staged bounds mismatch (-want +got):\n%s", diff)
	}
}
