package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRect_Accessors(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %d, want 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, want 60", r.Bottom())
	}
	if got := r.Size(); got != (Size{Width: 30, Height: 40}) {
		t.Errorf("Size() = %+v, want {30 40}", got)
	}
}

func TestRect_IsEmpty(t *testing.T) {
	tests := map[string]struct {
		rect Rect
		want bool
	}{
		"positive area":   {NewRect(0, 0, 10, 10), false},
		"zero width":      {NewRect(5, 5, 0, 10), true},
		"zero height":     {NewRect(5, 5, 10, 0), true},
		"negative width":  {NewRect(0, 0, -3, 10), true},
		"negative height": {NewRect(0, 0, 10, -3), true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_ContainsRect(t *testing.T) {
	outer := NewRect(0, 0, 100, 100)

	tests := map[string]struct {
		inner Rect
		want  bool
	}{
		"fully inside":     {NewRect(10, 10, 20, 20), true},
		"identical":        {NewRect(0, 0, 100, 100), true},
		"overhangs right":  {NewRect(90, 10, 20, 20), false},
		"overhangs bottom": {NewRect(10, 90, 20, 20), false},
		"outside":          {NewRect(200, 200, 10, 10), false},
		"empty inner":      {NewRect(50, 50, 0, 0), true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := outer.ContainsRect(tt.inner); got != tt.want {
				t.Errorf("ContainsRect(%+v) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}
}

func TestRect_InsetOutset(t *testing.T) {
	r := NewRect(10, 10, 100, 80)
	edges := EdgeTRBL(1, 2, 3, 4)

	inset := r.Inset(edges)
	want := NewRect(14, 11, 94, 76)
	if diff := cmp.Diff(want, inset); diff != "" {
		t.Errorf("Inset mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(r, inset.Outset(edges)); diff != "" {
		t.Errorf("Outset should invert Inset (-want +got):\n%s", diff)
	}
}

func TestRect_UnionIntersect(t *testing.T) {
	a := NewRect(0, 0, 50, 50)
	b := NewRect(25, 25, 50, 50)

	if diff := cmp.Diff(NewRect(0, 0, 75, 75), a.Union(b)); diff != "" {
		t.Errorf("Union mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(NewRect(25, 25, 25, 25), a.Intersect(b)); diff != "" {
		t.Errorf("Intersect mismatch (-want +got):\n%s", diff)
	}

	// Union with an empty rect returns the other operand.
	if got := a.Union(Rect{}); got != a {
		t.Errorf("Union with empty = %+v, want %+v", got, a)
	}

	// Disjoint rects intersect to empty.
	if got := a.Intersect(NewRect(100, 100, 10, 10)); !got.IsEmpty() {
		t.Errorf("disjoint Intersect = %+v, want empty", got)
	}
}

func TestSize_UnionAddClamped(t *testing.T) {
	a := Size{Width: 10, Height: 40}
	b := Size{Width: 30, Height: 20}

	if got := a.Union(b); got != (Size{Width: 30, Height: 40}) {
		t.Errorf("Union = %+v, want {30 40}", got)
	}
	if got := a.Add(b); got != (Size{Width: 40, Height: 60}) {
		t.Errorf("Add = %+v, want {40 60}", got)
	}
	if got := (Size{Width: -5, Height: 7}).Clamped(); got != (Size{Width: 0, Height: 7}) {
		t.Errorf("Clamped = %+v, want {0 7}", got)
	}
}

func TestEdges(t *testing.T) {
	e := EdgeTRBL(1, 2, 3, 4)
	if e.Horizontal() != 6 {
		t.Errorf("Horizontal() = %d, want 6", e.Horizontal())
	}
	if e.Vertical() != 4 {
		t.Errorf("Vertical() = %d, want 4", e.Vertical())
	}
	if !EdgeAll(0).IsZero() {
		t.Error("EdgeAll(0).IsZero() = false, want true")
	}
	if EdgeSymmetric(2, 3) != (Edges{Top: 2, Right: 3, Bottom: 2, Left: 3}) {
		t.Errorf("EdgeSymmetric = %+v", EdgeSymmetric(2, 3))
	}
}
