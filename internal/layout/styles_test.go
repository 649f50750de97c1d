package layout

import "testing"

func TestAnchorStyles_String(t *testing.T) {
	tests := map[string]struct {
		anchors AnchorStyles
		want    string
	}{
		"none":     {AnchorNone, "none"},
		"top left": {AnchorTopLeft, "left+top"},
		"right":    {AnchorRight, "right"},
		"all":      {AnchorLeft | AnchorTop | AnchorRight | AnchorBottom, "left+top+right+bottom"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.anchors.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDockStyle_String(t *testing.T) {
	want := map[DockStyle]string{
		DockNone:   "none",
		DockTop:    "top",
		DockBottom: "bottom",
		DockLeft:   "left",
		DockRight:  "right",
		DockFill:   "fill",
	}
	for d, s := range want {
		if got := d.String(); got != s {
			t.Errorf("DockStyle(%d).String() = %q, want %q", d, got, s)
		}
	}
}

func TestDockStyle_StringPanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown DockStyle")
		}
	}()
	_ = DockStyle(99).String()
}

func TestAutoSizeMode_String(t *testing.T) {
	if GrowOnly.String() != "grow-only" {
		t.Errorf("GrowOnly.String() = %q", GrowOnly.String())
	}
	if GrowAndShrink.String() != "grow-and-shrink" {
		t.Errorf("GrowAndShrink.String() = %q", GrowAndShrink.String())
	}
}

// GrowthDirection may never hold both horizontal or both vertical
// directions, for any anchor combination.
func TestGrowthDirection_MutuallyExclusive(t *testing.T) {
	for anchors := AnchorStyles(0); anchors < 32; anchors++ {
		dir := growthDirection(anchors)
		if dir.Has(GrowLeft) && dir.Has(GrowRight) {
			t.Errorf("anchors=%s: direction holds both Left and Right", anchors)
		}
		if dir.Has(GrowUpward) && dir.Has(GrowDownward) {
			t.Errorf("anchors=%s: direction holds both Upward and Downward", anchors)
		}
	}
}
