// Package winforms provides a retained-mode element tree laid out by a
// constraint-based anchor/dock engine.
//
// Elements declare layout intent through anchors (elastic attachment to
// container edges), docking (sequential edge-filling in z-order), and
// auto-sizing (grow or shrink to preferred content size). The engine
// computes each child's position and size from that intent, and can
// answer what size a container would want to be without mutating the
// tree.
//
// Build trees with [New] and functional options, then trigger layout
// with [Element.PerformLayout]:
//
//	form := winforms.New(
//		winforms.WithName("form"),
//		winforms.WithSize(300, 200),
//	)
//	form.AddChild(
//		winforms.New(winforms.WithName("toolbar"), winforms.WithDock(winforms.DockTop), winforms.WithSize(0, 24)),
//		winforms.New(winforms.WithName("ok"), winforms.WithBounds(240, 160, 50, 30), winforms.WithAnchors(winforms.AnchorRight|winforms.AnchorBottom)),
//	)
//	form.PerformLayout()
//
// Declarative trees can also be loaded from TOML scene files with
// [LoadScene].
package winforms
