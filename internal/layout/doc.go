// Package layout implements a constraint-based anchor/dock layout engine
// for a retained-mode element tree.
//
// It supports edge anchoring (elastic attachment to container edges),
// docking (sequential edge-filling in z-order), and auto-sizing
// (grow/shrink to preferred content size). Types are re-exported through
// the root winforms package for public consumption.
//
// The main entry points are [Apply], which computes and commits bounds for
// a container's children, and [Measure], which answers what size the
// container would want to be without mutating anything.
package layout
