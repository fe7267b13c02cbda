// Package geom holds the floating-point geometry shared by the box layout
// engine and its canvases: offsets, rectangles and edge insets.
//
// Types are re-exported through the root rbox package for public consumption.
package geom
