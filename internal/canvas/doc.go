// Package canvas provides rbox paint surfaces: a character cell Grid for
// terminals and golden tests, and a Raster that writes PNG images.
package canvas
