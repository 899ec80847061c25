// Package voxel implements the voxel lattice point, its painter order, and
// the six-triangle slice decomposition used to render it in axonometric
// projection with shared-edge deduplication.
package voxel

import "github.com/quevivasbien/isometric-world/engine/raster"

// Voxel is an integer lattice point with a color. X, Y are world
// coordinates; Z is elevation.
type Voxel struct {
	X, Y, Z int32
	Color   raster.Color
}

// DrawAfter reports whether v is drawn after other under the strict total
// painter order (z, y, x) lexicographic, greater wins.
func (v Voxel) DrawAfter(other Voxel) bool {
	if v.Z != other.Z {
		return v.Z > other.Z
	}
	if v.Y != other.Y {
		return v.Y > other.Y
	}
	return v.X > other.X
}
