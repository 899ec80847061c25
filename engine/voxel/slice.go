package voxel

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/quevivasbien/isometric-world/engine/projection"
	"github.com/quevivasbien/isometric-world/engine/raster"
)

// SliceKey deduplicates slices that occupy the same 2D cell with the same
// chirality (right-pointing vs left-pointing triangle).
type SliceKey struct {
	X, Y  int32
	Right bool
}

// Slice is one of six right triangles tiling a voxel's axonometric footprint.
type Slice struct {
	PosX, PosY int32
	Index      int
	Parent     Voxel
}

// NewSlice builds the slice for the given index (0..6, clockwise from
// top-left) of parent, and the key it should be stored under.
func NewSlice(index int, parent Voxel) (SliceKey, Slice) {
	if index < 0 || index >= 6 {
		panic("voxel: slice index out of range")
	}

	var x, y, z int32
	switch index {
	case 0, 5:
		x, y, z = parent.X, parent.Y, parent.Z
	case 1:
		x, y, z = parent.X, parent.Y-1, parent.Z-1
	case 4:
		x, y, z = parent.X-1, parent.Y, parent.Z-1
	default: // 2, 3
		x, y, z = parent.X, parent.Y, parent.Z-1
	}

	posX, posY := x-z, y-z
	key := SliceKey{X: posX, Y: posY, Right: index%2 == 0}
	return key, Slice{PosX: posX, PosY: posY, Index: index, Parent: parent}
}

// PointsRight reports the slice's chirality.
func (s Slice) PointsRight() bool {
	return s.Index%2 == 0
}

// Color returns the slice's shaded color: top faces (0, 5) use the
// voxel's own color, right faces (1, 2) are scaled by 0.8, left faces
// (3, 4) by 0.9.
func (s Slice) Color() raster.Color {
	switch s.Index {
	case 0, 5:
		return s.Parent.Color
	case 1, 2:
		return s.Parent.Color.Scaled(0.8)
	default: // 3, 4
		return s.Parent.Color.Scaled(0.9)
	}
}

// Draw projects the slice's three corners through proj, subtracts origin,
// and fills the resulting triangle into g.
func (s Slice) Draw(proj projection.Matrix, origin mgl32.Vec2, g *raster.Grid) {
	var corners [3]mgl32.Vec2
	if s.PointsRight() {
		corners = [3]mgl32.Vec2{
			{float32(s.PosX), float32(s.PosY)},
			{float32(s.PosX + 1), float32(s.PosY)},
			{float32(s.PosX + 1), float32(s.PosY + 1)},
		}
	} else {
		corners = [3]mgl32.Vec2{
			{float32(s.PosX), float32(s.PosY)},
			{float32(s.PosX + 1), float32(s.PosY + 1)},
			{float32(s.PosX), float32(s.PosY + 1)},
		}
	}

	var vertices [3]mgl32.Vec2
	for i, c := range corners {
		p := proj.Proj(c)
		vertices[i] = mgl32.Vec2{p.X() - origin.X(), p.Y() - origin.Y()}
	}

	raster.FillTriangle(g, vertices, s.Color())
}

// ApplyTo inserts (key, slice) into slices under the deduplication rule:
// absent keys are inserted; on conflict, the slice whose parent's painter
// order is greater wins.
func ApplyTo(slices map[SliceKey]Slice, key SliceKey, s Slice) {
	existing, ok := slices[key]
	if !ok || s.Parent.DrawAfter(existing.Parent) {
		slices[key] = s
	}
}
