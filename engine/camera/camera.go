// Package camera implements the viewport: its origin, dimensions, scale,
// projection, and the visibility query used to decide which coarse chunks
// are in view.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/quevivasbien/isometric-world/engine/projection"
)

// Camera is the viewport: OX, OY is the top-left of the viewport in
// projected pixel space; Width/Height are in pixels; Scale is pixels per
// voxel edge.
type Camera struct {
	OX, OY        int32
	Width, Height int
	Scale         float32
	Proj          projection.Matrix
}

// New builds a camera at the given origin with the given viewport
// dimensions and scale.
func New(ox, oy int32, width, height int, scale float32) *Camera {
	return &Camera{
		OX: ox, OY: oy,
		Width: width, Height: height,
		Scale: scale,
		Proj:  projection.New(scale),
	}
}

// InView produces the set of integer origins (X, Y), multiples of step,
// whose step x step cell intersects the camera's world-space bounding box.
func (c *Camera) InView(step int32) [][2]int32 {
	inv := c.Proj.Inverse()

	x0f, y0f := float32(c.OX), float32(c.OY)
	x1f, y1f := x0f+float32(c.Width), y0f+float32(c.Height)

	corners := [4]mgl32.Vec2{
		{x0f, y0f},
		{x1f, y0f},
		{x0f, y1f},
		{x1f, y1f},
	}

	var worldMinX, worldMaxX, worldMinY, worldMaxY float32
	for i, corner := range corners {
		w := inv.Proj(corner)
		if i == 0 || w.X() < worldMinX {
			worldMinX = w.X()
		}
		if i == 0 || w.X() > worldMaxX {
			worldMaxX = w.X()
		}
		if i == 0 || w.Y() < worldMinY {
			worldMinY = w.Y()
		}
		if i == 0 || w.Y() > worldMaxY {
			worldMaxY = w.Y()
		}
	}

	xMin := roundDown(worldMinX, step) - step
	xMax := roundUp(worldMaxX, step) + step
	yMin := roundDown(worldMinY, step) - step
	yMax := roundUp(worldMaxY, step) + step

	var out [][2]int32
	for x := xMin; x < xMax; x += step {
		for y := yMin; y < yMax; y += step {
			out = append(out, [2]int32{x, y})
		}
	}
	return out
}

func roundDown(v float32, step int32) int32 {
	return int32(math.Floor(float64(v)/float64(step))) * step
}

func roundUp(v float32, step int32) int32 {
	return int32(math.Ceil(float64(v)/float64(step))) * step
}

// ChunksInView intersects InView(step) with the keys of chunks and
// returns the matching values, in visibility-query order.
func ChunksInView[T any](c *Camera, chunks map[[2]int32]T, step int32) []T {
	var out []T
	for _, origin := range c.InView(step) {
		if v, ok := chunks[origin]; ok {
			out = append(out, v)
		}
	}
	return out
}
