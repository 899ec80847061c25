package raster

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a 2D point in projected pixel space.
type Vertex = mgl32.Vec2

// FillTriangle rasterizes a filled triangle into g using fill, via a
// scanline flat-top/flat-bottom decomposition. It does no clipping beyond
// the per-pixel bound check in Grid.SetPixel; callers are responsible for
// not handing it geometry far outside the grid.
func FillTriangle(g *Grid, vertices [3]Vertex, fill Color) {
	v := vertices
	sort.SliceStable(v[:], func(i, j int) bool {
		return v[i].Y() < v[j].Y()
	})

	switch {
	case v[1].Y() == v[2].Y():
		a, b := orderByX(v[1], v[2])
		fillFlatBottom(g, v[0], a, b, fill)
	case v[0].Y() == v[1].Y():
		a, b := orderByX(v[0], v[1])
		fillFlatTop(g, a, b, v[2], fill)
	default:
		v3x := v[0].X() + (v[2].X()-v[0].X())*(v[1].Y()-v[0].Y())/(v[2].Y()-v[0].Y())
		v3 := Vertex{v3x, v[1].Y()}
		a, b := orderByX(v[1], v3)
		fillFlatBottom(g, v[0], a, b, fill)
		fillFlatTop(g, a, b, v[2], fill)
	}
}

func orderByX(a, b Vertex) (Vertex, Vertex) {
	if a.X() <= b.X() {
		return a, b
	}
	return b, a
}

// fillFlatBottom fills the triangle (apex, left, right) where left.Y() ==
// right.Y() and left.X() <= right.X().
func fillFlatBottom(g *Grid, apex, left, right Vertex, fill Color) {
	invslope0 := (left.X() - apex.X()) / (left.Y() - apex.Y())
	invslope1 := (right.X() - apex.X()) / (right.Y() - apex.Y())
	curx0 := apex.X()
	curx1 := apex.X()

	y0 := int(math.Floor(float64(apex.Y())))
	y1 := int(math.Floor(float64(left.Y())))
	for y := y0; y <= y1; y++ {
		fillSpan(g, y, curx0, curx1, fill)
		curx0 += invslope0
		curx1 += invslope1
	}
}

// fillFlatTop fills the triangle (left, right, apex) where left.Y() ==
// right.Y() and left.X() <= right.X(); apex is below.
func fillFlatTop(g *Grid, left, right, apex Vertex, fill Color) {
	invslope0 := (apex.X() - left.X()) / (apex.Y() - left.Y())
	invslope1 := (apex.X() - right.X()) / (apex.Y() - right.Y())
	curx0 := apex.X()
	curx1 := apex.X()

	y0 := int(math.Floor(float64(left.Y())))
	y1 := int(math.Floor(float64(apex.Y())))
	for y := y1; y >= y0; y-- {
		fillSpan(g, y, curx0, curx1, fill)
		curx0 -= invslope0
		curx1 -= invslope1
	}
}

// fillSpan fills the half-open pixel range [floor(xLeft), floor(xRight))
// at row y. Negative scanlines are skipped entirely.
func fillSpan(g *Grid, y int, xLeft, xRight float32, fill Color) {
	if y < 0 {
		return
	}
	left := int(math.Floor(float64(xLeft)))
	right := int(math.Floor(float64(xRight)))
	for x := left; x < right; x++ {
		g.SetPixel(y, x, fill)
	}
}
