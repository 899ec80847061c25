// Package projection implements the fixed-angle axonometric projection
// used to place voxel-slice corners on the canvas, and its inverse, used
// by camera visibility to map screen space back to world space.
package projection

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Theta is the fixed axonometric angle, pi/6.
const Theta = math.Pi / 6

// Matrix is the 2x2 axonometric projection for a given scale:
//
//	[ s*cos(theta), -s*cos(theta) ]
//	[ s*sin(theta),  s*sin(theta) ]
type Matrix struct {
	m mgl32.Mat2
}

// New builds the projection matrix for the given scale (pixels per voxel edge).
func New(scale float32) Matrix {
	c := scale * float32(math.Cos(Theta))
	s := scale * float32(math.Sin(Theta))
	return Matrix{m: mgl32.Mat2{c, s, -c, s}}
}

// Proj applies the projection to a world-space vector.
func (p Matrix) Proj(v mgl32.Vec2) mgl32.Vec2 {
	return p.m.Mul2x1(v)
}

// Inverse returns the analytic inverse of the projection matrix.
func (p Matrix) Inverse() Matrix {
	return Matrix{m: p.m.Inv()}
}
