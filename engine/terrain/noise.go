// Package terrain implements the deterministic, seamlessly tileable Perlin
// heightmap sampler and the heightmap chunk built from it.
package terrain

import "math"

// hash is three rounds of x = (x<<16)^x; x *= 0x45d9f3b, with the final
// round omitting the multiply. Arithmetic wraps (two's complement), which
// is the contract, not a bug.
func hash(x int32) int32 {
	u := uint32(x)
	for round := 0; round < 3; round++ {
		u = (u << 16) ^ u
		if round < 2 {
			u *= 0x45d9f3b
		}
	}
	return int32(u)
}

// randnHash maps v through the hash and then through an approximation of
// the inverse standard normal CDF, giving an approximately Gaussian
// pseudo-random value deterministic in v.
func randnHash(v int32) float32 {
	h := hash(v)
	u := (float32(h)/float32(math.MaxInt32) + 1) / 2
	return inverseProbit(u)
}

func inverseProbit(u float32) float32 {
	return float32(-math.Log(1/float64(u)-1) / 1.702)
}

// interpolate blends x0 -> x1 using the quintic smoothstep of w.
func interpolate(x0, x1, w float32) float32 {
	t := quinticSmoothstep(w)
	return x0 + t*(x1-x0)
}

func quinticSmoothstep(x float32) float32 {
	return 6*x*x*x*x*x - 15*x*x*x*x + 10*x*x*x
}

// gradient returns the gradient vector at lattice point (gx, gy) for a
// layer of the given period and seed. It is a pure function of its
// arguments, not of any sampling window, which is what makes the noise
// seamless across chunk boundaries.
func gradient(gx, gy, period, seed int32) (float32, float32) {
	h := (gx + seed) * (gy - seed) * period
	return randnHash(h), randnHash(-h)
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// perlinLayerAt samples one Perlin layer of the given period at world
// coordinate (x, y). Gradients sit on the lattice of integer multiples of
// period; this is a pure function of (x, y, period, seed).
func perlinLayerAt(x, y, period, seed int32) float32 {
	gx0 := floorDiv(x, period)
	gy0 := floorDiv(y, period)
	gx1 := gx0 + 1
	gy1 := gy0 + 1

	fp := float32(period)
	fracX := (float32(x) - float32(gx0)*fp) / fp
	fracY := (float32(y) - float32(gy0)*fp) / fp

	dotAt := func(gxI, gyI int32) float32 {
		lx, ly := gxI*period, gyI*period
		gxGrad, gyGrad := gradient(lx, ly, period, seed)
		dx := (float32(x) - float32(lx)) / fp
		dy := (float32(y) - float32(ly)) / fp
		return dx*gxGrad + dy*gyGrad
	}

	n00 := dotAt(gx0, gy0)
	n10 := dotAt(gx1, gy0)
	n01 := dotAt(gx0, gy1)
	n11 := dotAt(gx1, gy1)

	ix0 := interpolate(n00, n10, fracX)
	ix1 := interpolate(n01, n11, fracX)
	return interpolate(ix0, ix1, fracY)
}

// Sample produces a height x width grid of noise values for the rectangle
// [x0, x0+width) x [y0, y0+height), summing amplitude * perlinLayerAt over
// every (period, amplitude) layer. Row i, column j of the result is the
// sample at world coordinate (x0+j, y0+i).
//
// Deterministic in (seed, periods, amplitudes, x0, y0, width, height); and
// because perlinLayerAt depends only on world coordinates, sampling the
// same world coordinate from two different windows yields the same value.
func Sample(periods []int, amplitudes []float32, seed int32, x0, y0 int32, width, height int) [][]float32 {
	if len(periods) != len(amplitudes) || len(periods) == 0 {
		panic("terrain: periods and amplitudes must be non-empty and equal length")
	}

	out := make([][]float32, height)
	for row := range out {
		out[row] = make([]float32, width)
	}

	for li, period := range periods {
		amp := amplitudes[li]
		p32 := int32(period)
		for row := 0; row < height; row++ {
			y := y0 + int32(row)
			for col := 0; col < width; col++ {
				x := x0 + int32(col)
				out[row][col] += amp * perlinLayerAt(x, y, p32, seed)
			}
		}
	}

	return out
}
