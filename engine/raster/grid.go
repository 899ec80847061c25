package raster

// Grid is a row-major 2D pixel buffer. Rows and cols are fixed at
// construction; pixels are RGBA8 tuples.
type Grid struct {
	rows, cols int
	data       [][4]byte
}

// NewGrid allocates a zeroed rows x cols grid.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows: rows,
		cols: cols,
		data: make([][4]byte, rows*cols),
	}
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) Get(i, j int) [4]byte {
	return g.data[i*g.cols+j]
}

func (g *Grid) Set(i, j int, v [4]byte) {
	g.data[i*g.cols+j] = v
}

// SetPixel is a no-op outside bounds; this is what makes the rasterizer total.
func (g *Grid) SetPixel(i, j int, c Color) {
	if i < 0 || j < 0 || i >= g.rows || j >= g.cols {
		return
	}
	g.Set(i, j, c.Bytes())
}

// Row returns a shared view of row i.
func (g *Grid) Row(i int) [][4]byte {
	return g.data[i*g.cols : (i+1)*g.cols]
}

// RowMut is an alias for Row; the returned slice already aliases the
// backing array, so mutating it mutates the grid.
func (g *Grid) RowMut(i int) [][4]byte {
	return g.Row(i)
}

// Bytes flattens the grid into a contiguous RGBA byte vector, row-major.
func (g *Grid) Bytes() []byte {
	out := make([]byte, len(g.data)*4)
	for i, px := range g.data {
		copy(out[i*4:i*4+4], px[:])
	}
	return out
}

// DisplaceAbove replaces the top other.Rows() rows of g with other's rows,
// shifting the rest of g down by other.Rows() rows (bottom rows fall off).
// Requires other.Cols() == g.Cols() and other.Rows() <= g.Rows().
func (g *Grid) DisplaceAbove(other *Grid) {
	mustDisplaceVertical(g, other)
	n := other.rows * g.cols
	copy(g.data[n:], g.data[:len(g.data)-n])
	copy(g.data[:n], other.data)
}

// DisplaceBelow replaces the bottom other.Rows() rows of g with other's
// rows, shifting the rest of g up by other.Rows() rows (top rows fall off).
func (g *Grid) DisplaceBelow(other *Grid) {
	mustDisplaceVertical(g, other)
	n := other.rows * g.cols
	copy(g.data[:len(g.data)-n], g.data[n:])
	copy(g.data[len(g.data)-n:], other.data)
}

// DisplaceLeft replaces the left other.Cols() columns of every row with
// other's matching row, shifting the rest of each row right.
// Requires other.Rows() == g.Rows() and other.Cols() <= g.Cols().
func (g *Grid) DisplaceLeft(other *Grid) {
	mustDisplaceHorizontal(g, other)
	for i := 0; i < g.rows; i++ {
		row := g.Row(i)
		oRow := other.Row(i)
		n := other.cols
		copy(row[n:], row[:len(row)-n])
		copy(row[:n], oRow)
	}
}

// DisplaceRight replaces the right other.Cols() columns of every row with
// other's matching row, shifting the rest of each row left.
func (g *Grid) DisplaceRight(other *Grid) {
	mustDisplaceHorizontal(g, other)
	for i := 0; i < g.rows; i++ {
		row := g.Row(i)
		oRow := other.Row(i)
		n := other.cols
		copy(row[:len(row)-n], row[n:])
		copy(row[len(row)-n:], oRow)
	}
}

func mustDisplaceVertical(g, other *Grid) {
	if other.cols != g.cols {
		panic("raster: displace column mismatch")
	}
	if other.rows > g.rows {
		panic("raster: displace source taller than destination")
	}
}

func mustDisplaceHorizontal(g, other *Grid) {
	if other.rows != g.rows {
		panic("raster: displace row mismatch")
	}
	if other.cols > g.cols {
		panic("raster: displace source wider than destination")
	}
}
