package field

// Grid is a 2D scalar field stored row-major in a flat slice,
// indexed by row*NCols + col.
type Grid struct {
	NRows, NCols int
	Data         []float32
}

// NewGrid allocates a zeroed NRows x NCols grid.
func NewGrid(nRows, nCols int) *Grid {
	return &Grid{
		NRows: nRows,
		NCols: nCols,
		Data:  make([]float32, nRows*nCols),
	}
}

// Index returns the flat offset of (row, col).
func (g *Grid) Index(row, col int) int { return row*g.NCols + col }

// At returns the value at (row, col).
func (g *Grid) At(row, col int) float32 { return g.Data[row*g.NCols+col] }

// Set writes the value at (row, col).
func (g *Grid) Set(row, col int, v float32) { g.Data[row*g.NCols+col] = v }

// Fill sets every cell to v.
func (g *Grid) Fill(v float32) {
	for i := range g.Data {
		g.Data[i] = v
	}
}

// Zero clears the grid.
func (g *Grid) Zero() {
	for i := range g.Data {
		g.Data[i] = 0
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.NRows, g.NCols)
	copy(c.Data, g.Data)
	return c
}

// Equal reports whether two grids have identical dimensions and bytes.
func (g *Grid) Equal(other *Grid) bool {
	if g.NRows != other.NRows || g.NCols != other.NCols {
		return false
	}
	for i := range g.Data {
		if g.Data[i] != other.Data[i] {
			return false
		}
	}
	return true
}
