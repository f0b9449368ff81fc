package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/isowave/internal/field"
)

// CrossSection extracts one row of the grid as float64 samples.
func CrossSection(g *field.Grid, row int) []float64 {
	data := make([]float64, g.NCols)
	for col := 0; col < g.NCols; col++ {
		data[col] = float64(g.At(row, col))
	}
	return data
}

// RenderCrossSection plots the amplitudes of one grid row as an ASCII
// chart. A negative row selects the center row.
func RenderCrossSection(g *field.Grid, row, width, height int) string {
	if row < 0 {
		row = g.NRows / 2
	}
	data := CrossSection(g, row)
	graph := asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("amplitude along row %d", row)),
	)
	return graph
}
