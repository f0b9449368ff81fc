package viz

import (
	"math"
	"strings"

	"github.com/san-kum/isowave/internal/field"
)

// Braille Patterns: 2x4 dots per character cell, Unicode offset 0x2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille dot-matrix the wavefield renderer draws into. A
// canvas of W x H character cells has (W*2) x (H*4) addressable dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set turns on the dot at sub-pixel coordinates (x, y).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets every dot.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

func (c *Canvas) String() string {
	var sb strings.Builder
	for _, row := range c.Grid {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DrawField renders a wave amplitude grid onto the canvas: each dot lights
// up when the magnitude at the sampled cell exceeds threshold*maxAmp. The
// grid is resampled to the canvas's dot resolution.
func DrawField(c *Canvas, g *field.Grid, threshold float64) {
	c.Clear()

	maxAmp := MaxAmplitude(g)
	if maxAmp == 0 {
		return
	}
	cut := threshold * maxAmp

	dotsX := c.Width * 2
	dotsY := c.Height * 4

	for y := 0; y < dotsY; y++ {
		row := y * g.NRows / dotsY
		for x := 0; x < dotsX; x++ {
			col := x * g.NCols / dotsX
			if math.Abs(float64(g.At(row, col))) > cut {
				c.Set(x, y)
			}
		}
	}
}

// MaxAmplitude returns the largest absolute value in the grid.
func MaxAmplitude(g *field.Grid) float64 {
	maxAmp := 0.0
	for _, v := range g.Data {
		if a := math.Abs(float64(v)); a > maxAmp {
			maxAmp = a
		}
	}
	return maxAmp
}
