package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/isowave/internal/field"
)

func TestCanvasString(t *testing.T) {
	c := NewCanvas(10, 4)
	s := c.String()

	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("got %d lines, want 4", len(lines))
	}
	for i, line := range lines {
		if got := len([]rune(line)); got != 10 {
			t.Errorf("line %d has %d runes, want 10", i, got)
		}
	}
}

func TestCanvasSetOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	// Must not panic.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 100)
}

func TestDrawFieldZeroGrid(t *testing.T) {
	c := NewCanvas(8, 4)
	DrawField(c, field.NewGrid(32, 32), 0.02)

	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("zero field lit a dot")
			}
		}
	}
}

func TestDrawFieldLightsSource(t *testing.T) {
	g := field.NewGrid(32, 32)
	g.Set(16, 16, 1.0)

	c := NewCanvas(16, 8)
	DrawField(c, g, 0.5)

	lit := false
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				lit = true
			}
		}
	}
	if !lit {
		t.Error("source cell did not light any dot")
	}
}

func TestCrossSection(t *testing.T) {
	g := field.NewGrid(4, 6)
	for col := 0; col < 6; col++ {
		g.Set(2, col, float32(col))
	}

	data := CrossSection(g, 2)
	if len(data) != 6 {
		t.Fatalf("got %d samples, want 6", len(data))
	}
	for col, v := range data {
		if v != float64(col) {
			t.Errorf("sample %d = %g, want %d", col, v, col)
		}
	}
}

func TestMaxAmplitude(t *testing.T) {
	g := field.NewGrid(3, 3)
	g.Set(1, 1, -0.5)
	g.Set(2, 2, 0.25)

	if got := MaxAmplitude(g); got != 0.5 {
		t.Errorf("max amplitude = %g, want 0.5", got)
	}
}
