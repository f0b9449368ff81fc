package export

import (
	"strings"
	"testing"

	"github.com/san-kum/isowave/internal/field"
)

func TestFieldToSVG(t *testing.T) {
	g := field.NewGrid(4, 4)
	g.Set(1, 1, 0.8)
	g.Set(2, 2, -0.4)

	svg := FieldToSVG(g, 2.0)
	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, `width="8" height="8"`) {
		t.Error("wrong canvas size for 4x4 grid at scale 2")
	}
	// One rect per non-zero cell plus the background.
	if got := strings.Count(svg, "<rect"); got != 3 {
		t.Errorf("got %d rects, want 3", got)
	}
	// Positive amplitude shades red, negative blue.
	if !strings.Contains(svg, `fill="#ff0000"`) {
		t.Error("peak cell should be full red")
	}
	if !strings.Contains(svg, "#0000") || !strings.Contains(svg, `fill="#00007f"`) {
		t.Error("negative cell should shade blue at half intensity")
	}
}

func TestFieldToSVGEmpty(t *testing.T) {
	if FieldToSVG(nil, 2.0) != "" {
		t.Error("nil grid should render nothing")
	}
	if FieldToSVG(field.NewGrid(2, 2), 0) != "" {
		t.Error("non-positive scale should render nothing")
	}
}
