// Package export renders wavefield snapshots to SVG for inspection in a
// browser.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/isowave/internal/field"
)

// FieldToSVG renders the grid as a heatmap, one rect per cell scaled by
// the given factor. Positive amplitudes shade red, negative blue, scaled
// to the largest magnitude in the grid. Zero cells are left as background.
func FieldToSVG(g *field.Grid, scale float64) string {
	if g == nil || scale <= 0 {
		return ""
	}

	width := float64(g.NCols) * scale
	height := float64(g.NRows) * scale

	maxAmp := 0.0
	for _, v := range g.Data {
		if a := math.Abs(float64(v)); a > maxAmp {
			maxAmp = a
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	if maxAmp > 0 {
		for row := 0; row < g.NRows; row++ {
			for col := 0; col < g.NCols; col++ {
				v := float64(g.At(row, col))
				if v == 0 {
					continue
				}
				intensity := int(255 * math.Abs(v) / maxAmp)
				if intensity > 255 {
					intensity = 255
				}
				fill := fmt.Sprintf("#%02x0000", intensity)
				if v < 0 {
					fill = fmt.Sprintf("#0000%02x", intensity)
				}
				sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`,
					float64(col)*scale, float64(row)*scale, scale, scale, fill))
				sb.WriteByte('\n')
			}
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
