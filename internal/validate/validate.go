// Package validate compares two final wavefields point by point over the
// halo-excluded interior and reports whether they agree within tolerance.
package validate

import (
	"fmt"
	"io"
	"math"

	"github.com/san-kum/isowave/internal/field"
)

// DefaultDelta is the per-point tolerance used by the benchmark.
const DefaultDelta = 0.1

// Diff records one interior point whose absolute difference exceeded the
// tolerance.
type Diff struct {
	Row, Col  int
	Output    float32
	Reference float32
	Delta     float64
}

// Report is the aggregate validation result. Norm is the Euclidean norm of
// all interior per-point differences; Error is true when any single
// difference exceeded the tolerance.
type Report struct {
	Error bool
	Norm  float64
	Diffs []Diff
}

// Passed reports the run verdict.
func (r *Report) Passed() bool { return !r.Error }

// Compare scans the interior (radius <= pos < dim-radius in both axes) of
// output against reference in row-major order. Halo points are never
// compared. It panics if the grids' dimensions differ; the orchestrator
// always allocates them together.
func Compare(output, reference *field.Grid, radius int, delta float64) *Report {
	if output.NRows != reference.NRows || output.NCols != reference.NCols {
		panic("validate: grid dimensions differ")
	}

	rep := &Report{}
	sumSquares := 0.0

	for row := radius; row < output.NRows-radius; row++ {
		for col := radius; col < output.NCols-radius; col++ {
			difference := math.Abs(float64(output.At(row, col) - reference.At(row, col)))
			sumSquares += difference * difference
			if difference > delta {
				rep.Error = true
				rep.Diffs = append(rep.Diffs, Diff{
					Row:       row,
					Col:       col,
					Output:    output.At(row, col),
					Reference: reference.At(row, col),
					Delta:     difference,
				})
			}
		}
	}

	rep.Norm = math.Sqrt(sumSquares)
	return rep
}

// WriteDiffs emits one line per offending point, in the deterministic
// row-major order Compare produced them.
func (r *Report) WriteDiffs(w io.Writer) error {
	for _, d := range r.Diffs {
		_, err := fmt.Fprintf(w, " ERROR: %d, %d   %g   instead of %g  (|e|=%g)\n",
			d.Col, d.Row, d.Output, d.Reference, d.Delta)
		if err != nil {
			return err
		}
	}
	return nil
}
