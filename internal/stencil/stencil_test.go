package stencil

import (
	"math"
	"testing"
)

func TestDtDivDxy(t *testing.T) {
	p := DefaultParams()
	want := (0.002 * 0.002) / (20.0 * 20.0)
	if got := float64(p.DtDivDxy()); math.Abs(got-want) > 1e-12 {
		t.Errorf("DtDivDxy = %g, want %g", got, want)
	}
}

func TestPointZeroField(t *testing.T) {
	if got := Point(0, 0, 0, 0, 0, 0, 2.25e6, 1e-8); got != 0 {
		t.Errorf("zero field produced %g, want 0", got)
	}
}

func TestPointUniformField(t *testing.T) {
	// A spatially uniform field has zero laplacian; the recurrence reduces
	// to 2*u(t) - u(t-1).
	const c, older = 0.75, 0.25
	want := float32(2*c - older)
	if got := Point(c, c, c, c, c, older, 2.25e6, 1e-8); got != want {
		t.Errorf("uniform field produced %g, want %g", got, want)
	}
}

func TestPointMatchesRecurrence(t *testing.T) {
	var (
		center, left, right float32 = 0.5, 0.25, -0.125
		up, down, older     float32 = 0.0625, -0.75, 0.375
		vel                 float32 = 2.25e6
		dtDivDxy            float32 = 1e-8
	)

	// Same op order as the kernel, written out longhand.
	value := right - 2*center + left
	value += down - 2*center + up
	value *= dtDivDxy * vel
	want := 2*center - older + value

	if got := Point(center, left, right, up, down, older, vel, dtDivDxy); got != want {
		t.Errorf("Point = %g, want %g", got, want)
	}
}

func TestApplyUpdatesOnlyTarget(t *testing.T) {
	const nCols = 5
	prev := make([]float32, 3*nCols)
	next := make([]float32, 3*nCols)
	vel := make([]float32, 3*nCols)
	for i := range prev {
		prev[i] = float32(i) * 0.01
		vel[i] = 2.25e6
	}

	gid := nCols + 2 // row 1, col 2
	Apply(next, prev, vel, gid, nCols, 1e-8)

	want := Point(prev[gid], prev[gid-1], prev[gid+1], prev[gid-nCols], prev[gid+nCols], 0, vel[gid], 1e-8)
	if next[gid] != want {
		t.Errorf("next[gid] = %g, want %g", next[gid], want)
	}
	for i := range next {
		if i != gid && next[i] != 0 {
			t.Errorf("next[%d] = %g, want untouched 0", i, next[i])
		}
	}
}

func TestApplyReadsOlderFromNext(t *testing.T) {
	// The cell being overwritten contributes its two-steps-back value.
	const nCols = 3
	prev := make([]float32, 3*nCols)
	next := make([]float32, 3*nCols)
	vel := make([]float32, 3*nCols)

	gid := nCols + 1
	next[gid] = 0.5
	Apply(next, prev, vel, gid, nCols, 1e-8)

	if next[gid] != -0.5 {
		t.Errorf("next[gid] = %g, want -0.5 (2*0 - 0.5 + 0)", next[gid])
	}
}
