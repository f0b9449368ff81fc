package field

import "errors"

// DefaultVelocity is the sample propagation velocity in m/s. The Vel grid
// stores its square.
const DefaultVelocity = 1500.0

// sourceWavelet is the 12-tap source injected into Prev as an initial
// condition: tap s fills a (2s)x(2s) square centered on the grid, largest
// square first so inner taps overwrite outer ones.
var sourceWavelet = [12]float32{
	0.016387336, -0.041464937, -0.067372555, 0.386110067,
	0.812723635, 0.416998396, 0.076488599, -0.059434419,
	0.023680172, 0.005611435, 0.001823209, -0.000720549,
}

var errGridTooSmall = errors.New("field: grid must be larger than twice the halo width")

// Wavefield bundles the buffers of one solver run.
type Wavefield struct {
	Prev, Next, Vel *Grid
}

// NewWavefield allocates the three grids for an nRows x nCols run.
// The halo must leave at least one interior cell in each axis.
func NewWavefield(nRows, nCols, halo int) (*Wavefield, error) {
	if nRows <= 2*halo || nCols <= 2*halo {
		return nil, errGridTooSmall
	}
	return &Wavefield{
		Prev: NewGrid(nRows, nCols),
		Next: NewGrid(nRows, nCols),
		Vel:  NewGrid(nRows, nCols),
	}, nil
}

// Seed resets the wavefield to its deterministic start state: Prev carries
// the source wavelet, Next is zero (amplitude at t=-1), Vel holds the
// squared velocity everywhere. Wavelet writes are clamped to the interior
// so the halo stays exactly zero regardless of grid size.
func (w *Wavefield) Seed(halo int) {
	w.Prev.Zero()
	w.Next.Zero()
	w.Vel.Fill(DefaultVelocity * DefaultVelocity)

	nRows, nCols := w.Prev.NRows, w.Prev.NCols
	cRow, cCol := nRows/2, nCols/2

	for s := len(sourceWavelet) - 1; s >= 0; s-- {
		rowLo, rowHi := clampSpan(cRow-s, cRow+s, halo, nRows-halo)
		colLo, colHi := clampSpan(cCol-s, cCol+s, halo, nCols-halo)
		for i := rowLo; i < rowHi; i++ {
			offset := i * nCols
			for k := colLo; k < colHi; k++ {
				w.Prev.Data[offset+k] = sourceWavelet[s]
			}
		}
	}
}

func clampSpan(lo, hi, floor, ceil int) (int, int) {
	if lo < floor {
		lo = floor
	}
	if hi > ceil {
		hi = ceil
	}
	return lo, hi
}
