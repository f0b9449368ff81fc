// Package stencil implements the second-order finite difference update for
// the 2D isotropic acoustic wave equation,
//
//	u(t+1) = 2*u(t) - u(t-1) + c^2 * laplacian(u(t)) * dt^2
//
// as a pure point kernel shared by every iteration driver.
package stencil

// Default physical constants of the scheme.
const (
	DefaultDT         = 0.002 // time step, seconds
	DefaultDXY        = 20.0  // grid spacing, meters
	DefaultHalfLength = 1     // stencil radius; halo width
)

// Params holds the immutable configuration of the scheme. It is passed
// explicitly to drivers and kernels so multiple configurations can coexist
// in one process.
type Params struct {
	DT         float32
	DXY        float32
	HalfLength int
}

// DefaultParams returns the sample's standard 2nd-order-in-space,
// 2nd-order-in-time configuration.
func DefaultParams() Params {
	return Params{DT: DefaultDT, DXY: DefaultDXY, HalfLength: DefaultHalfLength}
}

// DtDivDxy returns (DT*DT)/(DXY*DXY), the constant folded into every
// stencil application.
func (p Params) DtDivDxy() float32 {
	return (p.DT * p.DT) / (p.DXY * p.DXY)
}

// Point computes the next-time-step value of one interior grid cell from
// explicit neighbor values. older is the cell's own value from two steps
// back, read out of the buffer being overwritten; with zero-initialized
// buffers it represents zero amplitude at t=-1. vel is the squared local
// velocity.
func Point(center, left, right, up, down, older, vel, dtDivDxy float32) float32 {
	value := right - 2*center + left
	value += down - 2*center + up
	value *= dtDivDxy * vel
	return 2*center - older + value
}

// Apply updates cell gid of next from prev and vel, where gid indexes a
// row-major grid of nCols columns. The caller guarantees gid lies strictly
// inside the halo-excluded interior.
func Apply(next, prev, vel []float32, gid, nCols int, dtDivDxy float32) {
	next[gid] = Point(
		prev[gid], prev[gid-1], prev[gid+1],
		prev[gid-nCols], prev[gid+nCols],
		next[gid], vel[gid], dtDivDxy,
	)
}
