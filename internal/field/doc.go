// Package field provides the grid storage for the 2D acoustic wave solver.
//
// A [Grid] is a flat row-major float32 field. A [Wavefield] bundles the
// three grids the finite difference scheme needs:
//
//   - Prev: wave amplitude at time t-1 (carries the source wavelet at t=0)
//   - Next: wave amplitude being computed (zero at t=0, representing t=-1)
//   - Vel:  squared propagation velocity, constant after seeding
//
// The outermost ring of width [HalfLength] is the halo: it is never written
// by the stencil and stays at its seeded value for the whole run.
package field
