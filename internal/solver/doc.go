// Package solver provides the iteration drivers that sweep the stencil
// over the whole grid for a number of time steps.
//
// Two drivers exist: [Parallel] fans interior rows out to worker
// goroutines with a full barrier between steps, [Serial] is the
// single-goroutine reference oracle. Both call the same point kernel and
// rotate the prev/next buffer roles after every sweep instead of copying,
// so their results are bit-identical.
package solver
