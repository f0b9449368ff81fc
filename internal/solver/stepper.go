package solver

import (
	"github.com/san-kum/isowave/internal/field"
	"github.com/san-kum/isowave/internal/stencil"
)

// Stepper advances a wavefield one time step at a time, tracking which
// physical buffer currently plays the "previous" role. Live views and the
// frame server use it to observe intermediate states; [Serial] is built on
// it.
type Stepper struct {
	params     stencil.Params
	w          *field.Wavefield
	prev, next *field.Grid
	steps      int
}

func NewStepper(params stencil.Params, w *field.Wavefield) *Stepper {
	return &Stepper{params: params, w: w, prev: w.Prev, next: w.Next}
}

// Step performs one full interior sweep and rotates the buffer roles.
func (s *Stepper) Step() {
	hl := s.params.HalfLength
	dtDivDxy := s.params.DtDivDxy()
	nRows, nCols := s.prev.NRows, s.prev.NCols

	for i := hl; i < nRows-hl; i++ {
		offset := i * nCols
		for j := hl; j < nCols-hl; j++ {
			stencil.Apply(s.next.Data, s.prev.Data, s.w.Vel.Data, offset+j, nCols, dtDivDxy)
		}
	}

	s.prev, s.next = s.next, s.prev
	s.steps++
}

// Current returns the grid holding the most recently computed step, or the
// seeded Prev grid before the first step.
func (s *Stepper) Current() *field.Grid { return s.prev }

// Steps returns how many steps have been taken.
func (s *Stepper) Steps() int { return s.steps }

// Reset re-seeds the wavefield and rebinds the buffer roles to their
// initial assignment.
func (s *Stepper) Reset() {
	s.w.Seed(s.params.HalfLength)
	s.prev, s.next = s.w.Prev, s.w.Next
	s.steps = 0
}
