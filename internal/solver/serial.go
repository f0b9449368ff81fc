package solver

import (
	"context"

	"github.com/san-kum/isowave/internal/field"
	"github.com/san-kum/isowave/internal/stencil"
)

// Driver advances a wavefield by a number of time steps and returns the
// grid holding the final step ("current" at step steps-1). With zero steps
// that is the seeded Prev grid.
type Driver interface {
	Name() string
	Run(ctx context.Context, w *field.Wavefield, steps int) (*field.Grid, error)
}

// Serial is the reference driver: a fixed row-outer, column-inner sweep on
// a single goroutine, swapping buffer roles after each full sweep.
type Serial struct {
	params stencil.Params
}

func NewSerial(params stencil.Params) *Serial {
	return &Serial{params: params}
}

func (s *Serial) Name() string { return "serial" }

func (s *Serial) Run(ctx context.Context, w *field.Wavefield, steps int) (*field.Grid, error) {
	st := NewStepper(s.params, w)

	for k := 0; k < steps; k++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		st.Step()
	}

	return st.Current(), nil
}
