package solver

import (
	"context"
	"runtime"
	"sync"

	"github.com/san-kum/isowave/internal/field"
	"github.com/san-kum/isowave/internal/stencil"
)

// Parallel applies each time step's interior updates concurrently,
// chunking interior rows across worker goroutines. Updates within a step
// are independent (they read prev and write disjoint next cells), so the
// worker count only affects speed. Steps remain strictly sequential: the
// WaitGroup is a full barrier before the buffer roles swap.
type Parallel struct {
	params  stencil.Params
	workers int
}

// NewParallel returns a driver using the given number of workers;
// values < 1 select runtime.NumCPU().
func NewParallel(params stencil.Params, workers int) *Parallel {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Parallel{params: params, workers: workers}
}

func (p *Parallel) Name() string { return "parallel" }

func (p *Parallel) Workers() int { return p.workers }

func (p *Parallel) Run(ctx context.Context, w *field.Wavefield, steps int) (*field.Grid, error) {
	prev, next := w.Prev, w.Next
	hl := p.params.HalfLength
	dtDivDxy := p.params.DtDivDxy()
	nRows, nCols := prev.NRows, prev.NCols

	interior := nRows - 2*hl
	chunk := (interior + p.workers - 1) / p.workers
	if chunk < 1 {
		chunk = 1
	}

	for k := 0; k < steps; k++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		var wg sync.WaitGroup
		for start := hl; start < nRows-hl; start += chunk {
			end := start + chunk
			if end > nRows-hl {
				end = nRows - hl
			}

			wg.Add(1)
			go func(start, end int) {
				defer wg.Done()
				for i := start; i < end; i++ {
					offset := i * nCols
					for j := hl; j < nCols-hl; j++ {
						stencil.Apply(next.Data, prev.Data, w.Vel.Data, offset+j, nCols, dtDivDxy)
					}
				}
			}(start, end)
		}
		wg.Wait()

		prev, next = next, prev
	}

	return prev, nil
}
