// Package experiment orchestrates one cross-validation run: the parallel
// pass, the independent serial reference pass, snapshot persistence and
// the final tolerance check.
package experiment

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/san-kum/isowave/internal/config"
	"github.com/san-kum/isowave/internal/field"
	"github.com/san-kum/isowave/internal/solver"
	"github.com/san-kum/isowave/internal/stencil"
	"github.com/san-kum/isowave/internal/storage"
	"github.com/san-kum/isowave/internal/validate"
)

// Report collects everything a run produced.
type Report struct {
	ParallelTime time.Duration
	SerialTime   time.Duration
	Workers      int
	Validation   *validate.Report
	SnapshotPath string
	RefPath      string
}

// Passed reports the run verdict.
func (r *Report) Passed() bool { return r.Validation.Passed() }

type Experiment struct {
	cfg    *config.Config
	params stencil.Params

	// Progress receives phase announcements when non-nil.
	Progress io.Writer
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg, params: stencil.DefaultParams()}
}

func (e *Experiment) logf(format string, args ...any) {
	if e.Progress != nil {
		fmt.Fprintf(e.Progress, format, args...)
	}
}

// Run executes both passes and validates them. The serial pass starts from
// a freshly seeded wavefield so the two passes share no mutable buffers.
func (e *Experiment) Run(ctx context.Context) (*Report, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}

	st := storage.New(e.cfg.OutDir)
	if err := st.Init(); err != nil {
		return nil, err
	}

	hl := e.params.HalfLength

	e.logf("Initializing ...\n")
	wf, err := field.NewWavefield(e.cfg.Rows, e.cfg.Cols, hl)
	if err != nil {
		return nil, err
	}
	wf.Seed(hl)

	par := solver.NewParallel(e.params, e.cfg.Workers)
	e.logf("Computing wavefield with %d workers ..\n", par.Workers())
	start := time.Now()
	parFinal, err := par.Run(ctx, wf, e.cfg.Iterations)
	if err != nil {
		return nil, err
	}
	parTime := time.Since(start)
	e.logf("Kernel time: %d ms\n\n", parTime.Milliseconds())

	if err := st.SaveGrid(storage.SnapshotFile, parFinal); err != nil {
		return nil, err
	}

	e.logf("Computing reference wavefield serially ..\n")
	ref, err := field.NewWavefield(e.cfg.Rows, e.cfg.Cols, hl)
	if err != nil {
		return nil, err
	}
	ref.Seed(hl)

	start = time.Now()
	refFinal, err := solver.NewSerial(e.params).Run(ctx, ref, e.cfg.Iterations)
	if err != nil {
		return nil, err
	}
	serTime := time.Since(start)
	e.logf("Serial time: %d ms\n\n", serTime.Milliseconds())

	if err := st.SaveGrid(storage.ReferenceFile, refFinal); err != nil {
		return nil, err
	}

	rep := validate.Compare(parFinal, refFinal, hl, e.cfg.Tolerance)

	diffLog, err := st.CreateDiffLog()
	if err != nil {
		return nil, err
	}
	if err := rep.WriteDiffs(diffLog); err != nil {
		diffLog.Close()
		return nil, err
	}
	if err := diffLog.Close(); err != nil {
		return nil, err
	}

	meta := &storage.RunMetadata{
		Timestamp:    time.Now(),
		Rows:         e.cfg.Rows,
		Cols:         e.cfg.Cols,
		Iterations:   e.cfg.Iterations,
		Tolerance:    e.cfg.Tolerance,
		Workers:      par.Workers(),
		ParallelMs:   parTime.Milliseconds(),
		SerialMs:     serTime.Milliseconds(),
		ErrorNorm:    rep.Norm,
		PointsBeyond: len(rep.Diffs),
		Passed:       rep.Passed(),
	}
	if err := st.SaveMetadata(meta); err != nil {
		return nil, err
	}

	return &Report{
		ParallelTime: parTime,
		SerialTime:   serTime,
		Workers:      par.Workers(),
		Validation:   rep,
		SnapshotPath: st.Path(storage.SnapshotFile),
		RefPath:      st.Path(storage.ReferenceFile),
	}, nil
}
