package field

import "testing"

func TestNewWavefieldTooSmall(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"rows at halo", 2, 10},
		{"cols at halo", 10, 2},
		{"degenerate", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewWavefield(tt.rows, tt.cols, 1); err == nil {
				t.Errorf("expected error for %dx%d grid", tt.rows, tt.cols)
			}
		})
	}
}

func TestSeedHaloStaysZero(t *testing.T) {
	wf, err := NewWavefield(10, 10, 1)
	if err != nil {
		t.Fatalf("new wavefield: %v", err)
	}
	wf.Seed(1)

	for col := 0; col < 10; col++ {
		if v := wf.Prev.At(0, col); v != 0 {
			t.Errorf("halo (0,%d) = %g, want 0", col, v)
		}
		if v := wf.Prev.At(9, col); v != 0 {
			t.Errorf("halo (9,%d) = %g, want 0", col, v)
		}
	}
	for row := 0; row < 10; row++ {
		if v := wf.Prev.At(row, 0); v != 0 {
			t.Errorf("halo (%d,0) = %g, want 0", row, v)
		}
		if v := wf.Prev.At(row, 9); v != 0 {
			t.Errorf("halo (%d,9) = %g, want 0", row, v)
		}
	}
}

func TestSeedWaveletPlacement(t *testing.T) {
	wf, err := NewWavefield(64, 64, 1)
	if err != nil {
		t.Fatalf("new wavefield: %v", err)
	}
	wf.Seed(1)

	// The smallest written square (tap 1) covers the 2x2 block around the
	// center; tap 0 spans nothing, so the center holds tap 1.
	if got := wf.Prev.At(32, 32); got != sourceWavelet[1] {
		t.Errorf("center = %g, want tap 1 = %g", got, sourceWavelet[1])
	}
	// One cell outside the 2x2 block sits in tap 2's square.
	if got := wf.Prev.At(32, 33); got != sourceWavelet[2] {
		t.Errorf("center+1 col = %g, want tap 2 = %g", got, sourceWavelet[2])
	}
	// Far corner of the interior is beyond all taps.
	if got := wf.Prev.At(1, 1); got != 0 {
		t.Errorf("interior corner = %g, want 0", got)
	}
}

func TestSeedSymmetry(t *testing.T) {
	wf, err := NewWavefield(64, 48, 1)
	if err != nil {
		t.Fatalf("new wavefield: %v", err)
	}
	wf.Seed(1)

	// 180 degree rotation about the grid center maps the wavelet onto
	// itself for even dimensions.
	for row := 0; row < 64; row++ {
		for col := 0; col < 48; col++ {
			a := wf.Prev.At(row, col)
			b := wf.Prev.At(63-row, 47-col)
			if a != b {
				t.Fatalf("asymmetry at (%d,%d): %g vs %g", row, col, a, b)
			}
		}
	}
}

func TestSeedResetsState(t *testing.T) {
	wf, err := NewWavefield(16, 16, 1)
	if err != nil {
		t.Fatalf("new wavefield: %v", err)
	}
	wf.Seed(1)
	want := wf.Prev.Clone()

	// Scribble over every buffer, then re-seed.
	wf.Prev.Fill(3.5)
	wf.Next.Fill(-1)
	wf.Vel.Zero()
	wf.Seed(1)

	if !wf.Prev.Equal(want) {
		t.Error("re-seeded Prev differs from first seeding")
	}
	for i, v := range wf.Next.Data {
		if v != 0 {
			t.Fatalf("Next[%d] = %g after seed, want 0", i, v)
		}
	}
	for i, v := range wf.Vel.Data {
		if v != DefaultVelocity*DefaultVelocity {
			t.Fatalf("Vel[%d] = %g, want %g", i, v, float32(DefaultVelocity*DefaultVelocity))
		}
	}
}

func TestGridCloneIndependent(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(1, 2, 7)
	c := g.Clone()
	c.Set(1, 2, 9)

	if g.At(1, 2) != 7 {
		t.Error("mutating clone changed original")
	}
	if g.Equal(c) {
		t.Error("grids should differ after clone mutation")
	}
}
