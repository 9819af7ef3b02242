package drift

import "testing"

func TestSurfaceResize(t *testing.T) {
	tests := []struct {
		name      string
		w, h, dpr float64
		scale     float64
		bw, bh    int
	}{
		{"1x display", 1000, 800, 1, 1, 1000, 800},
		{"1.5x display", 1000, 800, 1.5, 1.5, 1500, 1200},
		{"2x display", 1000, 800, 2, 2, 2000, 1600},
		{"3x display capped", 1000, 800, 3, 2, 2000, 1600},
		{"zero ratio falls back to 1", 1000, 800, 0, 1, 1000, 800},
		{"negative ratio falls back to 1", 1000, 800, -2, 1, 1000, 800},
		{"fractional size floors", 333, 333, 1.5, 1.5, 499, 499},
		{"degenerate viewport", 0, 0, 2, 2, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Surface
			s.Resize(tt.w, tt.h, tt.dpr)
			if got := s.Scale(); got != tt.scale {
				t.Errorf("Scale() = %v, want %v", got, tt.scale)
			}
			bw, bh := s.BackingSize()
			if bw != tt.bw || bh != tt.bh {
				t.Errorf("BackingSize() = (%d, %d), want (%d, %d)", bw, bh, tt.bw, tt.bh)
			}
			lw, lh := s.LayoutSize()
			if lw != tt.w || lh != tt.h {
				t.Errorf("LayoutSize() = (%v, %v), want (%v, %v)", lw, lh, tt.w, tt.h)
			}
		})
	}
}

func TestSurfaceResizeIdempotent(t *testing.T) {
	var s Surface
	s.Resize(1280, 720, 1.5)
	first := s
	firstW, firstH := s.BackingSize()

	s.Resize(1280, 720, 1.5)
	if s != first {
		t.Error("second identical Resize changed surface state")
	}
	bw, bh := s.BackingSize()
	if bw != firstW || bh != firstH {
		t.Errorf("backing size changed: (%d, %d) → (%d, %d)", firstW, firstH, bw, bh)
	}
}

func TestSurfaceTransformUniformScale(t *testing.T) {
	var s Surface
	s.Resize(1000, 800, 1.5)
	tr := s.Transform()
	assertNear(t, "sx", tr.Element(0, 0), 1.5)
	assertNear(t, "sy", tr.Element(1, 1), 1.5)
	assertNear(t, "shear x", tr.Element(0, 1), 0)
	assertNear(t, "shear y", tr.Element(1, 0), 0)
	assertNear(t, "tx", tr.Element(0, 2), 0)
	assertNear(t, "ty", tr.Element(1, 2), 0)
}

func TestSurfaceZeroValueScale(t *testing.T) {
	var s Surface
	if s.Scale() != 1 {
		t.Errorf("zero-value Scale() = %v, want 1", s.Scale())
	}
	tr := s.Transform()
	assertNear(t, "sx", tr.Element(0, 0), 1)
}

func TestSurfaceBounds(t *testing.T) {
	var s Surface
	s.Resize(1024, 768, 2)
	b := s.Bounds()
	if b != (Rect{0, 0, 1024, 768}) {
		t.Errorf("Bounds() = %v, want {0 0 1024 768}", b)
	}
}
