package interpolation

import "testing"

func approxEqual(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestLinearIdentity(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{10, 20, 15, 40}
	got := Linear(x, x, y)
	for i := range y {
		if got[i] != y[i] {
			t.Errorf("Linear identity[%d] = %g, want %g", i, got[i], y[i])
		}
	}
}

func TestLinearClampsAtBounds(t *testing.T) {
	got := Linear([]float64{-5, 0, 100}, []float64{0, 1, 2}, []float64{1, 2, 3})
	if got[0] != 1 {
		t.Errorf("below-range = %g, want 1", got[0])
	}
	if got[2] != 3 {
		t.Errorf("above-range = %g, want 3", got[2])
	}
}

func TestLinearEmptySource(t *testing.T) {
	got := Linear([]float64{1, 2, 3}, nil, nil)
	for _, v := range got {
		if v != 0 {
			t.Errorf("empty source should yield zeros, got %g", v)
		}
	}
}

func TestLinearMismatchedSource(t *testing.T) {
	got := Linear([]float64{1, 2}, []float64{1, 2, 3}, []float64{1, 2})
	for _, v := range got {
		if v != 0 {
			t.Errorf("mismatched source should yield zeros, got %g", v)
		}
	}
}

func TestConservingAreaLaw(t *testing.T) {
	srcEdges := []float64{0, 1, 2, 3, 4}
	srcVals := []float64{1, 2, 3, 4}
	tgtEdges := []float64{0, 2, 4}
	got := Conserving(tgtEdges, srcEdges, srcVals)

	var srcArea, tgtArea float64
	for i, v := range srcVals {
		srcArea += v * (srcEdges[i+1] - srcEdges[i])
	}
	for i, v := range got {
		tgtArea += v * (tgtEdges[i+1] - tgtEdges[i])
	}
	if !approxEqual(srcArea, tgtArea, 1e-9) {
		t.Errorf("area not conserved: src=%g tgt=%g", srcArea, tgtArea)
	}
	// first target bin covers exactly the first 2 source bins
	want0 := (1*1 + 2*1) / 2.0
	if !approxEqual(got[0], want0, 1e-9) {
		t.Errorf("got[0] = %g, want %g", got[0], want0)
	}
}

func TestConservingOutsideSourceRangeIsZero(t *testing.T) {
	got := Conserving([]float64{10, 20}, []float64{0, 1, 2}, []float64{1, 2})
	if got[0] != 0 {
		t.Errorf("outside-range bin = %g, want 0", got[0])
	}
}

func TestConservingZeroWidthTargetBin(t *testing.T) {
	got := Conserving([]float64{1, 1, 2}, []float64{0, 1, 2}, []float64{1, 2})
	if got[0] != 0 {
		t.Errorf("zero-width bin = %g, want 0", got[0])
	}
}
