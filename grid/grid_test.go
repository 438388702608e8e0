package grid

import "testing"

func TestGridDerivedValues(t *testing.T) {
	g, err := New("wavelength", "nm", []float64{280, 300, 320, 340})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.NCells() != 3 {
		t.Fatalf("NCells() = %d, want 3", g.NCells())
	}
	mid := g.Midpoints()
	want := []float64{290, 310, 330}
	for i, m := range mid {
		if m != want[i] {
			t.Errorf("Midpoints()[%d] = %g, want %g", i, m, want[i])
		}
	}
	delta := g.Deltas()
	for i, d := range delta {
		if d != 20 {
			t.Errorf("Deltas()[%d] = %g, want 20", i, d)
		}
	}
}

func TestGridRejectsNonMonotonic(t *testing.T) {
	if _, err := New("x", "nm", []float64{1, 2, 2, 3}); err == nil {
		t.Fatal("expected error for non-monotonic edges")
	}
}

func TestGridRejectsTooFewEdges(t *testing.T) {
	if _, err := New("x", "nm", []float64{1}); err == nil {
		t.Fatal("expected error for single edge")
	}
}

func TestFindCellAscending(t *testing.T) {
	g, err := New("x", "nm", []float64{0, 10, 20, 30})
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		v      float64
		idx    int
		wantOK bool
	}{
		{-1, 0, false},
		{0, 0, true},
		{5, 0, true},
		{10, 1, true}, // exact edge biased to upper cell
		{15, 1, true},
		{30, 2, true}, // upper boundary clamps to last cell
		{31, 0, false},
	}
	for _, c := range cases {
		idx, ok := g.FindCell(c.v)
		if ok != c.wantOK {
			t.Errorf("FindCell(%g) ok = %v, want %v", c.v, ok, c.wantOK)
			continue
		}
		if ok && idx != c.idx {
			t.Errorf("FindCell(%g) = %d, want %d", c.v, idx, c.idx)
		}
	}
}

func TestFindCellDescending(t *testing.T) {
	g, err := New("x", "nm", []float64{30, 20, 10, 0})
	if err != nil {
		t.Fatal(err)
	}
	idx, ok := g.FindCell(20)
	if !ok || idx != 1 {
		t.Errorf("FindCell(20) = (%d, %v), want (1, true)", idx, ok)
	}
	idx, ok = g.FindCell(0)
	if !ok || idx != 2 {
		t.Errorf("FindCell(0) = (%d, %v), want (2, true)", idx, ok)
	}
}

func TestEquallySpaced(t *testing.T) {
	g, err := EquallySpaced("altitude", "km", 0, 80, 80)
	if err != nil {
		t.Fatal(err)
	}
	edges := g.Edges()
	if edges[0] != 0 || edges[80] != 80 {
		t.Errorf("edges endpoints = %g, %g", edges[0], edges[80])
	}
}

func TestLogarithmicallySpacedRejectsNonPositive(t *testing.T) {
	if _, err := LogarithmicallySpaced("x", "nm", 0, 10, 5); err == nil {
		t.Fatal("expected error for non-positive bound")
	}
}

func TestWarehouseAddGetDuplicate(t *testing.T) {
	w := NewWarehouse()
	g, _ := New("wavelength", "nm", []float64{280, 300})
	h, err := w.Add(g)
	if err != nil {
		t.Fatal(err)
	}
	got, err := w.Get(h)
	if err != nil || got != g {
		t.Fatalf("Get(%d) = %v, %v", h, got, err)
	}
	if _, err := w.Add(g); err == nil {
		t.Fatal("expected error adding duplicate key")
	}
	if !w.Exists("wavelength", "nm") {
		t.Error("Exists() = false, want true")
	}
	if _, err := w.GetByName("missing", "nm"); err == nil {
		t.Fatal("expected error for missing entity")
	}
}
