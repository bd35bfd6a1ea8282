package scatterplot

import "testing"

func TestDedupeAveragesDuplicateGroups(t *testing.T) {
	xs := []float64{1, 1, 2}
	ys := []float64{10, 20, 30}
	fx, fy, collapsed := dedupe(xs, ys, true)
	if !collapsed {
		t.Fatalf("expected collapse")
	}
	if len(fx) != 2 || fx[0] != 1 || fx[1] != 2 {
		t.Fatalf("unexpected fit xs: %v", fx)
	}
	if fy[0] != 15.0 || fy[1] != 30.0 {
		t.Fatalf("unexpected fit ys: %v", fy)
	}
	// raw input untouched
	if xs[0] != 1 || xs[1] != 1 || ys[0] != 10 || ys[1] != 20 {
		t.Fatalf("raw sequence modified: xs=%v ys=%v", xs, ys)
	}
}

func TestDedupeNoopWithoutDuplicates(t *testing.T) {
	xs := []float64{1, 2, 3}
	ys := []float64{10, 20, 30}
	fx, fy, collapsed := dedupe(xs, ys, true)
	if collapsed {
		t.Fatalf("collapse reported on duplicate-free input")
	}
	for i := range xs {
		if fx[i] != xs[i] || fy[i] != ys[i] {
			t.Fatalf("duplicate-free input changed: %v %v", fx, fy)
		}
	}
}

func TestDedupeDisabledKeepsDuplicates(t *testing.T) {
	xs := []float64{1, 1, 2}
	ys := []float64{10, 20, 30}
	fx, _, collapsed := dedupe(xs, ys, false)
	if collapsed || len(fx) != 3 {
		t.Fatalf("disabled dedupe still collapsed: %v", fx)
	}
}

func TestDedupeIdempotent(t *testing.T) {
	xs := []float64{1, 1, 2, 2, 2, 5}
	ys := []float64{1, 3, 4, 5, 6, 9}
	fx, fy, _ := dedupe(xs, ys, true)
	fx2, fy2, collapsed := dedupe(fx, fy, true)
	if collapsed {
		t.Fatalf("second pass collapsed again")
	}
	for i := range fx {
		if fx2[i] != fx[i] || fy2[i] != fy[i] {
			t.Fatalf("second pass changed output: %v %v", fx2, fy2)
		}
	}
}

func TestDedupeCountsDistinctX(t *testing.T) {
	xs := []float64{1, 1, 1, 2, 3, 3}
	ys := []float64{1, 2, 3, 4, 5, 7}
	fx, fy, _ := dedupe(xs, ys, true)
	if len(fx) != 3 {
		t.Fatalf("want 3 distinct x, got %v", fx)
	}
	if fy[0] != 2 || fy[1] != 4 || fy[2] != 6 {
		t.Fatalf("group means wrong: %v", fy)
	}
}
