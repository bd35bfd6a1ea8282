package scatterplot

import (
	"errors"
	"testing"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/vinny-q-tip/scatter-smooth/src/smooth"
)

func TestNormalizeSortsPairsByX(t *testing.T) {
	s := Series{Xs: []float64{3, 1, 2}, Ys: []float64{30, 10, 20}}
	xs, ys, dateAxis, err := s.normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dateAxis {
		t.Fatalf("numeric input flagged as date axis")
	}
	wantX := []float64{1, 2, 3}
	wantY := []float64{10, 20, 30}
	for i := range wantX {
		if xs[i] != wantX[i] || ys[i] != wantY[i] {
			t.Fatalf("got xs=%v ys=%v, want xs=%v ys=%v", xs, ys, wantX, wantY)
		}
	}
}

func TestNormalizeStableOnTies(t *testing.T) {
	s := Series{Xs: []float64{2, 1, 1}, Ys: []float64{9, 10, 20}}
	_, ys, _, err := s.normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// the two x=1 points must keep their original relative order
	if ys[0] != 10 || ys[1] != 20 || ys[2] != 9 {
		t.Fatalf("tie order not preserved: %v", ys)
	}
}

func TestNormalizeSortedInputUnchanged(t *testing.T) {
	s := Series{Xs: []float64{1, 2, 3}, Ys: []float64{5, 6, 7}}
	xs, ys, _, err := s.normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range xs {
		if xs[i] != s.Xs[i] || ys[i] != s.Ys[i] {
			t.Fatalf("sorted input changed: xs=%v ys=%v", xs, ys)
		}
	}
}

func TestNormalizeDateConversion(t *testing.T) {
	t0 := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	t1 := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	s := Series{Times: []time.Time{t1, t0}, Ys: []float64{2, 1}}
	xs, ys, dateAxis, err := s.normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dateAxis {
		t.Fatalf("time input not flagged as date axis")
	}
	if xs[0] != chart.TimeToFloat64(t0) || xs[1] != chart.TimeToFloat64(t1) {
		t.Fatalf("dates not converted/sorted: %v", xs)
	}
	if ys[0] != 1 || ys[1] != 2 {
		t.Fatalf("ys not reordered with dates: %v", ys)
	}
	if back := timeFromFloat(xs[0]); !back.Equal(t0) {
		t.Fatalf("round trip lost the timestamp: %v != %v", back, t0)
	}
}

func TestNormalizeRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		s    Series
	}{
		{"empty", Series{}},
		{"length mismatch", Series{Xs: []float64{1, 2}, Ys: []float64{1}}},
		{"mixed domains", Series{Xs: []float64{1}, Times: []time.Time{time.Now()}, Ys: []float64{1}}},
	}
	for _, c := range cases {
		_, _, _, err := c.s.normalize()
		var ce *smooth.ConfigurationError
		if !errors.As(err, &ce) {
			t.Fatalf("%s: want ConfigurationError, got %v", c.name, err)
		}
	}
}
