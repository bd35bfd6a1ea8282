package scatterplot

import "testing"

func TestNiceTicksCoverSpan(t *testing.T) {
	ticks := niceTicks(0, 100, 7)
	if len(ticks) < 2 {
		t.Fatalf("too few ticks: %v", ticks)
	}
	if ticks[0] > 0 || ticks[len(ticks)-1] < 100 {
		t.Fatalf("ticks do not cover span: %v", ticks)
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i] <= ticks[i-1] {
			t.Fatalf("ticks not strictly increasing: %v", ticks)
		}
	}
}

func TestNiceTicksDegenerateSpan(t *testing.T) {
	ticks := niceTicks(5, 5, 5)
	if len(ticks) < 2 {
		t.Fatalf("degenerate span needs at least two ticks: %v", ticks)
	}
}

func TestFormatTickPrecision(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{1234, "1234"},
		{42.25, "42.2"},
		{3.14159, "3.14"},
		{0.025, "0.025"},
		{0, "0"},
	}
	for _, c := range cases {
		if got := formatTick(c.v); got != c.want {
			t.Fatalf("formatTick(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}
