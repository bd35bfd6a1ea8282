package main

import (
	"image"
	"strings"
	"testing"

	"github.com/vinny-q-tip/scatter-smooth/src/smooth"
)

func TestChartSizeClamps(t *testing.T) {
	cases := []struct {
		winW  int
		wantW int
	}{
		{300, 640},   // below minimum
		{1024, 1000}, // margin subtracted
	}
	for _, c := range cases {
		w, h := chartSize(c.winW)
		if w != c.wantW {
			t.Fatalf("chartSize(%d) width = %d, want %d", c.winW, w, c.wantW)
		}
		if h < 260 || h > 560 {
			t.Fatalf("chartSize(%d) height %d out of bounds", c.winW, h)
		}
	}
}

func TestHintText(t *testing.T) {
	got := hintText("/data/samples.csv", smooth.Lowess{Frac: 0.5}, 42)
	if !strings.Contains(got, "samples.csv") || !strings.Contains(got, "42") || !strings.Contains(got, "lowess") {
		t.Fatalf("hint text incomplete: %q", got)
	}
	for _, r := range got {
		if r > 127 {
			t.Fatalf("hint text contains non-ASCII %q: %q", r, got)
		}
	}
	if got := hintText("x.csv", nil, 1); !strings.Contains(got, "none") {
		t.Fatalf("nil smoother not labelled none: %q", got)
	}
}

func TestDrawHintReturnsAnnotatedCopy(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 200, 100))
	out := drawHint(src, "hello")
	if out == nil {
		t.Fatalf("nil image returned")
	}
	if out == image.Image(src) {
		t.Fatalf("annotation mutated the source image instead of copying")
	}
	if drawHint(src, "  ") != image.Image(src) {
		t.Fatalf("blank hint should return the input unchanged")
	}
}
