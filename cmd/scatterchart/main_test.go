package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vinny-q-tip/scatter-smooth/src/smooth"
)

func TestParseFlagsDefaults(t *testing.T) {
	c, err := parseFlags([]string{"-in", "data.csv"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.smoother != "none" || !c.dedup || c.width != 800 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.params.Frac != 0.66 || c.params.Iter != 3 || c.params.Degree != 1 {
		t.Fatalf("smoothing defaults wrong: %+v", c.params)
	}
}

func TestParseFlagsRequiresInput(t *testing.T) {
	if _, err := parseFlags(nil); err == nil {
		t.Fatalf("missing -in accepted")
	}
}

func TestParseFlagsYLim(t *testing.T) {
	c, err := parseFlags([]string{"-in", "d.csv", "-ylim", "0:12.5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.hasYLim || c.yMin != 0 || c.yMax != 12.5 {
		t.Fatalf("y limits not parsed: %+v", c)
	}
	if _, err := parseFlags([]string{"-in", "d.csv", "-ylim", "banana"}); err == nil {
		t.Fatalf("bad -ylim accepted")
	}
}

func TestBuildOptionsRejectsUnknownSmoother(t *testing.T) {
	c, err := parseFlags([]string{"-in", "d.csv", "-smoother", "bogus"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := buildOptions(c); err == nil {
		t.Fatalf("unknown smoother accepted")
	}
}

func TestBuildOptionsCarriesTicksAndLabel(t *testing.T) {
	c, err := parseFlags([]string{"-in", "d.csv", "-smoother", "lowess", "-xticks", "2020, 2022,2024"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	o, err := buildOptions(c)
	if err != nil {
		t.Fatalf("build options: %v", err)
	}
	if len(o.XTicks) != 3 || o.XTicks[1] != 2022 {
		t.Fatalf("x ticks not parsed: %v", o.XTicks)
	}
	if _, ok := o.Smoother.(smooth.Lowess); !ok || o.LineLabel != "lowess" {
		t.Fatalf("smoother not wired: %#v label=%q", o.Smoother, o.LineLabel)
	}
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.png")
	csv := "x,y\n1,10\n2,12\n3,9\n4,15\n5,13\n6,18\n"
	if err := os.WriteFile(in, []byte(csv), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	c, err := parseFlags([]string{"-in", in, "-out", out, "-smoother", "linear"})
	if err != nil {
		t.Fatalf("flags: %v", err)
	}
	if err := run(c); err != nil {
		t.Fatalf("run: %v", err)
	}
	if st, err := os.Stat(out); err != nil || st.Size() == 0 {
		t.Fatalf("output PNG missing or empty: %v", err)
	}
}

func TestRunRemovesOutputOnFitFailure(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.png")
	if err := os.WriteFile(in, []byte("1,10\n2,20\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	// degree 5 with two points is underdetermined
	c, err := parseFlags([]string{"-in", in, "-out", out, "-smoother", "poly", "-degree", "5"})
	if err != nil {
		t.Fatalf("flags: %v", err)
	}
	if err := run(c); err == nil {
		t.Fatalf("underdetermined fit accepted")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("failed run left output file behind")
	}
}
