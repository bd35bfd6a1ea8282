// Command scatterchart renders a CSV of (x, y) samples to a PNG scatter
// plot, optionally overlaying a smoothed trend curve.
//
// Usage:
//
//	scatterchart -in samples.csv -out plot.png -smoother lowess -frac 0.4
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vinny-q-tip/scatter-smooth/src/scatterplot"
	"github.com/vinny-q-tip/scatter-smooth/src/smooth"
)

type cliConfig struct {
	in       string
	out      string
	smoother string
	params   smooth.Params
	dedup    bool
	title    string
	xLabel   string
	yLabel   string
	width    int
	height   int
	yMin     float64
	yMax     float64
	hasYLim  bool
	xTicks   string
	logLevel string
}

func parseFlags(args []string) (cliConfig, error) {
	fs := flag.NewFlagSet("scatterchart", flag.ContinueOnError)
	c := cliConfig{params: smooth.DefaultParams()}
	fs.StringVar(&c.in, "in", "", "Input CSV path (x,y per row; x numeric or a date)")
	fs.StringVar(&c.out, "out", "scatter.png", "Output PNG path")
	fs.StringVar(&c.smoother, "smoother", "none", "Trend curve: none, linear, poly, lowess, splines")
	fs.IntVar(&c.params.Degree, "degree", c.params.Degree, "Polynomial degree / spline penalty order")
	fs.Float64Var(&c.params.Frac, "frac", c.params.Frac, "Lowess neighborhood fraction in (0,1]")
	fs.IntVar(&c.params.Iter, "it", c.params.Iter, "Lowess robustifying iterations")
	fs.Float64Var(&c.params.Delta, "delta", c.params.Delta, "Lowess interpolation distance")
	fs.Float64Var(&c.params.Smoothing, "smoothing", c.params.Smoothing, "Spline smoothing factor (0 interpolates)")
	fs.BoolVar(&c.dedup, "dedup", true, "Average duplicate x values before fitting")
	fs.StringVar(&c.title, "title", "", "Chart title")
	fs.StringVar(&c.xLabel, "xlabel", "", "X axis label")
	fs.StringVar(&c.yLabel, "ylabel", "", "Y axis label")
	fs.IntVar(&c.width, "w", 800, "Image width in pixels")
	fs.IntVar(&c.height, "h", 320, "Image height in pixels")
	fs.StringVar(&c.xTicks, "xticks", "", "Comma separated x tick positions (years on a date axis)")
	ylim := fs.String("ylim", "", "Y axis limits as min:max")
	fs.StringVar(&c.logLevel, "loglevel", "warn", "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if c.in == "" {
		return c, fmt.Errorf("missing required -in flag")
	}
	if *ylim != "" {
		parts := strings.SplitN(*ylim, ":", 2)
		if len(parts) != 2 {
			return c, fmt.Errorf("bad -ylim %q, want min:max", *ylim)
		}
		var err error
		if c.yMin, err = strconv.ParseFloat(parts[0], 64); err != nil {
			return c, fmt.Errorf("bad -ylim minimum %q", parts[0])
		}
		if c.yMax, err = strconv.ParseFloat(parts[1], 64); err != nil {
			return c, fmt.Errorf("bad -ylim maximum %q", parts[1])
		}
		c.hasYLim = true
	}
	return c, nil
}

func buildOptions(c cliConfig) (scatterplot.Options, error) {
	m, err := smooth.Parse(c.smoother, c.params)
	if err != nil {
		return scatterplot.Options{}, err
	}
	o := scatterplot.DefaultOptions()
	o.Smoother = m
	o.AvoidDupsForSmooth = c.dedup
	o.Title = c.title
	o.XLabel = c.xLabel
	o.YLabel = c.yLabel
	o.Width = c.width
	o.Height = c.height
	if c.hasYLim {
		o.YLimit = &[2]float64{c.yMin, c.yMax}
	}
	if c.xTicks != "" {
		for _, part := range strings.Split(c.xTicks, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return o, fmt.Errorf("bad -xticks entry %q", part)
			}
			o.XTicks = append(o.XTicks, v)
		}
	}
	if m != nil {
		o.LineLabel = m.Name()
	}
	return o, nil
}

func run(c cliConfig) error {
	scatterplot.SetLogLevel(c.logLevel)
	series, err := scatterplot.LoadCSV(c.in)
	if err != nil {
		return err
	}
	o, err := buildOptions(c)
	if err != nil {
		return err
	}
	f, err := os.Create(c.out)
	if err != nil {
		return err
	}
	if err := scatterplot.Render(series, o, f); err != nil {
		f.Close()
		os.Remove(c.out)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	scatterplot.Infof("wrote %s (%d samples)", c.out, len(series.Ys))
	return nil
}

func main() {
	c, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if err := run(c); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
