package scatterplot

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/vinny-q-tip/scatter-smooth/src/smooth"
)

// Options configures one rendering call. The styling fields are passed to
// the chart backend verbatim; zero values fall back to the backend's
// defaults. Alpha is expressed through the color's A channel.
type Options struct {
	// Smoother selects the trend curve strategy; nil draws no curve.
	Smoother smooth.Method
	// AvoidDupsForSmooth collapses duplicate x values (averaging the y's)
	// before the curve fit. Spline smoothing overrides a false setting
	// because it cannot tolerate duplicates; the override is logged.
	AvoidDupsForSmooth bool

	Width  int
	Height int
	Title  string
	XLabel string
	YLabel string
	// YLimit clamps the y axis to [YLimit[0], YLimit[1]] when set.
	YLimit *[2]float64
	// XTicks are explicit tick positions. On a date axis they are years
	// (e.g. 2021) and are placed at January 1 of each year.
	XTicks []float64

	// scatter layer
	MarkerSize  float64
	MarkerColor drawing.Color
	// MarkerColorProvider assigns per-point colors, for colormap-style
	// shading. Takes precedence over MarkerColor when set.
	MarkerColorProvider chart.DotColorProvider

	// trend curve layer
	LineColor drawing.Color
	LineWidth float64
	LineDash  []float64
	LineLabel string
}

// DefaultOptions returns the baseline configuration: deduplication on, a
// black 2px trend line and 4px point markers.
func DefaultOptions() Options {
	return Options{
		AvoidDupsForSmooth: true,
		Width:              800,
		Height:             320,
		MarkerSize:         4,
		MarkerColor:        chart.ColorBlue,
		LineColor:          chart.ColorBlack,
		LineWidth:          2,
	}
}
