package scatterplot

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/vinny-q-tip/scatter-smooth/src/smooth"
)

// Render draws the scatter plot (and, when a smoother is selected, the
// fitted trend curve) as a PNG into w. All validation and fitting happens
// before the first byte is written, so a failed call never produces a
// partial image.
func Render(s Series, o Options, w io.Writer) error {
	xs, ys, dateAxis, err := s.normalize()
	if err != nil {
		return err
	}

	// Spline fitting cannot tolerate duplicate x values, so it forces the
	// collapse even when the caller disabled it.
	_, isSpline := o.Smoother.(smooth.Spline)
	fitXs, fitYs, collapsed := dedupe(xs, ys, o.AvoidDupsForSmooth || isSpline)
	if collapsed && !o.AvoidDupsForSmooth {
		Warnf("spline smoothing requires unique x values; duplicate x values were averaged despite AvoidDupsForSmooth=false")
	}

	var fitted []float64
	if o.Smoother != nil {
		fitted, err = o.Smoother.Fit(fitXs, fitYs)
		if err != nil {
			return err
		}
	}

	width := o.Width
	if width <= 0 {
		width = 800
	}
	height := o.Height
	if height <= 0 {
		height = 320
	}

	// the chart backend needs at least two values per series
	plotXs, plotYs := padSeries(xs, ys)
	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "samples",
			XValues: plotXs,
			YValues: plotYs,
			Style: chart.Style{
				StrokeWidth:      0,
				DotWidth:         o.MarkerSize,
				DotColor:         o.MarkerColor,
				DotColorProvider: o.MarkerColorProvider,
			},
		},
	}
	if fitted != nil {
		lineXs, lineYs := padSeries(fitXs, fitted)
		series = append(series, chart.ContinuousSeries{
			Name:    o.LineLabel,
			XValues: lineXs,
			YValues: lineYs,
			Style: chart.Style{
				StrokeColor:     o.LineColor,
				StrokeWidth:     o.LineWidth,
				StrokeDashArray: o.LineDash,
			},
		})
	}

	ch := chart.Chart{
		Title:      o.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 10}},
		XAxis:      buildXAxis(xs, dateAxis, o),
		YAxis:      buildYAxis(o),
		Series:     series,
	}
	if o.LineLabel != "" && fitted != nil {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// Image renders the plot and decodes it back to an image, for callers that
// composite the chart into a UI instead of writing a file.
func Image(s Series, o Options) (image.Image, error) {
	var buf bytes.Buffer
	if err := Render(s, o, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

// buildXAxis assembles the x axis: explicit ticks when given (years on a
// date axis), generated round-valued ticks otherwise, and a formatter that
// maps numeric time values back to year labels.
func buildXAxis(xs []float64, dateAxis bool, o Options) chart.XAxis {
	xa := chart.XAxis{Name: o.XLabel}

	minX, maxX := xs[0], xs[len(xs)-1]
	if maxX <= minX {
		// a single distinct x still needs a non-zero axis span
		xa.Range = &chart.ContinuousRange{Min: minX - 1, Max: maxX + 1}
	}

	switch {
	case len(o.XTicks) > 0 && dateAxis:
		ticks := make([]chart.Tick, 0, len(o.XTicks))
		for _, year := range o.XTicks {
			t := time.Date(int(year), time.January, 1, 0, 0, 0, 0, time.UTC)
			ticks = append(ticks, chart.Tick{Value: chart.TimeToFloat64(t), Label: fmt.Sprintf("%d", int(year))})
		}
		xa.Ticks = ticks
	case len(o.XTicks) > 0:
		ticks := make([]chart.Tick, 0, len(o.XTicks))
		for _, v := range o.XTicks {
			ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		}
		xa.Ticks = ticks
	case dateAxis:
		xa.Ticks = yearTicks(minX, maxX)
		if n := len(xa.Ticks); n > 0 {
			// year boundaries can land outside the data span
			lo := math.Min(minX, xa.Ticks[0].Value)
			hi := math.Max(maxX, xa.Ticks[n-1].Value)
			if hi > lo {
				xa.Range = &chart.ContinuousRange{Min: lo, Max: hi}
			}
		}
		xa.ValueFormatter = func(v interface{}) string {
			if f, ok := v.(float64); ok {
				return timeFromFloat(f).UTC().Format("2006")
			}
			return ""
		}
	default:
		ticks := niceTicks(minX, maxX, 7)
		xa.Ticks = make([]chart.Tick, 0, len(ticks))
		for _, v := range ticks {
			xa.Ticks = append(xa.Ticks, chart.Tick{Value: v, Label: formatTick(v)})
		}
	}
	if len(xa.Ticks) == 1 {
		xa.Ticks = append(xa.Ticks, chart.Tick{Value: xa.Ticks[0].Value + 1, Label: ""})
	}
	return xa
}

// yearTicks places round-stepped year ticks across the numeric time span.
func yearTicks(minX, maxX float64) []chart.Tick {
	y0 := timeFromFloat(minX).UTC().Year()
	y1 := timeFromFloat(maxX).UTC().Year()
	years := niceTicks(float64(y0), float64(y1), 7)
	ticks := make([]chart.Tick, 0, len(years))
	for _, y := range years {
		t := time.Date(int(y), time.January, 1, 0, 0, 0, 0, time.UTC)
		ticks = append(ticks, chart.Tick{Value: chart.TimeToFloat64(t), Label: fmt.Sprintf("%d", int(y))})
	}
	return ticks
}

// padSeries duplicates a lone point so the backend always sees two values.
func padSeries(xs, ys []float64) ([]float64, []float64) {
	if len(xs) != 1 {
		return xs, ys
	}
	return []float64{xs[0], xs[0]}, []float64{ys[0], ys[0]}
}

func buildYAxis(o Options) chart.YAxis {
	ya := chart.YAxis{Name: o.YLabel}
	if o.YLimit != nil {
		ya.Range = &chart.ContinuousRange{Min: o.YLimit[0], Max: o.YLimit[1]}
	}
	return ya
}
