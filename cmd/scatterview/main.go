// Command scatterview is a desktop viewer for scatter plots with smoothed
// trend curves. It loads a two-column CSV (x numeric or date-valued, y
// numeric), lets the user pick a smoothing strategy and its parameters, and
// re-renders on every change. Charts can be exported as PNG.
//
// With -out the viewer renders once headlessly and exits, which is used to
// produce documentation screenshots.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strconv"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/vinny-q-tip/scatter-smooth/src/scatterplot"
	"github.com/vinny-q-tip/scatter-smooth/src/smooth"
)

type uiState struct {
	app    fyne.App
	window fyne.Window

	filePath string
	series   scatterplot.Series

	smoother  string
	params    smooth.Params
	dedup     bool
	showHints bool

	imgCanvas *canvas.Image
	status    *widget.Label
}

func main() {
	var fileFlag, outFlag, smootherFlag string
	flag.StringVar(&fileFlag, "file", "", "CSV file to open on start")
	flag.StringVar(&outFlag, "out", "", "Render once to this PNG and exit (headless)")
	flag.StringVar(&smootherFlag, "smoother", "none", "Initial smoother selection")
	flag.Parse()

	if outFlag != "" {
		if err := renderHeadless(fileFlag, outFlag, smootherFlag); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	a := app.NewWithID("com.scattersmooth.viewer")
	w := a.NewWindow("Scatter Smooth")
	w.Resize(fyne.NewSize(980, 620))

	state := &uiState{
		app:      a,
		window:   w,
		filePath: fileFlag,
		smoother: smootherFlag,
		params:   smooth.DefaultParams(),
		dedup:    true,
	}
	state.imgCanvas = canvas.NewImageFromImage(blankImage(800, 320))
	state.imgCanvas.FillMode = canvas.ImageFillContain
	state.status = widget.NewLabel("open a CSV file to begin")

	fileLabel := widget.NewLabel(state.filePath)
	openBtn := widget.NewButton("Open…", func() {
		d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
			if err != nil || rc == nil {
				return
			}
			defer rc.Close()
			state.filePath = rc.URI().Path()
			fileLabel.SetText(state.filePath)
			loadAndRedraw(state)
		}, state.window)
		d.Show()
	})

	smootherSelect := widget.NewSelect([]string{"none", "linear", "poly", "lowess", "splines"}, func(v string) {
		state.smoother = v
		redraw(state)
	})
	smootherSelect.Selected = state.smoother

	degreeEntry := newIntEntry(state.params.Degree, func(v int) {
		state.params.Degree = v
		redraw(state)
	})
	fracEntry := newFloatEntry(state.params.Frac, func(v float64) {
		state.params.Frac = v
		redraw(state)
	})
	smoothingEntry := newFloatEntry(state.params.Smoothing, func(v float64) {
		state.params.Smoothing = v
		redraw(state)
	})

	dedupChk := widget.NewCheck("Average duplicates", func(v bool) {
		state.dedup = v
		redraw(state)
	})
	dedupChk.SetChecked(true)
	hintsChk := widget.NewCheck("Hints", func(v bool) {
		state.showHints = v
		redraw(state)
	})

	exportBtn := widget.NewButton("Export PNG…", func() { exportPNG(state) })

	controls := container.NewHBox(
		openBtn, fileLabel,
		widget.NewLabel("Smoother:"), smootherSelect,
		widget.NewLabel("degree"), degreeEntry,
		widget.NewLabel("frac"), fracEntry,
		widget.NewLabel("smoothing"), smoothingEntry,
		dedupChk, hintsChk, exportBtn,
	)
	w.SetContent(container.NewBorder(controls, state.status, nil, nil, state.imgCanvas))

	if state.filePath != "" {
		loadAndRedraw(state)
	}
	w.ShowAndRun()
}

func loadAndRedraw(state *uiState) {
	s, err := scatterplot.LoadCSV(state.filePath)
	if err != nil {
		dialog.ShowError(err, state.window)
		return
	}
	state.series = s
	redraw(state)
}

func redraw(state *uiState) {
	if len(state.series.Ys) == 0 {
		return
	}
	o, err := viewOptions(state)
	if err != nil {
		state.status.SetText(err.Error())
		return
	}
	img, err := scatterplot.Image(state.series, o)
	if err != nil {
		state.status.SetText(err.Error())
		return
	}
	if state.showHints {
		img = drawHint(img, hintText(state.filePath, o.Smoother, len(state.series.Ys)))
	}
	state.imgCanvas.Image = img
	w, h := chartSize(int(state.window.Canvas().Size().Width))
	state.imgCanvas.SetMinSize(fyne.NewSize(float32(w)/2, float32(h)/2))
	state.imgCanvas.Refresh()
	state.status.SetText(fmt.Sprintf("%d points", len(state.series.Ys)))
}

func viewOptions(state *uiState) (scatterplot.Options, error) {
	m, err := smooth.Parse(state.smoother, state.params)
	if err != nil {
		return scatterplot.Options{}, err
	}
	o := scatterplot.DefaultOptions()
	o.Smoother = m
	o.AvoidDupsForSmooth = state.dedup
	w, h := chartSize(int(state.window.Canvas().Size().Width))
	o.Width = w
	o.Height = h
	if m != nil {
		o.LineLabel = m.Name()
	}
	return o, nil
}

func exportPNG(state *uiState) {
	if state.imgCanvas == nil || state.imgCanvas.Image == nil {
		dialog.ShowInformation("Export", "No chart to export.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		_ = png.Encode(wc, state.imgCanvas.Image)
	}, state.window)
	fs.SetFileName("scatter.png")
	fs.Show()
}

// renderHeadless renders once without a window, for screenshots and smoke
// checks in environments without a display.
func renderHeadless(in, out, smoother string) error {
	if in == "" {
		return fmt.Errorf("missing -file flag")
	}
	s, err := scatterplot.LoadCSV(in)
	if err != nil {
		return err
	}
	m, err := smooth.Parse(smoother, smooth.DefaultParams())
	if err != nil {
		return err
	}
	o := scatterplot.DefaultOptions()
	o.Smoother = m
	if m != nil {
		o.LineLabel = m.Name()
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	return scatterplot.Render(s, o, f)
}

func blankImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

func newIntEntry(initial int, onChange func(int)) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(strconv.Itoa(initial))
	e.OnSubmitted = func(v string) {
		if n, err := strconv.Atoi(v); err == nil {
			onChange(n)
		}
	}
	return e
}

func newFloatEntry(initial float64, onChange func(float64)) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(strconv.FormatFloat(initial, 'g', -1, 64))
	e.OnSubmitted = func(v string) {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			onChange(f)
		}
	}
	return e
}
