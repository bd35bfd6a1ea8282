package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vinny-q-tip/scatter-smooth/src/smooth"
)

// chartSize clamps the chart to a readable size derived from the window
// width, keeping roughly a 2.5:1 aspect ratio.
func chartSize(winWidth int) (int, int) {
	w := winWidth - 24
	if w < 640 {
		w = 640
	}
	h := int(float32(w) * 0.4)
	if h < 260 {
		h = 260
	}
	if h > 560 {
		h = 560
	}
	return w, h
}

// hintText summarizes the current view for the on-image annotation.
func hintText(path string, m smooth.Method, points int) string {
	name := "none"
	if m != nil {
		name = m.Name()
	}
	base := path
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		base = path[i+1:]
	}
	return fmt.Sprintf("%s: %d points, smoother: %s", base, points, name)
}

// drawHint stamps a small annotation near the bottom-left of the image,
// with a dark backing rectangle and a drop shadow for contrast.
func drawHint(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)

	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	shadowCol := image.NewUniform(color.RGBA{A: 180})
	dr := &font.Drawer{Dst: rgba, Src: textCol, Face: face}
	tw := dr.MeasureString(text).Ceil()

	const pad = 6
	x := b.Min.X + 8
	y := b.Max.Y - 6
	bg := image.NewUniform(color.RGBA{A: 200})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)

	drShadow := &font.Drawer{Dst: rgba, Src: shadowCol, Face: face, Dot: fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(y + 1)}}
	drShadow.DrawString(text)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}
