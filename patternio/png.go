// seehuhn.de/go/gridfill - grid-fill embroidery stitch generation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package patternio

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gridfill/pattern"
)

// PNGOptions controls the appearance of PNG stitch plots.
type PNGOptions struct {
	// Scale is the number of pixels per device unit (0.1mm).
	Scale float64

	// LineWidth is the width of the thread lines, in pixels.
	LineWidth float64

	// Margin is the space around the plot, in pixels.
	Margin int

	// Background is the colour of the canvas.
	Background color.Color
}

var defaultPNGOptions = PNGOptions{
	Scale:      1,
	LineWidth:  1.5,
	Margin:     8,
	Background: color.White,
}

// WritePNG draws a stitch plot of p and writes it in PNG format.
// If opt is nil, default options are used.
func WritePNG(w io.Writer, p *pattern.Pattern, opt *PNGOptions) error {
	return png.Encode(w, Plot(p, opt))
}

// Plot draws a stitch plot of p.  Every run of stitches is drawn as a line
// in the colour of its thread.
func Plot(p *pattern.Pattern, opt *PNGOptions) *image.NRGBA {
	if opt == nil {
		opt = &defaultPNGOptions
	}
	scale := opt.Scale
	if scale <= 0 {
		scale = 1
	}

	box := plotBox(p, 0)
	margin := float64(opt.Margin)
	width := int(math.Ceil((box.URx-box.LLx)*scale + 2*margin))
	height := int(math.Ceil((box.URy-box.LLy)*scale + 2*margin))
	width, height = max(width, 1), max(height, 1)

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	bg := opt.Background
	if bg == nil {
		bg = color.White
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	toPixel := func(q vec.Vec2) vec.Vec2 {
		return vec.Vec2{
			X: (q.X-box.LLx)*scale + margin,
			Y: (q.Y-box.LLy)*scale + margin,
		}
	}

	r := vector.NewRasterizer(width, height)
	r.DrawOp = draw.Over
	hw := max(opt.LineWidth, 0.5) / 2
	for _, rn := range sewnRuns(p) {
		r.Reset(width, height)
		if len(rn.points) == 1 {
			addDot(r, toPixel(rn.points[0]), hw)
		}
		for i := 1; i < len(rn.points); i++ {
			addSegment(r, toPixel(rn.points[i-1]), toPixel(rn.points[i]), hw)
		}
		r.Draw(img, img.Bounds(), image.NewUniform(rn.thread.Color), image.Point{})
	}
	return img
}

// addSegment adds a rectangle of half width hw around the segment a-b.
func addSegment(r *vector.Rasterizer, a, b vec.Vec2, hw float64) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		addDot(r, a, hw)
		return
	}
	n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(hw / l)

	p0, p1 := a.Add(n), b.Add(n)
	p2, p3 := b.Sub(n), a.Sub(n)
	r.MoveTo(float32(p0.X), float32(p0.Y))
	r.LineTo(float32(p1.X), float32(p1.Y))
	r.LineTo(float32(p2.X), float32(p2.Y))
	r.LineTo(float32(p3.X), float32(p3.Y))
	r.ClosePath()
}

// addDot adds a small square centred at c.
func addDot(r *vector.Rasterizer, c vec.Vec2, hw float64) {
	x0, y0 := float32(c.X-hw), float32(c.Y-hw)
	x1, y1 := float32(c.X+hw), float32(c.Y+hw)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.ClosePath()
}
