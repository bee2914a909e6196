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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/gridfill/pattern"
	"seehuhn.de/go/gridfill/stitch"
)

// Device units are 0.1mm, PDF units are 1/72 inch.
const pdfUnit = 72 / 254.0

// pdfMargin is the space around the plot, in device units.
const pdfMargin = 50

// WritePDF writes a single-page stitch plot of p.  Each run of stitches is
// drawn as a line in the colour of its thread.
func WritePDF(fname string, p *pattern.Pattern) error {
	box := plotBox(p, pdfMargin)

	paper := &pdf.Rectangle{
		URx: (box.URx - box.LLx) * pdfUnit,
		URy: (box.URy - box.LLy) * pdfUnit,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Device y points down, PDF y points up.
	page.Transform(matrix.Matrix{pdfUnit, 0, 0, -pdfUnit, -box.LLx * pdfUnit, box.URy * pdfUnit})

	page.SetLineWidth(3)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	for _, r := range sewnRuns(p) {
		red, green, blue := pdfRGB(r.thread)
		page.SetStrokeColor(color.DeviceRGB{red, green, blue})
		page.MoveTo(r.points[0].X, r.points[0].Y)
		if len(r.points) == 1 {
			// a zero-length segment with round caps shows as a dot
			page.LineTo(r.points[0].X, r.points[0].Y)
		}
		for _, pt := range r.points[1:] {
			page.LineTo(pt.X, pt.Y)
		}
		page.Stroke()
	}

	return page.Close()
}

// pdfRGB returns the colour of t as DeviceRGB components in [0, 1].
func pdfRGB(t *stitch.Thread) (r, g, b float64) {
	c := t.Color
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}
