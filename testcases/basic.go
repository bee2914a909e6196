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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var basicCases = []TestCase{
	{
		Name:        "square_2x2",
		Path:        rectangle(0, 0, 10, 10),
		ResolutionX: 2,
		ResolutionY: 2,
	},
	{
		Name:        "rectangle",
		Path:        rectangle(5, 5, 45, 25),
		ResolutionX: 40,
		ResolutionY: 20,
	},
	{
		Name:        "triangle",
		Path:        triangle(0, 0, 40, 0, 20, 30),
		ResolutionX: 30,
		ResolutionY: 25,
	},
	{
		Name:        "diamond",
		Path:        diamond(20, 20, 15),
		ResolutionX: 20,
		ResolutionY: 20,
	},
	{
		Name:        "star_evenodd",
		Path:        fivePointStar(25, 25, 20),
		Rule:        EvenOdd,
		ResolutionX: 40,
		ResolutionY: 40,
	},
	{
		Name:        "star_nonzero",
		Path:        fivePointStar(25, 25, 20),
		Rule:        NonZero,
		ResolutionX: 40,
		ResolutionY: 40,
	},
	{
		Name:        "notched",
		Path:        notched(0, 0, 30, 30),
		ResolutionX: 24,
		ResolutionY: 24,
	},
	{
		Name:        "two_blobs",
		Path:        stacked(0, 0, 20, 8, 4),
		ResolutionX: 10,
		ResolutionY: 10,
	},
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return addRectangle(&path.Data{}, x1, y1, x2, y2)
}

func addRectangle(p *path.Data, x1, y1, x2, y2 float64) *path.Data {
	return p.
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return addTriangle(&path.Data{}, x1, y1, x2, y2, x3, y3)
}

func addTriangle(p *path.Data, x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return p.
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// diamond builds a square standing on one corner.  The top and bottom
// rows of a grid over a diamond touch the boundary in a single point.
func diamond(cx, cy, r float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx, cy-r)).
		LineTo(pt(cx+r, cy)).
		LineTo(pt(cx, cy+r)).
		LineTo(pt(cx-r, cy)).
		Close()
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) *path.Data {
	// five points, connecting every second point
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 + math.Pi/2
		pts[i] = vec.Vec2{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}

	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	p := (&path.Data{}).MoveTo(pts[0])
	for _, i := range []int{2, 4, 1, 3} {
		p = p.LineTo(pts[i])
	}
	return p.Close()
}

// notched builds a rectangle with a V-shaped notch cut into the top edge.
// The tip of the notch lies in the middle of the shape, so the row through
// the tip meets the boundary three times.
func notched(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt((x1+x2)/2, (y1+y2)/2)).
		LineTo(pt(x1, y2)).
		Close()
}

// stacked builds two rectangles of the given width and height on top of
// each other, separated by a gap.
func stacked(x, y, w, h, gap float64) *path.Data {
	p := addRectangle(&path.Data{}, x, y, x+w, y+h)
	return addRectangle(p, x, y+h+gap, x+w, y+2*h+gap)
}
