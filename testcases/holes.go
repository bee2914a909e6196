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
	"seehuhn.de/go/geom/path"
)

var holeCases = []TestCase{
	{
		Name:        "ring_shape",
		Path:        ringShape(5, 5, 5, 2),
		ResolutionX: 10,
		ResolutionY: 10,
	},
	{
		Name:        "circle_annulus",
		Path:        addCircle(circle(20, 20, 15), 20, 20, 7),
		ResolutionX: 30,
		ResolutionY: 30,
	},
	{
		Name:        "multiple_rings",
		Path:        multipleRings(40, 40),
		ResolutionX: 50,
		ResolutionY: 50,
	},
	{
		Name:        "two_triangles",
		Path:        addTriangle(triangle(4, 0, 16, 0, 10, 12), 24, 0, 36, 0, 30, 12),
		Rule:        NonZero,
		ResolutionX: 36,
		ResolutionY: 12,
	},
	{
		Name:        "overlapping_rect_nonzero",
		Path:        addRectangle(rectangle(0, 0, 30, 30), 14, 14, 44, 44),
		Rule:        NonZero,
		ResolutionX: 44,
		ResolutionY: 44,
	},
	{
		Name:        "overlapping_rect_evenodd",
		Path:        addRectangle(rectangle(0, 0, 30, 30), 14, 14, 44, 44),
		Rule:        EvenOdd,
		ResolutionX: 44,
		ResolutionY: 44,
	},
	{
		Name:        "many_small_shapes",
		Path:        manySmallShapes(4, 4),
		Rule:        NonZero,
		ResolutionX: 56,
		ResolutionY: 56,
	},
}

// ringShape builds a ring: an outer square with a square hole.  Both
// squares have the same orientation, so the hole needs the even-odd rule.
func ringShape(cx, cy, outerSize, innerSize float64) *path.Data {
	p := addRectangle(&path.Data{}, cx-outerSize, cy-outerSize, cx+outerSize, cy+outerSize)
	return addRectangle(p, cx-innerSize, cy-innerSize, cx+innerSize, cy+innerSize)
}

// multipleRings builds three separate square rings.
func multipleRings(cx, cy float64) *path.Data {
	rings := []struct{ cx, cy, outer, inner float64 }{
		{cx - 20, cy - 20, 15, 7},
		{cx + 20, cy - 20, 15, 7},
		{cx, cy + 20, 15, 7},
	}
	p := &path.Data{}
	for _, ring := range rings {
		p = ringShapeAt(p, ring.cx, ring.cy, ring.outer, ring.inner)
	}
	return p
}

func ringShapeAt(p *path.Data, cx, cy, outerSize, innerSize float64) *path.Data {
	p = addRectangle(p, cx-outerSize, cy-outerSize, cx+outerSize, cy+outerSize)
	return addRectangle(p, cx-innerSize, cy-innerSize, cx+innerSize, cy+innerSize)
}

// manySmallShapes builds a grid of small triangles.
func manySmallShapes(rows, cols int) *path.Data {
	const (
		size    = 5.0
		spacing = 14.0
	)
	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			cx := 7 + float64(col)*spacing
			cy := 7 + float64(row)*spacing
			p = addTriangle(p, cx-size, cy-size, cx+size, cy-size, cx, cy+size)
		}
	}
	return p
}
