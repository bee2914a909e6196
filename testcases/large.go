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

var largeCases = []TestCase{
	{
		Name:        "large_rectangle",
		Path:        rectangle(0, 0, 200, 120),
		ResolutionX: 400,
		ResolutionY: 240,
	},
	{
		Name:        "large_concentric_nonzero",
		Path:        addCircle(addCircle(circle(100, 100, 90), 100, 100, 60), 100, 100, 30),
		Rule:        NonZero,
		ResolutionX: 300,
		ResolutionY: 300,
	},
	{
		Name:        "large_concentric_evenodd",
		Path:        addCircle(addCircle(circle(100, 100, 90), 100, 100, 60), 100, 100, 30),
		Rule:        EvenOdd,
		ResolutionX: 300,
		ResolutionY: 300,
	},
	{
		Name:        "large_grid",
		Path:        rectangleGrid(8, 8, 20, 20, 5),
		ResolutionX: 200,
		ResolutionY: 200,
	},
}

// rectangleGrid builds rows×cols separate rectangles of the given size.
func rectangleGrid(rows, cols int, width, height, gap float64) *path.Data {
	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			x := float64(col) * (width + gap)
			y := float64(row) * (height + gap)
			p = addRectangle(p, x, y, x+width, y+height)
		}
	}
	return p
}
