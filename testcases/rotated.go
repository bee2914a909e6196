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

var rotatedCases = []TestCase{
	{
		Name:        "rectangle_rot_30",
		Path:        rectangle(5, 5, 45, 25),
		ResolutionX: 40,
		ResolutionY: 30,
		Angle:       30,
	},
	{
		Name:        "ring_rot_45",
		Path:        ringShape(20, 20, 15, 6),
		ResolutionX: 40,
		ResolutionY: 40,
		Angle:       45,
	},
	{
		Name:        "ellipse_rot_90",
		Path:        ellipse(30, 15, 25, 10),
		ResolutionX: 20,
		ResolutionY: 50,
		Angle:       90,
	},
	{
		Name:        "triangle_rot_120",
		Path:        triangle(0, 0, 40, 0, 20, 30),
		ResolutionX: 30,
		ResolutionY: 30,
		Angle:       120,
	},
}
