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

// Package testcases provides named boundary curves for testing and
// benchmarking grid fills.
package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase describes a single grid fill test.
type TestCase struct {
	Name        string     // lowercase a-z, 0-9 and _ only
	Path        *path.Data // the boundary curve, in millimetres
	Rule        FillRule   // which parts of the curve are filled
	ResolutionX int        // grid cells along the row direction (>0)
	ResolutionY int        // grid cells across the rows (>0)
	Angle       float64    // row direction in degrees, counter-clockwise from the x axis
}

// FillRule specifies the rule for determining interior points.
// The values agree with the fill rules of package boundary.
type FillRule int

const (
	EvenOdd FillRule = iota
	NonZero
)

func (r FillRule) String() string {
	if r == NonZero {
		return "nonzero"
	}
	return "evenodd"
}

// XAxis returns the unit vector pointing along the rows.
func (tc *TestCase) XAxis() vec.Vec2 {
	if tc.Angle == 0 {
		return vec.Vec2{X: 1}
	}
	a := tc.Angle * math.Pi / 180
	return vec.Vec2{X: math.Cos(a), Y: math.Sin(a)}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
