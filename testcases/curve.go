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

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:        "circle",
		Path:        circle(20, 20, 15),
		ResolutionX: 30,
		ResolutionY: 30,
	},
	{
		Name:        "circle_small",
		Path:        circle(2, 2, 1.5),
		ResolutionX: 6,
		ResolutionY: 6,
	},
	{
		Name:        "ellipse",
		Path:        ellipse(30, 15, 25, 10),
		ResolutionX: 50,
		ResolutionY: 20,
	},
	{
		Name:        "quadratic",
		Path:        quadraticCurve(0, 0, 20, 40, 40, 0),
		ResolutionX: 40,
		ResolutionY: 20,
	},
	{
		Name:        "quadratic_s_shape",
		Path:        sCurveQuadratic(0, 20, 40, 20),
		ResolutionX: 40,
		ResolutionY: 30,
	},
	{
		Name:        "cubic",
		Path:        cubicCurve(0, 0, 5, 40, 35, 40, 40, 0),
		ResolutionX: 40,
		ResolutionY: 30,
	},
	{
		Name:        "cubic_scurve",
		Path:        cubicCurve(0, 0, 40, 40, 0, 40, 40, 0),
		ResolutionX: 40,
		ResolutionY: 30,
	},
}

// quadraticCurve builds a closed shape with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close()
}

// cubicCurve builds a closed shape with a cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)).
		Close()
}

// sCurveQuadratic builds a closed S-shaped path from two quadratic Bezier curves.
func sCurveQuadratic(x1, y1, x2, y2 float64) *path.Data {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1-20), pt(midX, midY)). // first half bulges down
		QuadTo(pt((midX+x2)/2, y2+20), pt(x2, y2)).     // second half bulges up
		Close()
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) *path.Data {
	return addCircle(&path.Data{}, cx, cy, r)
}

func addCircle(p *path.Data, cx, cy, r float64) *path.Data {
	return addEllipse(p, cx, cy, r, r)
}

// ellipse builds an axis-aligned ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	return addEllipse(&path.Data{}, cx, cy, rx, ry)
}

func addEllipse(p *path.Data, cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa

	return p.
		MoveTo(pt(cx+rx, cy)).                                     // start at right
		CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)). // top-right quadrant
		CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)). // top-left quadrant
		CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)). // bottom-left quadrant
		CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)). // bottom-right quadrant
		Close()
}
