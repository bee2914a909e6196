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

// Package boundary answers the geometric questions the grid fill asks about
// a closed boundary curve: where a straight line crosses the curve, whether
// a point lies inside, and how large the curve is when measured in the frame
// of a given plane.
//
// Curves are given as [path.Data] in model units.  Intersections are
// computed exactly on the Bézier segments, without flattening.
package boundary

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// ErrZeroAxis is returned by [NewPlane] if the axis has length zero.
var ErrZeroAxis = errors.New("plane axis has zero length")

// Plane is a two-dimensional frame: an origin together with a unit x axis.
// The y axis is obtained by rotating the x axis by 90 degrees
// counter-clockwise.
type Plane struct {
	Origin vec.Vec2
	XAxis  vec.Vec2
}

// WorldXY is the plane of the model coordinate system.
var WorldXY = Plane{XAxis: vec.Vec2{X: 1}}

// NewPlane returns the plane with the given origin whose x axis points in
// the direction of xAxis.
func NewPlane(origin, xAxis vec.Vec2) (Plane, error) {
	l := xAxis.Length()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Plane{}, ErrZeroAxis
	}
	return Plane{Origin: origin, XAxis: xAxis.Mul(1 / l)}, nil
}

// IsValid reports whether the x axis of p is a unit vector.
func (p Plane) IsValid() bool {
	return math.Abs(p.XAxis.Length()-1) < 1e-9
}

// YAxis returns the y axis of the plane.
func (p Plane) YAxis() vec.Vec2 {
	return vec.Vec2{X: -p.XAxis.Y, Y: p.XAxis.X}
}

// PointAt converts plane coordinates into model coordinates.
func (p Plane) PointAt(u, v float64) vec.Vec2 {
	return p.Origin.Add(p.XAxis.Mul(u)).Add(p.YAxis().Mul(v))
}

// Local converts a point in model coordinates into plane coordinates.
func (p Plane) Local(q vec.Vec2) (u, v float64) {
	d := q.Sub(p.Origin)
	return d.Dot(p.XAxis), d.Dot(p.YAxis())
}

// Matrix returns the transformation from plane coordinates to model
// coordinates.
func (p Plane) Matrix() matrix.Matrix {
	y := p.YAxis()
	return matrix.Matrix{p.XAxis.X, p.XAxis.Y, y.X, y.Y, p.Origin.X, p.Origin.Y}
}

// WithOrigin returns a copy of p, moved to the new origin.
func (p Plane) WithOrigin(origin vec.Vec2) Plane {
	p.Origin = origin
	return p
}
