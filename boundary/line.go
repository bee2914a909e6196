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

package boundary

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Line is a straight line segment, parametrised over [0, 1].
type Line struct {
	P0, P1 vec.Vec2
}

// PointAt returns the point at parameter t.
func (l Line) PointAt(t float64) vec.Vec2 {
	return l.P0.Add(l.P1.Sub(l.P0).Mul(t))
}

// Length returns the distance between the end points.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Length()
}

// ClosestParameter returns the parameter of the point on the infinite line
// through l which is closest to p.  The result is not clamped to [0, 1].
// For a line of length zero the result is 0.
func (l Line) ClosestParameter(p vec.Vec2) float64 {
	d := l.P1.Sub(l.P0)
	d2 := d.Dot(d)
	if d2 == 0 {
		return 0
	}
	return p.Sub(l.P0).Dot(d) / d2
}

// DivideByCount splits the line into n pieces of equal length and returns
// the parameters of the division points.  If includeEnds is set, the result
// contains n+1 values, starting with 0 and ending with 1.  Otherwise the
// two end points are omitted.
func (l Line) DivideByCount(n int, includeEnds bool) []float64 {
	if n < 1 {
		return nil
	}
	res := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		if !includeEnds && (i == 0 || i == n) {
			continue
		}
		res = append(res, float64(i)/float64(n))
	}
	return res
}

// distance returns the distance of p from the infinite line through l.
func (l Line) distance(p vec.Vec2) float64 {
	d := l.P1.Sub(l.P0)
	n := d.Length()
	if n == 0 {
		return p.Sub(l.P0).Length()
	}
	q := p.Sub(l.P0)
	return math.Abs(q.X*d.Y-q.Y*d.X) / n
}
