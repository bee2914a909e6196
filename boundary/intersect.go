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
	"cmp"
	"slices"

	"honnef.co/go/curve"
)

// Event is an intersection between a line and a boundary.
//
// For a point intersection, T is the line parameter of the intersection.
// For an overlap, where the line runs along a straight piece of the
// boundary, the line parameters covered by the overlap are [T0, T1] and T
// equals T0.  All parameters are in [0, 1].
type Event struct {
	Overlap bool
	T       float64
	T0, T1  float64
}

// Intersect returns the intersections of the line l with the boundary,
// ordered by line parameter.
//
// Intersections closer than tol (in model units) to each other are
// reported once.  Intersections within distance tol of the ends of l,
// including those slightly beyond the ends, are reported at parameter 0 or
// 1, so that a line which ends on the boundary finds the end point.
// Straight pieces of the boundary which lie within tol of l are reported as
// overlaps; point intersections inside an overlap are absorbed into it.
func (b *Boundary) Intersect(l Line, tol float64) []Event {
	length := l.Length()
	if length == 0 {
		return nil
	}
	ext := tol / length
	d := l.P1.Sub(l.P0)
	probe := curve.Line{
		P0: pt(l.P0.Sub(d.Mul(ext))),
		P1: pt(l.P1.Add(d.Mul(ext))),
	}
	scale := 1 + 2*ext

	var points []float64
	var overlaps []Event
	for _, seg := range b.segs {
		if seg.Kind == curve.LineKind {
			a, c := fromPt(seg.P0), fromPt(seg.P1)
			if l.distance(a) <= tol && l.distance(c) <= tol {
				t0, t1 := l.ClosestParameter(a), l.ClosestParameter(c)
				if t0 > t1 {
					t0, t1 = t1, t0
				}
				if t1 < -ext || t0 > 1+ext {
					continue
				}
				t0, t1 = snap(t0, ext), snap(t1, ext)
				if t1-t0 <= ext {
					points = append(points, (t0+t1)/2)
				} else {
					overlaps = append(overlaps, Event{Overlap: true, T: t0, T0: t0, T1: t1})
				}
				continue
			}
		}

		hits, n := seg.IntersectLine(probe)
		for _, h := range hits[:n] {
			points = append(points, snap(h.LineT*scale-ext, ext))
		}
	}

	// Merge touching overlaps.
	slices.SortFunc(overlaps, func(a, b Event) int { return cmp.Compare(a.T0, b.T0) })
	var merged []Event
	for _, o := range overlaps {
		if k := len(merged) - 1; k >= 0 && o.T0 <= merged[k].T1+ext {
			merged[k].T1 = max(merged[k].T1, o.T1)
			continue
		}
		merged = append(merged, o)
	}

	// Coalesce point hits and drop the ones covered by an overlap.
	slices.Sort(points)
	var res []Event
	last := -1.0
	for i, t := range points {
		if i > 0 && t-last <= ext {
			continue
		}
		last = t
		if slices.ContainsFunc(merged, func(o Event) bool {
			return t >= o.T0-ext && t <= o.T1+ext
		}) {
			continue
		}
		res = append(res, Event{T: t})
	}

	res = append(res, merged...)
	slices.SortStableFunc(res, func(a, b Event) int { return cmp.Compare(a.T, b.T) })
	return res
}

// Params flattens a list of events into line parameters.  Each overlap
// contributes its smallest and largest parameter.
func Params(events []Event) []float64 {
	res := make([]float64, 0, len(events)+2)
	for _, e := range events {
		if e.Overlap {
			res = append(res, e.T0, e.T1)
		} else {
			res = append(res, e.T)
		}
	}
	slices.Sort(res)
	return res
}

// snap maps parameters within ext of the ends of the line to the end
// points and clamps the result to [0, 1].
func snap(t, ext float64) float64 {
	switch {
	case t <= ext:
		return 0
	case t >= 1-ext:
		return 1
	default:
		return t
	}
}
