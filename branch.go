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

package gridfill

import (
	"slices"

	"seehuhn.de/go/gridfill/boundary"
)

// Branch is a run of line parameters on one scan line which lies inside the
// boundary.  The first and last entries are normally intersections with the
// boundary, the entries in between are grid sample parameters.
type Branch []float64

// ResolveBranches splits a scan line into the branches which lie inside the
// boundary b.  The params are the sample parameters of the row, in
// increasing order.
//
// The intersections of the line with the boundary are used as follows:
//   - A single intersection is a touching corner and gives a branch
//     consisting of this intersection alone.
//   - An even number of intersections is paired up in order.  Each pair
//     gives one branch, made from the pair and the sample parameters
//     strictly between the two.
//   - An odd number of three or more intersections cannot be paired.  In
//     this case, the intersections and the samples between the first and
//     the last intersection are tested for containment one by one, and
//     consecutive runs of points inside or on the boundary form the
//     branches.  A run which is still open at the last intersection is
//     kept as a final branch instead of being discarded.  The second
//     return value is true in this case.
//
// Sample parameters closer than tol (in model units) to an intersection
// are dropped.  The branches are disjoint and ordered along the line.
func ResolveBranches(line boundary.Line, b *boundary.Boundary, params []float64, tol float64) ([]Branch, bool) {
	hits := boundary.Params(b.Intersect(line, tol))
	var eps float64
	if l := line.Length(); l > 0 {
		eps = tol / l
	}

	switch {
	case len(hits) == 0:
		return nil, false

	case len(hits) == 1:
		return []Branch{{hits[0]}}, false

	case len(hits)%2 == 0:
		res := make([]Branch, 0, len(hits)/2)
		for i := 0; i < len(hits); i += 2 {
			a, c := hits[i], hits[i+1]
			br := Branch{a}
			for _, t := range params {
				if t > a+eps && t < c-eps {
					br = append(br, t)
				}
			}
			br = append(br, c)
			res = append(res, br)
		}
		return res, false

	default:
		return walkContainment(line, b, hits, params, tol, eps), true
	}
}

// walkContainment resolves a row with an odd number of intersections by
// testing every candidate point for containment.
func walkContainment(line boundary.Line, b *boundary.Boundary, hits, params []float64, tol, eps float64) []Branch {
	lo, hi := hits[0], hits[len(hits)-1]
	merged := slices.Clone(hits)
	for _, t := range params {
		if t <= lo || t >= hi {
			continue
		}
		if slices.ContainsFunc(hits, func(h float64) bool { return t > h-eps && t < h+eps }) {
			continue
		}
		merged = append(merged, t)
	}
	slices.Sort(merged)

	var res []Branch
	var current Branch
	for _, t := range merged {
		if b.Contains(line.PointAt(t), tol) != boundary.Outside {
			current = append(current, t)
			continue
		}
		if len(current) > 0 {
			res = append(res, current)
			current = nil
		}
	}
	if len(current) > 0 {
		res = append(res, current)
	}
	return res
}

// countBranches returns the total number of branches in a branch table.
func countBranches(rows [][]Branch) int {
	n := 0
	for _, row := range rows {
		n += len(row)
	}
	return n
}
