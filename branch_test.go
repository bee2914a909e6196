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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/gridfill/boundary"
)

func TestResolveBranches(t *testing.T) {
	quarters := []float64{0, 0.25, 0.5, 0.75, 1}
	tenths := boundary.Line{}.DivideByCount(10, true)

	// a tall rectangle with a triangle next to it, whose apex touches y=5
	touching := (&path.Data{}).
		MoveTo(v(0, 0)).LineTo(v(4, 0)).LineTo(v(4, 10)).LineTo(v(0, 10)).Close().
		MoveTo(v(6, 0)).LineTo(v(10, 0)).LineTo(v(8, 5)).Close()

	cases := []struct {
		name       string
		curve      *path.Data
		line       boundary.Line
		params     []float64
		want       []Branch
		degenerate bool
	}{
		{
			name:   "no intersection",
			curve:  fixture(t, "square_2x2").Path,
			line:   boundary.Line{P0: v(-5, 20), P1: v(15, 20)},
			params: quarters,
			want:   nil,
		},
		{
			name:   "corner touch",
			curve:  fixture(t, "diamond").Path,
			line:   boundary.Line{P0: v(0, 35), P1: v(40, 35)},
			params: quarters,
			want:   []Branch{{0.5}},
		},
		{
			name:   "one pair",
			curve:  fixture(t, "square_2x2").Path,
			line:   boundary.Line{P0: v(-5, 5), P1: v(15, 5)},
			params: quarters,
			want:   []Branch{{0.25, 0.5, 0.75}},
		},
		{
			name:   "edge overlap",
			curve:  fixture(t, "square_2x2").Path,
			line:   boundary.Line{P0: v(0, 10), P1: v(10, 10)},
			params: quarters,
			want:   []Branch{{0, 0.25, 0.5, 0.75, 1}},
		},
		{
			name:   "two pairs",
			curve:  fixture(t, "ring_shape").Path,
			line:   boundary.Line{P0: v(0, 5), P1: v(10, 5)},
			params: tenths,
			want:   []Branch{{0, 0.1, 0.2, 0.3}, {0.7, 0.8, 0.9, 1}},
		},
		{
			name:   "inner edge overlap",
			curve:  fixture(t, "ring_shape").Path,
			line:   boundary.Line{P0: v(0, 3), P1: v(10, 3)},
			params: tenths,
			want:   []Branch{{0, 0.1, 0.2, 0.3}, {0.7, 0.8, 0.9, 1}},
		},
		{
			name:       "odd count through notch",
			curve:      fixture(t, "notched").Path,
			line:       boundary.Line{P0: v(-3, 15), P1: v(33, 15)},
			params:     quarters,
			want:       []Branch{{1.0 / 12, 0.25, 0.5, 0.75, 11.0 / 12}},
			degenerate: true,
		},
		{
			name:       "odd count with tangent apex",
			curve:      touching,
			line:       boundary.Line{P0: v(-1, 5), P1: v(11, 5)},
			params:     quarters,
			want:       []Branch{{1.0 / 12, 0.25, 5.0 / 12}, {0.75}},
			degenerate: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := mustBoundary(t, c.curve, boundary.EvenOdd)
			got, degenerate := ResolveBranches(c.line, b, c.params, DefaultTolerance)
			if degenerate != c.degenerate {
				t.Errorf("degenerate = %t, want %t", degenerate, c.degenerate)
			}
			if d := cmp.Diff(c.want, got, approx, cmpopts.EquateEmpty()); d != "" {
				t.Errorf("branches (-want +got):\n%s", d)
			}

			// branches are disjoint and ordered along the row
			prev := -1.0
			for _, br := range got {
				for _, t0 := range br {
					if t0 <= prev {
						t.Errorf("branches not increasing: %v", got)
					}
					prev = t0
				}
			}
		})
	}
}

func TestResolveBranchesTangentCircle(t *testing.T) {
	// Rows which touch a circle at its top or bottom must not produce more
	// than one branch, whatever the numerical outcome of the tangency.
	tc := fixture(t, "circle")
	b := mustBoundary(t, tc.Path, boundary.EvenOdd)
	for _, y := range []float64{5, 35} {
		line := boundary.Line{P0: v(0, y), P1: v(40, y)}
		got, _ := ResolveBranches(line, b, line.DivideByCount(8, true), DefaultTolerance)
		if len(got) > 1 {
			t.Errorf("y=%g: %d branches at a tangent row: %v", y, len(got), got)
		}
		for _, br := range got {
			for _, t0 := range br {
				p := line.PointAt(t0)
				if c := b.Contains(p, 10*DefaultTolerance); c != boundary.Coincident {
					t.Errorf("y=%g: branch point %v is %s, want coincident", y, p, c)
				}
			}
		}
	}
}
