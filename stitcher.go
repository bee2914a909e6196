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

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gridfill/stitch"
)

// EvalFunc maps a parameter on the scan line of a row to a point.
type EvalFunc func(row int, t float64) vec.Vec2

// Visit records one branch consumed by a [Stitcher].
type Visit struct {
	Row    int  // row of the branch
	Branch int  // position of the branch in the original row
	Jump   bool // the thread was trimmed before this branch
}

// Stitcher orders the branches of all rows into one continuous stitch path.
//
// The stitcher walks upwards through the rows, taking one branch from each
// row.  When the walk reaches a row without branches, it restarts at the
// lowest row which still has branches.  When the walk reaches the last row,
// it continues in the row holding the remaining branch whose first point is
// nearest to the current needle position, ties broken by row and then by
// position within the row.  The nearest search only selects the row; the
// walk then takes the first remaining branch of that row.  Whenever the next branch is not in the row directly
// above the previous one, the thread is trimmed before moving there.  The
// path always ends with a trim.
//
// A Stitcher is used once: call [Stitcher.Run] and then read the output
// fields.
type Stitcher struct {
	// Points and Commands are the resulting stitch path, in model units.
	Points   []vec.Vec2
	Commands []stitch.Command

	// Visits lists the branches in the order they were consumed.
	Visits []Visit

	// Steps counts the iterations of the main loop.
	Steps int

	eval    EvalFunc
	rows    [][]Branch
	ids     [][]int
	current int // row to take the next branch from
	last    int // row of the most recently consumed branch
}

// NewStitcher creates a stitcher for the given branch table.  rows[i] holds
// the branches of row i, ordered along the row.  The table is copied; the
// caller keeps ownership of rows.  Empty branches are ignored.
func NewStitcher(rows [][]Branch, eval EvalFunc) *Stitcher {
	s := &Stitcher{
		eval: eval,
		rows: make([][]Branch, len(rows)),
		ids:  make([][]int, len(rows)),
		last: -1,
	}
	for i, row := range rows {
		for j, br := range row {
			if len(br) == 0 {
				continue
			}
			s.rows[i] = append(s.rows[i], br)
			s.ids[i] = append(s.ids[i], j)
		}
	}
	return s
}

// Remaining returns the number of branches not yet consumed.
func (s *Stitcher) Remaining() int {
	return countBranches(s.rows)
}

// Run consumes all branches and builds the stitch path.
func (s *Stitcher) Run() {
	n := len(s.rows)
	for {
		s.Steps++
		if s.current >= n {
			s.finish()
			return
		}

		if len(s.rows[s.current]) == 0 {
			next := s.firstNonEmpty()
			if next < 0 {
				s.finish()
				return
			}
			s.current = next
		}

		s.consume(s.current)

		if s.current == n-1 {
			row, ok := s.nearest()
			if !ok {
				s.finish()
				return
			}
			s.current = row
			continue
		}
		s.current++
	}
}

// consume removes the first branch of the given row and appends its points
// to the output.
func (s *Stitcher) consume(row int) {
	br := s.rows[row][0]
	id := s.ids[row][0]
	s.rows[row] = s.rows[row][1:]
	s.ids[row] = s.ids[row][1:]

	jump := s.last != row-1 && len(s.Points) > 0
	if jump {
		from := s.Points[len(s.Points)-1]
		s.Points = append(s.Points, from)
		s.Commands = append(s.Commands, stitch.CmdTrim)
		Logger().Debug("jump", "from", s.last, "to", row, "branch", id)
	}
	for _, t := range br {
		s.Points = append(s.Points, s.eval(row, t))
		s.Commands = append(s.Commands, stitch.CmdStitch)
	}

	s.Visits = append(s.Visits, Visit{Row: row, Branch: id, Jump: jump})
	s.last = row
}

// firstNonEmpty returns the lowest row which still has branches, or -1.
func (s *Stitcher) firstNonEmpty() int {
	return slices.IndexFunc(s.rows, func(row []Branch) bool { return len(row) > 0 })
}

// nearest finds the row of the remaining branch whose first point is
// closest to the last point of the output.
func (s *Stitcher) nearest() (row int, ok bool) {
	if len(s.Points) == 0 {
		r := s.firstNonEmpty()
		return r, r >= 0
	}
	from := s.Points[len(s.Points)-1]

	best := -1.0
	idx := 0
	for r, branches := range s.rows {
		for i, br := range branches {
			d := s.eval(r, br[0]).Sub(from)
			dist := d.Dot(d)
			if !ok || dist < best {
				row, idx, best, ok = r, i, dist, true
			}
		}
	}
	if ok {
		Logger().Debug("nearest branch", "row", row, "branch", s.ids[row][idx], "dist", best)
	}
	return row, ok
}

// finish closes the path with a trim at the last point.
func (s *Stitcher) finish() {
	if len(s.Points) == 0 {
		return
	}
	s.Points = append(s.Points, s.Points[len(s.Points)-1])
	s.Commands = append(s.Commands, stitch.CmdTrim)
}
