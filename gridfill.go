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
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gridfill/boundary"
	"seehuhn.de/go/gridfill/stitch"
)

// DefaultTolerance is the geometric tolerance, in model units, used when
// [Params.Tolerance] is zero.
const DefaultTolerance = 0.001

// Params controls the grid fill of a single curve.
type Params struct {
	// ResolutionX and ResolutionY give the number of grid cells along the
	// x and y axis of the plane.  Both must be at least one.
	ResolutionX, ResolutionY int

	// Plane determines the direction of the rows.  Only the direction of
	// the x axis is used; the grid is centred on the curve.  The zero
	// value selects [boundary.WorldXY].
	Plane boundary.Plane

	// Thread is the thread of the resulting stitch block.
	Thread *stitch.Thread

	// Tolerance is used for intersection and containment tests.
	// Zero selects [DefaultTolerance].
	Tolerance float64

	// Rule determines which parts of a curve with several subpaths are
	// filled.
	Rule boundary.FillRule
}

// Result is the output of a grid fill.
type Result struct {
	// Points and Commands describe the stitch path in model units.
	Points   []vec.Vec2
	Commands []stitch.Command

	// Stitches holds the stitch strings in device units.
	Stitches []string

	// Block is the stitch block.  It is nil if the thread was unusable.
	Block *stitch.Block

	// Grid is the sample grid used for the fill.
	Grid *Grid

	// Branches is the number of branches found in all rows.
	Branches int

	// Visits lists the branches in the order they were stitched.
	Visits []Visit

	// DegenerateRows lists the rows where an odd number of intersections
	// was found.
	DegenerateRows []int
}

// Generate fills the closed curve with a grid of stitches.
//
// Errors wrap [ErrInvalidParameter] for bad resolutions or tolerances, and
// [ErrGeometry] if the curve cannot be filled.  If only the thread is
// unusable, the returned Result is complete apart from the stitch block and
// the error wraps [stitch.ErrInvalidThread].
func Generate(curve *path.Data, p Params) (*Result, error) {
	if p.ResolutionX < 1 || p.ResolutionY < 1 {
		return nil, fmt.Errorf("%w: resolution %d×%d", ErrInvalidParameter, p.ResolutionX, p.ResolutionY)
	}
	tol := p.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return nil, fmt.Errorf("%w: tolerance %g", ErrInvalidParameter, p.Tolerance)
	}
	plane, err := normalizePlane(p.Plane)
	if err != nil {
		return nil, err
	}

	b, err := boundary.New(curve, boundary.WithRule(p.Rule))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeometry, err)
	}
	grid, err := BuildGrid(b, plane, p.ResolutionX, p.ResolutionY, tol)
	if err != nil {
		return nil, err
	}

	res := &Result{Grid: grid}
	rows := make([][]Branch, len(grid.Lines))
	for i, sl := range grid.Lines {
		branches, degenerate := ResolveBranches(sl.Line, b, sl.Params, tol)
		if degenerate {
			res.DegenerateRows = append(res.DegenerateRows, i)
			Logger().Debug("odd intersection count",
				"row", i, "branches", len(branches), "err", ErrDegenerateIntersection)
		}
		rows[i] = branches
	}
	res.Branches = countBranches(rows)

	s := NewStitcher(rows, grid.PointAt)
	s.Run()
	res.Points = s.Points
	res.Commands = s.Commands
	res.Visits = s.Visits

	_, strs, block, err := Assemble(s.Points, s.Commands, p.Thread)
	res.Stitches = strs
	res.Block = block
	if err != nil {
		return res, err
	}
	return res, nil
}

func normalizePlane(plane boundary.Plane) (boundary.Plane, error) {
	if plane.XAxis == (vec.Vec2{}) {
		return boundary.WorldXY.WithOrigin(plane.Origin), nil
	}
	if plane.IsValid() {
		return plane, nil
	}
	res, err := boundary.NewPlane(plane.Origin, plane.XAxis)
	if err != nil {
		return boundary.Plane{}, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	return res, nil
}

// Batch holds the settings for [GenerateAll].  Each list gives one value
// per curve.  Lists shorter than the list of curves are padded by
// repeating their last element, longer lists are truncated.
type Batch struct {
	ResolutionX []int
	ResolutionY []int

	// Planes defaults to [boundary.WorldXY] if empty.
	Planes []boundary.Plane

	// Threads defaults to [stitch.DefaultThread] if empty.
	Threads []*stitch.Thread

	Tolerance float64
	Rule      boundary.FillRule
}

// BatchResult is the output of [GenerateAll].
type BatchResult struct {
	// Results holds one entry per curve.  The entry is nil if the curve
	// could not be filled.  If only the stitch block could not be built,
	// the entry is present and its Block is nil.
	Results []*Result

	// Warnings lists the curves which failed, in order.
	Warnings []Warning
}

// Blocks returns the stitch blocks of all successful curves, in order.
func (r *BatchResult) Blocks() []*stitch.Block {
	var res []*stitch.Block
	for _, x := range r.Results {
		if x != nil && x.Block != nil {
			res = append(res, x.Block)
		}
	}
	return res
}

// GenerateAll fills every curve in turn.
//
// Curves are independent: a failure for one curve is recorded as a
// [Warning] and the remaining curves are still processed.  Only invalid
// resolutions or an invalid tolerance abort the whole batch; in this case
// no curve is processed and the error wraps [ErrInvalidParameter].
func GenerateAll(curves []*path.Data, batch Batch) (*BatchResult, error) {
	n := len(curves)
	if len(batch.ResolutionX) == 0 || len(batch.ResolutionY) == 0 {
		return nil, fmt.Errorf("%w: missing resolution", ErrInvalidParameter)
	}
	resX := sanitize(batch.ResolutionX, n)
	resY := sanitize(batch.ResolutionY, n)
	for i := range n {
		if resX[i] < 1 || resY[i] < 1 {
			return nil, fmt.Errorf("%w: resolution %d×%d for curve %d",
				ErrInvalidParameter, resX[i], resY[i], i)
		}
	}
	if batch.Tolerance < 0 || math.IsNaN(batch.Tolerance) || math.IsInf(batch.Tolerance, 0) {
		return nil, fmt.Errorf("%w: tolerance %g", ErrInvalidParameter, batch.Tolerance)
	}

	planes := batch.Planes
	if len(planes) == 0 {
		planes = []boundary.Plane{boundary.WorldXY}
	}
	planes = sanitize(planes, n)
	threads := batch.Threads
	if len(threads) == 0 {
		threads = []*stitch.Thread{stitch.DefaultThread()}
	}
	threads = sanitize(threads, n)

	out := &BatchResult{Results: make([]*Result, n)}
	for i, c := range curves {
		res, err := Generate(c, Params{
			ResolutionX: resX[i],
			ResolutionY: resY[i],
			Plane:       planes[i],
			Thread:      threads[i],
			Tolerance:   batch.Tolerance,
			Rule:        batch.Rule,
		})
		out.Results[i] = res
		if err != nil {
			Logger().Warn("grid fill failed", "curve", i, "err", err)
			out.Warnings = append(out.Warnings, Warning{Index: i, Err: err})
		}
	}
	return out, nil
}

// Err combines all warnings into a single error, or returns nil.
func (r *BatchResult) Err() error {
	errs := make([]error, len(r.Warnings))
	for i, w := range r.Warnings {
		errs[i] = w
	}
	return errors.Join(errs...)
}

// sanitize pads or truncates list to length n by repeating the last
// element.  The input is not modified.
func sanitize[T any](list []T, n int) []T {
	res := make([]T, n)
	for i := range res {
		res[i] = list[min(i, len(list)-1)]
	}
	return res
}
