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
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gridfill/boundary"
)

// ScanLine is one row of the grid: a straight line across the bounding box
// of the boundary, together with the parameters of the sample points on
// the line.  The line is parametrised over [0, 1].
type ScanLine struct {
	Line   boundary.Line
	Params []float64
}

// Grid is the raster of sample points laid over a boundary curve.
type Grid struct {
	// Plane is the plane the grid is aligned to.  Its origin is the centre
	// of the bounding box of the curve.
	Plane boundary.Plane

	// Corners are the corners of the plane-aligned bounding box, in model
	// coordinates, in the order bottom-left, bottom-right, top-left,
	// top-right.
	Corners [4]vec.Vec2

	// Rows holds the sample points, one slice per row, from bottom to top.
	Rows [][]vec.Vec2

	// Lines holds the scan line of each row.
	Lines []ScanLine
}

// BuildGrid lays a grid of (resX+1)×(resY+1) sample points over the
// bounding box of b, aligned to plane.  Rows run parallel to the x axis of
// the plane.
//
// An error wrapping [ErrInvalidParameter] is returned if a resolution is
// less than one.  If the bounding box has a width or height of at most tol,
// the error wraps [ErrGeometry].
func BuildGrid(b *boundary.Boundary, plane boundary.Plane, resX, resY int, tol float64) (*Grid, error) {
	if resX < 1 || resY < 1 {
		return nil, fmt.Errorf("%w: resolution %d×%d", ErrInvalidParameter, resX, resY)
	}
	if b == nil {
		return nil, fmt.Errorf("%w: missing boundary", ErrGeometry)
	}

	world := b.BoundingBox(boundary.WorldXY)
	centre := vec.Vec2{
		X: (world.LLx + world.URx) / 2,
		Y: (world.LLy + world.URy) / 2,
	}
	plane = plane.WithOrigin(centre)

	box := b.BoundingBox(plane)
	if box.URx-box.LLx <= tol || box.URy-box.LLy <= tol {
		return nil, fmt.Errorf("%w: bounding box %g×%g is too small",
			ErrGeometry, box.URx-box.LLx, box.URy-box.LLy)
	}

	g := &Grid{Plane: plane}
	g.Corners = [4]vec.Vec2{
		plane.PointAt(box.LLx, box.LLy),
		plane.PointAt(box.URx, box.LLy),
		plane.PointAt(box.LLx, box.URy),
		plane.PointAt(box.URx, box.URy),
	}
	bl := g.Corners[0]
	vertical := boundary.Line{P0: bl, P1: g.Corners[2]}
	horizontal := boundary.Line{P0: bl, P1: g.Corners[1]}

	xs := horizontal.DivideByCount(resX, true)
	base := make([]vec.Vec2, len(xs))
	for i, t := range xs {
		base[i] = horizontal.PointAt(t)
	}

	ys := vertical.DivideByCount(resY, true)
	g.Rows = make([][]vec.Vec2, len(ys))
	g.Lines = make([]ScanLine, len(ys))
	for j, t := range ys {
		offset := vertical.PointAt(t).Sub(bl)
		row := make([]vec.Vec2, len(base))
		for i, p := range base {
			row[i] = p.Add(offset)
		}

		line := boundary.Line{P0: row[0], P1: row[len(row)-1]}
		params := make([]float64, len(row))
		for i, p := range row {
			params[i] = line.ClosestParameter(p)
		}

		g.Rows[j] = row
		g.Lines[j] = ScanLine{Line: line, Params: params}
	}
	return g, nil
}

// PointAt returns the point at parameter t on the scan line of the given
// row.
func (g *Grid) PointAt(row int, t float64) vec.Vec2 {
	return g.Lines[row].Line.PointAt(t)
}

// NumPoints returns the number of sample points in the grid.
func (g *Grid) NumPoints() int {
	n := 0
	for _, row := range g.Rows {
		n += len(row)
	}
	return n
}
