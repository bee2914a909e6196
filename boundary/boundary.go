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
	"errors"
	"slices"

	"honnef.co/go/curve"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrEmptyBoundary is returned by [New] if the path contains no segments of
// non-zero length.
var ErrEmptyBoundary = errors.New("boundary has no segments")

// FillRule decides which points count as inside the boundary.
type FillRule int

const (
	// EvenOdd treats a point as inside if a ray from it crosses the
	// boundary an odd number of times.  Nested subpaths form holes.
	EvenOdd FillRule = iota

	// NonZero treats a point as inside if the winding number is non-zero.
	NonZero
)

// Containment is the result of a point containment query.
type Containment int

const (
	Outside Containment = iota
	Inside
	Coincident
)

func (c Containment) String() string {
	switch c {
	case Outside:
		return "outside"
	case Inside:
		return "inside"
	case Coincident:
		return "coincident"
	default:
		return "unknown"
	}
}

// Option configures a [Boundary].
type Option func(*Boundary)

// WithRule sets the fill rule used by [Boundary.Contains].
func WithRule(rule FillRule) Option {
	return func(b *Boundary) {
		b.rule = rule
	}
}

// Boundary is a closed curve, made of line segments and quadratic and cubic
// Bézier segments.  A Boundary is immutable and can be used concurrently.
type Boundary struct {
	segs []curve.PathSegment
	rule FillRule
}

// New converts a path into a boundary.  Open subpaths are closed
// implicitly.  Segments of length zero are dropped.
func New(p *path.Data, opts ...Option) (*Boundary, error) {
	b := &Boundary{}
	for _, opt := range opts {
		opt(b)
	}
	if p != nil {
		b.segs = collectSegments(p)
	}
	if len(b.segs) == 0 {
		return nil, ErrEmptyBoundary
	}
	return b, nil
}

// collectSegments converts the path commands into curve segments.
func collectSegments(p *path.Data) []curve.PathSegment {
	var segs []curve.PathSegment
	var current, subpath vec.Vec2
	open := false

	addLine := func(a, b vec.Vec2) {
		if a == b {
			return
		}
		segs = append(segs, curve.PathSegment{Kind: curve.LineKind, P0: pt(a), P1: pt(b)})
	}
	closeSubpath := func() {
		if open {
			addLine(current, subpath)
		}
		current = subpath
		open = false
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			closeSubpath()
			current = p.Coords[coordIdx]
			subpath = current
			coordIdx++

		case path.CmdLineTo:
			addLine(current, p.Coords[coordIdx])
			current = p.Coords[coordIdx]
			open = true
			coordIdx++

		case path.CmdQuadTo:
			c, q := p.Coords[coordIdx], p.Coords[coordIdx+1]
			if current != c || c != q {
				segs = append(segs, curve.PathSegment{
					Kind: curve.QuadKind,
					P0:   pt(current), P1: pt(c), P2: pt(q),
				})
			}
			current = q
			open = true
			coordIdx += 2

		case path.CmdCubeTo:
			c1, c2, q := p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2]
			if current != c1 || c1 != c2 || c2 != q {
				segs = append(segs, curve.PathSegment{
					Kind: curve.CubicKind,
					P0:   pt(current), P1: pt(c1), P2: pt(c2), P3: pt(q),
				})
			}
			current = q
			open = true
			coordIdx += 3

		case path.CmdClose:
			closeSubpath()
		}
	}
	closeSubpath()
	return segs
}

// NumSegments returns the number of curve segments in the boundary.
func (b *Boundary) NumSegments() int {
	return len(b.segs)
}

// Rule returns the fill rule of the boundary.
func (b *Boundary) Rule() FillRule {
	return b.rule
}

// BoundingBox returns the tight bounding box of the boundary, measured in
// the coordinates of the given plane.
func (b *Boundary) BoundingBox(plane Plane) rect.Rect {
	toLocal := affine(plane).Invert()
	local := make([]curve.PathSegment, len(b.segs))
	for i, seg := range b.segs {
		local[i] = seg.Transform(toLocal)
	}
	box := curve.SegmentsBoundingBox(slices.Values(local))
	return rect.Rect{
		LLx: box.MinX(),
		LLy: box.MinY(),
		URx: box.MaxX(),
		URy: box.MaxY(),
	}
}

// Contains classifies the point p relative to the boundary.  Points closer
// than tol to the curve are reported as [Coincident].
func (b *Boundary) Contains(p vec.Vec2, tol float64) Containment {
	q := pt(p)
	for _, seg := range b.segs {
		d2, _ := seg.Nearest(q, nearestAccuracy)
		if d2 <= tol*tol {
			return Coincident
		}
	}

	w := curve.SegmentsWinding(slices.Values(b.segs), q)
	var in bool
	switch b.rule {
	case NonZero:
		in = w != 0
	default:
		in = w%2 != 0
	}
	if in {
		return Inside
	}
	return Outside
}

const nearestAccuracy = 1e-9

func pt(v vec.Vec2) curve.Point {
	return curve.Point{X: v.X, Y: v.Y}
}

func fromPt(p curve.Point) vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// affine converts the plane frame into a curve transformation.
func affine(plane Plane) curve.Affine {
	m := plane.Matrix()
	return curve.Affine{N0: m[0], N1: m[1], N2: m[2], N3: m[3], N4: m[4], N5: m[5]}
}
