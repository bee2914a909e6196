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

package job

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/tdewolff/canvas"
	"honnef.co/go/curve"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ErrPathData is returned for malformed SVG path data.
var ErrPathData = errors.New("bad path data")

// ParsePathData converts an SVG path data string into a path.  All SVG
// path commands are supported.  Elliptical arcs are converted to cubic
// Bézier curves, and zero-length segments are dropped.  Path data must
// start with a move command; blank input gives an empty path.
func ParsePathData(s string) (*path.Data, error) {
	s = strings.TrimSpace(s)
	p := &path.Data{}
	if s == "" {
		return p, nil
	}
	if s[0] != 'M' && s[0] != 'm' {
		return nil, fmt.Errorf("%w: path must start with a move", ErrPathData)
	}

	cp, err := canvas.ParseSVGPath(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPathData, err)
	}

	pt := func(q canvas.Point) vec.Vec2 { return vec.Vec2{X: q.X, Y: q.Y} }
	for _, seg := range cp.ReplaceArcs().Segments() {
		switch seg.Cmd {
		case canvas.MoveToCmd:
			p = p.MoveTo(pt(seg.End))
		case canvas.LineToCmd:
			p = p.LineTo(pt(seg.End))
		case canvas.QuadToCmd:
			p = p.QuadTo(pt(seg.CP1()), pt(seg.End))
		case canvas.CubeToCmd:
			p = p.CubeTo(pt(seg.CP1()), pt(seg.CP2()), pt(seg.End))
		case canvas.CloseCmd:
			p = p.Close()
		default:
			return nil, fmt.Errorf("%w: unexpected segment type %g", ErrPathData, seg.Cmd)
		}
	}
	return p, nil
}

// FormatPathData converts a path into an SVG path data string.
func FormatPathData(p *path.Data) string {
	return curve.SVG(elements(p), curve.SVGOptions{})
}

// elements lists the commands of p as curve path elements.
func elements(p *path.Data) iter.Seq[curve.PathElement] {
	return func(yield func(curve.PathElement) bool) {
		pt := func(v vec.Vec2) curve.Point { return curve.Point{X: v.X, Y: v.Y} }
		coordIdx := 0
		for _, cmd := range p.Cmds {
			var el curve.PathElement
			switch cmd {
			case path.CmdMoveTo:
				el = curve.MoveTo(pt(p.Coords[coordIdx]))
				coordIdx++
			case path.CmdLineTo:
				el = curve.LineTo(pt(p.Coords[coordIdx]))
				coordIdx++
			case path.CmdQuadTo:
				el = curve.QuadTo(pt(p.Coords[coordIdx]), pt(p.Coords[coordIdx+1]))
				coordIdx += 2
			case path.CmdCubeTo:
				el = curve.CubicTo(pt(p.Coords[coordIdx]), pt(p.Coords[coordIdx+1]), pt(p.Coords[coordIdx+2]))
				coordIdx += 3
			case path.CmdClose:
				el = curve.ClosePath()
			}
			if !yield(el) {
				return
			}
		}
	}
}
