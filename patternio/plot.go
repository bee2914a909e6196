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

package patternio

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gridfill/pattern"
	"seehuhn.de/go/gridfill/stitch"
)

// run is a sequence of consecutive needle penetrations sewn with one
// thread, in device units.
type run struct {
	points []vec.Vec2
	thread *stitch.Thread
}

// sewnRuns splits a pattern into the runs of consecutive STITCH commands.
// Travel moves (jumps, trims and colour changes) separate runs.
func sewnRuns(p *pattern.Pattern) []run {
	var res []run
	for _, blk := range p.AsColorBlocks() {
		var current []vec.Vec2
		flush := func() {
			if len(current) > 0 {
				res = append(res, run{points: current, thread: blk.Thread})
			}
			current = nil
		}
		for _, s := range blk.Stitches {
			if s.Cmd != stitch.CmdStitch {
				flush()
				continue
			}
			current = append(current, vec.Vec2{X: s.X, Y: s.Y})
		}
		flush()
	}
	return res
}

// plotBox returns the area covered by the pattern, in device units,
// enlarged by the given margin.  Empty patterns give a box of size
// 2*margin around the origin.
func plotBox(p *pattern.Pattern, margin float64) rect.Rect {
	box, _ := p.Bounds()
	return rect.Rect{
		LLx: box.LLx - margin,
		LLy: box.LLy - margin,
		URx: box.URx + margin,
		URy: box.URy + margin,
	}
}
