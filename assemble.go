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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gridfill/stitch"
)

// Assemble converts a stitch path from model units into device units and
// binds it to a thread.
//
// The stitches and their string forms are returned even if the thread is
// unusable.  In this case the block is nil and the error wraps
// [stitch.ErrInvalidThread].
func Assemble(points []vec.Vec2, cmds []stitch.Command, thread *stitch.Thread) ([]stitch.Stitch, []string, *stitch.Block, error) {
	stitches := stitch.Construct(points, cmds)
	strs := stitch.Strings(stitches)
	block, err := stitch.NewBlock(stitches, thread)
	if err != nil {
		return stitches, strs, nil, err
	}
	return stitches, strs, block, nil
}
