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

// Package gridfill turns closed boundary curves into embroidery grid fills.
//
// A grid fill covers the inside of a boundary with parallel rows of
// stitches.  The rows are aligned to a plane, and the needle works through
// the shape row by row, so that the thread stays connected wherever the
// shape allows.  Where the path has to lift off and travel to a
// different part of the shape, a TRIM command is inserted.
//
// The work is split into four steps, which are also available individually:
//
//   - [BuildGrid] lays a grid of sample points over the boundary.
//   - [ResolveBranches] finds the inside intervals (branches) of each row.
//   - [Stitcher] orders all branches into a single stitch path.
//   - [Assemble] converts the path into device units and binds it to a thread.
//
// [Generate] runs all four steps for one curve, [GenerateAll] processes a
// batch of curves and reports failures per curve.
package gridfill
