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
)

var (
	// ErrInvalidParameter indicates a grid resolution below one, or a
	// non-positive tolerance.  It is fatal for a whole batch.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrGeometry indicates that the boundary curve cannot be filled, for
	// example because it is empty or has a bounding box of zero width.
	ErrGeometry = errors.New("geometry failure")

	// ErrDegenerateIntersection marks rows where an odd number of
	// intersections was found.  Such rows are resolved by testing sample
	// points for containment.  This error is never returned; it is used for
	// diagnostics only.
	ErrDegenerateIntersection = errors.New("degenerate intersection")
)

// Warning reports a curve of a batch which could not be processed
// completely.
type Warning struct {
	Index int
	Err   error
}

func (w Warning) Error() string {
	return fmt.Sprintf("curve %d: %v", w.Index, w.Err)
}

func (w Warning) Unwrap() error {
	return w.Err
}
