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

package stitch

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidThread is returned when a stitch block is constructed without
// a usable thread.
var ErrInvalidThread = errors.New("invalid thread")

// A Block is an ordered sequence of stitches sewn with a single thread.
// Blocks are not modified after construction.
type Block struct {
	Stitches []Stitch
	Thread   *Thread
}

// NewBlock creates a stitch block.  The stitches are copied.
// An error wrapping [ErrInvalidThread] is returned if thread is nil or has
// no colour.
func NewBlock(stitches []Stitch, thread *Thread) (*Block, error) {
	if err := thread.validate(); err != nil {
		return nil, err
	}
	return &Block{
		Stitches: slices.Clone(stitches),
		Thread:   thread,
	}, nil
}

// Len returns the number of stitches in the block.
func (b *Block) Len() int {
	return len(b.Stitches)
}

// Count returns the number of stitches carrying the given command.
func (b *Block) Count(cmd Command) int {
	n := 0
	for _, s := range b.Stitches {
		if s.Cmd == cmd {
			n++
		}
	}
	return n
}

func (b *Block) String() string {
	return fmt.Sprintf("StitchBlock (%d Stitches, EmbThread %s)", len(b.Stitches), b.Thread.Hex())
}
