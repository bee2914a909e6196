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

// Package pattern assembles stitch blocks into embroidery patterns.
//
// A [Pattern] is a flat list of stitches in device units together with the
// threads used to sew them.  Colour blocks are separated by colour
// commands: [stitch.CmdColorBreak] marks the end of a block while a pattern
// is being built, [stitch.CmdColorChange] is the machine command produced
// by [Pattern.Normalized].
//
// All methods which return a pattern return a new one; the receiver is
// never modified.
package pattern

import (
	"slices"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/gridfill/stitch"
)

// Pattern is an embroidery pattern.
type Pattern struct {
	Stitches []stitch.Stitch
	Threads  []*stitch.Thread
}

// New returns an empty pattern.
func New() *Pattern {
	return &Pattern{}
}

// Copy returns a copy of p.  The threads are shared.
func (p *Pattern) Copy() *Pattern {
	return &Pattern{
		Stitches: slices.Clone(p.Stitches),
		Threads:  slices.Clone(p.Threads),
	}
}

// AddThread returns a copy of p with the thread appended to the thread
// list.
func (p *Pattern) AddThread(t *stitch.Thread) *Pattern {
	res := p.Copy()
	res.Threads = append(res.Threads, t)
	return res
}

// AddStitch returns a copy of p with the stitch appended.
func (p *Pattern) AddStitch(s stitch.Stitch) *Pattern {
	res := p.Copy()
	res.Stitches = append(res.Stitches, s)
	return res
}

// AddCommand returns a copy of p with a command appended at the position of
// the last stitch, or at the origin for an empty pattern.
func (p *Pattern) AddCommand(cmd stitch.Command) *Pattern {
	res := p.Copy()
	res.Stitches = append(res.Stitches, res.at(cmd))
	return res
}

// AddBlock returns a copy of p with a colour block appended.  The thread is
// added to the thread list, then the stitches, followed by a colour break.
// A nil thread is skipped; the block then uses whichever thread ends up at
// its position in the thread list.
func (p *Pattern) AddBlock(stitches []stitch.Stitch, t *stitch.Thread) *Pattern {
	res := p.Copy()
	if t != nil {
		res.Threads = append(res.Threads, t)
	}
	res.Stitches = append(res.Stitches, stitches...)
	res.Stitches = append(res.Stitches, res.at(stitch.CmdColorBreak))
	return res
}

// AddStitchBlock returns a copy of p with the stitch block appended as a
// colour block.
func (p *Pattern) AddStitchBlock(b *stitch.Block) *Pattern {
	if b == nil {
		return p.Copy()
	}
	return p.AddBlock(b.Stitches, b.Thread)
}

// Merge returns a new pattern consisting of all given patterns, one after
// the other.  The thread lists are concatenated.  A colour break is
// inserted between patterns, unless the previous pattern already ends with
// one.  Nil patterns are skipped.
func Merge(patterns ...*Pattern) *Pattern {
	res := New()
	for _, q := range patterns {
		if q == nil {
			continue
		}
		if len(res.Stitches) > 0 && len(q.Stitches) > 0 &&
			res.Stitches[len(res.Stitches)-1].Cmd != stitch.CmdColorBreak {
			res.Stitches = append(res.Stitches, res.at(stitch.CmdColorBreak))
		}
		res.Stitches = append(res.Stitches, q.Stitches...)
		res.Threads = append(res.Threads, q.Threads...)
	}
	return res
}

// Entry is a stitch together with its position in the pattern.
type Entry struct {
	stitch.Stitch

	Index  int // position in the stitch list
	Thread int // index into the thread list
	Needle int // needle selected by the last NEEDLE_SET command
}

// AsStitches lists the stitches of p together with the thread in use at
// each stitch.  The thread index advances at every colour change or colour
// break.
func (p *Pattern) AsStitches() []Entry {
	res := make([]Entry, len(p.Stitches))
	thread, needle := 0, 0
	for i, s := range p.Stitches {
		if s.Cmd == stitch.CmdNeedleSet {
			needle++
		}
		res[i] = Entry{Stitch: s, Index: i, Thread: thread, Needle: needle}
		if isColorCommand(s.Cmd) {
			thread++
		}
	}
	return res
}

// ColorBlock is a run of stitches sewn with the same thread.
type ColorBlock struct {
	Stitches []stitch.Stitch
	Thread   *stitch.Thread
}

// AsColorBlocks splits p into colour blocks.  The colour commands
// themselves are not included and empty blocks are skipped.  Blocks
// without a matching entry in the thread list use
// [stitch.DefaultThread].
func (p *Pattern) AsColorBlocks() []ColorBlock {
	var res []ColorBlock
	var current []stitch.Stitch
	idx := 0
	flush := func() {
		if len(current) > 0 {
			res = append(res, ColorBlock{Stitches: current, Thread: p.threadOrFiller(idx)})
		}
		current = nil
		idx++
	}
	for _, s := range p.Stitches {
		if isColorCommand(s.Cmd) {
			flush()
			continue
		}
		current = append(current, s)
	}
	flush()
	return res
}

// Bounds returns the bounding box of all stitch positions, in device units.
// The second return value is false for an empty pattern.
func (p *Pattern) Bounds() (rect.Rect, bool) {
	if len(p.Stitches) == 0 {
		return rect.Rect{}, false
	}
	first := p.Stitches[0]
	box := rect.Rect{LLx: first.X, LLy: first.Y, URx: first.X, URy: first.Y}
	for _, s := range p.Stitches[1:] {
		box.LLx = min(box.LLx, s.X)
		box.LLy = min(box.LLy, s.Y)
		box.URx = max(box.URx, s.X)
		box.URy = max(box.URy, s.Y)
	}
	return box, true
}

// Count returns the number of stitches carrying the given command.
func (p *Pattern) Count(cmd stitch.Command) int {
	n := 0
	for _, s := range p.Stitches {
		if s.Cmd == cmd {
			n++
		}
	}
	return n
}

// at returns a command stitch at the current needle position.
func (p *Pattern) at(cmd stitch.Command) stitch.Stitch {
	var s stitch.Stitch
	if n := len(p.Stitches); n > 0 {
		s = p.Stitches[n-1]
	}
	s.Cmd = cmd
	return s
}

func (p *Pattern) threadOrFiller(idx int) *stitch.Thread {
	if idx < len(p.Threads) && p.Threads[idx] != nil {
		return p.Threads[idx]
	}
	return stitch.DefaultThread()
}

func isColorCommand(cmd stitch.Command) bool {
	return cmd == stitch.CmdColorChange || cmd == stitch.CmdColorBreak
}
