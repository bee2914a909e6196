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

package pattern

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/gridfill/stitch"
)

func st(x, y float64, cmd stitch.Command) stitch.Stitch {
	return stitch.Stitch{X: x, Y: y, Cmd: cmd}
}

var (
	red   = stitch.NewThread(0xFF, 0, 0)
	green = stitch.NewThread(0, 0xFF, 0)
	blue  = stitch.NewThread(0, 0, 0xFF)
)

func TestAddBlock(t *testing.T) {
	a := []stitch.Stitch{st(0, 0, stitch.CmdStitch), st(10, 0, stitch.CmdStitch)}
	b := []stitch.Stitch{st(10, -10, stitch.CmdStitch)}

	p0 := New()
	p1 := p0.AddBlock(a, red)
	p2 := p1.AddBlock(b, green)

	if len(p0.Stitches) != 0 || len(p1.Stitches) != 3 {
		t.Errorf("receiver was modified: %d, %d stitches", len(p0.Stitches), len(p1.Stitches))
	}

	want := []stitch.Stitch{
		st(0, 0, stitch.CmdStitch),
		st(10, 0, stitch.CmdStitch),
		st(10, 0, stitch.CmdColorBreak),
		st(10, -10, stitch.CmdStitch),
		st(10, -10, stitch.CmdColorBreak),
	}
	if d := cmp.Diff(want, p2.Stitches); d != "" {
		t.Errorf("stitches (-want +got):\n%s", d)
	}

	blocks := p2.AsColorBlocks()
	if len(blocks) != 2 {
		t.Fatalf("got %d colour blocks, want 2", len(blocks))
	}
	if blocks[0].Thread != red || blocks[1].Thread != green {
		t.Errorf("wrong threads %v, %v", blocks[0].Thread, blocks[1].Thread)
	}
	if d := cmp.Diff(a, blocks[0].Stitches); d != "" {
		t.Errorf("block 0 (-want +got):\n%s", d)
	}
	if d := cmp.Diff(b, blocks[1].Stitches); d != "" {
		t.Errorf("block 1 (-want +got):\n%s", d)
	}
}

func TestAddStitchBlock(t *testing.T) {
	blk, err := stitch.NewBlock([]stitch.Stitch{st(1, 2, stitch.CmdStitch)}, blue)
	if err != nil {
		t.Fatal(err)
	}
	p := New().AddStitchBlock(blk).AddStitchBlock(nil)
	if len(p.Stitches) != 2 || len(p.Threads) != 1 || p.Threads[0] != blue {
		t.Errorf("unexpected pattern %v", p)
	}
}

func TestMerge(t *testing.T) {
	p := New().AddThread(red).AddStitch(st(0, 0, stitch.CmdStitch))
	q := New().AddBlock([]stitch.Stitch{st(5, 5, stitch.CmdStitch)}, green)

	m := Merge(p, nil, q, New())
	want := []stitch.Stitch{
		st(0, 0, stitch.CmdStitch),
		st(0, 0, stitch.CmdColorBreak),
		st(5, 5, stitch.CmdStitch),
		st(5, 5, stitch.CmdColorBreak),
	}
	if d := cmp.Diff(want, m.Stitches); d != "" {
		t.Errorf("stitches (-want +got):\n%s", d)
	}
	if len(m.Threads) != 2 || m.Threads[0] != red || m.Threads[1] != green {
		t.Errorf("wrong threads %v", m.Threads)
	}
	if len(p.Stitches) != 1 {
		t.Errorf("input was modified")
	}
}

func TestAsStitches(t *testing.T) {
	p := &Pattern{Stitches: []stitch.Stitch{
		st(0, 0, stitch.CmdStitch),
		st(0, 0, stitch.CmdColorChange),
		st(1, 0, stitch.CmdNeedleSet),
		st(1, 0, stitch.CmdStitch),
	}}
	var threads, needles []int
	for i, e := range p.AsStitches() {
		if e.Index != i {
			t.Errorf("entry %d has index %d", i, e.Index)
		}
		threads = append(threads, e.Thread)
		needles = append(needles, e.Needle)
	}
	if d := cmp.Diff([]int{0, 0, 1, 1}, threads); d != "" {
		t.Errorf("threads (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]int{0, 0, 1, 1}, needles); d != "" {
		t.Errorf("needles (-want +got):\n%s", d)
	}
}

func TestBounds(t *testing.T) {
	if _, ok := New().Bounds(); ok {
		t.Error("empty pattern has bounds")
	}
	p := &Pattern{Stitches: []stitch.Stitch{
		st(3, -1, stitch.CmdStitch),
		st(-2, 4, stitch.CmdJump),
		st(1, 1, stitch.CmdTrim),
	}}
	box, ok := p.Bounds()
	want := rect.Rect{LLx: -2, LLy: -1, URx: 3, URy: 4}
	if !ok || box != want {
		t.Errorf("Bounds() = %v, %t, want %v", box, ok, want)
	}
}

func TestNormalized(t *testing.T) {
	p := New().
		AddBlock([]stitch.Stitch{st(0, 0, stitch.CmdStitch), st(1, 0, stitch.CmdStitch)}, red).
		AddBlock(nil, green).
		AddBlock([]stitch.Stitch{
			st(2, 0, stitch.CmdStitch),
			st(2, 0, stitch.CmdStitchBreak),
			st(3, 0, stitch.CmdEnd),
		}, blue)

	n := p.Normalized()
	want := []stitch.Stitch{
		st(0, 0, stitch.CmdStitch),
		st(1, 0, stitch.CmdStitch),
		st(1, 0, stitch.CmdColorChange),
		st(2, 0, stitch.CmdStitch),
		st(2, 0, stitch.CmdEnd),
	}
	if d := cmp.Diff(want, n.Stitches); d != "" {
		t.Errorf("stitches (-want +got):\n%s", d)
	}
	if len(n.Threads) != 2 || n.Threads[0] != red || n.Threads[1] != blue {
		t.Errorf("wrong threads %v", n.Threads)
	}
	if p.Count(stitch.CmdColorBreak) != 3 {
		t.Error("receiver was modified")
	}

	if got := New().Normalized(); len(got.Stitches) != 0 {
		t.Errorf("empty pattern normalized to %v", got.Stitches)
	}
}

func TestStable(t *testing.T) {
	p := New().AddBlock([]stitch.Stitch{
		st(0, 0, stitch.CmdStitch),
		st(0, 0, stitch.CmdStitch),
		st(5, 0, stitch.CmdStitch),
		st(5, 0, stitch.CmdTrim),
		st(5, 0, stitch.CmdStitch),
	}, red)
	want := []stitch.Stitch{
		st(0, 0, stitch.CmdStitch),
		st(5, 0, stitch.CmdStitch),
		st(5, 0, stitch.CmdTrim),
		st(5, 0, stitch.CmdEnd),
	}
	if d := cmp.Diff(want, p.Stable().Stitches); d != "" {
		t.Errorf("stitches (-want +got):\n%s", d)
	}
}

func TestMergeJumps(t *testing.T) {
	p := &Pattern{Stitches: []stitch.Stitch{
		st(0, 0, stitch.CmdStitch),
		st(1, 0, stitch.CmdJump),
		st(2, 0, stitch.CmdJump),
		st(3, 0, stitch.CmdJump),
		st(3, 0, stitch.CmdStitch),
		st(4, 0, stitch.CmdJump),
	}}
	want := []stitch.Stitch{
		st(0, 0, stitch.CmdStitch),
		st(3, 0, stitch.CmdJump),
		st(3, 0, stitch.CmdStitch),
		st(4, 0, stitch.CmdJump),
	}
	if d := cmp.Diff(want, p.MergeJumps().Stitches); d != "" {
		t.Errorf("stitches (-want +got):\n%s", d)
	}
}
