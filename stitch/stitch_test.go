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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/vec"
)

func TestFromModel(t *testing.T) {
	cases := []vec.Vec2{
		{X: 0, Y: 0},
		{X: 1.5, Y: 2},
		{X: -3.25, Y: 7.125},
		{X: 1e-3, Y: -1e3},
	}
	for _, p := range cases {
		s := FromModel(p, CmdStitch)
		if s.X != 10*p.X || s.Y != -10*p.Y {
			t.Errorf("FromModel(%v) = (%g, %g)", p, s.X, s.Y)
		}
		back := s.Model()
		if math.Abs(back.X-p.X) > 1e-12 || math.Abs(back.Y-p.Y) > 1e-12 {
			t.Errorf("round trip of %v gave %v", p, back)
		}
	}
}

func TestStitchString(t *testing.T) {
	cases := []struct {
		in   Stitch
		want string
	}{
		{Stitch{X: 10, Y: -20, Cmd: CmdStitch}, "10,-20,0"},
		{Stitch{X: 0.5, Y: 0, Cmd: CmdTrim}, "0.5,0,2"},
		{Stitch{X: -1.25, Y: 3, Cmd: CmdColorChange}, "-1.25,3,5"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("%v.String() = %q, want %q", c.in, got, c.want)
		}
		back, err := ParseStitch(c.want)
		if err != nil {
			t.Fatal(err)
		}
		if back != c.in {
			t.Errorf("ParseStitch(%q) = %v, want %v", c.want, back, c.in)
		}
	}
}

func TestParseStitchMalformed(t *testing.T) {
	bad := []string{
		"",
		"1,2",
		"1,2,3,4",
		"a,b,0",
		"1.0,2.0,1.5",
		"1,,2",
	}
	for _, s := range bad {
		if _, err := ParseStitch(s); !errors.Is(err, ErrMalformedStitch) {
			t.Errorf("ParseStitch(%q): expected ErrMalformedStitch, got %v", s, err)
		}
	}

	good := []string{"1.,2.,0", ".5,-.5,2", "1e3,-2E-1,+1", " 3,4,0 "}
	for _, s := range good {
		if _, err := ParseStitch(s); err != nil {
			t.Errorf("ParseStitch(%q): %v", s, err)
		}
	}
}

func TestConstruct(t *testing.T) {
	pts := []vec.Vec2{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}

	got := Construct(pts, []Command{CmdTrim})
	want := []Stitch{
		{X: 10, Y: -10, Cmd: CmdTrim},
		{X: 20, Y: -20, Cmd: CmdTrim},
		{X: 30, Y: -30, Cmd: CmdTrim},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("more points than commands (-want +got):\n%s", d)
	}

	got = Construct(pts[:1], []Command{CmdStitch, CmdJump, CmdTrim})
	want = []Stitch{
		{X: 10, Y: -10, Cmd: CmdStitch},
		{X: 10, Y: -10, Cmd: CmdJump},
		{X: 10, Y: -10, Cmd: CmdTrim},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("more commands than points (-want +got):\n%s", d)
	}

	if got := Construct(nil, []Command{CmdStitch}); got != nil {
		t.Errorf("expected nil for empty point list, got %v", got)
	}
}

func TestCommandNames(t *testing.T) {
	for cmd, name := range Names() {
		if cmd.String() != name {
			t.Errorf("%d.String() = %q, want %q", int(cmd), cmd.String(), name)
		}
		back, err := ParseCommand(name)
		if err != nil || back != cmd {
			t.Errorf("ParseCommand(%q) = %v, %v", name, back, err)
		}
	}

	if cmd, err := ParseCommand(" trim "); err != nil || cmd != CmdTrim {
		t.Errorf("ParseCommand is not case insensitive: %v, %v", cmd, err)
	}
	if _, err := ParseCommand("SEW_FASTER"); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("expected ErrUnknownCommand, got %v", err)
	}
	if s := Command(0x77).String(); s != "COMMAND(119)" {
		t.Errorf("unexpected name for unknown command: %q", s)
	}
}

func TestNewBlock(t *testing.T) {
	stitches := []Stitch{{X: 1, Y: 2, Cmd: CmdStitch}, {X: 1, Y: 2, Cmd: CmdTrim}}

	if _, err := NewBlock(stitches, nil); !errors.Is(err, ErrInvalidThread) {
		t.Errorf("nil thread: expected ErrInvalidThread, got %v", err)
	}
	if _, err := NewBlock(stitches, &Thread{}); !errors.Is(err, ErrInvalidThread) {
		t.Errorf("colourless thread: expected ErrInvalidThread, got %v", err)
	}

	thread := NewThread(0xff, 0x80, 0x00)
	b, err := NewBlock(stitches, thread)
	if err != nil {
		t.Fatal(err)
	}
	stitches[0].X = 99
	if b.Stitches[0].X != 1 {
		t.Error("block shares the stitch slice with the caller")
	}
	if got, want := b.String(), "StitchBlock (2 Stitches, EmbThread #ff8000)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if b.Count(CmdTrim) != 1 || b.Len() != 2 {
		t.Errorf("Count/Len wrong: %d %d", b.Count(CmdTrim), b.Len())
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#1a2B3c")
	if err != nil {
		t.Fatal(err)
	}
	if c.R != 0x1a || c.G != 0x2b || c.B != 0x3c || c.A != 0xff {
		t.Errorf("unexpected colour %v", c)
	}
	c, err = ParseHex("f0a")
	if err != nil {
		t.Fatal(err)
	}
	if (&Thread{Color: c}).Hex() != "#ff00aa" {
		t.Errorf("short form expanded wrongly: %v", c)
	}
	for _, bad := range []string{"", "#12345", "#gggggg"} {
		if _, err := ParseHex(bad); !errors.Is(err, ErrBadColor) {
			t.Errorf("ParseHex(%q): expected ErrBadColor, got %v", bad, err)
		}
	}
}

func TestUniqueThreads(t *testing.T) {
	red := NewThread(255, 0, 0)
	red2 := NewThread(255, 0, 0)
	blue := NewThread(0, 0, 255)
	blue.Brand = "Madeira"

	got := UniqueThreads([]*Thread{red, nil, blue, red2, blue})
	want := []*Thread{red, blue}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("UniqueThreads (-want +got):\n%s", d)
	}
}
