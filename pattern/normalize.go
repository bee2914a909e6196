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
	"seehuhn.de/go/gridfill/stitch"
)

// Normalized returns the machine-ready form of p.
//
// Colour breaks between two non-empty colour blocks become colour
// changes; breaks at the start or the end of the pattern, or next to
// another break, are dropped.  The remaining break commands (stitch and
// sequence breaks) and any END commands are removed, and a single END is
// appended.  The thread list is reduced to one thread per non-empty
// colour block.
func (p *Pattern) Normalized() *Pattern {
	res := New()
	thread := 0
	blockUsed := false
	pendingChange := false
	for _, s := range p.Stitches {
		switch {
		case isColorCommand(s.Cmd):
			if blockUsed {
				res.Threads = append(res.Threads, p.threadOrFiller(thread))
				pendingChange = true
			}
			thread++
			blockUsed = false
			continue
		case s.Cmd == stitch.CmdEnd, isBreak(s.Cmd):
			continue
		}

		if pendingChange {
			res.Stitches = append(res.Stitches, res.at(stitch.CmdColorChange))
			pendingChange = false
		}
		res.Stitches = append(res.Stitches, s)
		blockUsed = true
	}
	if blockUsed {
		res.Threads = append(res.Threads, p.threadOrFiller(thread))
	}
	if len(res.Stitches) > 0 {
		res.Stitches = append(res.Stitches, res.at(stitch.CmdEnd))
	}
	return res
}

// Stable returns the normalized form of p with consecutive stitches at the
// same position removed.
func (p *Pattern) Stable() *Pattern {
	norm := p.Normalized()
	res := &Pattern{Threads: norm.Threads}
	for _, s := range norm.Stitches {
		if s.Cmd == stitch.CmdStitch && len(res.Stitches) > 0 {
			prev := res.Stitches[len(res.Stitches)-1]
			if prev.X == s.X && prev.Y == s.Y {
				continue
			}
		}
		res.Stitches = append(res.Stitches, s)
	}
	return res
}

// MergeJumps returns a copy of p where every run of consecutive jumps is
// replaced by the last jump of the run.
func (p *Pattern) MergeJumps() *Pattern {
	res := &Pattern{Threads: append([]*stitch.Thread(nil), p.Threads...)}
	for i, s := range p.Stitches {
		if s.Cmd == stitch.CmdJump && i+1 < len(p.Stitches) && p.Stitches[i+1].Cmd == stitch.CmdJump {
			continue
		}
		res.Stitches = append(res.Stitches, s)
	}
	return res
}

func isBreak(cmd stitch.Command) bool {
	return cmd == stitch.CmdStitchBreak || cmd == stitch.CmdSequenceBreak
}
