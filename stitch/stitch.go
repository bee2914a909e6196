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

// Package stitch defines the value types shared by all stitch generators:
// machine commands, stitches in device units, threads and stitch blocks.
//
// Device units are tenths of a millimetre.  Geometry is handled in model
// units (millimetres, y pointing up); the conversion scales by 10 and flips
// the y axis to match the orientation of embroidery machines.
package stitch

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// Scaling between model units and device units.
const (
	ScaleX = 10.0
	ScaleY = -10.0
)

// A Stitch is a single needle position together with the command
// executed there.  Coordinates are in device units.
type Stitch struct {
	X, Y float64
	Cmd  Command
}

// FromModel converts a point in model units into a stitch.
func FromModel(p vec.Vec2, cmd Command) Stitch {
	s := Stitch{X: p.X * ScaleX, Y: p.Y * ScaleY, Cmd: cmd}
	if s.X == 0 {
		s.X = 0 // avoid negative zero
	}
	if s.Y == 0 {
		s.Y = 0
	}
	return s
}

// Model returns the stitch position in model units.
// This is the inverse of [FromModel].
func (s Stitch) Model() vec.Vec2 {
	return vec.Vec2{X: s.X / ScaleX, Y: s.Y / ScaleY}
}

// String formats the stitch as "x,y,cmd", with cmd given as integer.
func (s Stitch) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatFloat(s.X, 'f', -1, 64))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(s.Y, 'f', -1, 64))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(int(s.Cmd)))
	return b.String()
}

// ErrMalformedStitch is returned by [ParseStitch] for invalid input.
var ErrMalformedStitch = errors.New("malformed stitch string")

var stitchRegexp = regexp.MustCompile(`^([+-]?(\d+([.]\d*)?([eE][+-]?\d+)?|[.]\d+([eE][+-]?\d+)?)[,]){2}[-+]?[0-9]+$`)

// ParseStitch parses a stitch string of the form "x,y,cmd".
func ParseStitch(s string) (Stitch, error) {
	s = strings.TrimSpace(s)
	if !stitchRegexp.MatchString(s) {
		return Stitch{}, fmt.Errorf("%w: %q", ErrMalformedStitch, s)
	}
	parts := strings.Split(s, ",")
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Stitch{}, fmt.Errorf("%w: %v", ErrMalformedStitch, err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Stitch{}, fmt.Errorf("%w: %v", ErrMalformedStitch, err)
	}
	cmd, err := strconv.Atoi(parts[2])
	if err != nil {
		return Stitch{}, fmt.Errorf("%w: %v", ErrMalformedStitch, err)
	}
	return Stitch{X: x, Y: y, Cmd: Command(cmd)}, nil
}

// Construct pairs model-space points with commands and converts them to
// stitches.  If the two lists differ in length, the longer one determines
// the number of stitches and the last element of the shorter one is
// repeated.  The result is nil if either list is empty.
func Construct(points []vec.Vec2, cmds []Command) []Stitch {
	if len(points) == 0 || len(cmds) == 0 {
		return nil
	}
	n := max(len(points), len(cmds))
	res := make([]Stitch, n)
	for i := range n {
		p := points[min(i, len(points)-1)]
		cmd := cmds[min(i, len(cmds)-1)]
		res[i] = FromModel(p, cmd)
	}
	return res
}

// Strings formats a list of stitches as stitch strings.
func Strings(stitches []Stitch) []string {
	res := make([]string, len(stitches))
	for i, s := range stitches {
		res[i] = s.String()
	}
	return res
}
