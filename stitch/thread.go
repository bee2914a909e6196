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
	"image/color"
	"strconv"
	"strings"
)

// Thread describes an embroidery thread.  Only the colour is used by the
// stitch generators; the remaining fields are carried along as metadata.
type Thread struct {
	Color         color.NRGBA
	Description   string
	CatalogNumber string
	Details       string
	Brand         string
	Chart         string
	Weight        string
}

// DefaultThread returns the thread used when the caller supplies none.
func DefaultThread() *Thread {
	return &Thread{Color: color.NRGBA{A: 0xFF}}
}

// NewThread returns a thread of the given colour.
func NewThread(r, g, b uint8) *Thread {
	return &Thread{Color: color.NRGBA{R: r, G: g, B: b, A: 0xFF}}
}

// Hex returns the thread colour in the form "#rrggbb".
func (t *Thread) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", t.Color.R, t.Color.G, t.Color.B)
}

// ErrBadColor is returned by [ParseHex] for invalid colour strings.
var ErrBadColor = errors.New("invalid thread colour")

// ParseHex parses a colour of the form "#rgb" or "#rrggbb".
// The leading '#' is optional.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

// validate checks that t can be attached to a stitch block.
func (t *Thread) validate() error {
	if t == nil {
		return fmt.Errorf("%w: thread is missing", ErrInvalidThread)
	}
	if t.Color.A == 0 {
		return fmt.Errorf("%w: thread has no colour", ErrInvalidThread)
	}
	return nil
}

// UniqueThreads returns the threads of list with duplicates removed.
// Threads are compared by value; nil entries are skipped.  The order of
// first occurrence is preserved.
func UniqueThreads(list []*Thread) []*Thread {
	seen := make(map[Thread]bool, len(list))
	var res []*Thread
	for _, t := range list {
		if t == nil || seen[*t] {
			continue
		}
		seen[*t] = true
		res = append(res, t)
	}
	return res
}
