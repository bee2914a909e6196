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

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreadsCmd(t *testing.T) {
	dir := t.TempDir()
	fname := writeFile(t, dir, "job.yaml", `
resolution_x: 4
resolution_y: 4
threads:
  - color: "#f00"
    brand: Madeira
  - color: "#f00"
    brand: Madeira
  - color: "#0000ff"
    description: Blue
curves: M0 0 H10 V10 H0 Z
`)

	out, err := execute(t, "threads", fname)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "#ff0000"))
	assert.Contains(t, out, "Madeira")
	assert.Contains(t, out, "#0000ff")
	assert.Contains(t, out, "Blue")
}

func TestThreadsCmdDefault(t *testing.T) {
	fname := writeFile(t, t.TempDir(), "job.yaml", "resolution_x: 1\nresolution_y: 1\ncurves: M0 0 H1 V1 Z\n")

	out, err := execute(t, "threads", fname)
	require.NoError(t, err)
	assert.Contains(t, out, "#000000")

	_, err = execute(t, "threads")
	assert.Error(t, err)
}

func TestCommandsCmd(t *testing.T) {
	out, err := execute(t, "commands")
	require.NoError(t, err)

	for _, want := range []string{"NO_COMMAND", "STITCH", "COLOR_BREAK", "0xE2", "FRAME_EJECT"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "NO_COMMAND"), strings.Index(out, "JUMP"))
	assert.Less(t, strings.Index(out, "TRIM"), strings.Index(out, "COLOR_BREAK"))

	_, err = execute(t, "commands", "extra")
	assert.Error(t, err)
}
