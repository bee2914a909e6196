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
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/gridfill/internal/job"
	"seehuhn.de/go/gridfill/testcases"
)

func TestWriteFixtures(t *testing.T) {
	dir := t.TempDir()

	written, err := writeFixtures(dir, "basic")
	require.NoError(t, err)
	cases := testcases.All["basic"]
	require.Len(t, written, len(cases))

	for i, tc := range cases {
		assert.Equal(t, filepath.Join(dir, "basic_"+tc.Name+".yaml"), written[i])

		j, err := job.Load(written[i])
		require.NoError(t, err, tc.Name)
		assert.Equal(t, "basic_"+tc.Name, j.Name)
		assert.Equal(t, job.List[int]{tc.ResolutionX}, j.ResolutionX)
		assert.Equal(t, tc.Rule.String(), j.Rule)

		paths, err := j.Paths()
		require.NoError(t, err)
		require.Len(t, paths, 1)
		assert.Equal(t, tc.Path.Cmds, paths[0].Cmds, tc.Name)
		assert.Equal(t, tc.Path.Coords, paths[0].Coords, tc.Name)
	}
}

func TestWriteFixturesRotated(t *testing.T) {
	written, err := writeFixtures(t.TempDir(), "rotated")
	require.NoError(t, err)
	require.NotEmpty(t, written)

	for i, tc := range testcases.All["rotated"] {
		j, err := job.Load(written[i])
		require.NoError(t, err)
		b, err := j.Batch()
		require.NoError(t, err)
		require.Len(t, b.Planes, 1)
		x := tc.XAxis()
		assert.InDelta(t, x.X, b.Planes[0].XAxis.X, 1e-12)
		assert.InDelta(t, x.Y, b.Planes[0].XAxis.Y, 1e-12)
	}
}

func TestFixturesCmd(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "fixtures", "--category", "basic", dir)
	require.NoError(t, err)
	lines := strings.Fields(out)
	require.Len(t, lines, len(testcases.All["basic"]))

	// the fixtures can be filled as they are
	out, err = execute(t, "fill", lines[0])
	require.NoError(t, err)
	assert.NotContains(t, out, "failed")
	assert.FileExists(t, strings.TrimSuffix(lines[0], ".yaml")+"-stitches.yaml")

	_, err = execute(t, "fixtures", "--category", "unknown", dir)
	assert.ErrorContains(t, err, "unknown category")

	_, err = execute(t, "fixtures")
	assert.Error(t, err)
}
