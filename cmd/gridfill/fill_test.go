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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/gridfill"
	"seehuhn.de/go/gridfill/internal/job"
	"seehuhn.de/go/gridfill/patternio"
	"seehuhn.de/go/gridfill/stitch"
)

// The second curve has no area and cannot be filled.
const fillJobFile = `
resolution_x: 4
resolution_y: 4
threads:
  color: "#ff0000"
curves:
  - M0 0 H10 V10 H0 Z
  - M0 0 L10 0 Z
output: [out.yaml, out.png]
`

func TestFill(t *testing.T) {
	dir := t.TempDir()
	fname := writeFile(t, dir, "job.yaml", fillJobFile)

	out, err := execute(t, "fill", fname)
	require.NoError(t, err)

	assert.Contains(t, out, "job\n")
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "failed: ")
	assert.Contains(t, out, "wrote "+filepath.Join(dir, "out.yaml"))
	assert.Contains(t, out, "wrote "+filepath.Join(dir, "out.png"))

	p, err := patternio.Read(filepath.Join(dir, "out.yaml"))
	require.NoError(t, err)
	require.Len(t, p.Threads, 1)
	assert.Equal(t, "#ff0000", p.Threads[0].Hex())
	assert.Equal(t, 1, p.Count(stitch.CmdColorBreak))
	assert.Equal(t, 1, p.Count(stitch.CmdTrim))
	assert.Positive(t, p.Count(stitch.CmdStitch))

	info, err := os.Stat(filepath.Join(dir, "out.png"))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestFillOut(t *testing.T) {
	dir := t.TempDir()
	fname := writeFile(t, dir, "job.yaml", fillJobFile)
	pdfName := filepath.Join(dir, "plot.pdf")
	yamlName := filepath.Join(dir, "normal.yaml")

	_, err := execute(t, "fill", "--normalize", "-o", pdfName, "-o", yamlName, fname)
	require.NoError(t, err)

	data, err := os.ReadFile(pdfName)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	p, err := patternio.Read(yamlName)
	require.NoError(t, err)
	require.NotEmpty(t, p.Stitches)
	assert.Equal(t, stitch.CmdEnd, p.Stitches[len(p.Stitches)-1].Cmd)
	assert.Zero(t, p.Count(stitch.CmdColorBreak))

	_, err = os.Stat(filepath.Join(dir, "out.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFillParallel(t *testing.T) {
	dir := t.TempDir()
	var fnames []string
	for _, name := range []string{"a", "b", "c"} {
		fnames = append(fnames, writeFile(t, dir, name+".yaml",
			"resolution_x: 3\nresolution_y: 3\ncurves: M0 0 H5 V5 H0 Z\n"))
	}

	out, err := execute(t, append([]string{"fill", "--parallel", "2"}, fnames...)...)
	require.NoError(t, err)

	for _, name := range []string{"a", "b", "c"} {
		assert.FileExists(t, filepath.Join(dir, name+"-stitches.yaml"))
		assert.Contains(t, out, name+"\n")
	}
}

func TestFillErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.yaml", fillJobFile)
	bad := writeFile(t, dir, "bad.yaml", "resolution_x: 0\ncurves: M0 0 H1 V1 Z\n")

	_, err := execute(t, "fill")
	assert.Error(t, err)

	_, err = execute(t, "fill", filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, "fill", bad)
	assert.ErrorIs(t, err, job.ErrInvalidJob)

	_, err = execute(t, "fill", "--out", filepath.Join(dir, "x.yaml"), good, good)
	assert.ErrorContains(t, err, "--out")

	_, err = execute(t, "fill", "--out", filepath.Join(dir, "x.dst"), good)
	assert.ErrorIs(t, err, patternio.ErrUnsupportedFormat)

	err = runFill(context.Background(), &bytes.Buffer{}, []string{good}, &fillOptions{resolutionX: -1})
	assert.ErrorIs(t, err, gridfill.ErrInvalidParameter)
}

func TestFillOptionsApply(t *testing.T) {
	j := &job.Job{
		ResolutionX: job.List[int]{1, 2},
		ResolutionY: job.List[int]{3},
		Tolerance:   0.1,
		Output:      job.List[string]{"a.yaml"},
		Dir:         "jobs",
	}

	(&fillOptions{}).apply(j)
	assert.Equal(t, job.List[int]{1, 2}, j.ResolutionX)
	assert.Equal(t, "jobs", j.Dir)

	opts := &fillOptions{
		resolutionX: 5,
		tolerance:   0.5,
		out:         []string{"b.pdf"},
	}
	opts.apply(j)
	assert.Equal(t, job.List[int]{5}, j.ResolutionX)
	assert.Equal(t, job.List[int]{3}, j.ResolutionY)
	assert.InDelta(t, 0.5, j.Tolerance, 1e-12)
	assert.Equal(t, []string{"b.pdf"}, j.OutputPaths())
}
