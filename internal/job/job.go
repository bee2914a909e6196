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

// Package job reads grid fill job files.
//
// A job file is a YAML document describing a set of boundary curves
// together with the settings for filling them:
//
//	name: badge
//	resolution_x: 40
//	resolution_y: [40, 20]
//	tolerance: 0.001
//	rule: evenodd
//	planes:
//	  - x_axis: [1, 1]
//	threads:
//	  - color: "#cc0000"
//	    description: Red
//	curves:
//	  - M0 0 H40 V40 H0 Z
//	  - M10 10 h20 v20 h-20 z
//	output: badge.yaml
//
// Lists with one entry per curve may be given as a single value.  Curves
// are SVG path data, in millimetres.  Relative output paths are resolved
// against the directory of the job file.
package job

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gridfill"
	"seehuhn.de/go/gridfill/boundary"
	"seehuhn.de/go/gridfill/patternio"
)

// ErrInvalidJob is returned when a job file fails validation.
var ErrInvalidJob = errors.New("invalid job")

// Job is the content of a job file.
type Job struct {
	Name        string                     `yaml:"name,omitempty"`
	ResolutionX List[int]                  `yaml:"resolution_x"`
	ResolutionY List[int]                  `yaml:"resolution_y"`
	Tolerance   float64                    `yaml:"tolerance,omitempty"`
	Rule        string                     `yaml:"rule,omitempty"`
	Planes      List[PlaneSpec]            `yaml:"planes,omitempty"`
	Threads     List[patternio.ThreadSpec] `yaml:"threads,omitempty"`
	Curves      List[string]               `yaml:"curves"`
	Output      List[string]               `yaml:"output,omitempty"`

	// Dir is the directory relative output paths are resolved against.
	Dir string `yaml:"-"`
}

// PlaneSpec is the file representation of a plane.  A missing x axis
// selects the world x axis.
type PlaneSpec struct {
	Origin [2]float64 `yaml:"origin,flow,omitempty"`
	XAxis  [2]float64 `yaml:"x_axis,flow,omitempty"`
}

// List is a YAML sequence which may also be written as a single value.
type List[T any] []T

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (l *List[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var list []T
		if err := value.Decode(&list); err != nil {
			return err
		}
		*l = list
		return nil
	}
	var x T
	if err := value.Decode(&x); err != nil {
		return err
	}
	*l = List[T]{x}
	return nil
}

// Load reads and validates a job file.
func Load(fname string) (*Job, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	j, err := Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	j.Dir = filepath.Dir(fname)
	if j.Name == "" {
		j.Name = strings.TrimSuffix(filepath.Base(fname), filepath.Ext(fname))
	}
	return j, nil
}

// Decode reads and validates a job from r.  Unknown keys are an error.
func Decode(r io.Reader) (*Job, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	j := &Job{}
	if err := dec.Decode(j); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty job file", ErrInvalidJob)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}
	if err := j.Validate(); err != nil {
		return nil, err
	}
	return j, nil
}

// Encode writes the job in YAML format.
func (j *Job) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(j); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks the job for errors which can be detected without
// filling any curves.  All problems found are reported.
func (j *Job) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if len(j.Curves) == 0 {
		bad("no curves given")
	}
	for _, res := range []struct {
		name string
		list []int
	}{
		{"resolution_x", j.ResolutionX},
		{"resolution_y", j.ResolutionY},
	} {
		if len(res.list) == 0 {
			bad("%s is missing", res.name)
		}
		for _, r := range res.list {
			if r < 1 {
				bad("%s: resolution %d is less than one", res.name, r)
			}
		}
	}
	if j.Tolerance < 0 {
		bad("negative tolerance %g", j.Tolerance)
	}
	if _, err := parseRule(j.Rule); err != nil {
		errs = append(errs, err)
	}
	for i, t := range j.Threads {
		if _, err := patternio.ThreadFromYAML(t); err != nil {
			bad("thread %d: %w", i, err)
		}
	}
	for i, c := range j.Curves {
		if _, err := ParsePathData(c); err != nil {
			bad("curve %d: %w", i, err)
		}
	}
	for _, out := range j.Output {
		ext := strings.ToLower(filepath.Ext(out))
		if !slices.ContainsFunc(patternio.SupportedFormats(), func(f patternio.Format) bool {
			return f.Extension == ext && f.CanWrite
		}) {
			bad("output %q: %w", out, patternio.ErrUnsupportedFormat)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidJob, errors.Join(errs...))
	}
	return nil
}

// Paths parses the curves of the job.
func (j *Job) Paths() ([]*path.Data, error) {
	res := make([]*path.Data, len(j.Curves))
	for i, c := range j.Curves {
		p, err := ParsePathData(c)
		if err != nil {
			return nil, fmt.Errorf("curve %d: %w", i, err)
		}
		res[i] = p
	}
	return res, nil
}

// Batch returns the fill settings of the job.
func (j *Job) Batch() (gridfill.Batch, error) {
	rule, err := parseRule(j.Rule)
	if err != nil {
		return gridfill.Batch{}, err
	}
	b := gridfill.Batch{
		ResolutionX: j.ResolutionX,
		ResolutionY: j.ResolutionY,
		Tolerance:   j.Tolerance,
		Rule:        rule,
	}
	for _, ps := range j.Planes {
		b.Planes = append(b.Planes, ps.Plane())
	}
	for i, ts := range j.Threads {
		t, err := patternio.ThreadFromYAML(ts)
		if err != nil {
			return gridfill.Batch{}, fmt.Errorf("thread %d: %w", i, err)
		}
		b.Threads = append(b.Threads, t)
	}
	return b, nil
}

// OutputPaths returns the output files of the job, resolved against the
// directory of the job file.  If the job names no output, the stitches
// are written to "<name>-stitches.yaml".
func (j *Job) OutputPaths() []string {
	outs := j.Output
	if len(outs) == 0 {
		outs = []string{j.Name + "-stitches.yaml"}
	}
	res := make([]string, len(outs))
	for i, out := range outs {
		if !filepath.IsAbs(out) && j.Dir != "" {
			out = filepath.Join(j.Dir, out)
		}
		res[i] = out
	}
	return res
}

// Plane converts ps into a plane.  The result is
// normalised by [gridfill.Generate].
func (ps PlaneSpec) Plane() boundary.Plane {
	return boundary.Plane{
		Origin: vec.Vec2{X: ps.Origin[0], Y: ps.Origin[1]},
		XAxis:  vec.Vec2{X: ps.XAxis[0], Y: ps.XAxis[1]},
	}
}

func parseRule(s string) (boundary.FillRule, error) {
	switch strings.ToLower(s) {
	case "", "evenodd", "even-odd":
		return boundary.EvenOdd, nil
	case "nonzero", "non-zero":
		return boundary.NonZero, nil
	default:
		return 0, fmt.Errorf("unknown fill rule %q", s)
	}
}
