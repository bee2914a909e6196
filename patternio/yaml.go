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

package patternio

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/gridfill/pattern"
	"seehuhn.de/go/gridfill/stitch"
)

// ThreadSpec is the file representation of a thread.  The colour is
// given as "#rrggbb".
type ThreadSpec struct {
	Color         string `yaml:"color"`
	Description   string `yaml:"description,omitempty"`
	CatalogNumber string `yaml:"catalog_number,omitempty"`
	Details       string `yaml:"details,omitempty"`
	Brand         string `yaml:"brand,omitempty"`
	Chart         string `yaml:"chart,omitempty"`
	Weight        string `yaml:"weight,omitempty"`
}

// yamlPattern is the file representation of a pattern.  Stitches are
// stored as stitch strings "x,y,cmd".
type yamlPattern struct {
	Threads  []ThreadSpec `yaml:"threads"`
	Stitches []string     `yaml:"stitches"`
}

// WriteYAML writes p as a YAML stitch list.
func WriteYAML(w io.Writer, p *pattern.Pattern) error {
	doc := yamlPattern{
		Threads:  make([]ThreadSpec, 0, len(p.Threads)),
		Stitches: stitch.Strings(p.Stitches),
	}
	for _, t := range p.Threads {
		if t == nil {
			t = stitch.DefaultThread()
		}
		doc.Threads = append(doc.Threads, ThreadToYAML(t))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}

// ReadYAML reads a YAML stitch list.
func ReadYAML(r io.Reader) (*pattern.Pattern, error) {
	var doc yamlPattern
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	p := pattern.New()
	for i, yt := range doc.Threads {
		t, err := ThreadFromYAML(yt)
		if err != nil {
			return nil, fmt.Errorf("thread %d: %w", i, err)
		}
		p.Threads = append(p.Threads, t)
	}
	for i, s := range doc.Stitches {
		st, err := stitch.ParseStitch(s)
		if err != nil {
			return nil, fmt.Errorf("stitch %d: %w", i, err)
		}
		p.Stitches = append(p.Stitches, st)
	}
	return p, nil
}

// ThreadToYAML converts a thread into its file representation.
func ThreadToYAML(t *stitch.Thread) ThreadSpec {
	return ThreadSpec{
		Color:         t.Hex(),
		Description:   t.Description,
		CatalogNumber: t.CatalogNumber,
		Details:       t.Details,
		Brand:         t.Brand,
		Chart:         t.Chart,
		Weight:        t.Weight,
	}
}

// ThreadFromYAML converts the file representation of a thread back into a
// thread.
func ThreadFromYAML(yt ThreadSpec) (*stitch.Thread, error) {
	col, err := stitch.ParseHex(yt.Color)
	if err != nil {
		return nil, err
	}
	return &stitch.Thread{
		Color:         col,
		Description:   yt.Description,
		CatalogNumber: yt.CatalogNumber,
		Details:       yt.Details,
		Brand:         yt.Brand,
		Chart:         yt.Chart,
		Weight:        yt.Weight,
	}, nil
}
