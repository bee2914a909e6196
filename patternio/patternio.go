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

// Package patternio reads and writes embroidery patterns.
//
// The file format is selected by the file name extension.  YAML stitch
// lists can be written and read back; PDF and PNG files are stitch plots
// for inspection and can only be written.
package patternio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"seehuhn.de/go/gridfill/pattern"
)

// ErrUnsupportedFormat is returned for file name extensions which are not
// handled by this package, or for formats which cannot be read.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Format describes one supported file format.
type Format struct {
	Extension   string
	Description string
	CanRead     bool
	CanWrite    bool
}

type codec struct {
	Format
	read  func(io.Reader) (*pattern.Pattern, error)
	write func(string, *pattern.Pattern) error
}

var codecs = []codec{
	{
		Format: Format{Extension: ".yaml", Description: "stitch list", CanRead: true, CanWrite: true},
		read:   ReadYAML,
		write:  writeFile(WriteYAML),
	},
	{
		Format: Format{Extension: ".yml", Description: "stitch list", CanRead: true, CanWrite: true},
		read:   ReadYAML,
		write:  writeFile(WriteYAML),
	},
	{
		Format: Format{Extension: ".pdf", Description: "stitch plot", CanWrite: true},
		write:  WritePDF,
	},
	{
		Format: Format{Extension: ".png", Description: "stitch plot", CanWrite: true},
		write: writeFile(func(w io.Writer, p *pattern.Pattern) error {
			return WritePNG(w, p, nil)
		}),
	},
}

// SupportedFormats lists the file formats known to this package.
func SupportedFormats() []Format {
	res := make([]Format, len(codecs))
	for i, c := range codecs {
		res[i] = c.Format
	}
	return res
}

func lookup(fname string) (*codec, error) {
	ext := strings.ToLower(filepath.Ext(fname))
	idx := slices.IndexFunc(codecs, func(c codec) bool { return c.Extension == ext })
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return &codecs[idx], nil
}

// Read reads a pattern from a file.
func Read(fname string) (*pattern.Pattern, error) {
	c, err := lookup(fname)
	if err != nil {
		return nil, err
	}
	if c.read == nil {
		return nil, fmt.Errorf("%w: cannot read %q files", ErrUnsupportedFormat, c.Extension)
	}

	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	p, err := c.read(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return p, nil
}

// Write writes a pattern to a file.
func Write(p *pattern.Pattern, fname string) error {
	c, err := lookup(fname)
	if err != nil {
		return err
	}
	return c.write(fname, p)
}

// WriteAll writes each pattern to the corresponding file name.  If there
// are fewer file names than patterns, the names for the remaining patterns
// are derived from the last one by appending " (1)", " (2)", ... to the
// base name.  Patterns which cannot be written are skipped; the returned
// error lists all failures.
func WriteAll(patterns []*pattern.Pattern, fnames []string) ([]string, error) {
	if len(patterns) > 0 && len(fnames) == 0 {
		return nil, errors.New("no output file names given")
	}
	var written []string
	var errs []error
	for i, p := range patterns {
		fname := OutputName(fnames, i)
		if err := Write(p, fname); err != nil {
			errs = append(errs, fmt.Errorf("pattern %d: %w", i, err))
			continue
		}
		written = append(written, fname)
	}
	return written, errors.Join(errs...)
}

// OutputName returns the file name used by [WriteAll] for pattern i.
func OutputName(fnames []string, i int) string {
	if i < len(fnames) {
		return filepath.Clean(strings.TrimSpace(fnames[i]))
	}
	last := filepath.Clean(strings.TrimSpace(fnames[len(fnames)-1]))
	ext := filepath.Ext(last)
	return fmt.Sprintf("%s (%d)%s", strings.TrimSuffix(last, ext), i-len(fnames)+1, ext)
}

func writeFile(enc func(io.Writer, *pattern.Pattern) error) func(string, *pattern.Pattern) error {
	return func(fname string, p *pattern.Pattern) (err error) {
		fd, err := os.Create(fname)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := fd.Close(); err == nil {
				err = cerr
			}
		}()
		return enc(fd, p)
	}
}
