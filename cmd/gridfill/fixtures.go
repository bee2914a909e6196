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
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"seehuhn.de/go/gridfill/internal/job"
	"seehuhn.de/go/gridfill/testcases"
)

func newFixturesCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "fixtures DIR",
		Short: "Write the built-in test shapes as job files",
		Long: `Fixtures writes one job file for every built-in test shape into DIR.
The files are named <category>_<name>.yaml and can be passed to the fill
command directly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := writeFixtures(args[0], category)
			for _, fname := range written {
				fmt.Fprintln(cmd.OutOrStdout(), fname)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only write the shapes of this category")

	return cmd
}

// writeFixtures writes the test cases as job files into dir.  If category
// is not empty, only test cases of this category are written.
func writeFixtures(dir, category string) ([]string, error) {
	if category != "" {
		if _, ok := testcases.All[category]; !ok {
			return nil, fmt.Errorf("unknown category %q", category)
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	var written []string
	for _, cat := range slices.Sorted(maps.Keys(testcases.All)) {
		if category != "" && cat != category {
			continue
		}
		for _, tc := range testcases.All[cat] {
			j := fixtureJob(cat, tc)
			fname := filepath.Join(dir, j.Name+".yaml")
			if err := saveJob(fname, j); err != nil {
				return written, err
			}
			written = append(written, fname)
		}
	}
	return written, nil
}

func fixtureJob(category string, tc testcases.TestCase) *job.Job {
	name := category + "_" + tc.Name
	x := tc.XAxis()
	return &job.Job{
		Name:        name,
		ResolutionX: job.List[int]{tc.ResolutionX},
		ResolutionY: job.List[int]{tc.ResolutionY},
		Rule:        tc.Rule.String(),
		Planes:      job.List[job.PlaneSpec]{{XAxis: [2]float64{x.X, x.Y}}},
		Curves:      job.List[string]{job.FormatPathData(tc.Path)},
	}
}

func saveJob(fname string, j *job.Job) (err error) {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()
	return j.Encode(fd)
}
