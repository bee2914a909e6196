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
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"seehuhn.de/go/gridfill/internal/job"
	"seehuhn.de/go/gridfill/stitch"
)

func newThreadsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "threads JOB.yaml",
		Short: "List the threads used by a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := job.Load(args[0])
			if err != nil {
				return err
			}
			b, err := j.Batch()
			if err != nil {
				return err
			}
			threads := stitch.UniqueThreads(b.Threads)
			if len(threads) == 0 {
				threads = []*stitch.Thread{stitch.DefaultThread()}
			}
			printThreads(cmd.OutOrStdout(), threads)
			return nil
		},
	}
}

func printThreads(w io.Writer, threads []*stitch.Thread) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"", "Colour", "Description", "Brand", "Catalog"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	for _, t := range threads {
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(t.Hex())).
			Render("    ")
		table.Append([]string{swatch, t.Hex(), t.Description, t.Brand, t.CatalogNumber})
	}
	table.Render()
}
