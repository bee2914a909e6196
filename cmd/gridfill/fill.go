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
	"errors"
	"fmt"
	"io"
	"runtime"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/gridfill"
	"seehuhn.de/go/gridfill/internal/job"
	"seehuhn.de/go/gridfill/pattern"
	"seehuhn.de/go/gridfill/patternio"
	"seehuhn.de/go/gridfill/stitch"
)

const fillLongDescription = `Fill reads one or more job files, fills every curve of each job
with grid stitches and writes the resulting pattern to the outputs named
in the job.

Jobs are independent and are processed in parallel.  A curve which cannot
be filled is reported in the summary table and left out of the pattern;
the remaining curves of the job are still written.`

type fillOptions struct {
	parallel    int
	resolutionX int
	resolutionY int
	tolerance   float64
	out         []string
	normalize   bool
}

func newFillCmd() *cobra.Command {
	opts := &fillOptions{}

	cmd := &cobra.Command{
		Use:   "fill JOB.yaml...",
		Short: "Fill the curves of job files with grid stitches",
		Long:  fillLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFill(cmd.Context(), cmd.OutOrStdout(), args, opts)
		},
	}
	flags := cmd.Flags()
	flags.IntVarP(&opts.parallel, "parallel", "p", runtime.NumCPU(), "number of jobs processed at the same time")
	flags.IntVar(&opts.resolutionX, "resolution-x", 0, "override the number of grid cells along the rows")
	flags.IntVar(&opts.resolutionY, "resolution-y", 0, "override the number of grid cells across the rows")
	flags.Float64Var(&opts.tolerance, "tolerance", 0, "override the geometric tolerance, in millimetres")
	flags.StringArrayVarP(&opts.out, "out", "o", nil, "write the pattern to this file instead (can be repeated)")
	flags.BoolVar(&opts.normalize, "normalize", false, "turn colour breaks into colour changes and end the pattern")

	return cmd
}

// apply overrides the job settings with the values given on the command
// line.
func (opts *fillOptions) apply(j *job.Job) {
	if opts.resolutionX > 0 {
		j.ResolutionX = job.List[int]{opts.resolutionX}
	}
	if opts.resolutionY > 0 {
		j.ResolutionY = job.List[int]{opts.resolutionY}
	}
	if opts.tolerance > 0 {
		j.Tolerance = opts.tolerance
	}
	if len(opts.out) > 0 {
		j.Output = opts.out
		j.Dir = ""
	}
}

func runFill(ctx context.Context, w io.Writer, fnames []string, opts *fillOptions) error {
	if len(opts.out) > 0 && len(fnames) > 1 {
		return errors.New("--out can only be used with a single job file")
	}
	if opts.resolutionX < 0 || opts.resolutionY < 0 || opts.tolerance < 0 {
		return fmt.Errorf("%w: negative override", gridfill.ErrInvalidParameter)
	}

	jobs := make([]*job.Job, len(fnames))
	for i, fname := range fnames {
		j, err := job.Load(fname)
		if err != nil {
			return err
		}
		opts.apply(j)
		jobs[i] = j
	}

	reports := make([]*jobReport, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.parallel, 1))
	for i, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := fillJob(j, opts.normalize)
			reports[i] = r
			if err != nil {
				return fmt.Errorf("job %q: %w", j.Name, err)
			}
			return nil
		})
	}
	err := g.Wait()

	for _, r := range reports {
		if r != nil {
			r.print(w)
		}
	}
	return err
}

// jobReport is the outcome of a single job.
type jobReport struct {
	name    string
	result  *gridfill.BatchResult
	written []string
}

// fillJob fills all curves of j and writes the merged pattern to every
// output of the job.  The report is returned even if writing fails.
func fillJob(j *job.Job, normalize bool) (*jobReport, error) {
	paths, err := j.Paths()
	if err != nil {
		return nil, err
	}
	batch, err := j.Batch()
	if err != nil {
		return nil, err
	}
	res, err := gridfill.GenerateAll(paths, batch)
	if err != nil {
		return nil, err
	}

	var parts []*pattern.Pattern
	for _, b := range res.Blocks() {
		parts = append(parts, pattern.New().AddStitchBlock(b))
	}
	p := pattern.Merge(parts...)
	if normalize {
		p = p.Normalized()
	}

	r := &jobReport{name: j.Name, result: res}
	outs := j.OutputPaths()
	r.written, err = patternio.WriteAll(slices.Repeat([]*pattern.Pattern{p}, len(outs)), outs)
	return r, err
}

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func (r *jobReport) print(w io.Writer) {
	failed := make(map[int]error)
	for _, warn := range r.result.Warnings {
		failed[warn.Index] = warn.Err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Curve", "Rows", "Branches", "Stitches", "Trims", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	totalStitches := 0
	for i, res := range r.result.Results {
		row := []string{strconv.Itoa(i), "-", "-", "-", "-", ""}
		if res != nil {
			if res.Grid != nil {
				row[1] = strconv.Itoa(len(res.Grid.Rows))
			}
			row[2] = strconv.Itoa(res.Branches)
			row[3] = strconv.Itoa(len(res.Stitches))
			row[4] = strconv.Itoa(countCommands(res.Commands, stitch.CmdTrim))
			totalStitches += len(res.Stitches)
		}
		switch {
		case failed[i] != nil:
			row[5] = failStyle.Render("failed: " + failed[i].Error())
		case res != nil && len(res.DegenerateRows) > 0:
			row[5] = warnStyle.Render(fmt.Sprintf("%d degenerate rows", len(res.DegenerateRows)))
		default:
			row[5] = "ok"
		}
		table.Append(row)
	}
	table.SetFooter([]string{"", "", "", strconv.Itoa(totalStitches), "", ""})
	table.Render()

	fmt.Fprintf(w, "%s\n%s", titleStyle.Render(r.name), buf.String())
	for _, fname := range r.written {
		fmt.Fprintf(w, "wrote %s\n", fname)
	}
	fmt.Fprintln(w)
}

func countCommands(cmds []stitch.Command, cmd stitch.Command) int {
	n := 0
	for _, c := range cmds {
		if c == cmd {
			n++
		}
	}
	return n
}
