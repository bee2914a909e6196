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
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/gridfill"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "gridfill",
		Short: "Grid fill embroidery stitch generator",
		Long: `Gridfill covers the inside of closed curves with rows of stitches.

Each curve is sampled on a grid aligned to a chosen direction.  The rows
are cut at the boundary and the pieces are sewn in one continuous path,
jumping and trimming the thread only where a row cannot be reached from
the previous one.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose {
				h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})
				gridfill.SetLogger(slog.New(h))
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log details of the fill to standard error")

	cmd.AddCommand(
		newFillCmd(),
		newFixturesCmd(),
		newThreadsCmd(),
		newCommandsCmd(),
	)
	return cmd
}

// Execute runs the root command.  This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
