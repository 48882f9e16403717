// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/phylotree/config"
	"github.com/katalvlaran/phylotree/newick"
	"github.com/katalvlaran/phylotree/render"
)

// errLabelNotFound is returned by query commands for unknown labels.
var errLabelNotFound = errors.New("label not found")

func newTreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree <fasta>",
		Short: "Print the inferred tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.build(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			format := a.cfg.Print.Format

			if format == config.FormatIndented || format == config.FormatBoth {
				err := render.WriteIndented(out, t,
					render.WithWidth(a.cfg.Print.Width),
					render.WithFill(a.cfg.Print.FillRune()),
				)
				if err != nil {
					return err
				}
			}
			if format == config.FormatBoth {
				fmt.Fprintln(out)
			}
			if format == config.FormatNewick || format == config.FormatBoth {
				if err := newick.Write(out, t); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}

			return nil
		},
	}
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <fasta>",
		Short: "Print tree statistics and the species list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.build(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "species:         %d\n", t.CountLeaves())
			fmt.Fprintf(out, "height:          %d\n", t.Height())
			fmt.Fprintf(out, "weighted height: %.5f\n", t.WeightedHeight())
			for _, s := range t.Species() {
				fmt.Fprintf(out, "  %s (%d)\n", s.Name, s.Len())
			}

			return nil
		},
	}
}

func newLCACmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lca <fasta> <label1> <label2>",
		Short: "Print the least common ancestor of two nodes",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.build(args[0])
			if err != nil {
				return err
			}
			lca := t.FindLeastCommonAncestor(args[1], args[2])
			if lca == nil {
				return fmt.Errorf("%w: %q or %q", errLabelNotFound, args[1], args[2])
			}
			fmt.Fprintln(cmd.OutOrStdout(), lca.Label())

			return nil
		},
	}
}

func newDistanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distance <fasta> <label1> <label2>",
		Short: "Print the evolutionary distance between two nodes (+Inf if either is missing)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.build(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatDistance(t.FindEvolutionaryDistance(args[1], args[2])))

			return nil
		},
	}
}

func formatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return "+Inf"
	}

	return strconv.FormatFloat(d, 'f', 5, 64)
}
