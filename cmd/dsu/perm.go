package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/haijima/dsu/internal/graph"
)

func NewPermCommand(_ *viper.Viper, _ afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "perm PERMUTATION"
	cmd.Short = "Check whether a mapping is a single-cycle permutation"
	cmd.Example = "  dsu perm 1,2,0,3"
	cmd.Long = "Check whether the comma-separated mapping i -> perm[i] is a permutation of 0..n-1 forming one single cycle.\n" +
		"Note that a valid permutation made of several disjoint cycles does not pass."
	cmd.Args = cobra.ExactArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return runPerm(cmd, args[0]) }

	return cmd
}

func runPerm(cmd *cobra.Command, arg string) error {
	fields := strings.Split(arg, ",")
	perm := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return errors.Wrapf(err, "invalid permutation %q", arg)
		}
		perm = append(perm, n)
	}
	verdict := graph.Verdict(graph.IsSingleCyclePermutation(perm))
	fmt.Fprintf(cmd.OutOrStdout(), "single cycle: %s\n", verdict.ColoredString())
	return nil
}
