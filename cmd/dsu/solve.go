package main

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/haijima/dsu/internal/graph"
	"github.com/haijima/dsu/internal/io"
)

func NewSolveCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "solve [QUERY...]"
	cmd.Aliases = []string{"equations"}
	cmd.Short = "Check ratio equations for satisfiability and evaluate queries"
	cmd.Long = "Check the ratio constraints in the input file for satisfiability.\n" +
		"Each QUERY is a division like \"a/b\" and is evaluated against the equalities."
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return runSolve(cmd, v, fs, args) }

	SetInputFlags(cmd)

	return cmd
}

func runSolve(cmd *cobra.Command, v *viper.Viper, fs afero.Fs, queries []string) error {
	f, err := io.NewLoader(fs).LoadEquations(v.GetString("input"))
	if err != nil {
		return err
	}
	ok, err := graph.SolveEquations(f.Equations)
	if err != nil {
		return err
	}
	verdict := graph.Verdict(ok)
	fmt.Fprintf(cmd.OutOrStdout(), "satisfiable: %s\n", verdict.ColoredString())

	for _, q := range queries {
		parts := strings.Split(q, "/")
		if len(parts) != 2 || len(parts[0]) != 1 || len(parts[1]) != 1 {
			return errors.Newf("query must look like \"a/b\", got %q", q)
		}
		ratio, known, err := graph.RatioOf(f.Equations, parts[0][0], parts[1][0])
		if err != nil {
			return err
		}
		if !known {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = ? (not related)\n", q)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", q, ratio)
	}
	return nil
}
