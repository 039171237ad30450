package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/haijima/dsu/internal/graph"
	"github.com/haijima/dsu/internal/io"
)

func NewBipartiteCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "bipartite"
	cmd.Short = "Check whether a graph is bipartite"
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runBipartite(cmd, v, fs) }

	SetInputFlags(cmd)

	return cmd
}

func runBipartite(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	f, err := io.NewLoader(fs).LoadEdgeList(v.GetString("input"))
	if err != nil {
		return err
	}
	ok, err := graph.IsBipartite(f.Vertices, f.Edges)
	if err != nil {
		return err
	}
	verdict := graph.Verdict(ok)
	fmt.Fprintf(cmd.OutOrStdout(), "bipartite: %s\n", verdict.ColoredString())
	return nil
}
