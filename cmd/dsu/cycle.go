package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/haijima/dsu/internal/graph"
	"github.com/haijima/dsu/internal/io"
)

func NewCycleCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "cycle"
	cmd.Short = "Detect a cycle and report the first redundant edge"
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runCycle(cmd, v, fs) }

	SetInputFlags(cmd)

	return cmd
}

func runCycle(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	f, err := io.NewLoader(fs).LoadEdgeList(v.GetString("input"))
	if err != nil {
		return err
	}
	redundant, err := graph.RedundantEdge(f.Vertices, f.Edges)
	if err != nil {
		return err
	}
	if redundant == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "acyclic")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "cyclic: redundant edge %s\n", redundant)
	return nil
}
