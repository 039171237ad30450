package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/haijima/dsu/internal/graph"
	"github.com/haijima/dsu/internal/io"
)

func NewReportCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "report"
	cmd.Short = "Run every connectivity analysis on one graph"
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runReport(cmd, v, fs) }

	SetInputFlags(cmd)

	return cmd
}

func runReport(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	input := v.GetString("input")
	// One loader for the whole run: each analysis below re-reads the input
	// through the cache, so the file is opened and parsed once.
	loader := io.NewLoader(fs)
	out := cmd.OutOrStdout()

	f, err := loader.LoadEdgeList(input)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: %d vertices, %d edges\n\n", f.Path, f.Vertices, len(f.Edges))

	components, err := graph.ComponentStats(f.Vertices, f.Edges)
	if err != nil {
		return err
	}
	largest := 0
	if len(components) > 0 {
		largest = components[0].Size
	}
	fmt.Fprintf(out, "components:      %d (largest %d)\n", len(components), largest)

	f, err = loader.LoadEdgeList(input)
	if err != nil {
		return err
	}
	redundant, err := graph.RedundantEdge(f.Vertices, f.Edges)
	if err != nil {
		return err
	}
	if redundant == nil {
		fmt.Fprintf(out, "cycle:           none\n")
	} else {
		fmt.Fprintf(out, "cycle:           yes, first redundant edge %s\n", redundant)
	}

	bipartite, err := graph.IsBipartite(f.Vertices, f.Edges)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "bipartite:       %s\n", graph.Verdict(bipartite).ColoredString())

	bridges, err := graph.CriticalConnections(f.Vertices, f.Edges)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "bridges:         %d\n", len(bridges))

	mst, err := graph.MinimumSpanningTree(f.Vertices, f.Edges)
	if err != nil {
		if errors.Is(err, graph.ErrDisconnected) {
			fmt.Fprintf(out, "spanning tree:   none (disconnected)\n")
			return nil
		}
		return err
	}
	fmt.Fprintf(out, "spanning tree:   %d edges, total weight %d\n", len(mst.Edges), mst.TotalWeight)
	return nil
}
