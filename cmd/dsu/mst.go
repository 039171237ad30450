package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/haijima/dsu/internal/dot"
	"github.com/haijima/dsu/internal/graph"
	"github.com/haijima/dsu/internal/io"
)

func NewMstCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "mst"
	cmd.Short = "Compute a minimum spanning tree with Kruskal's algorithm"
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runMst(cmd, v, fs) }

	SetInputFlags(cmd)
	SetFormatFlag(cmd, "dot")

	return cmd
}

func runMst(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	format := v.GetString("format")

	f, err := io.NewLoader(fs).LoadEdgeList(v.GetString("input"))
	if err != nil {
		return err
	}
	mst, err := graph.MinimumSpanningTree(f.Vertices, f.Edges)
	if err != nil {
		return err
	}

	if format == "dot" {
		return printMstDot(cmd, f, mst)
	}
	p, err := io.NewPrinter(cmd.OutOrStdout(), format)
	if err != nil {
		return err
	}
	p.SetHeader([]string{"#", "u", "v", "weight"})
	for i, e := range mst.Edges {
		p.AddRow([]string{strconv.Itoa(i + 1), strconv.Itoa(e.U), strconv.Itoa(e.V), strconv.Itoa(e.Weight)})
	}
	p.Print()
	fmt.Fprintf(cmd.OutOrStdout(), "total weight: %d\n", mst.TotalWeight)
	return nil
}

// printMstDot renders the whole graph, with tree edges bold and the rest
// gray, so the spanning structure is visible in context.
func printMstDot(cmd *cobra.Command, f *io.EdgeListFile, mst *graph.MST) error {
	inTree := make(map[graph.Edge]bool, len(mst.Edges))
	for _, e := range mst.Edges {
		inTree[e] = true
	}
	g := dot.Graph{Title: fmt.Sprintf("mst of %s (total weight %d)", f.Path, mst.TotalWeight)}
	for i := 0; i < f.Vertices; i++ {
		g.Nodes = append(g.Nodes, &dot.Node{ID: strconv.Itoa(i)})
	}
	for _, e := range f.Edges {
		attrs := dot.Attrs{"label": strconv.Itoa(e.Weight)}
		if inTree[e] {
			attrs["style"] = "bold"
		} else {
			attrs["color"] = "gray"
		}
		g.Edges = append(g.Edges, &dot.Edge{From: strconv.Itoa(e.U), To: strconv.Itoa(e.V), Attrs: attrs})
	}
	return dot.WriteGraph(cmd.OutOrStdout(), g)
}
