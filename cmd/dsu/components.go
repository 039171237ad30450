package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/haijima/dsu/internal/dot"
	"github.com/haijima/dsu/internal/graph"
	"github.com/haijima/dsu/internal/io"
	"github.com/haijima/dsu/internal/util"
)

func NewComponentsCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "components"
	cmd.Aliases = []string{"component", "cc"}
	cmd.Short = "List connected components of a graph"
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runComponents(cmd, v, fs) }

	SetInputFlags(cmd)
	SetFormatFlag(cmd, "dot")
	cmd.Flags().String("filter", "", "CEL `expression` to filter components, e.g. \"size >= 2\"")
	cmd.Flags().Bool("largest", false, "Show only the largest component")
	cmd.Flags().Bool("no-header", false, "Hide header")

	return cmd
}

func runComponents(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	input := v.GetString("input")
	format := v.GetString("format")
	filterExpr := v.GetString("filter")
	largestOnly := v.GetBool("largest")
	noHeader := v.GetBool("no-header")

	f, err := io.NewLoader(fs).LoadEdgeList(input)
	if err != nil {
		return err
	}
	components, err := graph.ComponentStats(f.Vertices, f.Edges)
	if err != nil {
		return err
	}
	filter, err := graph.NewFilter(filterExpr)
	if err != nil {
		return err
	}
	filtered := make([]graph.Component, 0, len(components))
	for _, c := range components {
		keep, err := filter.Keep(c)
		if err != nil {
			return err
		}
		if keep {
			filtered = append(filtered, c)
		}
	}
	if largestOnly && len(filtered) > 1 {
		filtered = filtered[:1]
	}

	if format == "dot" {
		return printComponentsDot(cmd, f, filtered)
	}
	p, err := io.NewPrinter(cmd.OutOrStdout(), format)
	if err != nil {
		return err
	}
	if !noHeader {
		p.SetHeader([]string{"#", "root", "size", "members"})
	}
	for i, c := range filtered {
		p.AddRow([]string{strconv.Itoa(i + 1), strconv.Itoa(c.Root), strconv.Itoa(c.Size), joinInts(c.Members)})
	}
	p.Print()
	return nil
}

func printComponentsDot(cmd *cobra.Command, f *io.EdgeListFile, components []graph.Component) error {
	g := dot.Graph{Title: fmt.Sprintf("components of %s", f.Path)}
	shown := make(map[int]bool, f.Vertices)
	for _, c := range components {
		cluster := &dot.Cluster{ID: strconv.Itoa(c.Root), Label: fmt.Sprintf("component %d (size %d)", c.Root, c.Size)}
		for _, m := range c.Members {
			cluster.Nodes = append(cluster.Nodes, &dot.Node{ID: strconv.Itoa(m)})
			shown[m] = true
		}
		g.Clusters = append(g.Clusters, cluster)
	}
	// The edge list may carry parallel edges; draw each pair once.
	seen := util.NewSetMap[int, int]()
	for _, e := range f.Edges {
		if !shown[e.U] || !shown[e.V] {
			continue
		}
		u, w := e.U, e.V
		if u > w {
			u, w = w, u
		}
		if seen.Contains(u, w) {
			continue
		}
		seen.Add(u, w)
		g.Edges = append(g.Edges, &dot.Edge{From: strconv.Itoa(e.U), To: strconv.Itoa(e.V)})
	}
	return dot.WriteGraph(cmd.OutOrStdout(), g)
}

func joinInts(values []int) string {
	s := make([]string, 0, len(values))
	for _, v := range values {
		s = append(s, strconv.Itoa(v))
	}
	return strings.Join(s, ", ")
}
