package graph

import (
	"slices"

	"golang.org/x/exp/maps"

	"github.com/haijima/dsu/internal/dsu"
)

// Component is one connected component of a graph.
type Component struct {
	Root    int
	Members []int
	Size    int
}

// CountComponents returns the number of connected components of the graph.
func CountComponents(vertices int, edges []Edge) (int, error) {
	d, err := build(vertices, edges)
	if err != nil {
		return 0, err
	}
	return d.Count(), nil
}

// LargestComponentSize returns the size of the largest connected component,
// or 0 for an empty graph.
func LargestComponentSize(vertices int, edges []Edge) (int, error) {
	components, err := ComponentStats(vertices, edges)
	if err != nil {
		return 0, err
	}
	if len(components) == 0 {
		return 0, nil
	}
	return components[0].Size, nil
}

// ComponentStats returns every connected component, largest first; ties are
// broken by the smallest member so the order is deterministic.
func ComponentStats(vertices int, edges []Edge) ([]Component, error) {
	d, err := build(vertices, edges)
	if err != nil {
		return nil, err
	}
	byRoot := d.Components()
	components := make([]Component, 0, len(byRoot))
	for _, root := range maps.Keys(byRoot) {
		members := byRoot[root]
		components = append(components, Component{Root: root, Members: members, Size: len(members)})
	}
	slices.SortFunc(components, func(a, b Component) int {
		if a.Size != b.Size {
			return b.Size - a.Size
		}
		return a.Members[0] - b.Members[0]
	})
	return components, nil
}

func build(vertices int, edges []Edge) (*dsu.DisjointSet, error) {
	d, err := newSized(vertices)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err := d.Union(e.U, e.V); err != nil {
			return nil, err
		}
	}
	return d, nil
}
