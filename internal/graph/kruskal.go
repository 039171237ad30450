package graph

import "sort"

// MST is the result of a minimum-spanning-tree computation.
type MST struct {
	Edges       []Edge
	TotalWeight int
}

// MinimumSpanningTree computes an MST of the undirected weighted graph using
// Kruskal's algorithm: edges sorted ascending by weight, each accepted when
// its endpoints are not yet connected, stopping at vertices-1 acceptances.
// sort.SliceStable keeps equal-weight edges in input order, so results are
// deterministic for a fixed input.
//
// Self-loops are skipped. Returns ErrDisconnected when fewer than vertices-1
// edges can be accepted; graphs with zero or one vertex have a trivial empty
// tree.
func MinimumSpanningTree(vertices int, edges []Edge) (*MST, error) {
	d, err := newSized(vertices)
	if err != nil {
		return nil, err
	}
	if vertices <= 1 {
		return &MST{Edges: []Edge{}}, nil
	}

	sorted := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.U == e.V {
			continue
		}
		sorted = append(sorted, e)
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Weight < sorted[j].Weight })

	mst := &MST{Edges: make([]Edge, 0, vertices-1)}
	for _, e := range sorted {
		connected, err := d.Connected(e.U, e.V)
		if err != nil {
			return nil, err
		}
		if connected {
			continue
		}
		if err := d.Union(e.U, e.V); err != nil {
			return nil, err
		}
		mst.Edges = append(mst.Edges, e)
		mst.TotalWeight += e.Weight
		if len(mst.Edges) == vertices-1 {
			break
		}
	}
	if len(mst.Edges) < vertices-1 {
		return nil, ErrDisconnected
	}
	return mst, nil
}
