package graph

// CriticalConnections returns the bridges of the graph: edges whose removal
// increases the number of connected components. Results keep input order.
//
// This is the naive leave-one-out formulation: for every edge, rebuild a
// disjoint set over all the other edges and compare component counts, which
// is O(E²·α(V)). It is fine at the input sizes this package targets; a
// DFS low-link pass would be the replacement if that ever stops being true.
func CriticalConnections(vertices int, edges []Edge) ([]Edge, error) {
	base, err := CountComponents(vertices, edges)
	if err != nil {
		return nil, err
	}
	bridges := make([]Edge, 0)
	for skip := range edges {
		d, err := newSized(vertices)
		if err != nil {
			return nil, err
		}
		for i, e := range edges {
			if i == skip {
				continue
			}
			if err := d.Union(e.U, e.V); err != nil {
				return nil, err
			}
		}
		if d.Count() > base {
			bridges = append(bridges, edges[skip])
		}
	}
	return bridges, nil
}
