package graph

// HasCycle reports whether the undirected graph given as an edge list over
// vertices contains a cycle. Edges are processed in input order and the scan
// short-circuits on the first edge that closes one.
func HasCycle(vertices int, edges []Edge) (bool, error) {
	redundant, err := RedundantEdge(vertices, edges)
	if err != nil {
		return false, err
	}
	return redundant != nil, nil
}

// RedundantEdge returns the first edge, in input order, whose endpoints were
// already connected when it was reached, or nil if the edge set is acyclic.
func RedundantEdge(vertices int, edges []Edge) (*Edge, error) {
	d, err := newSized(vertices)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		connected, err := d.Connected(e.U, e.V)
		if err != nil {
			return nil, err
		}
		if connected {
			e := e
			return &e, nil
		}
		if err := d.Union(e.U, e.V); err != nil {
			return nil, err
		}
	}
	return nil, nil
}
