package graph

// IsBipartite reports whether the undirected graph can be 2-colored so that
// no edge connects two vertices of the same color.
//
// The disjoint set is doubled to 2·vertices: index v means "v on side A" and
// v+vertices means "v on side B". Every edge (u, v) unions u with v's
// opposite and v with u's opposite. The moment some u joins its own opposite,
// an odd cycle exists and the scan stops.
func IsBipartite(vertices int, edges []Edge) (bool, error) {
	d, err := newSized(2 * vertices)
	if err != nil {
		return false, err
	}
	for _, e := range edges {
		// The doubled index space would mask endpoints in
		// [vertices, 2*vertices), so bounds are checked up front.
		if err := checkVertex(vertices, e.U); err != nil {
			return false, err
		}
		if err := checkVertex(vertices, e.V); err != nil {
			return false, err
		}
		if err := d.Union(e.U, e.V+vertices); err != nil {
			return false, err
		}
		if err := d.Union(e.V, e.U+vertices); err != nil {
			return false, err
		}
		conflict, err := d.Connected(e.U, e.U+vertices)
		if err != nil {
			return false, err
		}
		if conflict {
			return false, nil
		}
	}
	return true, nil
}
