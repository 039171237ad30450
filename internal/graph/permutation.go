package graph

// IsSingleCyclePermutation reports whether perm maps {0..n-1} onto itself as
// one single cycle. Any value outside [0, n) fails immediately.
//
// Note this is stricter than "perm is a permutation": [1 0 3 2] is a valid
// permutation but consists of two 2-cycles, so it fails here. Unioning each
// index with its image leaves exactly one component only when the functional
// graph is a single cycle.
func IsSingleCyclePermutation(perm []int) bool {
	n := len(perm)
	for _, v := range perm {
		if v < 0 || v >= n {
			return false
		}
	}
	d, err := newSized(n)
	if err != nil {
		return false
	}
	for i, v := range perm {
		_ = d.Union(i, v)
	}
	return d.IsConnected()
}
