package dsu

import (
	"math"

	"github.com/cockroachdb/errors"
)

// ErrInvalidRatio is returned when a weighted union receives a ratio of zero,
// NaN or ±Inf. Allowing those would poison every later ratio query on the
// merged set.
var ErrInvalidRatio = errors.New("dsu: invalid ratio")

// WeightedDisjointSet is a union-find variant that additionally maintains a
// multiplicative ratio between each element and its set representative.
//
// weight[i] is the ratio of element i to its current direct parent; the
// product of weights along the path to the root is the ratio of i to the
// root. Repeated path compression recomputes these products, so floating
// point drift can accumulate over long union sequences. That drift is an
// accepted limitation; values are never rounded.
//
// Duplicate of DisjointSet on purpose: the weight bookkeeping changes the
// shape of find and union enough that sharing the plain implementation would
// obscure both.
type WeightedDisjointSet struct {
	parent []int
	weight []float64
	count  int
}

// NewWeighted creates a WeightedDisjointSet of size elements, each in its own
// set with a self-ratio of 1.
func NewWeighted(size int) (*WeightedDisjointSet, error) {
	if size < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "size = %d", size)
	}
	w := &WeightedDisjointSet{
		parent: make([]int, size),
		weight: make([]float64, size),
		count:  size,
	}
	for i := range w.parent {
		w.parent[i] = i
		w.weight[i] = 1.0
	}
	return w, nil
}

// Size returns the fixed number of elements.
func (w *WeightedDisjointSet) Size() int {
	return len(w.parent)
}

// Count returns the number of disjoint sets.
func (w *WeightedDisjointSet) Count() int {
	return w.count
}

func (w *WeightedDisjointSet) checkIndex(x int) error {
	if x < 0 || x >= len(w.parent) {
		return errors.Wrapf(ErrIndexOutOfRange, "index = %d, size = %d", x, len(w.parent))
	}
	return nil
}

// Find returns the representative of the set containing x and the ratio of x
// to that representative. The walked path is compressed and the weights along
// it are folded so each visited node ends up pointing at the root with its
// ratio-to-root stored directly.
func (w *WeightedDisjointSet) Find(x int) (int, float64, error) {
	if err := w.checkIndex(x); err != nil {
		return 0, 0, err
	}
	root := x
	for w.parent[root] != root {
		root = w.parent[root]
	}
	// Collect the path, then fold weights from the root end backwards so
	// every visited node ends up pointing at the root with its full
	// ratio-to-root stored.
	var path []int
	for n := x; n != root; n = w.parent[n] {
		path = append(path, n)
	}
	ratio := 1.0
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i]
		ratio = w.weight[n] * ratio
		w.parent[n] = root
		w.weight[n] = ratio
	}
	return root, ratio, nil
}

// Union merges the sets containing x and y under the relation x = ratio × y.
//
// When x and y are already in the same set the call is a no-op, even if the
// supplied ratio contradicts the ratio already derivable between them; the
// existing relation wins silently. See Ratio to inspect the stored relation.
func (w *WeightedDisjointSet) Union(x, y int, ratio float64) error {
	if ratio == 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return errors.Wrapf(ErrInvalidRatio, "ratio = %v", ratio)
	}
	rx, wx, err := w.Find(x)
	if err != nil {
		return err
	}
	ry, wy, err := w.Find(y)
	if err != nil {
		return err
	}
	if rx == ry {
		return nil
	}
	// x = ratio × y, x = wx × rx, y = wy × ry
	// => ry = wx / (ratio × wy) × rx
	w.parent[ry] = rx
	w.weight[ry] = wx / (ratio * wy)
	w.count--
	return nil
}

// Connected reports whether x and y are in the same set.
func (w *WeightedDisjointSet) Connected(x, y int) (bool, error) {
	rx, _, err := w.Find(x)
	if err != nil {
		return false, err
	}
	ry, _, err := w.Find(y)
	if err != nil {
		return false, err
	}
	return rx == ry, nil
}

// Ratio returns the ratio of y to x, i.e. the value r with y = r × x.
// The boolean reports whether any relation between x and y is known;
// when it is false the returned ratio is meaningless.
func (w *WeightedDisjointSet) Ratio(x, y int) (float64, bool, error) {
	rx, wx, err := w.Find(x)
	if err != nil {
		return 0, false, err
	}
	ry, wy, err := w.Find(y)
	if err != nil {
		return 0, false, err
	}
	if rx != ry {
		return 0, false, nil
	}
	return wy / wx, true, nil
}

// Reset restores the initial singleton partition in place.
func (w *WeightedDisjointSet) Reset() {
	for i := range w.parent {
		w.parent[i] = i
		w.weight[i] = 1.0
	}
	w.count = len(w.parent)
}
