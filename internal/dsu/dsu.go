// Package dsu provides disjoint-set (union-find) data structures with path
// compression and union by rank.
package dsu

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidSize is returned when a constructor receives a negative size.
	ErrInvalidSize = errors.New("dsu: invalid size")
	// ErrIndexOutOfRange is returned when an element index is outside [0, size).
	ErrIndexOutOfRange = errors.New("dsu: index out of range")
)

// DisjointSet maintains a partition of {0, ..., size-1} into disjoint sets.
//
// Each element is a 0-based index. Union never splits sets, so the partition
// only coarsens over time. Find and Union run in amortized near-constant time
// thanks to path compression and union by rank.
//
// A DisjointSet is not safe for concurrent use.
type DisjointSet struct {
	parent []int
	rank   []int
	count  int
}

// New creates a DisjointSet of size elements, each in its own singleton set.
func New(size int) (*DisjointSet, error) {
	if size < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "size = %d", size)
	}
	d := &DisjointSet{
		parent: make([]int, size),
		rank:   make([]int, size),
		count:  size,
	}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d, nil
}

// Size returns the fixed number of elements.
func (d *DisjointSet) Size() int {
	return len(d.parent)
}

func (d *DisjointSet) checkIndex(x int) error {
	if x < 0 || x >= len(d.parent) {
		return errors.Wrapf(ErrIndexOutOfRange, "index = %d, size = %d", x, len(d.parent))
	}
	return nil
}

// Find returns the representative of the set containing x.
//
// Every node on the walked path is re-pointed directly to the root, so later
// calls for those nodes complete in O(1). The find itself is iterative; tree
// height never bounds the stack.
func (d *DisjointSet) Find(x int) (int, error) {
	if err := d.checkIndex(x); err != nil {
		return 0, err
	}
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for x != root {
		x, d.parent[x] = d.parent[x], root
	}
	return root, nil
}

// Union merges the sets containing x and y.
//
// The root of lower rank is attached under the root of higher rank. On a rank
// tie x's root becomes the new parent and its rank increments; the tie-break
// is deterministic so repeated runs produce identical forests.
func (d *DisjointSet) Union(x, y int) error {
	rx, err := d.Find(x)
	if err != nil {
		return err
	}
	ry, err := d.Find(y)
	if err != nil {
		return err
	}
	if rx == ry {
		return nil
	}
	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.count--
	return nil
}

// Connected reports whether x and y are in the same set.
func (d *DisjointSet) Connected(x, y int) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}
	return rx == ry, nil
}

// Count returns the number of disjoint sets.
func (d *DisjointSet) Count() int {
	return d.count
}

// IsConnected reports whether all elements are in a single set.
// It is true for sizes 0 and 1.
func (d *DisjointSet) IsConnected() bool {
	return d.count <= 1
}

// Components groups every element by its representative.
// Members of each group are listed in ascending index order.
func (d *DisjointSet) Components() map[int][]int {
	components := make(map[int][]int, d.count)
	for i := range d.parent {
		root, _ := d.Find(i)
		components[root] = append(components[root], i)
	}
	return components
}

// ComponentSize returns the number of elements in the set containing x.
func (d *DisjointSet) ComponentSize(x int) (int, error) {
	root, err := d.Find(x)
	if err != nil {
		return 0, err
	}
	size := 0
	for i := range d.parent {
		if r, _ := d.Find(i); r == root {
			size++
		}
	}
	return size, nil
}

// Parents returns a copy of the parent array. Path compression performed by
// Find is visible here.
func (d *DisjointSet) Parents() []int {
	return slices.Clone(d.parent)
}

// Reset restores the initial singleton partition in place.
func (d *DisjointSet) Reset() {
	for i := range d.parent {
		d.parent[i] = i
		d.rank[i] = 0
	}
	d.count = len(d.parent)
}

// SetParent overwrites parent[i]. Bounds are checked for both arguments but
// the disjoint-set invariants are not; callers building a custom forest are
// responsible for keeping it acyclic and for the resulting component count.
func (d *DisjointSet) SetParent(i, parent int) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	if parent < 0 || parent >= len(d.parent) {
		return errors.Wrapf(ErrIndexOutOfRange, "parent = %d, size = %d", parent, len(d.parent))
	}
	d.parent[i] = parent
	d.count = d.scanCount()
	return nil
}

// SetRank overwrites rank[i].
func (d *DisjointSet) SetRank(i, rank int) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	if rank < 0 {
		return errors.Wrapf(ErrInvalidSize, "rank = %d", rank)
	}
	d.rank[i] = rank
	return nil
}

func (d *DisjointSet) scanCount() int {
	count := 0
	for i, p := range d.parent {
		if i == p {
			count++
		}
	}
	return count
}

// String formats the partition as sorted sets, largest set first.
func (d *DisjointSet) String() string {
	components := d.Components()
	sets := make([][]int, 0, len(components))
	for _, members := range components {
		sets = append(sets, members)
	}
	slices.SortFunc(sets, func(a, b []int) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return a[0] - b[0]
	})
	sb := strings.Builder{}
	sb.WriteString("DisjointSet([")
	for i, set := range sets {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%v", set)
	}
	sb.WriteString("])")
	return sb.String()
}
