// Package graph provides connectivity algorithms built on the disjoint-set
// structures in internal/dsu. Every function is stateless: it allocates its
// own disjoint set scoped to the call and returns a plain value.
package graph

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"

	"github.com/haijima/dsu/internal/dsu"
)

// ErrDisconnected is returned when an algorithm requires a connected graph
// and the input is not (e.g. a spanning tree over multiple components).
var ErrDisconnected = errors.New("graph: disconnected")

// Edge is an undirected edge between two 0-based vertex indices.
// Weight is meaningful only to weighted algorithms; others ignore it.
type Edge struct {
	U, V   int
	Weight int
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d)", e.U, e.V)
}

// Verdict is a yes/no result of a graph check, with colored rendering for
// command output.
type Verdict bool

const (
	Pass Verdict = true
	Fail Verdict = false
)

func (v Verdict) String() string {
	if v {
		return "PASS"
	}
	return "FAIL"
}

func (v Verdict) ColoredString() string {
	if v {
		return color.GreenString(v.String())
	}
	return color.RedString(v.String())
}

// newSized builds a DisjointSet for vertices elements, translating the
// constructor's size error into the caller's vocabulary.
func newSized(vertices int) (*dsu.DisjointSet, error) {
	d, err := dsu.New(vertices)
	if err != nil {
		return nil, errors.Wrapf(err, "vertices = %d", vertices)
	}
	return d, nil
}

// checkVertex validates a vertex index against the graph's vertex count.
func checkVertex(vertices, v int) error {
	if v < 0 || v >= vertices {
		return errors.Wrapf(dsu.ErrIndexOutOfRange, "vertex = %d, vertices = %d", v, vertices)
	}
	return nil
}

// union merges x and y on an already-validated index pair and reports whether
// two distinct sets actually merged.
func union(d *dsu.DisjointSet, x, y int) bool {
	before := d.Count()
	_ = d.Union(x, y)
	return d.Count() < before
}
