package io

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haijima/dsu/internal/dsu"
	"github.com/haijima/dsu/internal/graph"
)

func TestParseEdgeList(t *testing.T) {
	input := `# MST fixture
4 5
0 1 4
0 2 3
1 2 1

1 3 2
2 3 4
`
	vertices, edges, err := ParseEdgeList(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 4, vertices)
	assert.Equal(t, []graph.Edge{
		{U: 0, V: 1, Weight: 4},
		{U: 0, V: 2, Weight: 3},
		{U: 1, V: 2, Weight: 1},
		{U: 1, V: 3, Weight: 2},
		{U: 2, V: 3, Weight: 4},
	}, edges)
}

func TestParseEdgeList_unweighted(t *testing.T) {
	vertices, edges, err := ParseEdgeList(strings.NewReader("3\n0 1\n1 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, vertices)
	assert.Equal(t, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}}, edges)
}

func TestParseEdgeList_errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"only comments", "# nothing\n"},
		{"bad header", "a\n"},
		{"too many header fields", "3 4 5\n"},
		{"bad edge", "3\n0\n"},
		{"bad endpoint", "3\n0 x\n"},
		{"bad weight", "3\n0 1 x\n"},
		{"negative vertex count", "-3\n0 1\n1 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseEdgeList(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestParseEdgeList_negativeVertexCount(t *testing.T) {
	// A negative header must fail outright, not let the first edge line be
	// re-read as a header.
	_, _, err := ParseEdgeList(strings.NewReader("-3\n0 1\n"))
	assert.ErrorIs(t, err, dsu.ErrInvalidSize)
	assert.ErrorContains(t, err, "line 1")
}

func TestParseGrid(t *testing.T) {
	grid, err := ParseGrid(strings.NewReader("1 1 0\n0 1 0\n0 0 1\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]byte{
		{'1', '1', '0'},
		{'0', '1', '0'},
		{'0', '0', '1'},
	}, grid)
}

func TestParseGrid_compact(t *testing.T) {
	grid, err := ParseGrid(strings.NewReader("110\n011\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]byte{{'1', '1', '0'}, {'0', '1', '1'}}, grid)
}

func TestParseGrid_errors(t *testing.T) {
	_, err := ParseGrid(strings.NewReader("10\n2\n"))
	assert.Error(t, err)

	_, err = ParseGrid(strings.NewReader("10\n011\n"))
	assert.Error(t, err)
}

func TestParseEquations(t *testing.T) {
	input := `a / b = 2.0
b == c
c = d
a != e
`
	eqs, err := ParseEquations(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []graph.Equation{
		{Left: 'a', Right: 'b', Ratio: 2.0, Equal: true},
		{Left: 'b', Right: 'c', Ratio: 1, Equal: true},
		{Left: 'c', Right: 'd', Ratio: 1, Equal: true},
		{Left: 'a', Right: 'e', Ratio: 1, Equal: false},
	}, eqs)
}

func TestParseEquations_errors(t *testing.T) {
	for _, input := range []string{"a ~ b\n", "ab == c\n", "a / b = x\n", "a /\n"} {
		_, err := ParseEquations(strings.NewReader(input))
		assert.Error(t, err, input)
	}
}
