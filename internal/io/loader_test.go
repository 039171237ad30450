package io

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadEdgeList(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "graph.txt", []byte("3\n0 1\n1 2\n"), 0644))
	loader := NewLoader(fs)

	f, err := loader.LoadEdgeList("graph.txt")
	require.NoError(t, err)
	assert.Equal(t, 3, f.Vertices)
	assert.Len(t, f.Edges, 2)

	// Same file through a non-clean path hits the cache entry.
	again, err := loader.LoadEdgeList("./graph.txt")
	require.NoError(t, err)
	assert.Same(t, f, again)
}

func TestLoader_LoadGrid(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "grid.txt", []byte("11\n01\n"), 0644))
	loader := NewLoader(fs)

	f, err := loader.LoadGrid("grid.txt")
	require.NoError(t, err)
	assert.Equal(t, [][]byte{{'1', '1'}, {'0', '1'}}, f.Grid)
}

func TestLoader_LoadEquations(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "eqs.txt", []byte("a == b\na != c\n"), 0644))
	loader := NewLoader(fs)

	f, err := loader.LoadEquations("eqs.txt")
	require.NoError(t, err)
	assert.Len(t, f.Equations, 2)
}

func TestLoader_missingFile(t *testing.T) {
	loader := NewLoader(afero.NewMemMapFs())
	_, err := loader.LoadEdgeList("nope.txt")
	assert.Error(t, err)
}
