package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_runReport(t *testing.T) {
	cmd, buf := newTestCmd(t)
	fs := edgeListFs(t, "4\n0 1 1\n1 2 2\n2 0 3\n1 3 4\n")
	v := viper.New()
	v.Set("input", "graph.txt")

	err := runReport(cmd, v, fs)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "4 vertices, 4 edges")
	assert.Contains(t, out, "components:      1 (largest 4)")
	assert.Contains(t, out, "cycle:           yes, first redundant edge (2, 0)")
	assert.Contains(t, out, "bipartite:       FAIL")
	assert.Contains(t, out, "bridges:         1")
	assert.Contains(t, out, "spanning tree:   3 edges, total weight 7")
}

func Test_runReport_disconnected(t *testing.T) {
	cmd, buf := newTestCmd(t)
	fs := edgeListFs(t, "4\n0 1 1\n")
	v := viper.New()
	v.Set("input", "graph.txt")

	err := runReport(cmd, v, fs)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "spanning tree:   none (disconnected)")
}
