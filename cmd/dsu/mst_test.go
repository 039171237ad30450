package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_runMst(t *testing.T) {
	cmd, buf := newTestCmd(t)
	fs := edgeListFs(t, "4\n0 1 4\n0 2 3\n1 2 1\n1 3 2\n2 3 4\n")
	v := viper.New()
	v.Set("input", "graph.txt")
	v.Set("format", "csv")

	err := runMst(cmd, v, fs)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "total weight: 6")
	assert.Contains(t, buf.String(), "1,1,2,1")
	assert.Contains(t, buf.String(), "2,1,3,2")
	assert.Contains(t, buf.String(), "3,0,2,3")
}

func Test_runMst_disconnected(t *testing.T) {
	cmd, _ := newTestCmd(t)
	fs := edgeListFs(t, "4\n0 1 1\n")
	v := viper.New()
	v.Set("input", "graph.txt")
	v.Set("format", "table")

	err := runMst(cmd, v, fs)
	assert.Error(t, err)
}

func Test_runMst_dot(t *testing.T) {
	cmd, buf := newTestCmd(t)
	fs := edgeListFs(t, "2\n0 1 5\n")
	v := viper.New()
	v.Set("input", "graph.txt")
	v.Set("format", "dot")

	err := runMst(cmd, v, fs)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"0" -- "1" [ label="5" style="bold" ]`)
}
