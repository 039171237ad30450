package main

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_runIslands(t *testing.T) {
	cmd, buf := newTestCmd(t)
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "grid.txt", []byte("110\n010\n001\n"), 0644))
	v := viper.New()
	v.Set("input", "grid.txt")

	err := runIslands(cmd, v, fs)
	require.NoError(t, err)
	assert.Equal(t, "2\n", buf.String())
}

func Test_runIslands_missingInput(t *testing.T) {
	cmd, _ := newTestCmd(t)
	v := viper.New()
	v.Set("input", "nope.txt")

	err := runIslands(cmd, v, afero.NewMemMapFs())
	assert.Error(t, err)
}
