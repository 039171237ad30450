package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/haijima/dsu/internal/graph"
	"github.com/haijima/dsu/internal/io"
)

func NewIslandsCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "islands"
	cmd.Short = "Count islands in a 0/1 grid"
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runIslands(cmd, v, fs) }

	SetInputFlags(cmd)

	return cmd
}

func runIslands(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	f, err := io.NewLoader(fs).LoadGrid(v.GetString("input"))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), graph.CountIslands(f.Grid))
	return nil
}
