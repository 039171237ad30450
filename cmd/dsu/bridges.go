package main

import (
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/haijima/dsu/internal/graph"
	"github.com/haijima/dsu/internal/io"
)

func NewBridgesCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "bridges"
	cmd.Aliases = []string{"critical"}
	cmd.Short = "List critical connections (bridges)"
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runBridges(cmd, v, fs) }

	SetInputFlags(cmd)
	SetFormatFlag(cmd)

	return cmd
}

func runBridges(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	f, err := io.NewLoader(fs).LoadEdgeList(v.GetString("input"))
	if err != nil {
		return err
	}
	bridges, err := graph.CriticalConnections(f.Vertices, f.Edges)
	if err != nil {
		return err
	}
	p, err := io.NewPrinter(cmd.OutOrStdout(), v.GetString("format"))
	if err != nil {
		return err
	}
	p.SetHeader([]string{"#", "u", "v"})
	for i, e := range bridges {
		p.AddRow([]string{strconv.Itoa(i + 1), strconv.Itoa(e.U), strconv.Itoa(e.V)})
	}
	p.Print()
	return nil
}
