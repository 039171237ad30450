package main

import (
	"github.com/haijima/cobrax"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewRootCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := cobrax.NewRoot(v)
	cmd.Use = "dsu"
	cmd.Short = "dsu is a union-find toolkit for graph connectivity analysis"
	cmd.Version = cobrax.VersionFunc("", "", "")
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return cobrax.RootPersistentPreRunE(cmd, v, fs, args)
	}

	cmd.AddCommand(NewComponentsCommand(v, fs))
	cmd.AddCommand(NewIslandsCommand(v, fs))
	cmd.AddCommand(NewMstCommand(v, fs))
	cmd.AddCommand(NewCycleCommand(v, fs))
	cmd.AddCommand(NewBipartiteCommand(v, fs))
	cmd.AddCommand(NewBridgesCommand(v, fs))
	cmd.AddCommand(NewPermCommand(v, fs))
	cmd.AddCommand(NewSolveCommand(v, fs))
	cmd.AddCommand(NewReportCommand(v, fs))
	cmd.AddCommand(NewGenConfCmd(v, fs))

	cmd.SetGlobalNormalizationFunc(cobrax.SnakeToKebab)

	return cmd
}
