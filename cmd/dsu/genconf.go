package main

import (
	"github.com/haijima/cobrax"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewGenConfCmd(_ *viper.Viper, _ afero.Fs) *cobra.Command {
	cmd := cobrax.PrintConfigCmd("genconf")
	cmd.Short = "Generate a config file with the flags currently set"
	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		cmd.Flag("config").Hidden = true
		cmd.Flag("no-color").Hidden = true
		cmd.Root().HelpFunc()(cmd, args)
	})
	return cmd
}
