package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/haijima/dsu/internal/io"
)

// SetInputFlags declares the flags shared by every command that reads an
// input file.
func SetInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "The input `file` to read")
	_ = cmd.MarkFlagFilename("input")
}

// SetFormatFlag declares the output format flag. Commands that can also
// render Graphviz pass extra formats ("dot").
func SetFormatFlag(cmd *cobra.Command, formats ...string) {
	all := append(append([]string{}, io.Formats...), formats...)
	cmd.Flags().String("format", "table", "The output format {"+strings.Join(all, "|")+"}")
}
