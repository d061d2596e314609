package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/drawy/drawy/pkg/output"
	"github.com/drawy/drawy/pkg/palette"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List palette colors",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runColors(cmd.OutOrStdout())
	},
}

func runColors(w io.Writer) {
	output.NewWithWriter(w).Colors(palette.Default())
}
