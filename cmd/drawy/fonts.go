package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/drawy/drawy/pkg/glyph"
	"github.com/drawy/drawy/pkg/output"
)

var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "List built-in fonts",
	Long:  "Lists the fonts bundled with each rendering backend. Any FIGlet .flf file can also be used with --font-file.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runFonts(cmd.OutOrStdout())
	},
}

func runFonts(w io.Writer) {
	var summaries []output.FontSummary
	for _, backend := range glyph.Backends() {
		summaries = append(summaries, output.FontSummary{
			Backend: backend,
			Default: backend == glyph.BackendFigure,
			Fonts:   glyph.BuiltinFonts(backend),
		})
	}
	output.NewWithWriter(w).Fonts(summaries)
}
