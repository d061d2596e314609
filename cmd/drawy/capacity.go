package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/drawy/drawy/pkg/capacity"
	"github.com/drawy/drawy/pkg/glyph"
	"github.com/drawy/drawy/pkg/output"
)

var (
	capacityFont     string
	capacityFontFile string
	capacityBackend  string
	capacityWidth    int
)

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Estimate how many characters fit on one line",
	Long: `Measures the font's glyphs and estimates how many characters fit on one
terminal row: a worst case using the widest glyph and a typical case using
the average width of letters and digits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCapacity(cmd.OutOrStdout())
	},
}

func init() {
	capacityCmd.Flags().StringVarP(&capacityFont, "font", "f", "", "Built-in font name")
	capacityCmd.Flags().StringVar(&capacityFontFile, "font-file", "", "Path to a FIGlet .flf font")
	capacityCmd.Flags().StringVar(&capacityBackend, "backend", "", "Rendering backend: figure or figlet4go")
	capacityCmd.Flags().IntVar(&capacityWidth, "width", 0, "Terminal width (default: detected)")
}

func runCapacity(w io.Writer) error {
	font, err := glyph.New(glyph.Options{
		Backend:  capacityBackend,
		Font:     capacityFont,
		FontFile: capacityFontFile,
	})
	if err != nil {
		return err
	}

	width := capacityWidth
	if width <= 0 {
		width = output.TerminalWidth()
	}

	report, err := capacity.Estimate(font, width)
	if err != nil {
		return err
	}
	output.NewWithWriter(w).Capacity(report)
	return nil
}
