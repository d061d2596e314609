package main

import (
	"io"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/drawy/drawy/pkg/output"
)

// Set by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runVersion(cmd.OutOrStdout())
	},
}

func runVersion(w io.Writer) {
	printer := output.NewWithWriter(w)
	printer.Banner(logoRows(printer.ColorEnabled("auto")), displayVersion(version))
	printer.Print("  commit: %s\n", commit)
	printer.Print("  built:  %s\n", date)
}

// displayVersion normalizes a semantic version to "vX.Y.Z[-pre]". Other
// strings, such as "dev", are returned unchanged.
func displayVersion(v string) string {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return v
	}
	return "v" + sv.String()
}
