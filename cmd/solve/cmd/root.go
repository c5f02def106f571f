// Package cmd implements the solve command-line tool: an offline batch
// driver over internal/core, for running a configured strategy pipeline
// against puzzle files on disk without any interactive display.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "solve",
	Short: "run the Nurikabe deductive solver against puzzle files",
	Long: `solve drives internal/core's strategy pipeline against one or more
puzzle files in the textual grid format, reporting the solved grid or the
reason the solver stopped short (contradiction / no strategy applies).

The strategy pipeline run against each puzzle is controlled by a YAML
settings file; use 'solve config FILE' to write one with the default order.`,
}

// Execute adds all child commands to RootCmd and runs it. Called once by
// main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
