package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// configCmd writes a strategy-pipeline settings file.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "write a strategy-pipeline settings file",
	Long: `Write a YAML strategy-pipeline settings file, prefilled with the
default priority order (the same order core.DefaultStrategies uses).

If FILE is not provided, 'solve.yml' is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "solve.yml"
		if len(args) == 1 {
			path = args[0]
		}

		if _, err := os.Stat(path); err == nil && !forceOverwrite {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		out, err := yaml.Marshal(defaultPipelineConfig())
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, out, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}

		fmt.Printf("wrote default strategy pipeline to %s\n", path)
		return nil
	},
}

var forceOverwrite bool

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVar(&forceOverwrite, "force", false, "overwrite FILE if it already exists")
}
