package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dev-scripter/kickoff/internal/ui"
	"github.com/dev-scripter/kickoff/internal/wizard"
)

const outputDirFlag = "output-dir"

var rootCmd = &cobra.Command{
	Use:   "kickoff",
	Short: "An interactive project scaffolding tool",
	Long: `Kickoff interactively scaffolds a new software project: it asks for a
project name, languages and tooling choices, then generates the directory
tree, build files, CI workflow, editor settings and AI-tool configuration.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputDir, err := cmd.Flags().GetString(outputDirFlag)
		if err != nil {
			outputDir = "."
		}

		w := wizard.New(outputDir)
		if err := w.Run(cmd.Context()); err != nil {
			if ui.IsInterrupt(err) {
				fmt.Fprintln(os.Stdout, "\nOperation cancelled by user. Exiting.")
				return nil
			}
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().String(outputDirFlag, ".", "create the project under the provided directory")
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
