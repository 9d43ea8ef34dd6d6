// Package cli provides the command-line interface for optsgen.
package cli

import (
	"github.com/spf13/cobra"
)

// Execute creates and runs the root command.
func Execute() error {
	rootCmd := &cobra.Command{
		Use:   "optsgen",
		Short: "Generate option parsing code from script comment blocks",
	}

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newDocCommand())
	rootCmd.AddCommand(newCheckCommand())

	return rootCmd.Execute()
}
