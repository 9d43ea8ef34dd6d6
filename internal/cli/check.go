package cli

import (
	"fmt"

	"github.com/example/optsgen/internal/generator"
	"github.com/spf13/cobra"
)

func newCheckCommand() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a script's option declarations",
		RunE: func(_ *cobra.Command, _ []string) error {
			doc, err := extractFile(input)
			if err != nil {
				return err
			}
			if err := generator.Validate(doc); err != nil {
				return err
			}

			fmt.Printf("✓ Found %d option(s)\n", len(doc.Options))
			fmt.Println("✓ Option declarations are valid")
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Path to the script whose comment block declares the options")

	return cmd
}
