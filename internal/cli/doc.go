package cli

import (
	"errors"
	"fmt"

	"github.com/example/optsgen/internal/docs"
	"github.com/example/optsgen/internal/generator"
	"github.com/spf13/cobra"
)

func newDocCommand() *cobra.Command {
	var (
		input  string
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "doc",
		Short: "Render a script's comment block as documentation",
		RunE: func(_ *cobra.Command, _ []string) error {
			doc, err := extractFile(input)
			// A help-only comment block is still renderable.
			if err != nil && !errors.Is(err, generator.ErrMissingOptionsSection) {
				return err
			}

			var text string
			switch format {
			case "markdown", "md":
				text = docs.Markdown(doc)
			case "html":
				text, err = docs.HTML(doc)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unsupported format: %s", format)
			}

			return writeOutput(text, output)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Path to the script whose comment block declares the options")
	cmd.Flags().StringVar(&output, "output", "-", "Path to output file or '-' for stdout")
	cmd.Flags().StringVar(&format, "format", "markdown", "Output format: markdown or html")

	return cmd
}
