package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/optsgen/internal/generator"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newGenerateCommand() *cobra.Command {
	var config GenerateConfig

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate bash option parsing code from a script's comment block",
		RunE: func(_ *cobra.Command, _ []string) error {
			return Generate(&config)
		},
	}

	cmd.Flags().StringVar(&config.InputPath, "input", "", "Path to the script whose comment block declares the options")
	cmd.Flags().StringVar(&config.OutputPath, "output", "-", "Path to output file or '-' for stdout")
	cmd.Flags().StringVar(&config.ConfigPath, "config", "", "Path to .optsgen.yml config file")
	cmd.Flags().BoolVar(&config.AllowMissingOptions, "allow-missing-options", false, "Emit help-only output when the comment block has no Options: section")

	return cmd
}

// GenerateConfig holds configuration for code generation.
type GenerateConfig struct {
	InputPath           string
	OutputPath          string
	ConfigPath          string
	AllowMissingOptions bool
}

// Generate extracts the comment-block model from the input script, validates
// it and writes the emitted bash code. Nothing is written once extraction or
// validation has failed.
func Generate(config *GenerateConfig) error {
	if err := loadConfigFile(config); err != nil {
		return err
	}

	doc, err := extractFile(config.InputPath)
	if err != nil {
		if !errors.Is(err, generator.ErrMissingOptionsSection) || !config.AllowMissingOptions {
			return err
		}
	}

	if err := generator.Validate(doc); err != nil {
		return fmt.Errorf("invalid option declarations: %w", err)
	}

	return writeOutput(generator.Emit(doc), config.OutputPath)
}

// extractFile reads a script and runs the comment-block extractor over it.
// Like generator.Extract it returns the document alongside
// ErrMissingOptionsSection so the caller can apply its own policy.
func extractFile(path string) (*generator.Document, error) {
	if path == "" {
		return nil, fmt.Errorf("no input file given")
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return generator.ExtractSource(string(data))
}

func loadConfigFile(config *GenerateConfig) error {
	if config.ConfigPath == "" {
		return nil
	}

	data, err := os.ReadFile(filepath.Clean(config.ConfigPath))
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var cfg struct {
		Generate struct {
			Input               string `yaml:"input"`
			Output              string `yaml:"output"`
			AllowMissingOptions bool   `yaml:"allowMissingOptions"`
		} `yaml:"generate"`
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	// Apply config values if flags weren't set
	if config.InputPath == "" {
		config.InputPath = cfg.Generate.Input
	}
	if config.OutputPath == "-" && cfg.Generate.Output != "" {
		config.OutputPath = cfg.Generate.Output
	}
	if !config.AllowMissingOptions {
		config.AllowMissingOptions = cfg.Generate.AllowMissingOptions
	}

	return nil
}

func writeOutput(text, path string) error {
	if path == "-" {
		_, err := os.Stdout.WriteString(text)
		return err
	}

	outDir := filepath.Dir(path)
	if fi, err := os.Stat(outDir); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("output directory %s does not exist", outDir)
		}
		return err
	} else if !fi.IsDir() {
		return fmt.Errorf("output path %s is not a directory", outDir)
	}

	return os.WriteFile(path, []byte(text), 0o644) // #nosec G306
}
