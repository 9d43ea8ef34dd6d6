// Package main provides the optsgen CLI.
package main

import (
	"os"

	"github.com/example/optsgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
