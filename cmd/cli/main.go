// Package main is the entry point for the corrosion-rate CLI.
package main

import (
	"os"

	"corrosion-rate/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
