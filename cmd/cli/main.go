// Package main is the entry point for the shipwaste CLI.
package main

import (
	"os"

	"shipwaste/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
