// Package main is the entry point for the mysite CLI.
package main

import (
	"os"

	"github.com/ziyabeey1-ai/mysite/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
