// Package main is the entry point for desc-editor CLI.
package main

import (
	"os"

	"github.com/shunichi-ikebuchi/description-editor/cmd/desc-editor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
