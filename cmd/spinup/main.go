// Package main provides the CLI entry point for spinup.
package main

import (
	"errors"
	"fmt"
	"os"

	spinerrors "github.com/spinup-cli/spinup/internal/errors"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, spinerrors.ErrCancelled) {
			fmt.Println("Cancelled.")
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
