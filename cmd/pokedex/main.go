// Package main provides the pokedex CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps catalog errors to process exit codes. User-correctable
// errors (bad IDs, duplicates, missing rows) exit 1; everything else
// exits 2.
func exitCode(err error) int {
	switch {
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrDuplicateName),
		errors.Is(err, types.ErrInvalidReference),
		errors.Is(err, types.ErrInvalidID),
		errors.Is(err, types.ErrInvalidName):
		return 1
	default:
		return 2
	}
}
