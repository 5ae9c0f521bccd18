package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/TomLouwers/websitesara/cmd"
	"github.com/TomLouwers/websitesara/internal/batch"
)

func main() {
	err := cmd.Execute()
	switch {
	case err == nil:
	case errors.Is(err, batch.ErrInvalidItems), errors.Is(err, batch.ErrWarnings):
		// The report already says which items failed.
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}
