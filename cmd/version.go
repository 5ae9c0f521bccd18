package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TomLouwers/websitesara/internal/validate"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "oefencheck %s (scoring %s, %s)\n", version, validate.Standard.Version, validate.Strict.Version)
	},
}
