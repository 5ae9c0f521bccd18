package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "oefencheck",
	Short: "Validate exercise items for groep 3-8",
	Long: "oefencheck checks Dutch primary-school exercise items against the per-groep, per-niveau\n" +
		"rules of their domain and reports errors, warnings, notes and a quality score.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(cmd)
	},
}

// Execute runs the command line. The error of a failed validation run wraps
// batch.ErrInvalidItems or batch.ErrWarnings.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a settings file (default .oefencheck.yaml, overrides OEFENCHECK_CONFIG)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log diagnostics to stderr")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupLogging sends diagnostics to stderr: warnings by default, everything
// with --verbose. Reports go to stdout and are not logs.
func setupLogging(cmd *cobra.Command) {
	level := slog.LevelWarn
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
