package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/TomLouwers/websitesara/internal/batch"
	"github.com/TomLouwers/websitesara/internal/config"
	"github.com/TomLouwers/websitesara/internal/domain"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|glob>...",
	Short: "Validate item files",
	Long: "Validate one or more item files. A file may hold one item, a list of items or a\n" +
		"legacy multiple-choice file, which is converted first. Globs such as\n" +
		"'content/**/*.json' are expanded.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := settings(cmd)
		if err != nil {
			return err
		}
		files, err := batch.Expand(args)
		if err != nil {
			return err
		}
		return validateFiles(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, files)
	},
}

func init() {
	addReportFlags(validateCmd)
}

// validateFiles runs, reports and exports one batch. The returned error
// carries the run verdict.
func validateFiles(out, errOut io.Writer, cfg config.Config, files []string) error {
	runner, err := batch.NewRunner(domain.New(), cfg.Domain)
	if err != nil {
		return err
	}
	run, err := runner.RunFiles(files)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case config.FormatJSON:
		err = batch.WriteJSON(out, run)
	default:
		err = batch.NewTextReporter(out, cfg.Color, cfg.ShowInfos).Report(run)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if cfg.XLSX != "" {
		if err := batch.WriteXLSX(cfg.XLSX, run); err != nil {
			fmt.Fprintf(errOut, "warning: %v\n", err)
		}
	}
	return run.Err(cfg.FailOnWarnings)
}
