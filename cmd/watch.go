package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/TomLouwers/websitesara/internal/batch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Re-validate item files whenever they are saved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := settings(cmd)
		if err != nil {
			return err
		}
		w, err := batch.NewWatcher(args[0], 0)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
		fmt.Fprintf(errOut, "watching %s (Ctrl+C to stop)\n", args[0])
		return w.Run(ctx, func(paths []string) {
			err := validateFiles(out, errOut, cfg, paths)
			switch {
			case err == nil:
			case errors.Is(err, batch.ErrInvalidItems), errors.Is(err, batch.ErrWarnings):
				slog.Debug("run finished with findings", "error", err)
			default:
				fmt.Fprintf(errOut, "error: %v\n", err)
			}
		})
	},
}

func init() {
	addReportFlags(watchCmd)
}
