package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/legacy"
)

var convertCmd = &cobra.Command{
	Use:   "convert <legacy.json>",
	Short: "Convert a legacy multiple-choice file to current arithmetic items",
	Long: "Convert a legacy multiple-choice file to current-shape arithmetic items. The output\n" +
		"still needs a toelichting, moeilijkheidsgraad and geschatte_tijd_sec per item\n" +
		"before it validates.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := item.Load(args[0])
		if err != nil {
			return err
		}
		if doc.Legacy == nil {
			return fmt.Errorf("%s is not a legacy multiple-choice file", args[0])
		}
		items, err := legacy.ConvertData(doc.Legacy)
		if err != nil {
			return fmt.Errorf("convert %s: %w", args[0], err)
		}

		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("encode items: %w", err)
		}
		data = append(data, '\n')

		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "converted %d items to %s\n", len(items), out)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "Write the converted items to this file instead of stdout")
}
