package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/TomLouwers/websitesara/internal/batch"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of 'validate --format json' output",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := resultSchema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

// resultSchema reflects the JSON schema of a validation run.
func resultSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	s := r.Reflect(&batch.Run{})
	s.Title = "oefencheck validation run"
	s.Description = "Per-file item results and the run summary written by 'oefencheck validate --format json'"

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}
