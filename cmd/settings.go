package cmd

import (
	"github.com/spf13/cobra"

	"github.com/TomLouwers/websitesara/internal/config"
)

// addReportFlags registers the flags that override settings-file keys.
func addReportFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("domain", "d", "", "Validate every item as this domain instead of inferring it")
	f.StringP("format", "f", "", "Output format: text or json")
	f.String("color", "", "Color output: auto, always or never")
	f.Bool("show-infos", true, "Print informational notes")
	f.Bool("fail-on-warnings", false, "Exit non-zero when any item has warnings")
	f.String("xlsx", "", "Also export the results to this spreadsheet")
}

// settings resolves the run settings: flags over --config over
// .oefencheck.yaml over the defaults.
func settings(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Resolve(path)
	if err != nil {
		return config.Config{}, err
	}

	f := cmd.Flags()
	if f.Changed("domain") {
		cfg.Domain, _ = f.GetString("domain")
	}
	if f.Changed("format") {
		cfg.Format, _ = f.GetString("format")
	}
	if f.Changed("color") {
		cfg.Color, _ = f.GetString("color")
	}
	if f.Changed("show-infos") {
		cfg.ShowInfos, _ = f.GetBool("show-infos")
	}
	if f.Changed("fail-on-warnings") {
		cfg.FailOnWarnings, _ = f.GetBool("fail-on-warnings")
	}
	if f.Changed("xlsx") {
		cfg.XLSX, _ = f.GetString("xlsx")
	}
	return cfg, cfg.Validate()
}
