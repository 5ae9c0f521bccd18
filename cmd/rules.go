package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TomLouwers/websitesara/internal/domain"
	"github.com/TomLouwers/websitesara/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules [domain] [groep-niveau]",
	Short: "Show the rule table of a domain",
	Long: "Without arguments, list the domains. With a domain, print every rule entry of\n" +
		"that domain; with a domain and a key such as G4-E, print that entry only.",
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := domain.New()
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			fmt.Fprintln(out, strings.Join(reg.Names(), "\n"))
			return nil
		}

		v, err := reg.Get(args[0])
		if err != nil {
			return err
		}
		keys := rules.AllKeys()
		if len(args) == 2 {
			k, err := rules.ParseKey(args[1])
			if err != nil {
				return err
			}
			keys = []rules.Key{k}
		}

		type entry struct {
			Key  string `json:"key"`
			Rule any    `json:"rule"`
		}
		var entries []entry
		for _, k := range keys {
			r, ok := v.RuleFor(k)
			if !ok {
				if len(args) == 2 {
					return fmt.Errorf("%s has no rules for %s", v.Name(), k)
				}
				continue
			}
			entries = append(entries, entry{Key: k.String(), Rule: r})
		}

		var data []byte
		if len(entries) == 1 {
			data, err = json.MarshalIndent(entries[0], "", "  ")
		} else {
			data, err = json.MarshalIndent(entries, "", "  ")
		}
		if err != nil {
			return fmt.Errorf("encode rules: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	},
}
