// Package verhoudingen validates ratio items: fractions, decimals,
// percentages, ratio tables and scale. Items use a nested layout with four
// answer options, each distractor tagged with the mistake it provokes.
package verhoudingen

import (
	"fmt"

	"github.com/TomLouwers/websitesara/internal/rules"
)

// Subdomains.
const (
	Breuken             = "Breuken"
	Decimalen           = "Decimalen"
	Procenten           = "Procenten"
	Verhoudingstabellen = "Verhoudingstabellen"
	Schaal              = "Schaal"
	Integraal           = "Integraal"
)

// Fouttypes is the canonical set of distractor mistake types.
var Fouttypes = rules.NewSet(
	"conversie_fout",
	"bewerking_fout",
	"niet_vereenvoudigd",
	"verkeerde_noemer",
	"omgedraaid",
	"percentage_fout",
	"factor_fout",
	"schaal_fout",
	"stap_vergeten",
	"plaatswaarde_fout",
	"complement_berekend",
	"decimaal_verwarring",
	"geheel_ipv_deel",
	"verkeerde_deling",
	"omgekeerd_rekenen_fout",
)

// Rule constrains ratio items of one (grade, level).
type Rule struct {
	Subdomains []string `json:"subdomains"`

	Fractions rules.Stage `json:"fractions"`
	// StemFractions lists the unit fractions in use; nil means any.
	StemFractions  []string `json:"stem_fractions,omitempty"`
	MaxDenominator int      `json:"max_denominator,omitempty"`
	// FlagUnreduced reports fractions that can be simplified.
	FlagUnreduced bool `json:"flag_unreduced"`

	Decimals      rules.Stage `json:"decimals"`
	DecimalDigits int         `json:"decimal_digits,omitempty"`

	Percentages rules.Stage `json:"percentages"`
	// PercentSet lists the percentages in use; nil means any.
	PercentSet []int `json:"percent_set,omitempty"`

	// Scales lists N for the allowed scales 1:N; nil means any.
	Scales []int `json:"scales,omitempty"`

	BlockedContexts []string     `json:"blocked_contexts"`
	Visual          rules.Visual `json:"visual"`
	MaxSteps        int          `json:"max_steps"`
	Time            rules.Range  `json:"time_sec"`
	Difficulty      rules.Range  `json:"difficulty"`
}

// Check keeps subdomains and stages consistent.
func (r Rule) Check() error {
	for _, s := range r.Subdomains {
		switch s {
		case Breuken:
			if r.Fractions == rules.Forbidden {
				return fmt.Errorf("subdomain %s offered while fractions are forbidden", s)
			}
		case Decimalen:
			if r.Decimals == rules.Forbidden {
				return fmt.Errorf("subdomain %s offered while decimals are forbidden", s)
			}
		case Procenten:
			if r.Percentages == rules.Forbidden {
				return fmt.Errorf("subdomain %s offered while percentages are forbidden", s)
			}
		case Verhoudingstabellen, Schaal, Integraal:
		default:
			return fmt.Errorf("unknown subdomain %q", s)
		}
	}
	if r.Decimals != rules.Forbidden && r.DecimalDigits == 0 {
		return fmt.Errorf("decimals allowed without a digit cap")
	}
	return nil
}

var (
	youngBlocked = []string{"gokken", "casino", "loterij", "hypotheek", "lening", "lenen", "rente", "politiek", "verkiezing", "alcohol", "bier", "wijn", "sigaret"}
	olderBlocked = []string{"gokken", "casino", "loterij", "hypotheek", "politiek", "verkiezing", "alcohol", "bier", "wijn", "sigaret"}
	topBlocked   = []string{"gokken", "casino", "alcohol", "bier", "wijn", "sigaret"}
)

// The domain starts in groep 4; earlier levels have no entry.
var book = rules.MustBook("verhoudingen", map[rules.Key]Rule{
	rules.K(4, rules.Mid): {
		Subdomains:      []string{Breuken, Verhoudingstabellen},
		Fractions:       rules.Introduction,
		StemFractions:   []string{"1/2", "1/4"},
		MaxDenominator:  4,
		BlockedContexts: youngBlocked,
		Visual:          rules.VisualRequired,
		MaxSteps:        2,
		Time:            rules.R(20, 90),
		Difficulty:      rules.R(0.1, 0.5),
	},
	rules.K(4, rules.End): {
		Subdomains:      []string{Breuken, Verhoudingstabellen},
		Fractions:       rules.Introduction,
		StemFractions:   []string{"1/2", "1/3", "1/4", "1/5", "1/10"},
		MaxDenominator:  10,
		BlockedContexts: youngBlocked,
		Visual:          rules.VisualStronglyRecommended,
		MaxSteps:        2,
		Time:            rules.R(20, 90),
		Difficulty:      rules.R(0.15, 0.6),
	},
	rules.K(5, rules.Mid): {
		Subdomains:      []string{Breuken, Decimalen, Verhoudingstabellen},
		Fractions:       rules.Full,
		MaxDenominator:  12,
		FlagUnreduced:   true,
		Decimals:        rules.Introduction,
		DecimalDigits:   1,
		BlockedContexts: youngBlocked,
		Visual:          rules.VisualStronglyRecommended,
		MaxSteps:        3,
		Time:            rules.R(30, 120),
		Difficulty:      rules.R(0.2, 0.65),
	},
	rules.K(5, rules.End): {
		Subdomains:      []string{Breuken, Decimalen, Procenten, Verhoudingstabellen},
		Fractions:       rules.Full,
		MaxDenominator:  12,
		FlagUnreduced:   true,
		Decimals:        rules.Full,
		DecimalDigits:   2,
		Percentages:     rules.Introduction,
		PercentSet:      []int{10, 25, 50, 100},
		BlockedContexts: youngBlocked,
		Visual:          rules.VisualRecommended,
		MaxSteps:        3,
		Time:            rules.R(30, 120),
		Difficulty:      rules.R(0.25, 0.7),
	},
	rules.K(6, rules.Mid): {
		Subdomains:      []string{Breuken, Decimalen, Procenten, Verhoudingstabellen, Schaal},
		Fractions:       rules.Full,
		MaxDenominator:  20,
		FlagUnreduced:   true,
		Decimals:        rules.Full,
		DecimalDigits:   2,
		Percentages:     rules.Full,
		PercentSet:      []int{1, 5, 10, 20, 25, 50, 75, 100},
		Scales:          []int{100, 1000, 10000},
		BlockedContexts: youngBlocked,
		Visual:          rules.VisualRecommended,
		MaxSteps:        4,
		Time:            rules.R(30, 150),
		Difficulty:      rules.R(0.25, 0.75),
	},
	rules.K(6, rules.End): {
		Subdomains:      []string{Breuken, Decimalen, Procenten, Verhoudingstabellen, Schaal, Integraal},
		Fractions:       rules.Full,
		MaxDenominator:  25,
		FlagUnreduced:   true,
		Decimals:        rules.Full,
		DecimalDigits:   3,
		Percentages:     rules.Full,
		PercentSet:      []int{1, 5, 10, 12, 15, 20, 25, 30, 40, 50, 60, 75, 80, 100},
		Scales:          []int{100, 200, 500, 1000, 10000, 25000, 50000, 100000},
		BlockedContexts: youngBlocked,
		Visual:          rules.VisualOptional,
		MaxSteps:        4,
		Time:            rules.R(30, 150),
		Difficulty:      rules.R(0.3, 0.8),
	},
	rules.K(7, rules.Mid): {
		Subdomains:      []string{Breuken, Decimalen, Procenten, Verhoudingstabellen, Schaal, Integraal},
		Fractions:       rules.Full,
		MaxDenominator:  100,
		FlagUnreduced:   true,
		Decimals:        rules.Full,
		DecimalDigits:   3,
		Percentages:     rules.Full,
		BlockedContexts: olderBlocked,
		Visual:          rules.VisualOptional,
		MaxSteps:        5,
		Time:            rules.R(30, 180),
		Difficulty:      rules.R(0.3, 0.85),
	},
	rules.K(7, rules.End): {
		Subdomains:      []string{Breuken, Decimalen, Procenten, Verhoudingstabellen, Schaal, Integraal},
		Fractions:       rules.Full,
		MaxDenominator:  100,
		FlagUnreduced:   true,
		Decimals:        rules.Full,
		DecimalDigits:   3,
		Percentages:     rules.Full,
		BlockedContexts: olderBlocked,
		Visual:          rules.VisualOptional,
		MaxSteps:        5,
		Time:            rules.R(30, 180),
		Difficulty:      rules.R(0.3, 0.9),
	},
	rules.K(8, rules.Mid): {
		Subdomains:      []string{Breuken, Decimalen, Procenten, Verhoudingstabellen, Schaal, Integraal},
		Fractions:       rules.Full,
		FlagUnreduced:   true,
		Decimals:        rules.Full,
		DecimalDigits:   3,
		Percentages:     rules.Full,
		BlockedContexts: topBlocked,
		Visual:          rules.VisualOptional,
		MaxSteps:        6,
		Time:            rules.R(30, 240),
		Difficulty:      rules.R(0.35, 0.95),
	},
	rules.K(8, rules.End): {
		Subdomains:      []string{Breuken, Decimalen, Procenten, Verhoudingstabellen, Schaal, Integraal},
		Fractions:       rules.Full,
		FlagUnreduced:   true,
		Decimals:        rules.Full,
		DecimalDigits:   3,
		Percentages:     rules.Full,
		BlockedContexts: topBlocked,
		Visual:          rules.VisualOptional,
		MaxSteps:        6,
		Time:            rules.R(30, 240),
		Difficulty:      rules.R(0.35, 1),
	},
})
