// Package getallen validates arithmetic items: number sense and the four
// operations. Legacy multiple-choice files are converted by package legacy
// before they reach this validator.
package getallen

import (
	"fmt"
	"slices"

	"github.com/TomLouwers/websitesara/internal/rules"
)

// Operation names as used in rule tables and findings.
const (
	OpOptellen         = "optellen"
	OpAftrekken        = "aftrekken"
	OpVermenigvuldigen = "vermenigvuldigen"
	OpDelen            = "delen"
	OpTientalovergang  = "tientalovergang"
)

// Rule constrains arithmetic items of one (grade, level).
type Rule struct {
	Range      rules.Range `json:"range"`
	Operations []string    `json:"operations"`
	Forbidden  []string    `json:"forbidden,omitempty"`

	// Tables lists the multiplication tables in use; nil means unconstrained.
	Tables       []int   `json:"tables,omitempty"`
	TableTimeSec float64 `json:"table_time_sec,omitempty"`

	Strategies []string     `json:"strategies"`
	Visual     rules.Visual `json:"visual"`
	Materials  []string     `json:"materials,omitempty"`

	MaxSentences int  `json:"max_sentences"`
	MaxWords     int  `json:"max_words_per_sentence"`
	SubClauses   bool `json:"sub_clauses"`

	Time       rules.Range `json:"time_sec"`
	Difficulty rules.Range `json:"difficulty"`

	// MoneyMaxCents caps amounts of money in the prompt; zero is unconstrained.
	MoneyMaxCents int         `json:"money_max_cents,omitempty"`
	Carry         rules.Stage `json:"carry"`
}

// Check keeps the allowed and forbidden operations disjoint and the carry
// stage in line with the forbidden list.
func (r Rule) Check() error {
	if err := rules.Disjoint("operations", r.Operations, r.Forbidden); err != nil {
		return err
	}
	carryForbidden := rules.Contains(r.Forbidden, OpTientalovergang)
	if carryForbidden != (r.Carry == rules.Forbidden) {
		return fmt.Errorf("carry stage %s disagrees with forbidden list %v", r.Carry, r.Forbidden)
	}
	if r.Range.Min > r.Range.Max {
		return fmt.Errorf("empty number range %s", r.Range)
	}
	return nil
}

func (r Rule) allows(op string) bool {
	return rules.Contains(r.Operations, op) && !rules.Contains(r.Forbidden, op)
}

func (r Rule) tableAllowed(a, b int) bool {
	if r.Tables == nil {
		return true
	}
	return (slices.Contains(r.Tables, a) && b <= 10) || (slices.Contains(r.Tables, b) && a <= 10)
}

var (
	earlyStrategies = []string{"tellen", "doortellen", "terugtellen", "splitsen", "dubbelen", "bijna dubbelen", "rekenrek", "tot 10", "via 10"}
	midStrategies   = []string{"splitsen", "rijgen", "aanvullen", "compenseren", "via 10", "tafel", "verdubbelen", "halveren", "omkeren", "handig rekenen"}
	lateStrategies  = []string{"schattend rekenen", "schatten", "kolomsgewijs", "cijferend", "compenseren", "afronden", "handig rekenen", "verdelen", "omkeren"}
)

var book = rules.MustBook("getallen", map[rules.Key]Rule{
	rules.K(3, rules.Mid): {
		Range:         rules.R(0, 20),
		Operations:    []string{OpOptellen, OpAftrekken},
		Forbidden:     []string{OpVermenigvuldigen, OpDelen, OpTientalovergang},
		Strategies:    earlyStrategies,
		Visual:        rules.VisualRequired,
		Materials:     []string{"rekenrek", "kralenketting", "vingers", "dobbelsteen", "blokjes"},
		MaxSentences:  3,
		MaxWords:      8,
		Time:          rules.R(10, 60),
		Difficulty:    rules.R(0.1, 0.5),
		MoneyMaxCents: 100,
		Carry:         rules.Forbidden,
	},
	rules.K(3, rules.End): {
		Range:         rules.R(0, 100),
		Operations:    []string{OpOptellen, OpAftrekken, OpTientalovergang},
		Forbidden:     []string{OpVermenigvuldigen, OpDelen},
		Strategies:    earlyStrategies,
		Visual:        rules.VisualRequired,
		Materials:     []string{"rekenrek", "kralenketting", "getallenlijn", "honderdveld"},
		MaxSentences:  4,
		MaxWords:      10,
		Time:          rules.R(10, 75),
		Difficulty:    rules.R(0.1, 0.6),
		MoneyMaxCents: 1000,
		Carry:         rules.Introduction,
	},
	rules.K(4, rules.Mid): {
		Range:         rules.R(0, 100),
		Operations:    []string{OpOptellen, OpAftrekken, OpTientalovergang, OpVermenigvuldigen},
		Forbidden:     []string{OpDelen},
		Tables:        []int{1, 2, 5, 10},
		TableTimeSec:  5,
		Strategies:    midStrategies,
		Visual:        rules.VisualStronglyRecommended,
		Materials:     []string{"getallenlijn", "honderdveld", "rekenrek"},
		MaxSentences:  4,
		MaxWords:      12,
		SubClauses:    true,
		Time:          rules.R(10, 90),
		Difficulty:    rules.R(0.15, 0.65),
		MoneyMaxCents: 2000,
		Carry:         rules.Full,
	},
	rules.K(4, rules.End): {
		Range:         rules.R(0, 100),
		Operations:    []string{OpOptellen, OpAftrekken, OpTientalovergang, OpVermenigvuldigen, OpDelen},
		Tables:        []int{1, 2, 3, 4, 5, 10},
		TableTimeSec:  4,
		Strategies:    midStrategies,
		Visual:        rules.VisualRecommended,
		Materials:     []string{"getallenlijn", "honderdveld"},
		MaxSentences:  5,
		MaxWords:      12,
		SubClauses:    true,
		Time:          rules.R(10, 90),
		Difficulty:    rules.R(0.2, 0.7),
		MoneyMaxCents: 10000,
		Carry:         rules.Full,
	},
	rules.K(5, rules.Mid): {
		Range:        rules.R(0, 1000),
		Operations:   []string{OpOptellen, OpAftrekken, OpTientalovergang, OpVermenigvuldigen, OpDelen},
		Tables:       []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		TableTimeSec: 3,
		Strategies:   midStrategies,
		Visual:       rules.VisualRecommended,
		MaxSentences: 5,
		MaxWords:     14,
		SubClauses:   true,
		Time:         rules.R(15, 120),
		Difficulty:   rules.R(0.2, 0.75),
		Carry:        rules.Full,
	},
	rules.K(5, rules.End): {
		Range:        rules.R(0, 1000),
		Operations:   []string{OpOptellen, OpAftrekken, OpTientalovergang, OpVermenigvuldigen, OpDelen},
		Tables:       []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		TableTimeSec: 3,
		Strategies:   midStrategies,
		Visual:       rules.VisualOptional,
		MaxSentences: 5,
		MaxWords:     15,
		SubClauses:   true,
		Time:         rules.R(15, 120),
		Difficulty:   rules.R(0.25, 0.8),
		Carry:        rules.Full,
	},
	rules.K(6, rules.Mid): {
		Range:        rules.R(0, 10000),
		Operations:   []string{OpOptellen, OpAftrekken, OpTientalovergang, OpVermenigvuldigen, OpDelen},
		Strategies:   lateStrategies,
		Visual:       rules.VisualOptional,
		MaxSentences: 6,
		MaxWords:     16,
		SubClauses:   true,
		Time:         rules.R(20, 150),
		Difficulty:   rules.R(0.25, 0.8),
		Carry:        rules.Full,
	},
	rules.K(6, rules.End): {
		Range:        rules.R(0, 100000),
		Operations:   []string{OpOptellen, OpAftrekken, OpTientalovergang, OpVermenigvuldigen, OpDelen},
		Strategies:   lateStrategies,
		Visual:       rules.VisualOptional,
		MaxSentences: 6,
		MaxWords:     16,
		SubClauses:   true,
		Time:         rules.R(20, 150),
		Difficulty:   rules.R(0.3, 0.85),
		Carry:        rules.Full,
	},
	rules.K(7, rules.Mid): {
		Range:        rules.R(0, 1000000),
		Operations:   []string{OpOptellen, OpAftrekken, OpTientalovergang, OpVermenigvuldigen, OpDelen},
		Strategies:   lateStrategies,
		Visual:       rules.VisualOptional,
		MaxSentences: 7,
		MaxWords:     18,
		SubClauses:   true,
		Time:         rules.R(20, 180),
		Difficulty:   rules.R(0.3, 0.9),
		Carry:        rules.Full,
	},
	rules.K(7, rules.End): {
		Range:        rules.R(-1000, 1000000),
		Operations:   []string{OpOptellen, OpAftrekken, OpTientalovergang, OpVermenigvuldigen, OpDelen},
		Strategies:   lateStrategies,
		Visual:       rules.VisualOptional,
		MaxSentences: 7,
		MaxWords:     18,
		SubClauses:   true,
		Time:         rules.R(20, 180),
		Difficulty:   rules.R(0.3, 0.9),
		Carry:        rules.Full,
	},
	rules.K(8, rules.Mid): {
		Range:        rules.R(-10000, 1000000000),
		Operations:   []string{OpOptellen, OpAftrekken, OpTientalovergang, OpVermenigvuldigen, OpDelen},
		Strategies:   lateStrategies,
		Visual:       rules.VisualOptional,
		MaxSentences: 8,
		MaxWords:     20,
		SubClauses:   true,
		Time:         rules.R(20, 240),
		Difficulty:   rules.R(0.3, 0.95),
		Carry:        rules.Full,
	},
	rules.K(8, rules.End): {
		Range:        rules.R(-10000, 1000000000),
		Operations:   []string{OpOptellen, OpAftrekken, OpTientalovergang, OpVermenigvuldigen, OpDelen},
		Strategies:   lateStrategies,
		Visual:       rules.VisualOptional,
		MaxSentences: 8,
		MaxWords:     20,
		SubClauses:   true,
		Time:         rules.R(20, 240),
		Difficulty:   rules.R(0.35, 1),
		Carry:        rules.Full,
	},
})
