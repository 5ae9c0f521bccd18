// Package verhaaltjes validates word problems (verhaaltjessommen): a short
// story with a question, worked out in steps and explained with LOVA.
package verhaaltjes

import (
	"fmt"

	"github.com/TomLouwers/websitesara/internal/rules"
)

// Mathematical domains a word problem can belong to.
const (
	Getallen     = "GETALLEN"
	Verhoudingen = "VERHOUDINGEN"
	Meten        = "METEN"
	Verbanden    = "VERBANDEN"
)

// Domains is the set of valid domein values.
var Domains = rules.NewSet(Getallen, Verhoudingen, Meten, Verbanden)

// ContextTypes are the story settings in use.
var ContextTypes = rules.NewSet(
	"speelgoed", "snoep", "eten", "dieren", "sport", "school", "winkel", "geld",
	"reizen", "verkeer", "koken", "natuur", "feest", "tijd", "familie", "hobby",
)

// Rule constrains word problems of one (grade, level).
type Rule struct {
	Domains []string `json:"domains"`
	AVI     []string `json:"avi"`

	Length           rules.Range `json:"length_words"`
	MaxSentenceWords int         `json:"max_sentence_words"`
	MaxSentences     int         `json:"max_sentences"`

	Steps rules.Range `json:"steps"`
	// DirectQuestion requires the question to open with an interrogative.
	DirectQuestion bool `json:"direct_question"`
	// MaxAnswer is the largest plausible answer magnitude.
	MaxAnswer float64 `json:"max_answer"`

	Time       rules.Range `json:"time_sec"`
	Difficulty rules.Range `json:"difficulty"`
}

// Check keeps the domains known and the limits usable.
func (r Rule) Check() error {
	for _, d := range r.Domains {
		if !Domains.Has(d) {
			return fmt.Errorf("unknown domein %q", d)
		}
	}
	if r.Steps.Min < 1 || r.Steps.Min > r.Steps.Max {
		return fmt.Errorf("step range %s is invalid", r.Steps)
	}
	if r.MaxSentenceWords <= 0 || r.MaxSentences <= 0 || r.MaxAnswer <= 0 {
		return fmt.Errorf("sentence and answer caps must be positive")
	}
	return nil
}

var (
	domainsG3M = []string{Getallen}
	domainsG3E = []string{Getallen, Meten}
	domainsG4E = []string{Getallen, Meten, Verhoudingen}
	domainsAll = []string{Getallen, Meten, Verhoudingen, Verbanden}
)

var book = rules.MustBook("verhaaltjes", map[rules.Key]Rule{
	rules.K(3, rules.Mid): {Domains: domainsG3M, AVI: []string{"S", "M3"},
		Length: rules.R(10, 40), MaxSentenceWords: 8, MaxSentences: 4,
		Steps: rules.R(1, 1), DirectQuestion: true, MaxAnswer: 20,
		Time: rules.R(30, 120), Difficulty: rules.R(0.1, 0.4)},
	rules.K(3, rules.End): {Domains: domainsG3E, AVI: []string{"M3", "E3"},
		Length: rules.R(15, 50), MaxSentenceWords: 8, MaxSentences: 5,
		Steps: rules.R(1, 1), DirectQuestion: true, MaxAnswer: 100,
		Time: rules.R(30, 120), Difficulty: rules.R(0.15, 0.5)},
	rules.K(4, rules.Mid): {Domains: domainsG3E, AVI: []string{"E3", "M4"},
		Length: rules.R(20, 60), MaxSentenceWords: 10, MaxSentences: 6,
		Steps: rules.R(2, 3), DirectQuestion: true, MaxAnswer: 100,
		Time: rules.R(45, 180), Difficulty: rules.R(0.2, 0.55)},
	rules.K(4, rules.End): {Domains: domainsG4E, AVI: []string{"M4", "E4"},
		Length: rules.R(25, 70), MaxSentenceWords: 10, MaxSentences: 6,
		Steps: rules.R(2, 3), DirectQuestion: true, MaxAnswer: 1000,
		Time: rules.R(45, 180), Difficulty: rules.R(0.25, 0.6)},
	rules.K(5, rules.Mid): {Domains: domainsAll, AVI: []string{"E4", "M5"},
		Length: rules.R(30, 90), MaxSentenceWords: 12, MaxSentences: 7,
		Steps: rules.R(4, 5), MaxAnswer: 1000,
		Time: rules.R(60, 240), Difficulty: rules.R(0.25, 0.65)},
	rules.K(5, rules.End): {Domains: domainsAll, AVI: []string{"M5", "E5"},
		Length: rules.R(35, 100), MaxSentenceWords: 12, MaxSentences: 8,
		Steps: rules.R(4, 5), MaxAnswer: 10000,
		Time: rules.R(60, 240), Difficulty: rules.R(0.3, 0.7)},
	rules.K(6, rules.Mid): {Domains: domainsAll, AVI: []string{"E5", "M6"},
		Length: rules.R(40, 120), MaxSentenceWords: 15, MaxSentences: 9,
		Steps: rules.R(3, 6), MaxAnswer: 100000,
		Time: rules.R(60, 300), Difficulty: rules.R(0.3, 0.75)},
	rules.K(6, rules.End): {Domains: domainsAll, AVI: []string{"M6", "E6"},
		Length: rules.R(45, 130), MaxSentenceWords: 15, MaxSentences: 10,
		Steps: rules.R(3, 6), MaxAnswer: 100000,
		Time: rules.R(60, 300), Difficulty: rules.R(0.35, 0.8)},
	rules.K(7, rules.Mid): {Domains: domainsAll, AVI: []string{"E6", "M7", "PLUS"},
		Length: rules.R(50, 150), MaxSentenceWords: 15, MaxSentences: 10,
		Steps: rules.R(3, 6), MaxAnswer: 1000000,
		Time: rules.R(90, 360), Difficulty: rules.R(0.35, 0.85)},
	rules.K(7, rules.End): {Domains: domainsAll, AVI: []string{"M7", "E7", "PLUS"},
		Length: rules.R(55, 160), MaxSentenceWords: 18, MaxSentences: 12,
		Steps: rules.R(3, 6), MaxAnswer: 1000000,
		Time: rules.R(90, 360), Difficulty: rules.R(0.4, 0.9)},
	rules.K(8, rules.Mid): {Domains: domainsAll, AVI: []string{"E7", "PLUS"},
		Length: rules.R(60, 180), MaxSentenceWords: 18, MaxSentences: 12,
		Steps: rules.R(2, 6), MaxAnswer: 10000000,
		Time: rules.R(90, 360), Difficulty: rules.R(0.4, 0.95)},
	rules.K(8, rules.End): {Domains: domainsAll, AVI: []string{"E7", "PLUS"},
		Length: rules.R(60, 200), MaxSentenceWords: 18, MaxSentences: 14,
		Steps: rules.R(2, 6), MaxAnswer: 10000000,
		Time: rules.R(90, 360), Difficulty: rules.R(0.45, 1)},
})
