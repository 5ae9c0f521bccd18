// Package meetkunde validates measurement and geometry items. Items carry
// subdomein METEN (length, weight, volume, time, money) or MEETKUNDE
// (figures, properties, symmetry, angles).
package meetkunde

import (
	"fmt"

	"github.com/TomLouwers/websitesara/internal/rules"
)

// Subdomains.
const (
	Meten     = "METEN"
	Meetkunde = "MEETKUNDE"
)

// Resolution is the finest clock reading a level works with.
type Resolution int

const (
	WholeHours Resolution = iota
	HalfHours
	Quarters
	FiveMinutes
	Minutes
)

var resolutionNames = []string{"hele uren", "halve uren", "kwartieren", "vijf minuten", "minuten"}

func (r Resolution) String() string {
	if int(r) < len(resolutionNames) {
		return resolutionNames[r]
	}
	return "unknown"
}

// MarshalText renders the resolution name.
func (r Resolution) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnitRule constrains one quantity family (length, weight or volume).
type UnitRule struct {
	// ComparativeOnly forbids formal units; only words like "zwaarder" are used.
	ComparativeOnly bool     `json:"comparative_only,omitempty"`
	Allowed         []string `json:"allowed,omitempty"`
	WholeOnly       bool     `json:"whole_only,omitempty"`
	// Max caps quantities written with a unit; zero is unconstrained.
	Max float64 `json:"max,omitempty"`
}

// ClockRule constrains time items.
type ClockRule struct {
	Resolution Resolution  `json:"resolution"`
	Digital    rules.Stage `json:"digital"`
	Hours24    bool        `json:"hours_24"`
}

// MoneyRule constrains money items.
type MoneyRule struct {
	MaxCents  int  `json:"max_cents,omitempty"`
	CoinsOnly bool `json:"coins_only,omitempty"`
	// DecimalNeedsCoins requires "€X,YY" amounts to come with a coin context.
	DecimalNeedsCoins bool `json:"decimal_needs_coins,omitempty"`
}

// Rule constrains measurement and geometry items of one (grade, level).
type Rule struct {
	Length UnitRule  `json:"length"`
	Weight UnitRule  `json:"weight"`
	Volume UnitRule  `json:"volume"`
	Clock  ClockRule `json:"clock"`
	Money  MoneyRule `json:"money"`

	Figures []string `json:"figures"`
	// CountProperties allows questions that count sides, corners or faces;
	// otherwise figures are only recognised.
	CountProperties bool        `json:"count_properties"`
	Symmetry        rules.Stage `json:"symmetry"`
	Angles          rules.Stage `json:"angles"`

	Visual       rules.Visual `json:"visual"`
	MaxSentences int          `json:"max_sentences"`
	Time         rules.Range  `json:"time_sec"`
	Difficulty   rules.Range  `json:"difficulty"`
}

// Check rejects unit lists that name units of another family and
// comparative-only families that still list units.
func (r Rule) Check() error {
	for _, f := range []struct {
		name string
		u    UnitRule
	}{{familyLength, r.Length}, {familyWeight, r.Weight}, {familyVolume, r.Volume}} {
		if f.u.ComparativeOnly && len(f.u.Allowed) > 0 {
			return fmt.Errorf("%s: comparative-only family lists units %v", f.name, f.u.Allowed)
		}
		for _, u := range f.u.Allowed {
			if unitFamily[u] != f.name {
				return fmt.Errorf("%s: unit %q belongs to %q", f.name, u, unitFamily[u])
			}
		}
	}
	return nil
}

// Quantity families of METEN.
const (
	familyLength = "lengte"
	familyWeight = "gewicht"
	familyVolume = "inhoud"
	familyTime   = "tijd"
	familyMoney  = "geld"
)

// unitFamily maps unit symbols to their family. It is declared before the
// rule book because Rule.Check reads it during book construction.
var unitFamily = map[string]string{
	"mm": familyLength, "cm": familyLength, "dm": familyLength, "m": familyLength, "km": familyLength,
	"mg": familyWeight, "g": familyWeight, "ons": familyWeight, "pond": familyWeight, "kg": familyWeight,
	"ml": familyVolume, "cl": familyVolume, "dl": familyVolume, "l": familyVolume,
}

var (
	figuresG3 =[]string{"cirkel", "vierkant", "driehoek", "rechthoek"}
	figuresG4 = append(append([]string{}, figuresG3...), "ovaal", "vijfhoek", "zeshoek", "kubus", "bol")
	figuresG5 = append(append([]string{}, figuresG4...), "balk", "cilinder", "piramide", "kegel", "ruit", "parallellogram", "trapezium")
	figuresG6 = append(append([]string{}, figuresG5...), "achthoek", "prisma", "veelhoek", "vlieger")
)

var allLength = []string{"mm", "cm", "dm", "m", "km"}
var allWeight = []string{"mg", "g", "ons", "pond", "kg"}
var allVolume = []string{"ml", "cl", "dl", "l"}

var book = rules.MustBook("meetkunde", map[rules.Key]Rule{
	rules.K(3, rules.Mid): {
		Length:       UnitRule{Allowed: []string{"m"}, WholeOnly: true, Max: 10},
		Weight:       UnitRule{ComparativeOnly: true},
		Volume:       UnitRule{ComparativeOnly: true},
		Clock:        ClockRule{Resolution: HalfHours, Digital: rules.Forbidden},
		Money:        MoneyRule{MaxCents: 100, CoinsOnly: true},
		Figures:      figuresG3,
		Symmetry:     rules.Forbidden,
		Angles:       rules.Forbidden,
		Visual:       rules.VisualRequired,
		MaxSentences: 3,
		Time:         rules.R(10, 60),
		Difficulty:   rules.R(0.1, 0.5),
	},
	rules.K(3, rules.End): {
		Length:          UnitRule{Allowed: []string{"m"}, WholeOnly: true, Max: 20},
		Weight:          UnitRule{Allowed: []string{"kg"}, WholeOnly: true, Max: 20},
		Volume:          UnitRule{Allowed: []string{"l"}, WholeOnly: true, Max: 20},
		Clock:           ClockRule{Resolution: HalfHours, Digital: rules.Introduction},
		Money:           MoneyRule{MaxCents: 2000, DecimalNeedsCoins: true},
		Figures:         figuresG3,
		CountProperties: true,
		Symmetry:        rules.Introduction,
		Angles:          rules.Forbidden,
		Visual:          rules.VisualRequired,
		MaxSentences:    4,
		Time:            rules.R(10, 75),
		Difficulty:      rules.R(0.1, 0.6),
	},
	rules.K(4, rules.Mid): {
		Length:          UnitRule{Allowed: []string{"m", "cm"}, WholeOnly: true, Max: 100},
		Weight:          UnitRule{Allowed: []string{"kg"}, WholeOnly: true, Max: 100},
		Volume:          UnitRule{Allowed: []string{"l"}, WholeOnly: true, Max: 100},
		Clock:           ClockRule{Resolution: Quarters, Digital: rules.Introduction},
		Money:           MoneyRule{MaxCents: 10000, DecimalNeedsCoins: true},
		Figures:         figuresG4,
		CountProperties: true,
		Symmetry:        rules.Full,
		Angles:          rules.Introduction,
		Visual:          rules.VisualStronglyRecommended,
		MaxSentences:    4,
		Time:            rules.R(10, 90),
		Difficulty:      rules.R(0.15, 0.65),
	},
	rules.K(4, rules.End): {
		Length:          UnitRule{Allowed: []string{"m", "dm", "cm"}, Max: 1000},
		Weight:          UnitRule{Allowed: []string{"kg", "g"}, Max: 1000},
		Volume:          UnitRule{Allowed: []string{"l", "dl"}, Max: 100},
		Clock:           ClockRule{Resolution: FiveMinutes, Digital: rules.Full},
		Money:           MoneyRule{MaxCents: 10000},
		Figures:         figuresG4,
		CountProperties: true,
		Symmetry:        rules.Full,
		Angles:          rules.Introduction,
		Visual:          rules.VisualStronglyRecommended,
		MaxSentences:    5,
		Time:            rules.R(15, 90),
		Difficulty:      rules.R(0.2, 0.7),
	},
	rules.K(5, rules.Mid): {
		Length:          UnitRule{Allowed: allLength},
		Weight:          UnitRule{Allowed: []string{"g", "ons", "pond", "kg"}},
		Volume:          UnitRule{Allowed: allVolume},
		Clock:           ClockRule{Resolution: Minutes, Digital: rules.Full, Hours24: true},
		Figures:         figuresG5,
		CountProperties: true,
		Symmetry:        rules.Full,
		Angles:          rules.Full,
		Visual:          rules.VisualRecommended,
		MaxSentences:    5,
		Time:            rules.R(15, 120),
		Difficulty:      rules.R(0.2, 0.75),
	},
	rules.K(5, rules.End): {
		Length:          UnitRule{Allowed: allLength},
		Weight:          UnitRule{Allowed: allWeight},
		Volume:          UnitRule{Allowed: allVolume},
		Clock:           ClockRule{Resolution: Minutes, Digital: rules.Full, Hours24: true},
		Figures:         figuresG5,
		CountProperties: true,
		Symmetry:        rules.Full,
		Angles:          rules.Full,
		Visual:          rules.VisualRecommended,
		MaxSentences:    6,
		Time:            rules.R(15, 120),
		Difficulty:      rules.R(0.25, 0.8),
	},
	rules.K(6, rules.Mid): {
		Length:          UnitRule{Allowed: allLength},
		Weight:          UnitRule{Allowed: allWeight},
		Volume:          UnitRule{Allowed: allVolume},
		Clock:           ClockRule{Resolution: Minutes, Digital: rules.Full, Hours24: true},
		Figures:         figuresG6,
		CountProperties: true,
		Symmetry:        rules.Full,
		Angles:          rules.Full,
		Visual:          rules.VisualOptional,
		MaxSentences:    6,
		Time:            rules.R(20, 150),
		Difficulty:      rules.R(0.25, 0.85),
	},
	rules.K(6, rules.End): {
		Length:          UnitRule{Allowed: allLength},
		Weight:          UnitRule{Allowed: allWeight},
		Volume:          UnitRule{Allowed: allVolume},
		Clock:           ClockRule{Resolution: Minutes, Digital: rules.Full, Hours24: true},
		Figures:         figuresG6,
		CountProperties: true,
		Symmetry:        rules.Full,
		Angles:          rules.Full,
		Visual:          rules.VisualOptional,
		MaxSentences:    6,
		Time:            rules.R(20, 150),
		Difficulty:      rules.R(0.3, 0.85),
	},
	rules.K(7, rules.Mid): {
		Length:          UnitRule{Allowed: allLength},
		Weight:          UnitRule{Allowed: allWeight},
		Volume:          UnitRule{Allowed: allVolume},
		Clock:           ClockRule{Resolution: Minutes, Digital: rules.Full, Hours24: true},
		Figures:         figuresG6,
		CountProperties: true,
		Symmetry:        rules.Full,
		Angles:          rules.Full,
		Visual:          rules.VisualOptional,
		MaxSentences:    7,
		Time:            rules.R(20, 180),
		Difficulty:      rules.R(0.3, 0.9),
	},
	rules.K(7, rules.End): {
		Length:          UnitRule{Allowed: allLength},
		Weight:          UnitRule{Allowed: allWeight},
		Volume:          UnitRule{Allowed: allVolume},
		Clock:           ClockRule{Resolution: Minutes, Digital: rules.Full, Hours24: true},
		Figures:         figuresG6,
		CountProperties: true,
		Symmetry:        rules.Full,
		Angles:          rules.Full,
		Visual:          rules.VisualOptional,
		MaxSentences:    7,
		Time:            rules.R(20, 180),
		Difficulty:      rules.R(0.3, 0.9),
	},
	rules.K(8, rules.Mid): {
		Length:          UnitRule{Allowed: allLength},
		Weight:          UnitRule{Allowed: allWeight},
		Volume:          UnitRule{Allowed: allVolume},
		Clock:           ClockRule{Resolution: Minutes, Digital: rules.Full, Hours24: true},
		Figures:         figuresG6,
		CountProperties: true,
		Symmetry:        rules.Full,
		Angles:          rules.Full,
		Visual:          rules.VisualOptional,
		MaxSentences:    8,
		Time:            rules.R(20, 240),
		Difficulty:      rules.R(0.3, 0.95),
	},
	rules.K(8, rules.End): {
		Length:          UnitRule{Allowed: allLength},
		Weight:          UnitRule{Allowed: allWeight},
		Volume:          UnitRule{Allowed: allVolume},
		Clock:           ClockRule{Resolution: Minutes, Digital: rules.Full, Hours24: true},
		Figures:         figuresG6,
		CountProperties: true,
		Symmetry:        rules.Full,
		Angles:          rules.Full,
		Visual:          rules.VisualOptional,
		MaxSentences:    8,
		Time:            rules.R(20, 240),
		Difficulty:      rules.R(0.35, 1),
	},
})
