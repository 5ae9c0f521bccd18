// Package spelling validates spelling items: one target word, the category
// of spelling rule it practises and, for multiple choice, misspelled
// alternatives.
package spelling

import (
	"fmt"

	"github.com/TomLouwers/websitesara/internal/rules"
)

// Spelling categories.
const (
	Klankzuiver       = "klankzuivere_woorden"
	Tweetekenklanken  = "tweetekenklanken"
	Clusters          = "medeklinkerclusters"
	NgNk              = "ng_nk"
	OpenLettergreep   = "open_lettergreep"
	GeslotenLettergrp = "gesloten_lettergreep"
	EiIj              = "ei_ij"
	AuOu              = "au_ou"
	Verkleinwoorden   = "verkleinwoorden"
	Meervoud          = "meervoud"
	Werkwoorden       = "werkwoorden_tt"
	DTRegel           = "dt_regel"
	VerledenTijd      = "verleden_tijd"
	VoltooidDeelwoord = "voltooid_deelwoord"
	TussenN           = "tussen_n"
	Samenstellingen   = "samenstellingen"
	Leenwoorden       = "leenwoorden"
	Trema             = "trema"
	Apostrof          = "apostrof"
	Hoofdletters      = "hoofdletters"
)

// Categories is every known spelling category.
var Categories = rules.NewSet(
	Klankzuiver, Tweetekenklanken, Clusters, NgNk, OpenLettergreep, GeslotenLettergrp,
	EiIj, AuOu, Verkleinwoorden, Meervoud, Werkwoorden, DTRegel, VerledenTijd,
	VoltooidDeelwoord, TussenN, Samenstellingen, Leenwoorden, Trema, Apostrof, Hoofdletters,
)

// verbCategories are the categories whose answer is a verb form.
var verbCategories = rules.NewSet(DTRegel, VerledenTijd, VoltooidDeelwoord, Werkwoorden)

// Frequency tiers, most frequent first.
var frequencyTiers = []string{"hoog", "midden", "laag"}

func tierIndex(t string) int {
	for i, f := range frequencyTiers {
		if f == t {
			return i
		}
	}
	return -1
}

// ItemTypes are the known spelling task forms.
var ItemTypes = rules.NewSet("meerkeuze", "invullen", "dictee", "foutzoeken", "kies_de_juiste")

// Rule constrains spelling items of one (grade, level).
type Rule struct {
	Categories []string `json:"categories"`
	Forbidden  []string `json:"forbidden"`

	WordLength   rules.Range `json:"word_length"`
	MaxSyllables int         `json:"max_syllables"`
	// Frequency is the least frequent tier in use.
	Frequency string `json:"frequency"`

	DT      rules.Stage `json:"dt_rule"`
	TussenN rules.Stage `json:"tussen_n"`

	Time       rules.Range `json:"time_sec"`
	Difficulty rules.Range `json:"difficulty"`
}

// Check keeps the category lists disjoint and the stages in line with them.
func (r Rule) Check() error {
	if err := rules.Disjoint("categories", r.Categories, r.Forbidden); err != nil {
		return err
	}
	for _, c := range append(append([]string{}, r.Categories...), r.Forbidden...) {
		if !Categories.Has(c) {
			return fmt.Errorf("unknown category %q", c)
		}
	}
	if (r.DT != rules.Forbidden) != rules.Contains(r.Categories, DTRegel) {
		return fmt.Errorf("dt stage %s disagrees with the category list", r.DT)
	}
	if (r.TussenN != rules.Forbidden) != rules.Contains(r.Categories, TussenN) {
		return fmt.Errorf("tussen-n stage %s disagrees with the category list", r.TussenN)
	}
	if tierIndex(r.Frequency) < 0 {
		return fmt.Errorf("unknown frequency tier %q", r.Frequency)
	}
	return nil
}

var (
	catsG3M = []string{Klankzuiver, Tweetekenklanken}
	catsG3E = []string{Klankzuiver, Tweetekenklanken, Clusters, NgNk}
	catsG4M = []string{Klankzuiver, Tweetekenklanken, Clusters, NgNk, OpenLettergreep, GeslotenLettergrp, EiIj, AuOu, Verkleinwoorden, Meervoud, Werkwoorden}
	catsG4E = append(append([]string{}, catsG4M...), DTRegel)
	catsG5M = append(append([]string{}, catsG4E...), VerledenTijd, TussenN, Samenstellingen)
	catsG5E = append(append([]string{}, catsG5M...), VoltooidDeelwoord, Hoofdletters)
	catsG6  = append(append([]string{}, catsG5E...), Leenwoorden, Trema, Apostrof)
)

var book = rules.MustBook("spelling", map[rules.Key]Rule{
	rules.K(3, rules.Mid): {
		Categories: catsG3M,
		Forbidden:  []string{Werkwoorden, DTRegel, VerledenTijd, VoltooidDeelwoord, TussenN, Leenwoorden, Trema, Apostrof},
		WordLength: rules.R(2, 5), MaxSyllables: 1, Frequency: "hoog",
		Time: rules.R(10, 60), Difficulty: rules.R(0.1, 0.4),
	},
	rules.K(3, rules.End): {
		Categories: catsG3E,
		Forbidden:  []string{Werkwoorden, DTRegel, VerledenTijd, VoltooidDeelwoord, TussenN, Leenwoorden, Trema, Apostrof},
		WordLength: rules.R(2, 7), MaxSyllables: 2, Frequency: "hoog",
		Time: rules.R(10, 60), Difficulty: rules.R(0.15, 0.5),
	},
	rules.K(4, rules.Mid): {
		Categories: catsG4M,
		Forbidden:  []string{DTRegel, VerledenTijd, VoltooidDeelwoord, TussenN, Leenwoorden, Trema},
		WordLength: rules.R(2, 9), MaxSyllables: 3, Frequency: "midden",
		Time: rules.R(10, 75), Difficulty: rules.R(0.2, 0.55),
	},
	rules.K(4, rules.End): {
		Categories: catsG4E,
		Forbidden:  []string{VerledenTijd, VoltooidDeelwoord, TussenN, Leenwoorden, Trema},
		WordLength: rules.R(2, 10), MaxSyllables: 3, Frequency: "midden",
		DT:   rules.Introduction,
		Time: rules.R(10, 75), Difficulty: rules.R(0.25, 0.6),
	},
	rules.K(5, rules.Mid): {
		Categories: catsG5M,
		Forbidden:  []string{Leenwoorden, Trema},
		WordLength: rules.R(2, 12), MaxSyllables: 4, Frequency: "midden",
		DT: rules.Full, TussenN: rules.Introduction,
		Time: rules.R(10, 90), Difficulty: rules.R(0.25, 0.65),
	},
	rules.K(5, rules.End): {
		Categories: catsG5E,
		Forbidden:  []string{Leenwoorden},
		WordLength: rules.R(2, 13), MaxSyllables: 4, Frequency: "laag",
		DT: rules.Full, TussenN: rules.Full,
		Time: rules.R(10, 90), Difficulty: rules.R(0.3, 0.7),
	},
	rules.K(6, rules.Mid): {
		Categories: catsG6, WordLength: rules.R(2, 14), MaxSyllables: 5, Frequency: "laag",
		DT: rules.Full, TussenN: rules.Full,
		Time: rules.R(10, 90), Difficulty: rules.R(0.3, 0.75),
	},
	rules.K(6, rules.End): {
		Categories: catsG6, WordLength: rules.R(2, 15), MaxSyllables: 5, Frequency: "laag",
		DT: rules.Full, TussenN: rules.Full,
		Time: rules.R(10, 90), Difficulty: rules.R(0.35, 0.8),
	},
	rules.K(7, rules.Mid): {
		Categories: catsG6, WordLength: rules.R(2, 16), MaxSyllables: 6, Frequency: "laag",
		DT: rules.Full, TussenN: rules.Full,
		Time: rules.R(10, 120), Difficulty: rules.R(0.35, 0.85),
	},
	rules.K(7, rules.End): {
		Categories: catsG6, WordLength: rules.R(2, 18), MaxSyllables: 6, Frequency: "laag",
		DT: rules.Full, TussenN: rules.Full,
		Time: rules.R(10, 120), Difficulty: rules.R(0.4, 0.9),
	},
	rules.K(8, rules.Mid): {
		Categories: catsG6, WordLength: rules.R(2, 20), MaxSyllables: 7, Frequency: "laag",
		DT: rules.Full, TussenN: rules.Full,
		Time: rules.R(10, 120), Difficulty: rules.R(0.4, 0.95),
	},
	rules.K(8, rules.End): {
		Categories: catsG6, WordLength: rules.R(2, 22), MaxSyllables: 7, Frequency: "laag",
		DT: rules.Full, TussenN: rules.Full,
		Time: rules.R(10, 120), Difficulty: rules.R(0.45, 1),
	},
})
