// Package woordenschat validates vocabulary items: a target word (doelwoord)
// tested receptively or productively through a picture, a context, a
// definition or a word relation.
package woordenschat

import (
	"fmt"

	"github.com/TomLouwers/websitesara/internal/rules"
)

// Types are the values of woordenschat_type.
var Types = rules.NewSet("receptief", "productief")

// Word categories.
const (
	Concreet    = "concreet"
	Alledaags   = "alledaags"
	Thema       = "thematisch"
	Schooltaal  = "schooltaal"
	Abstract    = "abstract"
	Figuurlijk  = "figuurlijk"
	Uitdrukking = "uitdrukkingen"
	Spreekwoord = "spreekwoorden"
	Academisch  = "academisch"
	Vaktaal     = "vaktaal"
)

// Categories is the woordcategorie taxonomy.
var Categories = rules.NewSet(Concreet, Alledaags, Thema, Schooltaal, Abstract, Figuurlijk, Uitdrukking, Spreekwoord, Academisch, Vaktaal)

// Item types grouped by what they need.
var (
	pictureTypes    = rules.NewSet("meerkeuze_plaatje", "plaatje_woord")
	figurativeTypes = rules.NewSet("figuurlijk_taalgebruik", "uitdrukking", "spreekwoord", "beeldspraak")
	academicTypes   = rules.NewSet("academisch_woord", "vaktaal_definitie")

	// ItemTypes are all known vocabulary task forms.
	ItemTypes = rules.NewSet(
		"meerkeuze_plaatje", "plaatje_woord", "betekenis", "definitie", "synoniem", "antoniem",
		"context_betekenis", "context_invullen", "zin_aanvullen", "woordfamilie", "categoriseren",
		"figuurlijk_taalgebruik", "uitdrukking", "spreekwoord", "beeldspraak",
		"academisch_woord", "vaktaal_definitie",
	)
)

// Strategies are the word-learning strategies an item may practise.
var Strategies = rules.NewSet("plaatje", "context", "woorddelen", "woordfamilie", "woordenboek", "uitleg")

var frequencyTiers = []string{"hoog", "midden", "laag"}

func tierIndex(t string) int {
	for i, f := range frequencyTiers {
		if f == t {
			return i
		}
	}
	return -1
}

// Rule constrains vocabulary items of one (grade, level).
type Rule struct {
	Categories []string `json:"categories"`
	Forbidden  []string `json:"forbidden"`
	// Frequency is the least frequent tier in use.
	Frequency string `json:"frequency"`

	Figurative rules.Stage `json:"figurative"`
	Academic   rules.Stage `json:"academic"`

	Strategies []string `json:"strategies"`
	// VocabularySize is the expected receptive vocabulary in words; informative only.
	VocabularySize int          `json:"vocabulary_size"`
	Visual         rules.Visual `json:"visual"`

	Time       rules.Range `json:"time_sec"`
	Difficulty rules.Range `json:"difficulty"`
}

// Check keeps the lists within the taxonomies and the stages in line with them.
func (r Rule) Check() error {
	if err := rules.Disjoint("categories", r.Categories, r.Forbidden); err != nil {
		return err
	}
	for _, c := range append(append([]string{}, r.Categories...), r.Forbidden...) {
		if !Categories.Has(c) {
			return fmt.Errorf("unknown category %q", c)
		}
	}
	for _, s := range r.Strategies {
		if !Strategies.Has(s) {
			return fmt.Errorf("unknown strategy %q", s)
		}
	}
	if r.Figurative == rules.Forbidden && rules.Contains(r.Categories, Figuurlijk) {
		return fmt.Errorf("figurative category allowed while figurative items are forbidden")
	}
	if r.Academic == rules.Forbidden && rules.Contains(r.Categories, Academisch) {
		return fmt.Errorf("academic category allowed while academic items are forbidden")
	}
	if tierIndex(r.Frequency) < 0 {
		return fmt.Errorf("unknown frequency tier %q", r.Frequency)
	}
	return nil
}

var (
	catsG3  = []string{Concreet, Alledaags, Thema}
	catsG4M = []string{Concreet, Alledaags, Thema, Schooltaal}
	catsG4E = append(append([]string{}, catsG4M...), Figuurlijk)
	catsG5  = append(append([]string{}, catsG4E...), Abstract, Uitdrukking)
	catsG6  = append(append([]string{}, catsG5...), Spreekwoord, Academisch, Vaktaal)

	strategiesG3 = []string{"plaatje", "context", "uitleg"}
	strategiesG4 = []string{"plaatje", "context", "uitleg", "woordfamilie"}
	strategiesG5 = []string{"plaatje", "context", "uitleg", "woordfamilie", "woorddelen", "woordenboek"}
)

var book = rules.MustBook("woordenschat", map[rules.Key]Rule{
	rules.K(3, rules.Mid): {
		Categories: catsG3, Forbidden: []string{Abstract, Figuurlijk, Uitdrukking, Spreekwoord, Academisch, Vaktaal},
		Frequency: "hoog", Strategies: strategiesG3, VocabularySize: 5000, Visual: rules.VisualRecommended,
		Time: rules.R(10, 45), Difficulty: rules.R(0.1, 0.4),
	},
	rules.K(3, rules.End): {
		Categories: catsG3, Forbidden: []string{Abstract, Figuurlijk, Uitdrukking, Spreekwoord, Academisch, Vaktaal},
		Frequency: "hoog", Strategies: strategiesG3, VocabularySize: 6000, Visual: rules.VisualRecommended,
		Time: rules.R(10, 45), Difficulty: rules.R(0.15, 0.5),
	},
	rules.K(4, rules.Mid): {
		Categories: catsG4M, Forbidden: []string{Figuurlijk, Uitdrukking, Spreekwoord, Academisch, Vaktaal},
		Frequency: "hoog", Strategies: strategiesG4, VocabularySize: 7000, Visual: rules.VisualOptional,
		Time: rules.R(15, 60), Difficulty: rules.R(0.2, 0.55),
	},
	rules.K(4, rules.End): {
		Categories: catsG4E, Forbidden: []string{Spreekwoord, Academisch, Vaktaal},
		Frequency: "midden", Figurative: rules.Introduction, Strategies: strategiesG4, VocabularySize: 8000,
		Visual: rules.VisualOptional, Time: rules.R(15, 60), Difficulty: rules.R(0.25, 0.6),
	},
	rules.K(5, rules.Mid): {
		Categories: catsG5, Forbidden: []string{Spreekwoord, Academisch, Vaktaal},
		Frequency: "midden", Figurative: rules.Full, Strategies: strategiesG5, VocabularySize: 9000,
		Visual: rules.VisualOptional, Time: rules.R(15, 75), Difficulty: rules.R(0.25, 0.65),
	},
	rules.K(5, rules.End): {
		Categories: catsG5, Forbidden: []string{Academisch, Vaktaal},
		Frequency: "midden", Figurative: rules.Full, Strategies: strategiesG5, VocabularySize: 10000,
		Visual: rules.VisualOptional, Time: rules.R(15, 75), Difficulty: rules.R(0.3, 0.7),
	},
	rules.K(6, rules.Mid): {
		Categories: catsG6, Frequency: "laag", Figurative: rules.Full, Academic: rules.Introduction,
		Strategies: strategiesG5, VocabularySize: 11000, Visual: rules.VisualOptional,
		Time: rules.R(20, 90), Difficulty: rules.R(0.3, 0.75),
	},
	rules.K(6, rules.End): {
		Categories: catsG6, Frequency: "laag", Figurative: rules.Full, Academic: rules.Introduction,
		Strategies: strategiesG5, VocabularySize: 12000, Visual: rules.VisualOptional,
		Time: rules.R(20, 90), Difficulty: rules.R(0.35, 0.8),
	},
	rules.K(7, rules.Mid): {
		Categories: catsG6, Frequency: "laag", Figurative: rules.Full, Academic: rules.Full,
		Strategies: strategiesG5, VocabularySize: 13500, Visual: rules.VisualOptional,
		Time: rules.R(20, 90), Difficulty: rules.R(0.35, 0.85),
	},
	rules.K(7, rules.End): {
		Categories: catsG6, Frequency: "laag", Figurative: rules.Full, Academic: rules.Full,
		Strategies: strategiesG5, VocabularySize: 15000, Visual: rules.VisualOptional,
		Time: rules.R(20, 90), Difficulty: rules.R(0.4, 0.9),
	},
	rules.K(8, rules.Mid): {
		Categories: catsG6, Frequency: "laag", Figurative: rules.Full, Academic: rules.Full,
		Strategies: strategiesG5, VocabularySize: 16500, Visual: rules.VisualOptional,
		Time: rules.R(20, 120), Difficulty: rules.R(0.4, 0.95),
	},
	rules.K(8, rules.End): {
		Categories: catsG6, Frequency: "laag", Figurative: rules.Full, Academic: rules.Full,
		Strategies: strategiesG5, VocabularySize: 18000, Visual: rules.VisualOptional,
		Time: rules.R(20, 120), Difficulty: rules.R(0.45, 1),
	},
})
