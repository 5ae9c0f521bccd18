package validate

import "strings"

// Category groups findings for the quality breakdown.
type Category string

const (
	CategoryStructuur Category = "structuur"
	CategoryInhoud    Category = "inhoud"
	CategoryContext   Category = "context"
	CategoryAfleiders Category = "afleiders"
	CategoryTaal      Category = "taal"
	CategoryDidactiek Category = "didactiek"
)

// Penalties applied to a category per matching finding.
const (
	errorCategoryWeight = 0.25
	warnCategoryWeight  = 0.10
)

// AllCategories returns the breakdown categories in report order.
func AllCategories() []Category {
	return []Category{
		CategoryStructuur,
		CategoryInhoud,
		CategoryContext,
		CategoryAfleiders,
		CategoryTaal,
		CategoryDidactiek,
	}
}

// categoryKeywords is matched against lower-cased finding text. The lists
// reflect the vocabulary the checks in this module use in their messages.
var categoryKeywords = map[Category][]string{
	CategoryStructuur: {"structure", "required", "missing", "ontbreekt", "id ", "groep", "niveau", "answers", "antwoorden", "stappenstructuur", "no rules"},
	CategoryInhoud:    {"operation", "range", "computed", "result", "unit", "fraction", "breuk", "percentage", "decimal", "scale", "table", "tafel", "number", "answer", "half", "dt-", "tussen-n", "figure", "reality", "category"},
	CategoryContext:   {"context", "visual", "picture", "plaatje", "money", "coin"},
	CategoryAfleiders: {"distractor", "afleider", "cluster", "fouttype"},
	CategoryTaal:      {"sentence", "word", "subordinate", "question", "text", "tekst", "paragraph", "interrogative"},
	CategoryDidactiek: {"toelichting", "explanation", "strategy", "lova", "feedback", "didactic", "criteria", "process", "difficulty", "time"},
}

// Breakdown derives per-category scores from finding texts. It is a
// reporting aid; a finding may count toward several categories.
func Breakdown(errs, warnings []string) map[Category]float64 {
	out := make(map[Category]float64, len(categoryKeywords))
	for _, cat := range AllCategories() {
		score := 1.0
		for _, e := range errs {
			if matchesCategory(cat, e) {
				score -= errorCategoryWeight
			}
		}
		for _, w := range warnings {
			if matchesCategory(cat, w) {
				score -= warnCategoryWeight
			}
		}
		out[cat] = clamp01(score)
	}
	return out
}

func matchesCategory(cat Category, msg string) bool {
	msg = strings.ToLower(msg)
	for _, kw := range categoryKeywords[cat] {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}
