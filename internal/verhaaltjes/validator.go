package verhaaltjes

import (
	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/TomLouwers/websitesara/internal/validate"
)

// Name is the registry name of this domain.
const Name = "verhaaltjes"

// IDPrefix starts every word-problem item id.
const IDPrefix = "VT"

var shape = item.Shape{
	Name:     Name,
	Required: []string{"id", "groep", "niveau", "domein", "hoofdvraag", "correct_antwoord"},
	Types: map[string]string{
		"id":                   "string",
		"groep":                "integer|string",
		"niveau":               "string",
		"domein":               "string",
		"hoofdvraag":           "string",
		"verhaal_tekst":        "string|null",
		"tekst_lengte_woorden": "number|null",
		"context_type":         "string|null",
		"avi_niveau":           "string|null",
		"correct_antwoord":     "string|number",
		"afleiders":            "array|null",
		"stappenstructuur":     "array|null",
		"toelichting_lova":     "object|null",
		"reken_complexiteit":   "string|null",
		"taal_complexiteit":    "string|null",
		"toelichting":          "string|null",
		"moeilijkheidsgraad":   "number|null",
		"geschatte_tijd_sec":   "number|null",
	},
}

// Validator checks word problems.
type Validator struct {
	pipeline *validate.Pipeline[Rule]
}

// New returns a word-problem validator.
func New() *Validator {
	pattern, format := validate.IDPattern(IDPrefix)
	return &Validator{pipeline: &validate.Pipeline[Rule]{
		Domain:    Name,
		Shape:     shape,
		IDPattern: pattern,
		IDFormat:  format,
		Book:      book,
		Scoring:   validate.Standard,
		Steps: []validate.Step[Rule]{
			{Name: "domain", Run: checkDomain},
			{Name: "text", Run: checkText},
			{Name: "numbers", Run: checkNumbers},
			{Name: "step structure", Run: checkSteps},
			{Name: "lova", Run: checkLOVA},
			{Name: "question", Run: checkQuestion},
			{Name: "domain spot checks", Run: checkDomainSpecific},
			{Name: "reality check", Run: checkReality},
			{Name: "distractors", Run: checkDistractors},
			{Name: "metadata", Run: checkMetadata},
			{Name: "cross validation", Run: checkCross},
		},
	}}
}

// Name returns the domain name.
func (v *Validator) Name() string { return Name }

// Validate checks one item.
func (v *Validator) Validate(it item.Item) *validate.Result {
	return v.pipeline.Validate(it)
}

// RuleFor returns the rule entry for k.
func (v *Validator) RuleFor(k rules.Key) (any, bool) {
	r, ok := book.Lookup(k)
	return r, ok
}

// Book exposes the rule table.
func Book() rules.Book[Rule] { return book }
