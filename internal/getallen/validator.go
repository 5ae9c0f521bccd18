package getallen

import (
	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/TomLouwers/websitesara/internal/validate"
)

// Name is the registry name of this domain.
const Name = "getallen"

// IDPrefix starts every arithmetic item id.
const IDPrefix = "G"

var shape = item.Shape{
	Name:     Name,
	Required: []string{"id", "groep", "niveau", "hoofdvraag", "correct_antwoord", "afleiders"},
	Types: map[string]string{
		"id":                 "string",
		"groep":              "integer|string",
		"niveau":             "string",
		"hoofdvraag":         "string",
		"context":            "string|null",
		"correct_antwoord":   "string|number",
		"afleiders":          "array",
		"toelichting":        "string|null",
		"has_visual":         "boolean|null",
		"assets":             "array|null",
		"moeilijkheidsgraad": "number|null",
		"geschatte_tijd_sec": "number|null",
	},
}

// Validator checks arithmetic items. It holds no per-call state and is safe
// for concurrent use.
type Validator struct {
	pipeline *validate.Pipeline[Rule]
}

// New returns an arithmetic validator.
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
			{Name: "number range", Run: checkNumberRange},
			{Name: "operations", Run: checkOperations},
			{Name: "tables", Run: checkTables},
			{Name: "strategy", Run: checkStrategy},
			{Name: "visualization", Run: checkVisual},
			{Name: "language", Run: checkLanguage},
			{Name: "correctness", Run: checkCorrectness},
			{Name: "result range", Run: checkResultRange},
			{Name: "context semantics", Run: checkContextSemantics},
			validate.Common[Rule]("distractors", checkDistractors),
			{Name: "metadata", Run: checkMetadata},
			{Name: "didactics", Run: checkDidactics},
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
