package spelling

import (
	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/TomLouwers/websitesara/internal/validate"
)

// Name is the registry name of this domain.
const Name = "spelling"

// IDPrefix starts every spelling item id.
const IDPrefix = "S"

var shape = item.Shape{
	Name:     Name,
	Required: []string{"id", "groep", "niveau", "spellingcategorie", "correct_antwoord"},
	Types: map[string]string{
		"id":                 "string",
		"groep":              "integer|string",
		"niveau":             "string",
		"spellingcategorie":  "string",
		"spellingregel":      "string|null",
		"item_type":          "string|null",
		"hoofdvraag":         "string|null",
		"correct_antwoord":   "string",
		"afleiders":          "array|null",
		"werkwoord":          "string|null",
		"woordfrequentie":    "string|null",
		"toelichting":        "string|null",
		"moeilijkheidsgraad": "number|null",
		"geschatte_tijd_sec": "number|null",
	},
}

// Validator checks spelling items.
type Validator struct {
	pipeline *validate.Pipeline[Rule]
}

// New returns a spelling validator.
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
			{Name: "category", Run: checkCategory},
			{Name: "word", Run: checkWord},
			{Name: "dt-rule", Run: checkDT},
			{Name: "tussen-n", Run: checkTussenN},
			{Name: "distractors", Run: checkDistractors},
			{Name: "metadata", Run: checkMetadata},
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
