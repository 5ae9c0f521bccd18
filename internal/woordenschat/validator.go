package woordenschat

import (
	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/TomLouwers/websitesara/internal/validate"
)

// Name is the registry name of this domain.
const Name = "woordenschat"

// IDPrefix starts every vocabulary item id.
const IDPrefix = "W"

var shape = item.Shape{
	Name:     Name,
	Required: []string{"id", "groep", "niveau", "woordenschat_type", "item_type", "doelwoord", "hoofdvraag"},
	Types: map[string]string{
		"id":                   "string",
		"groep":                "integer|string",
		"niveau":               "string",
		"woordenschat_type":    "string",
		"woordcategorie":       "string|null",
		"item_type":            "string",
		"doelwoord":            "string",
		"hoofdvraag":           "string",
		"context_zin":          "string|null",
		"context_tekst":        "string|null",
		"correct_antwoord":     "string|number|null",
		"afleiders":            "array|null",
		"strategie":            "string|null",
		"woordfrequentie":      "string|null",
		"plaatje_beschrijving": "string|null",
		"toelichting":          "string|null",
		"moeilijkheidsgraad":   "number|null",
		"geschatte_tijd_sec":   "number|null",
	},
}

// Validator checks vocabulary items.
type Validator struct {
	pipeline *validate.Pipeline[Rule]
}

// New returns a vocabulary validator.
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
			{Name: "type", Run: checkType},
			{Name: "category", Run: checkCategory},
			{Name: "item type", Run: checkItemType},
			{Name: "frequency", Run: checkFrequency},
			{Name: "picture", Run: checkPicture},
			{Name: "context", Run: checkContext},
			{Name: "relation", Run: checkRelation},
			{Name: "strategy", Run: checkStrategy},
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
