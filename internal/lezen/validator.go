package lezen

import (
	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/TomLouwers/websitesara/internal/validate"
)

// Name is the registry name of this domain.
const Name = "lezen"

// IDPrefix starts every reading item id.
const IDPrefix = "L"

var shape = item.Shape{
	Name:     Name,
	Required: []string{"id", "groep", "niveau", "tekst", "vragen"},
	Types: map[string]string{
		"id":                   "string",
		"groep":                "integer|string",
		"niveau":               "string",
		"avi_niveau":           "string|null",
		"tekstsoort":           "string|null",
		"tekst":                "string",
		"tekst_lengte_woorden": "number|null",
		"totale_tijd_sec":      "number|null",
		"moeilijkheidsgraad":   "number|null",
		"vragen":               "array",
	},
}

// Validator checks reading items.
type Validator struct {
	pipeline *validate.Pipeline[Rule]
}

// New returns a reading validator.
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
			{Name: "text metadata", Run: checkTextMeta},
			{Name: "text length", Run: checkLength},
			{Name: "sentence length", Run: checkSentences},
			{Name: "paragraphs", Run: checkParagraphs},
			{Name: "visualization", Run: checkVisual},
			{Name: "questions", Run: checkQuestions},
			{Name: "question types", Run: checkDistribution},
			{Name: "metadata", Run: checkMetadata},
			{Name: "reading time", Run: checkReadingTime},
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
