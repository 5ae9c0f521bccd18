package verhoudingen

import (
	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/TomLouwers/websitesara/internal/validate"
)

// Name is the registry name of this domain.
const Name = "verhoudingen"

// IDPrefix starts every ratio item id.
const IDPrefix = "VH"

var shape = item.Shape{
	Name:     Name,
	Required: []string{"id", "groep", "niveau", "domein", "subdomein", "vraag", "antwoorden"},
	Types: map[string]string{
		"id":         "string",
		"groep":      "integer|string",
		"niveau":     "string",
		"domein":     "string",
		"subdomein":  "string",
		"vraag":      "object",
		"antwoorden": "array",
		"metadata":   "object|null",
		"didactiek":  "object|null",
	},
}

// Validator checks ratio items. Errors weigh heavier in its score than in
// the other domains.
type Validator struct {
	pipeline *validate.Pipeline[Rule]
}

// New returns a ratio validator.
func New() *Validator {
	pattern, format := validate.IDPattern(IDPrefix)
	return &Validator{pipeline: &validate.Pipeline[Rule]{
		Domain:    Name,
		Shape:     shape,
		IDPattern: pattern,
		IDFormat:  format,
		Book:      book,
		Scoring:   validate.Strict,
		Steps: []validate.Step[Rule]{
			{Name: "domain", Run: checkDomain},
			{Name: "structure", Run: checkStructure},
			{Name: "fractions", Run: checkFractions},
			{Name: "decimals", Run: checkDecimals},
			{Name: "percentages", Run: checkPercentages},
			{Name: "scale", Run: checkScale},
			{Name: "context", Run: checkContext},
			{Name: "visualization", Run: checkVisual},
			{Name: "distractors", Run: checkDistractors},
			{Name: "calculation steps", Run: checkCorrectness},
			{Name: "lova", Run: checkLOVA},
			{Name: "feedback", Run: checkFeedback},
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
