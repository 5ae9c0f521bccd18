package schrijven

import (
	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/TomLouwers/websitesara/internal/validate"
)

// Name is the registry name of this domain.
const Name = "schrijven"

// IDPrefix starts every writing item id.
const IDPrefix = "SCH"

var shape = item.Shape{
	Name:     Name,
	Required: []string{"id", "groep", "niveau", "schrijf_domein", "tekstsoort", "schrijfopdracht"},
	Types: map[string]string{
		"id":                     "string",
		"groep":                  "integer|string",
		"niveau":                 "string",
		"schrijf_domein":         "string",
		"tekstsoort":             "string",
		"schrijfopdracht":        "string",
		"schrijfdoel":            "string|null",
		"structuur_eisen":        "object|null",
		"beoordelingscriteria":   "object|null",
		"schrijfproces_stappen":  "array|null",
		"ondersteuning":          "object|array|string|null",
		"moeilijkheidsgraad":     "number|null",
		"geschatte_tijd_minuten": "number|null",
	},
}

// Validator checks writing assignments.
type Validator struct {
	pipeline *validate.Pipeline[Rule]
}

// New returns a writing validator.
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
			{Name: "text type", Run: checkTextType},
			{Name: "domain", Run: checkDomain},
			{Name: "assignment", Run: checkAssignment},
			{Name: "structure requirements", Run: checkStructure},
			{Name: "assessment criteria", Run: checkCriteria},
			{Name: "writing process", Run: checkProcess},
			{Name: "purpose", Run: checkPurpose},
			{Name: "support", Run: checkSupport},
			{Name: "metadata", Run: checkMetadata},
			{Name: "time vs length", Run: checkTimeLength},
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
