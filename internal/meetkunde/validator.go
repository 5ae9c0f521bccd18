package meetkunde

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/TomLouwers/websitesara/internal/validate"
)

// Name is the registry name of this domain.
const Name = "meetkunde"

// IDPrefix starts every measurement and geometry item id.
const IDPrefix = "MM"

var shape = item.Shape{
	Name:     Name,
	Required: []string{"id", "groep", "niveau", "subdomein", "hoofdvraag", "correct_antwoord", "afleiders"},
	Types: map[string]string{
		"id":                 "string",
		"groep":              "integer|string",
		"niveau":             "string",
		"subdomein":          "string",
		"hoofdvraag":         "string",
		"context":            "string|null",
		"correct_antwoord":   "string|number",
		"afleiders":          "array",
		"toelichting":        "string|null",
		"moeilijkheidsgraad": "number|null",
		"geschatte_tijd_sec": "number|null",
	},
}

// visualExtras are measuring tools that count as a picture reference.
var visualExtras = []string{"liniaal", "meetlat", "klok", "wijzers", "munt", "munten", "muntjes", "weegschaal", "maatbeker", "geodriehoek"}

// itemCheck carries the prompt text, with visuals stripped, alongside the
// pipeline context.
type itemCheck struct {
	*validate.Context[Rule]
	text string
}

func step(name string, fn func(c *itemCheck)) validate.Step[Rule] {
	return validate.Step[Rule]{Name: name, Run: func(c *validate.Context[Rule]) {
		fn(&itemCheck{Context: c, text: validate.StripVisuals(c.Item.Text("context", "hoofdvraag"))})
	}}
}

// Validator checks measurement and geometry items.
type Validator struct {
	pipeline *validate.Pipeline[Rule]
}

// New returns a measurement and geometry validator.
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
			step("subdomain", checkSubdomain),
			step("visualization", checkVisual),
			step("language", checkLanguage),
			validate.Common[Rule]("distractors", checkDistractors),
			step("metadata", checkMetadata),
			step("cross validation", checkCross),
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

func checkSubdomain(c *itemCheck) {
	switch strings.ToUpper(strings.TrimSpace(c.Item.Str("subdomein"))) {
	case Meten:
		checkMeten(c)
	case Meetkunde:
		checkMeetkunde(c)
	default:
		c.Errorf("subdomein must be %s or %s, got %q", Meten, Meetkunde, c.Item.Str("subdomein"))
	}
}

func checkVisual(c *itemCheck) {
	present := validate.HasVisual(c.Item, []string{c.Item.Str("hoofdvraag"), c.Item.Str("context")}, visualExtras)
	validate.CheckVisual(c.Report, c.Rule.Visual, present, fmt.Sprintf("G%d", c.Key.Grade))
}

func checkLanguage(c *itemCheck) {
	if n := len(validate.Sentences(c.text)); c.Rule.MaxSentences > 0 && n > c.Rule.MaxSentences {
		c.Warnf("prompt has %d sentences, maximum is %d", n, c.Rule.MaxSentences)
	}
}

func checkDistractors(it item.Item, r *validate.Report) {
	validate.CheckDistractors(r, it.Str("correct_antwoord"), it.Strings("afleiders"), validate.DistractorSpec{Min: 2, Max: 4})
}

func checkMetadata(c *itemCheck) {
	validate.CheckDifficulty(c.Report, c.Item, "moeilijkheidsgraad", c.Rule.Difficulty)
	validate.CheckDuration(c.Report, c.Item, "geschatte_tijd_sec", c.Rule.Time, "s")
	validate.CheckExplanation(c.Report, c.Item.Str("toelichting"), false, 20)
}

var askedUnitRe = regexp.MustCompile(`(?i)\b(?:hoeveel|in)\s+(millimeter|centimeter|decimeter|kilometer|meter|milligram|kilogram|kilo|gram|milliliter|centiliter|deciliter|liter|mm|cm|dm|km|kg|ml|cl|dl)\b`)

// checkCross compares the unit the question asks for with the unit of the
// answer, and difficulty with time.
func checkCross(c *itemCheck) {
	if m := askedUnitRe.FindStringSubmatch(c.Item.Str("hoofdvraag")); m != nil {
		asked := strings.ToLower(m[1])
		if sym, ok := unitAliases[asked]; ok {
			asked = sym
		}
		if qs := Quantities(c.Item.Str("correct_antwoord")); len(qs) > 0 && qs[0].Unit != asked {
			if qs[0].Family() == unitFamily[asked] {
				c.Warnf("question asks for %s but correct_antwoord is in %s", asked, qs[0].Unit)
			} else {
				c.Errorf("question asks for %s (%s) but correct_antwoord is a %s", asked, unitFamily[asked], qs[0].Family())
			}
		}
	}
	d, okD := c.Item.Float("moeilijkheidsgraad")
	t, okT := c.Item.Float("geschatte_tijd_sec")
	if okD && okT {
		validate.CrossDifficultyTime(c.Report, d, t, c.Rule.Time)
	}
}
