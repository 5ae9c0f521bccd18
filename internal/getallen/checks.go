package getallen

import (
	"fmt"
	"strings"

	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/TomLouwers/websitesara/internal/validate"
)

// subClauseMarkers introduce subordinate clauses, which G3 prompts avoid.
var subClauseMarkers = []string{"die", "dat", "omdat", "terwijl", "toen", "nadat", "voordat", "als", "wanneer"}

// visualExtras are level materials that count as a picture reference.
var visualExtras = []string{"rekenrek", "kralenketting", "dobbelsteen", "getallenlijn", "honderdveld", "blokjes", "vingers", "stippen"}

// prompt is everything the pupil reads.
func prompt(it item.Item) string {
	return it.Text("context", "hoofdvraag")
}

func checkNumberRange(c *validate.Context[Rule]) {
	if c.Rule.Range.IsZero() {
		return
	}
	text := validate.StripVisuals(prompt(c.Item))
	reported := map[int]bool{}
	for _, n := range validate.Integers(text) {
		if !c.Rule.Range.Contains(float64(n)) && !reported[n] {
			reported[n] = true
			c.Errorf("number %d outside the allowed range %s", n, c.Rule.Range)
		}
	}
	if c.Rule.MoneyMaxCents > 0 {
		for _, cents := range moneyCents(text) {
			if cents > c.Rule.MoneyMaxCents {
				c.Warnf("money amount %s exceeds the maximum %s for this level", euros(cents), euros(c.Rule.MoneyMaxCents))
			}
		}
	}
}

func euros(cents int) string {
	return fmt.Sprintf("€%d,%02d", cents/100, cents%100)
}

func checkOperations(c *validate.Context[Rule]) {
	calcs := Calculations(prompt(c.Item))
	for _, op := range Operations(calcs) {
		switch {
		case rules.Contains(c.Rule.Forbidden, op):
			c.Errorf("forbidden operation '%s'", op)
		case op == OpTientalovergang && c.Rule.Carry == rules.Introduction:
			for _, calc := range calcs {
				if r, ok := calc.Result(); ok && calc.Crosses() && r > 20 {
					c.Warnf("tientalovergang is being introduced at this level; keep %q within 20", calc.Source)
				}
			}
		case op != OpTientalovergang && !c.Rule.allows(op):
			c.Warnf("operation '%s' is not part of the curriculum at this level", op)
		}
	}
}

func checkTables(c *validate.Context[Rule]) {
	if c.Rule.Tables == nil || !c.Rule.allows(OpVermenigvuldigen) {
		return
	}
	found := false
	for _, calc := range Calculations(prompt(c.Item)) {
		if calc.Op != OpVermenigvuldigen {
			continue
		}
		found = true
		a, b := int(calc.A), int(calc.B)
		if !c.Rule.tableAllowed(a, b) {
			c.Errorf("multiplication %d × %d is outside the allowed tables %v", a, b, c.Rule.Tables)
		}
	}
	if found && c.Rule.TableTimeSec > 0 {
		if t, ok := c.Item.Float("geschatte_tijd_sec"); ok && t < c.Rule.TableTimeSec {
			c.Warnf("geschatte_tijd_sec %ss is below the table response time %ss", validate.FormatNumber(t), validate.FormatNumber(c.Rule.TableTimeSec))
		}
	}
}

func checkStrategy(c *validate.Context[Rule]) {
	expl := c.Item.Str("toelichting")
	if strings.TrimSpace(expl) == "" || item.IsAutoConverted(expl) || len(c.Rule.Strategies) == 0 {
		return
	}
	if _, ok := validate.FirstWord(expl, c.Rule.Strategies); !ok {
		c.Warnf("toelichting mentions no strategy for this level (expected one of: %s)", strings.Join(c.Rule.Strategies, ", "))
	}
}

func checkVisual(c *validate.Context[Rule]) {
	texts := []string{c.Item.Str("hoofdvraag"), c.Item.Str("context")}
	present := validate.HasVisual(c.Item, texts, visualExtras)
	validate.CheckVisual(c.Report, c.Rule.Visual, present, fmt.Sprintf("G%d", c.Key.Grade))
}

func checkLanguage(c *validate.Context[Rule]) {
	text := prompt(c.Item)
	sentences := validate.Sentences(text)
	if c.Rule.MaxSentences > 0 && len(sentences) > c.Rule.MaxSentences {
		c.Warnf("prompt has %d sentences, maximum is %d", len(sentences), c.Rule.MaxSentences)
	}
	if c.Rule.MaxWords > 0 {
		for i, s := range sentences {
			if n := validate.WordCount(s); n > c.Rule.MaxWords {
				c.Warnf("sentence %d has %d words, maximum is %d", i+1, n, c.Rule.MaxWords)
			}
		}
	}
	if !c.Rule.SubClauses {
		if m, ok := validate.FirstWord(validate.StripVisuals(text), subClauseMarkers); ok {
			c.Errorf("subordinate clause marker %q is not allowed at this level", m)
		}
	}
}

func checkCorrectness(c *validate.Context[Rule]) {
	want, ok := validate.ParseNumber(c.Item.Str("correct_antwoord"))
	if !ok {
		c.Info("correct_antwoord is not numeric; computation check skipped")
		return
	}
	text := validate.StripVisuals(prompt(c.Item))

	var exprs []string
	for _, e := range validate.Expressions(text) {
		if isCalculation(e) {
			exprs = append(exprs, e)
		}
	}
	switch len(exprs) {
	case 0:
	case 1:
		got, err := validate.Eval(exprs[0])
		if err != nil {
			c.Infof("could not evaluate %q", exprs[0])
			return
		}
		if !validate.NearlyEqual(got, want) {
			c.Errorf("computed result of %q is %s but correct_antwoord is %s", exprs[0], validate.FormatNumber(got), c.Item.Str("correct_antwoord"))
		}
		return
	default:
		for _, e := range exprs {
			if got, err := validate.Eval(e); err == nil && validate.NearlyEqual(got, want) {
				return
			}
		}
		c.Infof("none of the %d calculations in the prompt yields correct_antwoord %s", len(exprs), c.Item.Str("correct_antwoord"))
		return
	}

	calcs := Calculations(text)
	if len(calcs) == 1 {
		if got, ok := calcs[0].Result(); ok && !validate.NearlyEqual(got, want) {
			c.Errorf("computed result of %q is %s but correct_antwoord is %s", calcs[0].Source, validate.FormatNumber(got), c.Item.Str("correct_antwoord"))
		}
		return
	}
	if len(calcs) == 0 {
		if calc, ok := storyCalculation(text); ok {
			if got, _ := calc.Result(); !validate.NearlyEqual(got, want) {
				c.Infof("the story reads as %s %s and %s, giving %s, but correct_antwoord is %s",
					calc.Op, validate.FormatNumber(calc.A), validate.FormatNumber(calc.B), validate.FormatNumber(got), c.Item.Str("correct_antwoord"))
			}
		}
	}
}

// isCalculation drops clock times and bare fractions matched by the
// expression finder.
func isCalculation(e string) bool {
	for _, calc := range Calculations(e) {
		if calc.Symbolic {
			return true
		}
	}
	return false
}

func checkResultRange(c *validate.Context[Rule]) {
	if c.Rule.Range.IsZero() {
		return
	}
	if v, ok := validate.ParseNumber(c.Item.Str("correct_antwoord")); ok && !c.Rule.Range.Contains(v) {
		c.Errorf("correct_antwoord %s outside the allowed number range %s", validate.FormatNumber(v), c.Rule.Range)
	}
}

func checkContextSemantics(c *validate.Context[Rule]) {
	text := prompt(c.Item)
	// Bare sums need no story cues.
	if strings.TrimSpace(c.Item.Str("context")) == "" && len(validate.Sentences(text)) < 2 {
		return
	}
	for _, op := range Operations(Calculations(text)) {
		if op == OpTientalovergang {
			continue
		}
		if !HasCue(text, op) {
			c.Warnf("operation '%s' has no matching cue words in the context", op)
		}
	}
}

func checkDistractors(it item.Item, r *validate.Report) {
	correct := it.Str("correct_antwoord")
	distractors := it.Strings("afleiders")
	validate.CheckDistractors(r, correct, distractors, validate.DistractorSpec{Min: 2, Max: 4})
	if values, ok := validate.NumericCandidates(correct, distractors); ok && validate.Clustered(values, 5, 3) {
		r.Warn("distractors cluster: at least 3 answer options lie within 5 of each other")
	}
}

func checkMetadata(c *validate.Context[Rule]) {
	validate.CheckDifficulty(c.Report, c.Item, "moeilijkheidsgraad", c.Rule.Difficulty)
	validate.CheckDuration(c.Report, c.Item, "geschatte_tijd_sec", c.Rule.Time, "s")
}

func checkDidactics(c *validate.Context[Rule]) {
	validate.CheckExplanation(c.Report, c.Item.Str("toelichting"), true, 30)
}

func checkCross(c *validate.Context[Rule]) {
	d, okD := c.Item.Float("moeilijkheidsgraad")
	t, okT := c.Item.Float("geschatte_tijd_sec")
	if okD && okT {
		validate.CrossDifficultyTime(c.Report, d, t, c.Rule.Time)
	}
	if c.Item.Bool("has_visual") && len(c.Item.Strings("assets")) == 0 {
		c.Info("has_visual is set but no assets are listed")
	}
	if tag := c.Item.Str("context_tag"); tag == "geld" && len(moneyCents(prompt(c.Item))) == 0 && !strings.Contains(prompt(c.Item), "€") {
		c.Warn("context_tag 'geld' but the prompt mentions no amount of money")
	}
}
