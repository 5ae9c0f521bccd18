package woordenschat

import (
	"strings"

	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/TomLouwers/websitesara/internal/validate"
)

func lower(c *validate.Context[Rule], key string) string {
	return strings.ToLower(strings.TrimSpace(c.Item.Str(key)))
}

func checkType(c *validate.Context[Rule]) {
	if t := lower(c, "woordenschat_type"); !Types.Has(t) {
		c.Errorf("woordenschat_type must be receptief or productief, got %q", c.Item.Str("woordenschat_type"))
	}
}

func checkCategory(c *validate.Context[Rule]) {
	cat := lower(c, "woordcategorie")
	if cat == "" {
		return
	}
	switch {
	case !Categories.Has(cat):
		c.Errorf("unknown woordcategorie %q", c.Item.Str("woordcategorie"))
	case rules.Contains(c.Rule.Forbidden, cat):
		c.Errorf("woordcategorie %s is not used at %s", cat, c.Key)
	case !rules.Contains(c.Rule.Categories, cat):
		c.Warnf("woordcategorie %s is not expected at %s", cat, c.Key)
	}
}

func checkItemType(c *validate.Context[Rule]) {
	t := lower(c, "item_type")
	switch {
	case t == "":
		c.Warn("item_type is missing")
	case !ItemTypes.Has(t):
		c.Warnf("item_type %q is not a known vocabulary task", t)
	case figurativeTypes.Has(t) && c.Rule.Figurative == rules.Forbidden:
		c.Errorf("item_type %s (figurative language) is only used from G4-E, not at %s", t, c.Key)
	case academicTypes.Has(t) && c.Rule.Academic == rules.Forbidden:
		c.Errorf("item_type %s (academic vocabulary) is only used from G6, not at %s", t, c.Key)
	}
}

func checkFrequency(c *validate.Context[Rule]) {
	f := lower(c, "woordfrequentie")
	if f == "" {
		return
	}
	switch i := tierIndex(f); {
	case i < 0:
		c.Warnf("woordfrequentie %q is not one of %s", f, strings.Join(frequencyTiers, ", "))
	case i > tierIndex(c.Rule.Frequency):
		c.Warnf("woordfrequentie %s is below the %s tier used at %s", f, c.Rule.Frequency, c.Key)
	}
}

func checkPicture(c *validate.Context[Rule]) {
	t := lower(c, "item_type")
	present := validate.HasVisual(c.Item, []string{c.Item.Str("hoofdvraag")}, nil) ||
		c.Item.Has("afbeelding") || c.Item.Has("plaatje_beschrijving")
	if pictureTypes.Has(t) {
		if !present {
			c.Errorf("item_type %s needs a picture or a picture description (afbeelding, plaatje_beschrijving or assets)", t)
		}
		return
	}
	validate.CheckVisual(c.Report, c.Rule.Visual, present, c.Key.String())
}

// contextText returns the context sentence or text of the item.
func contextText(c *validate.Context[Rule]) string {
	return c.Item.Text("context_zin", "context_tekst")
}

// occurs reports whether the target word, or an inflection of it, occurs
// in text. Infinitives match on their stem so "rennen" finds "rent".
func occurs(text, word string) bool {
	if validate.ContainsWord(text, word) {
		return true
	}
	w := validate.Fold(strings.TrimSpace(word))
	if strings.ContainsRune(w, ' ') {
		return false
	}
	for _, suffix := range []string{"en", "e", "s"} {
		if stem := strings.TrimSuffix(w, suffix); stem != w && len(stem) >= 3 {
			if n := len(stem); stem[n-1] == stem[n-2] {
				stem = stem[:n-1]
			}
			_, ok := validate.HasWordPrefix(text, []string{stem})
			return ok
		}
	}
	_, ok := validate.HasWordPrefix(text, []string{w})
	return ok
}

func checkContext(c *validate.Context[Rule]) {
	t := lower(c, "item_type")
	if !strings.Contains(t, "context") {
		return
	}
	ctx := contextText(c)
	if ctx == "" {
		c.Errorf("item_type %s needs context_zin or context_tekst", t)
		return
	}
	if w := c.Item.Str("doelwoord"); w != "" && !occurs(ctx, w) {
		c.Errorf("doelwoord %q does not occur in the context", w)
	}
}

var antonymCues = []string{"tegenover", "tegengesteld", "tegengestelde", "antoniem", "het omgekeerde"}

func checkRelation(c *validate.Context[Rule]) {
	doel := c.Item.Str("doelwoord")
	switch lower(c, "item_type") {
	case "synoniem":
		if doel != "" && validate.CompareKey(doel) == validate.CompareKey(c.Item.Str("correct_antwoord")) {
			c.Errorf("synoniem: correct_antwoord repeats the doelwoord %q", doel)
		}
	case "antoniem":
		if t := c.Item.Str("toelichting"); t != "" {
			if _, ok := validate.FirstWord(t, antonymCues); !ok {
				c.Warn("antoniem: toelichting should say the answer means the opposite (tegenover, antoniem)")
			}
		}
		if doel != "" && validate.CompareKey(doel) == validate.CompareKey(c.Item.Str("correct_antwoord")) {
			c.Errorf("antoniem: correct_antwoord repeats the doelwoord %q", doel)
		}
	}
}

func checkStrategy(c *validate.Context[Rule]) {
	s := lower(c, "strategie")
	switch {
	case s == "":
		return
	case !Strategies.Has(s):
		c.Warnf("strategie %q is not a known word-learning strategy", s)
	case !rules.Contains(c.Rule.Strategies, s):
		c.Warnf("strategie %s is not taught yet at %s", s, c.Key)
	}
}

func checkDistractors(c *validate.Context[Rule]) {
	if !c.Item.Has("afleiders") && lower(c, "woordenschat_type") == "productief" {
		return
	}
	validate.CheckDistractors(c.Report, c.Item.Str("correct_antwoord"), c.Item.Strings("afleiders"), validate.DistractorSpec{Min: 2, Max: 4})
}

func checkMetadata(c *validate.Context[Rule]) {
	validate.CheckDifficulty(c.Report, c.Item, "moeilijkheidsgraad", c.Rule.Difficulty)
	validate.CheckDuration(c.Report, c.Item, "geschatte_tijd_sec", c.Rule.Time, "s")
	validate.CheckExplanation(c.Report, c.Item.Str("toelichting"), false, 15)
}
