package spelling

import (
	"strings"
	"unicode"

	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/TomLouwers/websitesara/internal/validate"
)

func category(c *validate.Context[Rule]) string {
	return strings.ToLower(strings.TrimSpace(c.Item.Str("spellingcategorie")))
}

func checkCategory(c *validate.Context[Rule]) {
	cat := category(c)
	switch {
	case !Categories.Has(cat):
		c.Errorf("unknown spellingcategorie %q", c.Item.Str("spellingcategorie"))
	case rules.Contains(c.Rule.Forbidden, cat):
		c.Errorf("spellingcategorie %s is not taught at %s", cat, c.Key)
	case !rules.Contains(c.Rule.Categories, cat):
		c.Warnf("spellingcategorie %s is not expected at %s", cat, c.Key)
	}
	if t := strings.TrimSpace(c.Item.Str("item_type")); t != "" && !ItemTypes.Has(t) {
		c.Warnf("item_type %q is not a known spelling task", t)
	}
}

// syllables approximates the syllable count by counting vowel groups.
func syllables(word string) int {
	n, inVowel := 0, false
	for _, r := range strings.ToLower(word) {
		v := strings.ContainsRune("aeiouyáéíóúëïöü", r)
		if v && !inVowel {
			n++
		}
		inVowel = v
	}
	return n
}

func letters(word string) int {
	n := 0
	for _, r := range word {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}

func checkWord(c *validate.Context[Rule]) {
	word := strings.TrimSpace(c.Item.Str("correct_antwoord"))
	if word == "" {
		c.Error("correct_antwoord is empty")
		return
	}
	if strings.ContainsAny(word, " \t") {
		// Sentence answers (foutzoeken) have no single target word.
		return
	}
	if n := letters(word); !c.Rule.WordLength.Contains(float64(n)) {
		c.Warnf("word %q has %d letters, expected %s at %s", word, n, c.Rule.WordLength, c.Key)
	}
	if n := syllables(word); c.Rule.MaxSyllables > 0 && n > c.Rule.MaxSyllables {
		c.Warnf("word %q has about %d syllables, at most %d expected at %s", word, n, c.Rule.MaxSyllables, c.Key)
	}
	if f := strings.ToLower(strings.TrimSpace(c.Item.Str("woordfrequentie"))); f != "" {
		switch i := tierIndex(f); {
		case i < 0:
			c.Warnf("woordfrequentie %q is not one of %s", f, strings.Join(frequencyTiers, ", "))
		case i > tierIndex(c.Rule.Frequency):
			c.Warnf("woordfrequentie %s is below the %s tier used at %s", f, c.Rule.Frequency, c.Key)
		}
	}
}

// testsDT reports whether the item practises verb endings.
func testsDT(c *validate.Context[Rule]) bool {
	if verbCategories.Has(category(c)) {
		return true
	}
	regel := strings.ToLower(c.Item.Str("spellingregel"))
	return strings.Contains(regel, "dt") || strings.Contains(regel, "kofschip")
}

// stem returns the verb stem from werkwoord (the infinitive) or stam.
func stem(c *validate.Context[Rule]) string {
	if inf := c.Item.Str("werkwoord"); inf != "" {
		return StemFromInfinitive(inf)
	}
	return strings.ToLower(strings.TrimSpace(c.Item.Str("stam")))
}

func checkDT(c *validate.Context[Rule]) {
	if c.Rule.DT == rules.Forbidden || !testsDT(c) {
		return
	}
	form := strings.TrimSpace(c.Item.Str("correct_antwoord"))
	st := stem(c)
	switch CheckDT(form, st) {
	case DTShouldBeT:
		c.Criticalf("dt-rule: %q should end in -t(e): the stem %q ends in a 't kofschip consonant", form, displayStem(form, st))
	case DTShouldBeD:
		c.Criticalf("dt-rule: %q should end in -d(e): the stem %q does not end in a 't kofschip consonant", form, displayStem(form, st))
	case DTUnknown:
		c.Infof("dt-rule could not be verified for %q; add werkwoord with the infinitive", form)
	}

	if strings.Contains(strings.ToLower(c.Item.Str("toelichting")), "kofschip") {
		if s := displayStem(form, st); s != "" && !kofschip(s) {
			c.Warnf("toelichting refers to 't kofschip but the stem %q does not end in t, k, f, s, ch or p", s)
		}
	}

	if afl := c.Item.Strings("afleiders"); len(afl) > 0 {
		want := validate.CompareKey(swapDT(form))
		found := false
		for _, d := range afl {
			if validate.CompareKey(d) == want {
				found = true
			}
		}
		if !found {
			c.Warnf("no distractor shows the dt mistake (%q)", swapDT(form))
		}
	}
}

func displayStem(form, st string) string {
	if st != "" {
		return st
	}
	if vf, ok := SplitVerbForm(form); ok {
		return vf.Stem
	}
	return ""
}

// checkTussenN runs from the level where tussen-n is introduced.
func checkTussenN(c *validate.Context[Rule]) {
	if c.Rule.TussenN == rules.Forbidden {
		return
	}
	if wrong, right, ok := TussenNMistake(c.Item.Str("correct_antwoord")); ok {
		c.Criticalf("tussen-n: %q is wrong, write %q", wrong, right)
	}
}

func checkDistractors(c *validate.Context[Rule]) {
	t := strings.TrimSpace(c.Item.Str("item_type"))
	if !c.Item.Has("afleiders") && (t == "dictee" || t == "invullen") {
		return
	}
	validate.CheckDistractors(c.Report, c.Item.Str("correct_antwoord"), c.Item.Strings("afleiders"), validate.DistractorSpec{Min: 2, Max: 4})
}

func checkMetadata(c *validate.Context[Rule]) {
	validate.CheckDifficulty(c.Report, c.Item, "moeilijkheidsgraad", c.Rule.Difficulty)
	validate.CheckDuration(c.Report, c.Item, "geschatte_tijd_sec", c.Rule.Time, "s")
	validate.CheckExplanation(c.Report, c.Item.Str("toelichting"), false, 15)
}
