package verhaaltjes

import (
	"regexp"
	"strings"

	"github.com/TomLouwers/websitesara/internal/meetkunde"
	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/TomLouwers/websitesara/internal/validate"
	"github.com/TomLouwers/websitesara/internal/verhoudingen"
)

const (
	lengthTolerance = 5
	sentenceSlack   = 5
)

func story(c *validate.Context[Rule]) string { return c.Item.Str("verhaal_tekst") }

// problem is the full text a pupil reads: story and question.
func problem(c *validate.Context[Rule]) string {
	return c.Item.Text("verhaal_tekst", "hoofdvraag")
}

func domein(c *validate.Context[Rule]) string {
	return strings.ToUpper(strings.TrimSpace(c.Item.Str("domein")))
}

func checkDomain(c *validate.Context[Rule]) {
	d := domein(c)
	switch {
	case !Domains.Has(d):
		c.Errorf("domein must be one of %s, got %q", strings.Join(Domains.Sorted(), ", "), c.Item.Str("domein"))
	case c.Key == rules.K(3, rules.Mid) && d != Getallen:
		c.Errorf("G3-M word problems are restricted to GETALLEN, got %s", d)
	case !rules.Contains(c.Rule.Domains, d):
		c.Warnf("domein %s is unusual at %s", d, c.Key)
	}
	if t := strings.ToLower(strings.TrimSpace(c.Item.Str("context_type"))); t != "" && !ContextTypes.Has(t) {
		c.Warnf("context_type %q is not a known story setting", t)
	}
	if avi := strings.ToUpper(strings.TrimSpace(c.Item.Str("avi_niveau"))); avi != "" && !rules.Contains(c.Rule.AVI, avi) {
		c.Warnf("avi_niveau %s is unusual at %s (expected %s)", avi, c.Key, strings.Join(c.Rule.AVI, " or "))
	}
}

func checkText(c *validate.Context[Rule]) {
	text := story(c)
	words := validate.WordCount(validate.StripVisuals(text))
	if words > 0 && !c.Rule.Length.Contains(float64(words)) {
		c.Warnf("verhaal_tekst has %d words, expected %s at %s", words, c.Rule.Length, c.Key)
	}
	if stated, ok := c.Item.Int("tekst_lengte_woorden"); ok && abs(stated-words) > lengthTolerance {
		c.Warnf("tekst_lengte_woorden is %d but the story has %d words (tolerance ±%d)", stated, words, lengthTolerance)
	}

	sentences := validate.Sentences(problem(c))
	if len(sentences) > c.Rule.MaxSentences {
		c.Warnf("the problem has %d sentences, at most %d expected at %s", len(sentences), c.Rule.MaxSentences, c.Key)
	}
	longest, over := 0, 0
	for _, s := range sentences {
		n := validate.WordCount(s)
		if n > c.Rule.MaxSentenceWords {
			over++
		}
		longest = max(longest, n)
	}
	switch {
	case over == 0:
	case longest > c.Rule.MaxSentenceWords+sentenceSlack:
		c.Errorf("%d sentences exceed %d words; the longest has %d", over, c.Rule.MaxSentenceWords, longest)
	default:
		c.Warnf("%d sentences exceed %d words; the longest has %d", over, c.Rule.MaxSentenceWords, longest)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func checkNumbers(c *validate.Context[Rule]) {
	if !validate.HasDigit(problem(c)) {
		c.Error("the problem contains no number")
	}
}

var stepFields = []string{"stap", "actie", "berekening", "resultaat"}

func checkSteps(c *validate.Context[Rule]) {
	steps := c.Item.List("stappenstructuur")
	if len(steps) == 0 {
		c.Error("stappenstructuur is missing")
		return
	}
	if n := float64(len(steps)); !c.Rule.Steps.Contains(n) {
		c.Warnf("stappenstructuur has %d steps, expected %s at %s", len(steps), c.Rule.Steps, c.Key)
	}
	for i, s := range steps {
		complete := true
		for _, f := range stepFields {
			if strings.TrimSpace(s.Str(f)) == "" {
				c.Errorf("stap %d: %s is missing", i+1, f)
				complete = false
			}
		}
		if !complete {
			continue
		}
		for _, msg := range verhoudingen.CheckStep(equation(s.Str("berekening"), s.Str("resultaat"))) {
			c.Errorf("stap %d: %s", i+1, msg)
		}
	}

	last := steps[len(steps)-1].Str("resultaat")
	got, okGot := validate.ParseNumber(last)
	want, okWant := validate.ParseNumber(c.Item.Str("correct_antwoord"))
	if okGot && okWant && !validate.NearlyEqual(got, want) {
		c.Warnf("the last step ends in %s but correct_antwoord is %s", validate.FormatNumber(got), validate.FormatNumber(want))
	}
}

// equation joins a calculation and its result unless the calculation
// already states one.
func equation(berekening, resultaat string) string {
	if strings.Contains(berekening, "=") {
		return berekening
	}
	if v, ok := validate.ParseNumber(resultaat); ok {
		return berekening + " = " + validate.FormatNumber(v)
	}
	return berekening
}

var (
	givenWords     = []string{"weet", "gegeven", "gevraagd", "vraag", "wil weten", "moet je", "zoek"}
	operationWords = []string{"optellen", "erbij", "plus", "aftrekken", "eraf", "min", "keer", "vermenigvuldigen", "delen", "gedeeld", "verdelen", "procent", "deel"}
	operatorRe     = regexp.MustCompile(`\d\s*[+\-−×xX*:÷/]\s*\d|[+×÷]`)
)

func checkLOVA(c *validate.Context[Rule]) {
	lova := c.Item.Map("toelichting_lova")
	if lova == nil {
		c.Error("toelichting_lova is missing")
		return
	}
	for _, f := range verhoudingen.LOVAFields {
		if strings.TrimSpace(lova.Str(f)) == "" {
			c.Errorf("toelichting_lova.%s is missing", f)
		}
	}
	if l := lova.Str("lezen"); l != "" {
		if _, ok := validate.FirstWord(l, givenWords); !ok {
			c.Warn("toelichting_lova.lezen should say what is given and what is asked")
		}
	}
	if v := lova.Str("vormen"); v != "" && !operatorRe.MatchString(v) {
		if _, ok := validate.FirstWord(v, operationWords); !ok {
			c.Warn("toelichting_lova.vormen names no operation")
		}
	}
}

var interrogatives = rules.NewSet("hoeveel", "hoe", "wat", "wie", "waar", "wanneer", "welk", "welke", "waarom", "hoelang", "hoever", "hoeveelste")

func checkQuestion(c *validate.Context[Rule]) {
	q := strings.TrimSpace(validate.StripVisuals(c.Item.Str("hoofdvraag")))
	if !strings.HasSuffix(q, "?") {
		c.Error("hoofdvraag must end with a question mark")
		return
	}
	if !c.Rule.DirectQuestion {
		return
	}
	words := validate.Words(validate.LastSentence(q))
	if len(words) == 0 || !interrogatives.Has(words[0]) {
		c.Warnf("the question should open with a question word (hoeveel, wat, hoe, ...) at %s", c.Key)
	}
}

var (
	unitWords     = []string{"uur", "uren", "minuut", "minuten", "seconde", "seconden", "dag", "dagen", "week", "weken", "euro", "cent", "graden", "jaar"}
	ratioWords    = []string{"procent", "helft", "kwart", "deel", "delen", "breuk", "verhouding", "schaal", "korting", "op de", "per"}
	relationWords = []string{"patroon", "regel", "grafiek", "tabel", "reeks", "rij", "diagram", "volgende", "verband"}
	childWords    = []string{"kinderen", "leerlingen", "spelers"}

	fractionInTextRe = regexp.MustCompile(`\d+\s*/\s*\d+|%`)
)

func checkDomainSpecific(c *validate.Context[Rule]) {
	answer := c.Item.Str("correct_antwoord")
	text := problem(c)
	switch domein(c) {
	case Getallen:
		if !validate.HasDigit(answer) {
			c.Errorf("GETALLEN: correct_antwoord %q contains no number", answer)
		}
	case Meten:
		_, named := validate.FirstWord(answer, unitWords)
		if len(meetkunde.Quantities(answer)) == 0 && !named && !strings.Contains(answer, "€") {
			c.Warnf("METEN: correct_antwoord %q names no unit", answer)
		}
	case Verhoudingen:
		if _, ok := validate.FirstWord(text, ratioWords); !ok && !fractionInTextRe.MatchString(text) {
			c.Warn("VERHOUDINGEN: the story mentions no fraction, percentage or ratio")
		}
	case Verbanden:
		if _, ok := validate.FirstWord(text, relationWords); !ok {
			c.Warn("VERBANDEN: the story mentions no pattern, rule, table or graph")
		}
	}
}

// checkReality judges whether the numeric answer can happen in the story.
func checkReality(c *validate.Context[Rule]) {
	answer := c.Item.Str("correct_antwoord")
	v, ok := validate.ParseNumber(answer)
	if !ok {
		if domein(c) == Getallen {
			c.Infof("reality check skipped: correct_antwoord %q is not a number", answer)
		}
		return
	}
	if v < 0 {
		c.Errorf("reality check: negative answer %s (%q) cannot happen in a story", validate.FormatNumber(v), answer)
		return
	}
	if v > c.Rule.MaxAnswer {
		c.Warnf("reality check: answer %s is large for %s (above %s)", validate.FormatNumber(v), c.Key, validate.FormatNumber(c.Rule.MaxAnswer))
	}
	switch {
	case validate.ContainsWord(answer, "uur") && v > 24:
		c.Warnf("reality check: %s hours is more than a day", validate.FormatNumber(v))
	case validate.ContainsWord(answer, "minuten") && v > 120:
		c.Warnf("reality check: %s minutes is more than 2 hours; use hours", validate.FormatNumber(v))
	}
	if _, ok := validate.FirstWord(answer, childWords); ok && v > 50 {
		c.Warnf("reality check: %s children is more than a class or two", validate.FormatNumber(v))
	}
}

func checkDistractors(c *validate.Context[Rule]) {
	if !c.Item.Has("afleiders") {
		return
	}
	validate.CheckDistractors(c.Report, c.Item.Str("correct_antwoord"), c.Item.Strings("afleiders"), validate.DistractorSpec{Min: 2, Max: 4})
}

func checkMetadata(c *validate.Context[Rule]) {
	validate.CheckDifficulty(c.Report, c.Item, "moeilijkheidsgraad", c.Rule.Difficulty)
	validate.CheckDuration(c.Report, c.Item, "geschatte_tijd_sec", c.Rule.Time, "s")
	validate.CheckExplanation(c.Report, c.Item.Str("toelichting"), false, 20)
}

var complexity = rules.NewSet("laag", "midden", "hoog")

func checkCross(c *validate.Context[Rule]) {
	for _, k := range []string{"reken_complexiteit", "taal_complexiteit"} {
		if v := strings.ToLower(strings.TrimSpace(c.Item.Str(k))); v != "" && !complexity.Has(v) {
			c.Warnf("%s %q is not one of laag, midden, hoog", k, v)
		}
	}
	d, ok := c.Item.Float("moeilijkheidsgraad")
	if !ok {
		return
	}
	n := len(c.Item.List("stappenstructuur"))
	switch {
	case d <= 0.3 && n > 3:
		c.Warnf("difficulty %.2f is low for a problem of %d steps", d, n)
	case d >= 0.7 && n == 1:
		c.Warnf("difficulty %.2f is high for a one-step problem", d)
	}
	if t, ok := c.Item.Float("geschatte_tijd_sec"); ok {
		validate.CrossDifficultyTime(c.Report, d, t, c.Rule.Time)
	}
}
