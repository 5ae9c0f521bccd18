package verhoudingen

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/TomLouwers/websitesara/internal/validate"
)

// DomainName is the required value of the domein field.
const DomainName = "Verhoudingen"

// answer is one answer option.
type answer struct {
	ID       string
	Text     string
	Value    float64
	HasValue bool
	Correct  bool
	Fouttype string
}

func answers(it item.Item) []answer {
	var out []answer
	for _, a := range it.List("antwoorden") {
		ans := answer{
			ID:       a.Str("id"),
			Text:     a.Str("tekst"),
			Correct:  a.Bool("correct"),
			Fouttype: strings.TrimSpace(a.Str("fouttype")),
		}
		if v, ok := a.Float("waarde"); ok {
			ans.Value, ans.HasValue = v, true
		} else if v, ok := validate.ParseNumber(ans.Text); ok {
			ans.Value, ans.HasValue = v, true
		}
		out = append(out, ans)
	}
	return out
}

// questionText is what the pupil reads: context and question.
func questionText(it item.Item) string {
	v := it.Map("vraag")
	return validate.StripVisuals(v.Text("context", "hoofdvraag"))
}

// allText adds the answer texts to the question text.
func allText(it item.Item) string {
	parts := []string{questionText(it)}
	for _, a := range answers(it) {
		parts = append(parts, a.Text)
	}
	return strings.Join(parts, " ")
}

func checkDomain(c *validate.Context[Rule]) {
	if d := c.Item.Str("domein"); d != DomainName {
		c.Errorf("domein must be %q, got %q", DomainName, d)
	}
	sub := c.Item.Str("subdomein")
	known := false
	for _, s := range []string{Breuken, Decimalen, Procenten, Verhoudingstabellen, Schaal, Integraal} {
		if strings.EqualFold(s, sub) {
			sub, known = s, true
		}
	}
	switch {
	case !known:
		c.Errorf("unknown subdomein %q", sub)
	case !rules.Contains(c.Rule.Subdomains, sub):
		c.Errorf("subdomein %s is not offered at %s (offered: %s)", sub, c.Key, strings.Join(c.Rule.Subdomains, ", "))
	}
}

// checkStructure emits exactly one finding per structural violation.
func checkStructure(c *validate.Context[Rule]) {
	ans := answers(c.Item)
	if len(ans) != 4 {
		c.Errorf("antwoorden must contain exactly 4 answers, got %d", len(ans))
	}
	correct := 0
	for _, a := range ans {
		if a.Correct {
			correct++
		}
	}
	if correct != 1 {
		c.Errorf("antwoorden must have exactly one correct answer, got %d", correct)
	}

	seen := map[string]int{}
	for i, a := range ans {
		if a.Correct {
			continue
		}
		switch {
		case a.Fouttype == "":
			c.Errorf("fouttype missing on distractor %d (%q)", i+1, a.Text)
		case !Fouttypes.Has(a.Fouttype):
			c.Errorf("fouttype %q on distractor %d is not a known mistake type", a.Fouttype, i+1)
		default:
			seen[a.Fouttype]++
		}
	}
	for _, ft := range sortedKeys(seen) {
		if seen[ft] > 1 {
			c.Infof("fouttype %q is used by %d distractors; distinct mistake types are preferred", ft, seen[ft])
		}
	}
}

func sortedKeys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var fractionRe = regexp.MustCompile(`(\d+)\s*/\s*(\d+)`)

// Fraction is a written a/b.
type Fraction struct{ Num, Den int64 }

func (f Fraction) String() string { return fmt.Sprintf("%d/%d", f.Num, f.Den) }

// Reduced returns f in lowest terms.
func (f Fraction) Reduced() Fraction {
	a, b := f.Num, f.Den
	for b != 0 {
		a, b = b, a%b
	}
	if a <= 1 {
		return f
	}
	return Fraction{f.Num / a, f.Den / a}
}

// Fractions returns the fractions written in text.
func Fractions(text string) []Fraction {
	var out []Fraction
	for _, m := range fractionRe.FindAllStringSubmatchIndex(text, -1) {
		// Dates (1/2/2024) and decimals (0,5/2) are not fractions.
		if m[0] > 0 && strings.IndexByte("/:.,", text[m[0]-1]) >= 0 {
			continue
		}
		if m[1] < len(text) && text[m[1]] == '/' {
			continue
		}
		num, err1 := strconv.ParseInt(text[m[2]:m[3]], 10, 64)
		den, err2 := strconv.ParseInt(text[m[4]:m[5]], 10, 64)
		if err1 != nil || err2 != nil || den == 0 {
			continue
		}
		out = append(out, Fraction{num, den})
	}
	return out
}

func checkFractions(c *validate.Context[Rule]) {
	fracs := Fractions(allText(c.Item))
	if len(fracs) == 0 {
		return
	}
	if c.Rule.Fractions == rules.Forbidden {
		c.Errorf("fractions (%s) are not taught at %s", fracs[0], c.Key)
		return
	}
	reported := map[Fraction]bool{}
	for _, f := range fracs {
		if reported[f] {
			continue
		}
		reported[f] = true
		if f.Num == 1 && c.Rule.StemFractions != nil && !rules.Contains(c.Rule.StemFractions, f.String()) {
			c.Errorf("stambreuk %s is not used at %s (allowed: %s)", f, c.Key, strings.Join(c.Rule.StemFractions, ", "))
		}
		if c.Rule.MaxDenominator > 0 && f.Den > int64(c.Rule.MaxDenominator) {
			c.Errorf("fraction %s has denominator above %d", f, c.Rule.MaxDenominator)
		}
		if c.Rule.FlagUnreduced && f.Num > 0 {
			if r := f.Reduced(); r != f {
				c.Infof("fraction %s can be simplified to %s", f, r)
			}
		}
	}
}

var (
	decimalRe      = regexp.MustCompile(`\d+[.,]\d+`)
	dotDecimalRe   = regexp.MustCompile(`\d\.\d`)
	commaDecimalRe = regexp.MustCompile(`\d,\d`)
	thousandsRe    = regexp.MustCompile(`^\d{1,3}(?:\.\d{3})+$`)
)

func checkDecimals(c *validate.Context[Rule]) {
	text := allText(c.Item)
	var decimals []string
	for _, d := range decimalRe.FindAllString(text, -1) {
		if !thousandsRe.MatchString(d) {
			decimals = append(decimals, d)
		}
	}
	if len(decimals) == 0 {
		return
	}
	if c.Rule.Decimals == rules.Forbidden {
		c.Errorf("decimal numbers (%s) are not taught at %s", decimals[0], c.Key)
		return
	}
	for _, d := range decimals {
		digits := len(d) - strings.IndexAny(d, ".,") - 1
		if digits > c.Rule.DecimalDigits {
			c.Errorf("%s has %d decimal places, maximum at %s is %d", d, digits, c.Key, c.Rule.DecimalDigits)
		}
	}
	stripped := text
	for _, d := range decimalRe.FindAllString(text, -1) {
		if thousandsRe.MatchString(d) {
			stripped = strings.ReplaceAll(stripped, d, "")
		}
	}
	if dotDecimalRe.MatchString(stripped) && commaDecimalRe.MatchString(stripped) {
		c.Error("mixed decimal notation: both '.' and ',' are used as decimal separator")
	}
}

var percentRe = regexp.MustCompile(`(?i)(-?\d+(?:[.,]\d+)?)\s*(?:%|procent\b)`)

// Percentages returns the percentages written in text.
func Percentages(text string) []float64 {
	var out []float64
	for _, m := range percentRe.FindAllStringSubmatch(text, -1) {
		if v, ok := validate.ParseNumber(m[1]); ok {
			out = append(out, v)
		}
	}
	return out
}

func checkPercentages(c *validate.Context[Rule]) {
	pcts := Percentages(allText(c.Item))
	if len(pcts) == 0 {
		return
	}
	if c.Rule.Percentages == rules.Forbidden {
		c.Errorf("percentages (%s%%) are not taught at %s", validate.FormatNumber(pcts[0]), c.Key)
		return
	}
	for _, p := range pcts {
		if p > 100 || p < 0 {
			c.Warnf("percentage %s%% lies outside 0..100%%", validate.FormatNumber(p))
			continue
		}
		if c.Rule.PercentSet != nil && !inSet(c.Rule.PercentSet, p) {
			c.Errorf("percentage %s%% is not in the set used at %s %v", validate.FormatNumber(p), c.Key, c.Rule.PercentSet)
		}
	}
}

func inSet(set []int, v float64) bool {
	for _, s := range set {
		if float64(s) == v {
			return true
		}
	}
	return false
}

var (
	scaleRe    = regexp.MustCompile(`\b1\s*:\s*(\d{1,3}(?:\.\d{3})+|\d+)\b`)
	scaleWords = []string{"schaal", "kaart", "plattegrond", "bouwtekening", "maquette", "landkaart"}
)

func checkScale(c *validate.Context[Rule]) {
	text := allText(c.Item)
	if _, ok := validate.FirstWord(text, scaleWords); !ok && !strings.EqualFold(c.Item.Str("subdomein"), Schaal) {
		return
	}
	for _, m := range scaleRe.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(strings.ReplaceAll(m[1], ".", ""))
		if err != nil {
			continue
		}
		if c.Rule.Scales != nil && !inSet(c.Rule.Scales, float64(n)) {
			c.Errorf("scale 1:%d is not used at %s (allowed: %v)", n, c.Key, c.Rule.Scales)
		}
	}
}

func checkContext(c *validate.Context[Rule]) {
	text := questionText(c.Item)
	for _, w := range c.Rule.BlockedContexts {
		if _, ok := validate.HasWordPrefix(text, []string{w}); ok {
			c.Errorf("context '%s' is not appropriate for groep %d", w, c.Key.Grade)
		}
	}
}

func checkVisual(c *validate.Context[Rule]) {
	v := c.Item.Map("vraag")
	req := c.Rule.Visual
	if declared, ok := rules.ParseVisual(v.Str("visualisatie")); ok && declared > req {
		req = declared
	}
	present := validate.HasVisual(c.Item, []string{v.Str("context"), v.Str("hoofdvraag")}, nil) ||
		validate.HasVisual(v, nil, nil)
	validate.CheckVisual(c.Report, req, present, fmt.Sprintf("G%d", c.Key.Grade))
}

func checkDistractors(c *validate.Context[Rule]) {
	ans := answers(c.Item)
	var correct *answer
	var distractors []string
	for i := range ans {
		if ans[i].Correct && correct == nil {
			correct = &ans[i]
			continue
		}
		distractors = append(distractors, ans[i].Text)
	}
	if correct == nil {
		return
	}
	// Count bounds belong to the structure check.
	validate.CheckDistractors(c.Report, correct.Text, distractors, validate.DistractorSpec{Label: "antwoorden"})

	if !correct.HasValue {
		return
	}
	values := []float64{correct.Value}
	for _, a := range ans {
		if a.Correct || !a.HasValue {
			continue
		}
		values = append(values, a.Value)
		if correct.Value != 0 {
			ratio := a.Value / correct.Value
			if ratio < 0.1 || ratio > 10 {
				c.Warnf("distractor %q is implausible: ratio %.2f to the correct answer is outside 0.1..10", a.Text, ratio)
			}
		}
	}
	for i := 0; i < len(values); i++ {
		for j := i + 1; j < len(values); j++ {
			if d := math.Abs(values[i] - values[j]); d > 0 && d < 0.01 {
				c.Warnf("answer values %s and %s are closer than 0.01", validate.FormatNumber(values[i]), validate.FormatNumber(values[j]))
			}
		}
	}
	if validate.Clustered(values, 5, 3) {
		c.Warn("distractors cluster: at least 3 answer values lie within 5 of each other")
	}
}

// AnswerPosition returns the letter A..D of the correct answer when answer
// ids encode the position.
func AnswerPosition(it item.Item) (string, bool) {
	for _, a := range answers(it) {
		if !a.Correct {
			continue
		}
		id := strings.ToUpper(strings.TrimSpace(a.ID))
		if len(id) == 1 && id[0] >= 'A' && id[0] <= 'D' {
			return id, true
		}
		return "", false
	}
	return "", false
}
