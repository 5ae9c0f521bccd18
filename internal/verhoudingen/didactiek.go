package verhoudingen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/validate"
)

// LOVAFields are the four steps of the LOVA frame, in order.
var LOVAFields = []string{"lezen", "ordenen", "vormen", "antwoorden"}

const lovaMinLen = 10

// steps returns berekening_stappen as a list; a single string is one step.
func steps(d item.Item) []string {
	return d.Strings("berekening_stappen")
}

var (
	// percentOfRe matches "25% van 80" (optionally "van €80").
	percentOfRe = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*%\s*van\s*€?\s*(\d+(?:[.,]\d+)?)`)

	// stepLabelRe strips "Stap 2:" and "2." labels.
	stepLabelRe = regexp.MustCompile(`(?i)^\s*(?:stap\s*\d+\s*[:.)]?|\d+[.)])\s+`)

	timesLetterRe  = regexp.MustCompile(`(\d)\s*[xX]\s*(\d)`)
	leadingTermRe  = regexp.MustCompile(`^\s*€?\s*-?\d[\d\s.,+\-−×·*:÷/()]*`)
	trailingTermRe = regexp.MustCompile(`[(€]*\d[\d\s.,+\-−×·*:÷/()€]*$`)
)

// CheckStep verifies every "=" in a calculation step whose sides are both
// computable, e.g. "1/4 + 2/4 = 3/4" or "25% van 80 = 20". It returns one
// message per wrong equation.
func CheckStep(step string) []string {
	step = stepLabelRe.ReplaceAllString(step, "")
	step = percentOfRe.ReplaceAllString(step, "($1 / 100 * $2)")
	step = timesLetterRe.ReplaceAllString(step, "$1 × $2")
	parts := strings.Split(step, "=")
	var out []string
	for i := 0; i+1 < len(parts); i++ {
		lhs := strings.TrimSpace(trailingTermRe.FindString(parts[i]))
		rhs := strings.TrimRight(strings.TrimSpace(leadingTermRe.FindString(parts[i+1])), ".,")
		if lhs == "" || rhs == "" {
			continue
		}
		lv, errL := validate.Eval(lhs)
		rv, errR := validate.Eval(rhs)
		if errL != nil || errR != nil {
			continue
		}
		if !roughlyEqual(lv, rv) {
			out = append(out, fmt.Sprintf("%s = %s is wrong: %s evaluates to %s", lhs, rhs, lhs, validate.FormatNumber(round(lv))))
		}
	}
	return out
}

// roughlyEqual accepts results rounded to two decimals, as money and
// percentage steps are written.
func roughlyEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 0.005+1e-9
}

func round(v float64) float64 {
	if v < 0 {
		return -round(-v)
	}
	return float64(int64(v*10000+0.5)) / 10000
}

func checkCorrectness(c *validate.Context[Rule]) {
	d := c.Item.Map("didactiek")
	for i, s := range steps(d) {
		for _, msg := range CheckStep(s) {
			c.Errorf("berekening_stappen %d: %s", i+1, msg)
		}
	}

	// The final step should land on the correct answer's value.
	st := steps(d)
	if len(st) == 0 {
		return
	}
	last := st[len(st)-1]
	idx := strings.LastIndex(last, "=")
	if idx < 0 {
		return
	}
	final, ok := validate.ParseNumber(last[idx+1:])
	if !ok {
		return
	}
	for _, a := range answers(c.Item) {
		if a.Correct && a.HasValue && !roughlyEqual(a.Value, final) && !fractionMatches(a.Text, last[idx+1:]) {
			c.Warnf("the last calculation step ends at %s but the correct answer is %q", strings.TrimSpace(last[idx+1:]), a.Text)
		}
	}
}

// fractionMatches compares two written fractions by value.
func fractionMatches(a, b string) bool {
	fa, fb := Fractions(a), Fractions(b)
	if len(fa) == 0 || len(fb) == 0 {
		return false
	}
	return fa[0].Num*fb[0].Den == fb[0].Num*fa[0].Den
}

func checkLOVA(c *validate.Context[Rule]) {
	lova := c.Item.Map("didactiek").Map("lova")
	if lova == nil {
		c.Error("didactiek.lova is missing")
		return
	}
	for _, f := range LOVAFields {
		v := strings.TrimSpace(lova.Str(f))
		switch {
		case v == "":
			c.Errorf("lova.%s is missing", f)
		case len([]rune(v)) < lovaMinLen:
			c.Errorf("lova.%s is too short (%d characters, want at least %d)", f, len([]rune(v)), lovaMinLen)
		}
	}
}

func checkFeedback(c *validate.Context[Rule]) {
	fb := c.Item.Map("didactiek").Map("feedback")
	if fb == nil {
		c.Warn("didactiek.feedback is missing")
		return
	}
	if strings.TrimSpace(fb.Str("correct")) == "" {
		c.Warn("feedback.correct is missing")
	}
	seen := map[string]bool{}
	for _, a := range answers(c.Item) {
		if a.Correct || a.Fouttype == "" || seen[a.Fouttype] {
			continue
		}
		seen[a.Fouttype] = true
		if strings.TrimSpace(fb.Str("fout_"+a.Fouttype)) == "" {
			c.Warnf("feedback.fout_%s is missing for a distractor of that type", a.Fouttype)
		}
	}
}

func checkMetadata(c *validate.Context[Rule]) {
	md := c.Item.Map("metadata")
	validate.CheckDifficulty(c.Report, md, "moeilijkheidsgraad", c.Rule.Difficulty)
	validate.CheckDuration(c.Report, md, "geschatte_tijd_sec", c.Rule.Time, "s")

	d := c.Item.Map("didactiek")
	validate.CheckExplanation(c.Report, d.Str("conceptuitleg"), true, 20)
}

func checkCross(c *validate.Context[Rule]) {
	md := c.Item.Map("metadata")
	n, ok := md.Int("stappen_aantal")
	if !ok {
		return
	}
	if c.Rule.MaxSteps > 0 && n > c.Rule.MaxSteps {
		c.Warnf("metadata.stappen_aantal %d exceeds %d for this level", n, c.Rule.MaxSteps)
	}
	if st := steps(c.Item.Map("didactiek")); len(st) > 0 && len(st) != n {
		c.Warnf("metadata.stappen_aantal is %d but berekening_stappen has %d steps", n, len(st))
	}
	if d, ok := md.Float("moeilijkheidsgraad"); ok {
		if t, ok := md.Float("geschatte_tijd_sec"); ok {
			validate.CrossDifficultyTime(c.Report, d, t, c.Rule.Time)
		}
	}
}
