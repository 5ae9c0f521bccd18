package getallen

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/TomLouwers/websitesara/internal/validate"
)

// Calculation is one binary operation found in a prompt.
type Calculation struct {
	Op   string
	A, B float64
	// Source is the matched text, for messages.
	Source string
	// Symbolic is true for written operators; false for operations inferred
	// from wording such as "verdeel 12 koekjes door 4 kinderen".
	Symbolic bool
}

// Result computes the outcome. ok is false for division by zero.
func (c Calculation) Result() (float64, bool) {
	switch c.Op {
	case OpOptellen:
		return c.A + c.B, true
	case OpAftrekken:
		return c.A - c.B, true
	case OpVermenigvuldigen:
		return c.A * c.B, true
	case OpDelen:
		if c.B == 0 {
			return 0, false
		}
		return c.A / c.B, true
	}
	return 0, false
}

// Crosses reports whether the calculation crosses a ten: units add up to
// ten or more, or a subtraction goes from ten or more to below ten.
func (c Calculation) Crosses() bool {
	a, b := int64(c.A), int64(c.B)
	if float64(a) != c.A || float64(b) != c.B || a < 0 || b < 0 {
		return false
	}
	switch c.Op {
	case OpOptellen:
		return a%10+b%10 >= 10
	case OpAftrekken:
		return a >= 10 && a-b >= 0 && a-b < 10
	}
	return false
}

var (
	binaryRe = regexp.MustCompile(`(\d+(?:,\d+)?)\s*([+\-−–×xX*·÷:/])\s*(\d+(?:,\d+)?)`)

	timesWordRe  = regexp.MustCompile(`(?i)(\d+)\s+(?:keer|maal)\s+(\d+)`)
	groupsOfRe   = regexp.MustCompile(`(?i)(\d+)\s+(?:groepjes|rijen|zakjes|dozen|bakjes|torens|stapels)\s+(?:van|met)\s+(\d+)`)
	dividedByRe  = regexp.MustCompile(`(?i)(\d+)\s+gedeeld\s+door\s+(\d+)`)
	shareRe      = regexp.MustCompile(`(?i)\bverde+l\w*\s+(\d+)\s+(?:\p{L}+\s+){0,2}(?:eerlijk\s+)?(?:door|over|onder|tussen)\s+(\d+)`)
	shareAfterRe = regexp.MustCompile(`(?i)(\d+)\s+\p{L}+\s+(?:eerlijk\s+)?verde+l\w*\s+(?:over|onder|tussen)\s+(\d+)`)
	inGroupsRe   = regexp.MustCompile(`(?i)(\d+)\s+\p{L}+\s+in\s+groepjes\s+van\s+(\d+)`)
)

// Calculations finds the binary operations of a prompt. Operator symbols
// come first; semantic patterns only add what the symbols did not cover.
// Clock times ("12:30", never "12 : 30") and stand-alone fractions ("3/4") are not
// calculations.
func Calculations(text string) []Calculation {
	text = validate.StripVisuals(text)
	var out []Calculation
	for _, m := range binaryRe.FindAllStringSubmatchIndex(text, -1) {
		src := text[m[0]:m[1]]
		a, _ := validate.ParseNumber(text[m[2]:m[3]])
		b, _ := validate.ParseNumber(text[m[6]:m[7]])
		opSym := text[m[4]:m[5]]
		var op string
		switch opSym {
		case "+":
			op = OpOptellen
		case "-", "−", "–":
			op = OpAftrekken
		case "×", "x", "X", "*", "·":
			op = OpVermenigvuldigen
		case "÷":
			op = OpDelen
		case ":":
			spaced := m[4] > m[3] || m[6] > m[5]
			if !spaced && isClockTime(text[m[2]:m[3]], text[m[6]:m[7]]) {
				continue
			}
			op = OpDelen
		case "/":
			// a/b is a fraction unless written as a sum with spaces, "12 / 4".
			if !strings.Contains(src, " ") {
				continue
			}
			op = OpDelen
		}
		out = append(out, Calculation{Op: op, A: a, B: b, Source: src, Symbolic: true})
	}

	semantic := []struct {
		re *regexp.Regexp
		op string
	}{
		{timesWordRe, OpVermenigvuldigen},
		{groupsOfRe, OpVermenigvuldigen},
		{dividedByRe, OpDelen},
		{shareRe, OpDelen},
		{shareAfterRe, OpDelen},
		{inGroupsRe, OpDelen},
	}
	for _, s := range semantic {
		for _, m := range s.re.FindAllStringSubmatch(text, -1) {
			a, _ := strconv.ParseFloat(m[1], 64)
			b, _ := strconv.ParseFloat(m[2], 64)
			out = append(out, Calculation{Op: s.op, A: a, B: b, Source: m[0]})
		}
	}
	return out
}

// isClockTime reports whether "h:mm" reads as a time of day.
func isClockTime(h, mm string) bool {
	if len(mm) != 2 {
		return false
	}
	hour, err1 := strconv.Atoi(h)
	minute, err2 := strconv.Atoi(mm)
	return err1 == nil && err2 == nil && hour <= 24 && minute < 60
}

// Operations returns the distinct operations of the prompt in detection
// order, including tientalovergang when a calculation crosses a ten.
func Operations(calcs []Calculation) []string {
	var ops []string
	add := func(op string) {
		for _, o := range ops {
			if o == op {
				return
			}
		}
		ops = append(ops, op)
	}
	for _, c := range calcs {
		add(c.Op)
	}
	for _, c := range calcs {
		if c.Crosses() {
			add(OpTientalovergang)
			break
		}
	}
	return ops
}

// cueFamily is the Dutch wording that signals an operation in a story.
type cueFamily struct {
	op       string
	words    []string
	patterns []*regexp.Regexp
}

var cueFamilies = []cueFamily{
	{
		op:    OpOptellen,
		words: []string{"erbij", "samen", "totaal", "in totaal", "plus", "optellen", "opgeteld", "bij elkaar", "krijgt", "krijgen", "komen erbij", "meer"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\ber\s+(?:\d+\s+)?bij\b`),
		},
	},
	{
		op:    OpAftrekken,
		words: []string{"weg", "eraf", "min", "minder", "verliest", "verloren", "kwijt", "opgegeten", "eet", "geeft", "verschil", "aftrekken", "over"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\ber\s+(?:\d+\s+)?(?:af|weg|uit)\b`),
		},
	},
	{
		op:    OpVermenigvuldigen,
		words: []string{"keer", "maal", "groepjes van", "rijen van", "zakjes met", "dozen met", "dubbel", "telkens", "per", "elk", "iedere"},
		patterns: []*regexp.Regexp{groupsOfRe, timesWordRe},
	},
	{
		op:    OpDelen,
		words: []string{"verdeel", "verdelen", "verdeelt", "eerlijk", "gedeeld", "ieder", "elk", "per persoon", "evenveel", "in groepjes"},
		patterns: []*regexp.Regexp{shareRe, shareAfterRe, inGroupsRe},
	},
}

// HasCue reports whether text carries wording for op.
func HasCue(text, op string) bool {
	for _, f := range cueFamilies {
		if f.op != op {
			continue
		}
		if _, ok := validate.FirstWord(text, f.words); ok {
			return true
		}
		for _, p := range f.patterns {
			if p.MatchString(text) {
				return true
			}
		}
	}
	return false
}

// storyCalculation infers the single operation of a short story with two
// numbers and one clear cue family, e.g. "Lisa heeft 3 appels. Ze krijgt
// er 2 bij." ok is false when the story is ambiguous.
func storyCalculation(text string) (Calculation, bool) {
	nums := validate.Integers(validate.StripVisuals(text))
	if len(nums) != 2 {
		return Calculation{}, false
	}
	var found []string
	for _, op := range []string{OpOptellen, OpAftrekken} {
		if HasCue(text, op) {
			found = append(found, op)
		}
	}
	if len(found) != 1 {
		return Calculation{}, false
	}
	return Calculation{Op: found[0], A: float64(nums[0]), B: float64(nums[1]), Source: "story"}, true
}

var moneyRe = regexp.MustCompile(`(?i)(?:€\s*(\d+(?:,\d{1,2})?)|(\d+(?:,\d{1,2})?)\s*(euro|cent)\b)`)

// moneyCents returns the amounts of money written in text, in cents.
func moneyCents(text string) []int {
	var out []int
	for _, m := range moneyRe.FindAllStringSubmatch(text, -1) {
		raw, unit := m[1], "euro"
		if raw == "" {
			raw, unit = m[2], strings.ToLower(m[3])
		}
		v, ok := validate.ParseNumber(raw)
		if !ok {
			continue
		}
		if unit == "euro" {
			v *= 100
		}
		out = append(out, int(v+0.5))
	}
	return out
}
