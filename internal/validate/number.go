package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// numberRe matches integers and decimals with either separator.
	numberRe = regexp.MustCompile(`-?\d+(?:[.,]\d+)*`)

	// thousandsRe matches Dutch thousands notation such as 1.000 or 12.500.000.
	thousandsRe = regexp.MustCompile(`^\d{1,3}(?:\.\d{3})+$`)

	fractionOnlyRe = regexp.MustCompile(`^\s*(-?\d+)\s*/\s*(\d+)\s*$`)
	integerRe      = regexp.MustCompile(`\d+(?:[.,]\d+)*`)
)

// normalizeMinus replaces typographic minus signs by '-'.
func normalizeMinus(s string) string {
	return strings.NewReplacer("−", "-", "–", "-").Replace(s)
}

// ParseNumber returns the first number in s, accepting Dutch decimal
// commas and thousands dots: "-2 knikkers" → -2, "€ 3,50" → 3.5,
// "1.000" → 1000. A string that is only a fraction yields its value.
// A minus directly after a digit is an operator, not a sign.
func ParseNumber(s string) (float64, bool) {
	s = normalizeMinus(s)
	if m := fractionOnlyRe.FindStringSubmatch(s); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		den, _ := strconv.ParseFloat(m[2], 64)
		if den == 0 {
			return 0, false
		}
		return num / den, true
	}
	loc := numberRe.FindStringIndex(s)
	if loc == nil {
		return 0, false
	}
	tok := s[loc[0]:loc[1]]
	if strings.HasPrefix(tok, "-") && loc[0] > 0 && isDigitByte(s[loc[0]-1]) {
		tok = tok[1:]
	}
	return parseToken(tok)
}

// Numbers returns every number literal in s in order of appearance.
func Numbers(s string) []float64 {
	s = normalizeMinus(s)
	var out []float64
	for _, loc := range numberRe.FindAllStringIndex(s, -1) {
		tok := s[loc[0]:loc[1]]
		if strings.HasPrefix(tok, "-") && loc[0] > 0 && !isSpaceByte(s[loc[0]-1]) {
			tok = tok[1:]
		}
		if v, ok := parseToken(tok); ok {
			out = append(out, v)
		}
	}
	return out
}

// Integers returns the whole-number literals of s. Decimals are skipped.
func Integers(s string) []int {
	var out []int
	for _, tok := range integerRe.FindAllString(s, -1) {
		if strings.ContainsAny(tok, ".,") {
			if !thousandsRe.MatchString(tok) {
				continue
			}
			tok = strings.ReplaceAll(tok, ".", "")
		}
		if n, err := strconv.Atoi(tok); err == nil {
			out = append(out, n)
		}
	}
	return out
}

// HasDigit reports whether s contains at least one digit.
func HasDigit(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r >= '0' && r <= '9' }) >= 0
}

func parseToken(tok string) (float64, bool) {
	neg := strings.HasPrefix(tok, "-")
	body := strings.TrimPrefix(tok, "-")
	switch {
	case thousandsRe.MatchString(body):
		body = strings.ReplaceAll(body, ".", "")
	case strings.Count(body, ",") == 1 && !strings.Contains(body, "."):
		body = strings.Replace(body, ",", ".", 1)
	case strings.Count(body, ".") > 1 || strings.Count(body, ",") > 0:
		// Mixed separators such as "1.000,50".
		body = strings.ReplaceAll(body, ".", "")
		body = strings.Replace(body, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(body, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }
func isSpaceByte(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '(' }

// FormatNumber renders v without trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// NearlyEqual compares two computed values with a tolerance suited to
// rounded decimals in exercise answers.
func NearlyEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-6
}
