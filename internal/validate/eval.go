package validate

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/expr-lang/expr"
)

// ErrNotArithmetic is returned for strings that are not a plain calculation.
var ErrNotArithmetic = errors.New("not an arithmetic expression")

var (
	// timesLetterRe turns "3 x 4" into "3 * 4" without touching words.
	timesLetterRe = regexp.MustCompile(`(\d)\s*[xX]\s*(\d)`)

	// decimalCommaRe turns the Dutch "2,5" into "2.5".
	decimalCommaRe = regexp.MustCompile(`(\d),(\d)`)

	// arithmeticRe is the only input handed to the expression engine.
	arithmeticRe = regexp.MustCompile(`^[\d\s.+\-*/()]+$`)

	// ExpressionRe finds chained calculations such as "12 + 5 - 3" or "6 × 4" in prose.
	ExpressionRe = regexp.MustCompile(`\d+(?:[.,]\d+)?(?:\s*[+\-−×xX*:÷/]\s*\d+(?:[.,]\d+)?)+`)
)

// NormalizeExpression rewrites Dutch/typographic notation into the operator
// set of the expression engine: × x · → *, : ÷ → /, − → -, decimal commas
// become dots. Anything after '=' is dropped.
func NormalizeExpression(s string) string {
	if i := strings.Index(s, "="); i >= 0 {
		s = s[:i]
	}
	s = strings.NewReplacer("×", "*", "·", "*", "÷", "/", ":", "/", "−", "-", "–", "-", "€", "").Replace(s)
	s = timesLetterRe.ReplaceAllString(s, "$1 * $2")
	s = timesLetterRe.ReplaceAllString(s, "$1 * $2")
	s = decimalCommaRe.ReplaceAllString(s, "$1.$2")
	return strings.TrimSpace(s)
}

// Eval computes a calculation written the way exercise items write them,
// e.g. "12 : 4", "3 × 5 + 2" or "1,5 + 2,25 =". Precedence follows the
// usual rules. Text other than numbers and operators is refused.
func Eval(s string) (float64, error) {
	norm := NormalizeExpression(s)
	if norm == "" || !arithmeticRe.MatchString(norm) || !HasDigit(norm) {
		return 0, ErrNotArithmetic
	}
	out, err := expr.Eval(norm, nil)
	if err != nil {
		return 0, fmt.Errorf("evaluate %q: %w", norm, err)
	}
	var v float64
	switch n := out.(type) {
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	case float64:
		v = n
	default:
		return 0, fmt.Errorf("evaluate %q: unexpected result type %T", norm, out)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("evaluate %q: division by zero", norm)
	}
	return v, nil
}

// Expressions returns the calculations written in prose, in order.
func Expressions(s string) []string {
	return ExpressionRe.FindAllString(s, -1)
}
