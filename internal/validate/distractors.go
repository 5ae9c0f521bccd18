package validate

import (
	"sort"
	"strings"
)

// DistractorSpec bounds the distractor list of one question.
type DistractorSpec struct {
	// Label prefixes findings, e.g. "afleiders" or "vraag 2: afleiders".
	Label string
	// Min is the minimum count; fewer is an error.
	Min int
	// Max is the maximum count; more is a warning. Zero means unbounded.
	Max int
}

// CheckDistractors enforces count bounds, non-empty entries, no collision
// with the correct answer and pairwise uniqueness. Comparison ignores case
// and whitespace.
func CheckDistractors(r *Report, correct string, distractors []string, spec DistractorSpec) {
	label := spec.Label
	if label == "" {
		label = "afleiders"
	}
	if len(distractors) < spec.Min {
		r.Errorf("%s: expected at least %d distractors, got %d", label, spec.Min, len(distractors))
	}
	if spec.Max > 0 && len(distractors) > spec.Max {
		r.Warnf("%s: more than %d distractors (%d)", label, spec.Max, len(distractors))
	}

	correctKey := CompareKey(correct)
	seen := make(map[string]int, len(distractors))
	for i, d := range distractors {
		if strings.TrimSpace(d) == "" {
			r.Errorf("%s: distractor %d is empty", label, i+1)
			continue
		}
		key := CompareKey(d)
		if correctKey != "" && key == correctKey {
			r.Errorf("%s: distractor %q equals the correct answer", label, d)
		}
		if first, dup := seen[key]; dup {
			r.Errorf("%s: distractor %d duplicates distractor %d (%q)", label, i+1, first, d)
			continue
		}
		seen[key] = i + 1
	}
}

// Clustered reports whether at least n of values lie within an interval of
// width span.
func Clustered(values []float64, span float64, n int) bool {
	if n <= 1 || len(values) < n {
		return false
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	for i := 0; i+n-1 < len(sorted); i++ {
		if sorted[i+n-1]-sorted[i] <= span {
			return true
		}
	}
	return false
}

// NumericCandidates parses the correct answer and distractors that are
// numbers. ok is false when the correct answer itself is not numeric.
func NumericCandidates(correct string, distractors []string) (values []float64, ok bool) {
	c, ok := ParseNumber(correct)
	if !ok {
		return nil, false
	}
	values = append(values, c)
	for _, d := range distractors {
		if v, ok := ParseNumber(d); ok {
			values = append(values, v)
		}
	}
	return values, true
}
