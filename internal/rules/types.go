package rules

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Range is an inclusive numeric interval. The zero Range means "not constrained".
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// R builds a Range.
func R(min, max float64) Range { return Range{Min: min, Max: max} }

// IsZero reports whether the range was left unset.
func (r Range) IsZero() bool { return r.Min == 0 && r.Max == 0 }

// Contains reports whether v lies within the range. An unset range contains everything.
func (r Range) Contains(v float64) bool {
	if r.IsZero() {
		return true
	}
	return v >= r.Min && v <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("%s..%s", fmtNum(r.Min), fmtNum(r.Max))
}

func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Stage is the tri-state used for curriculum topics that are introduced at some level.
type Stage int

const (
	Forbidden    Stage = iota // not taught yet; using it is an error
	Introduction              // first encounter; simple forms only
	Full                      // fully part of the curriculum
)

func (s Stage) String() string {
	switch s {
	case Forbidden:
		return "forbidden"
	case Introduction:
		return "introduction"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// MarshalText renders the stage name for JSON/YAML output.
func (s Stage) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Visual is the visualization requirement of a level, ordered from weakest to strongest.
type Visual int

const (
	VisualForbidden Visual = iota
	VisualOptional
	VisualRecommended
	VisualStronglyRecommended
	VisualRequired
	VisualAbsolutelyRequired
)

var visualNames = []string{
	"forbidden",
	"optional",
	"recommended",
	"strongly_recommended",
	"required",
	"absolutely_required",
}

func (v Visual) String() string {
	if int(v) < 0 || int(v) >= len(visualNames) {
		return "unknown"
	}
	return visualNames[v]
}

// MarshalText renders the requirement name for JSON/YAML output.
func (v Visual) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseVisual parses a requirement name such as "strongly_recommended".
func ParseVisual(s string) (Visual, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range visualNames {
		if n == s {
			return Visual(i), true
		}
	}
	return VisualOptional, false
}

// Mandatory reports whether a missing visual is an error.
func (v Visual) Mandatory() bool { return v >= VisualRequired }

// Set is an immutable-by-convention string set used for allow and deny lists.
type Set map[string]struct{}

// NewSet builds a set from the given members. Members are compared lower-cased.
func NewSet(members ...string) Set {
	s := make(Set, len(members))
	for _, m := range members {
		s[strings.ToLower(m)] = struct{}{}
	}
	return s
}

// Has reports membership, ignoring case.
func (s Set) Has(m string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(m))]
	return ok
}

// Sorted returns the members in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// MarshalText renders the members as a comma-separated list.
func (s Set) MarshalText() ([]byte, error) {
	return []byte(strings.Join(s.Sorted(), ", ")), nil
}
