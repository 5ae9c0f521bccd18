package rules

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrOverlap is returned when a value appears in both the allowed and the
// forbidden list of one rule entry.
var ErrOverlap = errors.New("allowed and forbidden lists overlap")

// Checker is implemented by rule entries that can verify their own consistency.
type Checker interface {
	Check() error
}

// Book is a read-only mapping from (grade, level) to a domain rule entry.
type Book[R any] struct {
	domain  string
	entries map[Key]R
}

// NewBook builds a rule book and validates every entry that implements
// Checker. All problems are reported together.
func NewBook[R any](domain string, entries map[Key]R) (Book[R], error) {
	b := Book[R]{domain: domain, entries: make(map[Key]R, len(entries))}
	var errs []string
	for k, e := range entries {
		if !k.Valid() {
			errs = append(errs, fmt.Sprintf("invalid key %s", k))
			continue
		}
		if c, ok := any(e).(Checker); ok {
			if err := c.Check(); err != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", k, err))
			}
		}
		b.entries[k] = e
	}
	if len(errs) > 0 {
		sort.Strings(errs)
		return Book[R]{}, fmt.Errorf("rule book %q validation failed:\n  %s", domain, strings.Join(errs, "\n  "))
	}
	return b, nil
}

// MustBook is NewBook for package-level tables; an inconsistent table is a
// programming error.
func MustBook[R any](domain string, entries map[Key]R) Book[R] {
	b, err := NewBook(domain, entries)
	if err != nil {
		panic(err)
	}
	return b
}

// Domain returns the name the book was built for.
func (b Book[R]) Domain() string { return b.domain }

// Lookup returns the entry for k.
func (b Book[R]) Lookup(k Key) (R, bool) {
	e, ok := b.entries[k]
	return e, ok
}

// Keys returns the keys present in the book in curriculum order.
func (b Book[R]) Keys() []Key {
	keys := make([]Key, 0, len(b.entries))
	for k := range b.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Ordinal() < keys[j].Ordinal() })
	return keys
}

// Disjoint returns ErrOverlap when any member of forbidden is also allowed.
func Disjoint(what string, allowed, forbidden []string) error {
	a := NewSet(allowed...)
	var both []string
	for _, f := range forbidden {
		if a.Has(f) {
			both = append(both, f)
		}
	}
	if len(both) > 0 {
		return fmt.Errorf("%s %v: %w", what, both, ErrOverlap)
	}
	return nil
}

// Contains reports whether list holds s, ignoring case and surrounding space.
func Contains(list []string, s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range list {
		if strings.ToLower(m) == s {
			return true
		}
	}
	return false
}
