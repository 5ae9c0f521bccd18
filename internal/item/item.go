// Package item holds the exercise-item representation shared by all
// domain validators, plus loading of item files.
package item

import (
	"encoding/json"
	"strconv"
	"strings"
)

// AutoConvertedMarker is written into the toelichting of every item produced
// by the legacy converter. Validators treat its presence as an error so a
// converted item can never pass without an author completing it.
const AutoConvertedMarker = "[AUTO-CONVERTED] Toelichting ontbreekt: handmatig aanvullen vereist."

// IsAutoConverted reports whether text carries the conversion marker.
func IsAutoConverted(text string) bool {
	return strings.Contains(text, "[AUTO-CONVERTED]")
}

// Item is one exercise as decoded from JSON or YAML. Values keep their
// decoded dynamic types; accessors convert leniently and never panic.
type Item map[string]any

// Has reports whether key is present with a non-null value.
func (it Item) Has(key string) bool {
	v, ok := it[key]
	return ok && v != nil
}

// ID returns the item id as a string.
func (it Item) ID() string { return it.Str("id") }

// Str returns the value of key rendered as a string. Numbers are formatted
// without trailing zeros; missing or non-scalar values yield "".
func (it Item) Str(key string) string {
	return scalarString(it[key])
}

// Int returns key as an integer if it holds an integral number (or a string
// holding one).
func (it Item) Int(key string) (int, bool) {
	f, ok := it.Float(key)
	if !ok || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

// Float returns key as a float64 if it holds a number.
func (it Item) Float(key string) (float64, bool) {
	return toFloat(it[key])
}

// Bool returns key as a bool; the strings "true"/"ja" count as true.
func (it Item) Bool(key string) bool {
	switch v := it[key].(type) {
	case bool:
		return v
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s == "true" || s == "ja"
	default:
		return false
	}
}

// Strings returns key as a list of strings. A single scalar becomes a
// one-element list.
func (it Item) Strings(key string) []string {
	switch v := it[key].(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			out = append(out, scalarString(e))
		}
		return out
	case []string:
		return v
	default:
		if s := scalarString(v); s != "" {
			return []string{s}
		}
		return nil
	}
}

// Map returns key as a nested item, or nil.
func (it Item) Map(key string) Item {
	return toItem(it[key])
}

// List returns key as a list of nested items; non-object entries are skipped.
func (it Item) List(key string) []Item {
	raw, ok := it[key].([]any)
	if !ok {
		return nil
	}
	out := make([]Item, 0, len(raw))
	for _, e := range raw {
		if m := toItem(e); m != nil {
			out = append(out, m)
		}
	}
	return out
}

// Len returns the length of a list value, or -1 when key is not a list.
func (it Item) Len(key string) int {
	switch v := it[key].(type) {
	case []any:
		return len(v)
	case []string:
		return len(v)
	default:
		return -1
	}
}

// Text concatenates the string values of the given keys, skipping empty ones.
func (it Item) Text(keys ...string) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if s := strings.TrimSpace(it.Str(k)); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// Clone returns a deep copy made through a JSON round trip.
func (it Item) Clone() Item {
	data, err := json.Marshal(it)
	if err != nil {
		return nil
	}
	var out Item
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}

func toItem(v any) Item {
	switch m := v.(type) {
	case Item:
		return m
	case map[string]any:
		return Item(m)
	default:
		return nil
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(n), ",", "."), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func scalarString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case json.Number:
		return s.String()
	default:
		if f, ok := toFloat(v); ok {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		return ""
	}
}
