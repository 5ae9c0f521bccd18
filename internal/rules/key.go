package rules

import (
	"fmt"
	"strings"
)

// Level is the checkpoint within a school year.
type Level string

const (
	Mid Level = "M" // midden, halfway the school year
	End Level = "E" // eind, end of the school year
)

// ParseLevel accepts "M" or "E" (case-insensitive, surrounding space ignored).
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "M":
		return Mid, true
	case "E":
		return End, true
	default:
		return "", false
	}
}

// MinGrade and MaxGrade bound the groepen covered by the rule books.
const (
	MinGrade = 3
	MaxGrade = 8
)

// Key identifies one rule-book entry.
type Key struct {
	Grade int
	Level Level
}

// K is shorthand for building keys in rule tables.
func K(grade int, level Level) Key {
	return Key{Grade: grade, Level: level}
}

func (k Key) String() string {
	return fmt.Sprintf("G%d-%s", k.Grade, k.Level)
}

// Valid reports whether the grade is within 3..8 and the level is M or E.
func (k Key) Valid() bool {
	return k.Grade >= MinGrade && k.Grade <= MaxGrade && (k.Level == Mid || k.Level == End)
}

// Ordinal maps the key onto a single increasing scale: G3-M=0, G3-E=1, G4-M=2, ...
func (k Key) Ordinal() int {
	o := (k.Grade - MinGrade) * 2
	if k.Level == End {
		o++
	}
	return o
}

// AtLeast reports whether k is the same checkpoint as other or later.
func (k Key) AtLeast(other Key) bool {
	return k.Ordinal() >= other.Ordinal()
}

// AllKeys returns every checkpoint from G3-M to G8-E in curriculum order.
func AllKeys() []Key {
	keys := make([]Key, 0, (MaxGrade-MinGrade+1)*2)
	for g := MinGrade; g <= MaxGrade; g++ {
		keys = append(keys, Key{g, Mid}, Key{g, End})
	}
	return keys
}

// ParseKey parses "G4-E", "g4e" or "4E".
func ParseKey(s string) (Key, error) {
	t := strings.ToUpper(strings.TrimSpace(s))
	t = strings.TrimPrefix(t, "G")
	t = strings.ReplaceAll(t, "-", "")
	t = strings.ReplaceAll(t, "_", "")
	if len(t) != 2 {
		return Key{}, fmt.Errorf("invalid grade/level %q: want e.g. G4-E", s)
	}
	grade := int(t[0] - '0')
	level, ok := ParseLevel(t[1:])
	k := Key{Grade: grade, Level: level}
	if !ok || !k.Valid() {
		return Key{}, fmt.Errorf("invalid grade/level %q: want e.g. G4-E", s)
	}
	return k, nil
}
