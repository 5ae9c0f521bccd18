// Package legacy converts the old multiple-choice arithmetic file format
// into current-shape arithmetic items.
//
// A converted item can never validate cleanly: its toelichting carries
// item.AutoConvertedMarker until an author writes a real explanation, and
// difficulty and time are left unknown.
package legacy

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/TomLouwers/websitesara/internal/validate"
)

var (
	// ErrUnsupportedVersion is returned for schema versions other than v1.x.
	ErrUnsupportedVersion = errors.New("unsupported legacy schema version")

	// ErrBadMetadata is returned when metadata.grade or metadata.level is unusable.
	ErrBadMetadata = errors.New("legacy metadata needs a grade in 3..8 and level M or E")
)

// AssetPlaceholder is listed in assets when the legacy question drew or
// referenced a picture.
const AssetPlaceholder = "[PLACEHOLDER] afbeelding uit de legacy-vraag overnemen"

// File is a legacy multiple-choice file.
type File struct {
	SchemaVersion string   `json:"schema_version,omitempty"`
	Metadata      Metadata `json:"metadata"`
	Items         []Item   `json:"items"`
}

// Metadata holds the grade and level shared by all items of a file.
type Metadata struct {
	Grade json.Number `json:"grade"`
	Level string      `json:"level"`
}

// Item is one legacy question.
type Item struct {
	ID       json.RawMessage `json:"id"`
	Question struct {
		Text string `json:"text"`
	} `json:"question"`
	Options []struct {
		Text json.RawMessage `json:"text"`
	} `json:"options"`
	Answer struct {
		CorrectIndex int `json:"correct_index"`
	} `json:"answer"`
	Theme string `json:"theme,omitempty"`
}

// Decode parses a legacy file and checks its schema version and metadata.
func Decode(data []byte) (*File, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode legacy file: %w", err)
	}
	if err := checkVersion(f.SchemaVersion); err != nil {
		return nil, err
	}
	if _, err := f.Key(); err != nil {
		return nil, err
	}
	return &f, nil
}

func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	sv := v
	if !strings.HasPrefix(sv, "v") {
		sv = "v" + sv
	}
	if !semver.IsValid(sv) || semver.Major(sv) != "v1" {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, v)
	}
	return nil
}

// Key returns the grade and level from the metadata.
func (f *File) Key() (rules.Key, error) {
	g, err := strconv.Atoi(strings.TrimSpace(f.Metadata.Grade.String()))
	if err != nil {
		return rules.Key{}, fmt.Errorf("%w: grade %q", ErrBadMetadata, f.Metadata.Grade)
	}
	lvl, ok := rules.ParseLevel(f.Metadata.Level)
	k := rules.K(g, lvl)
	if !ok || !k.Valid() {
		return rules.Key{}, fmt.Errorf("%w: got grade %d, level %q", ErrBadMetadata, g, f.Metadata.Level)
	}
	return k, nil
}

// Convert turns every legacy question into a current-shape arithmetic item,
// in file order.
func Convert(f *File) ([]item.Item, error) {
	k, err := f.Key()
	if err != nil {
		return nil, err
	}
	out := make([]item.Item, 0, len(f.Items))
	for i, li := range f.Items {
		it := convertItem(k, li, i+1)
		slog.Debug("converted legacy item", "legacy_id", string(li.ID), "id", it.ID(), "context_tag", it.Str("context_tag"))
		out = append(out, it)
	}
	return out, nil
}

// ConvertData decodes and converts a legacy file in one step.
func ConvertData(data []byte) ([]item.Item, error) {
	f, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Convert(f)
}

func convertItem(k rules.Key, li Item, pos int) item.Item {
	text := strings.TrimSpace(li.Question.Text)
	options := make([]string, len(li.Options))
	for i, o := range li.Options {
		options[i] = optionText(o.Text)
	}

	it := item.Item{
		"id":                 fmt.Sprintf("G_G%d_%s_%03d", k.Grade, k.Level, legacyNumber(li.ID, pos)),
		"groep":              float64(k.Grade),
		"niveau":             string(k.Level),
		"hoofdvraag":         text,
		"context_tag":        ContextTag(text, li.Theme),
		"has_visual":         HasVisual(text),
		"moeilijkheidsgraad": nil,
		"geschatte_tijd_sec": nil,
		"toelichting":        item.AutoConvertedMarker,
		"auto_converted":     true,
	}

	afleiders := make([]any, 0, len(options))
	if ci := li.Answer.CorrectIndex; ci >= 0 && ci < len(options) {
		it["correct_antwoord"] = options[ci]
		for i, o := range options {
			if i != ci {
				afleiders = append(afleiders, o)
			}
		}
	} else {
		// Leave correct_antwoord out so the structural check reports it.
		slog.Warn("legacy item has no valid correct_index", "legacy_id", string(li.ID), "correct_index", ci, "options", len(options))
		for _, o := range options {
			afleiders = append(afleiders, o)
		}
	}
	it["afleiders"] = afleiders

	if it.Bool("has_visual") {
		it["assets"] = []any{AssetPlaceholder}
	}
	return it
}

// optionText renders an option that may be written as a string or a number.
func optionText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(string(raw))
}

// legacyNumber extracts the numeric part of a legacy id (1, "7", "q12");
// ids without digits fall back to the position in the file.
func legacyNumber(raw json.RawMessage, pos int) int {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, string(raw))
	if n, err := strconv.Atoi(digits); err == nil && n > 0 && n < 1000 {
		return n
	}
	return pos
}

// HasVisual reports whether a legacy question draws a picture with emoji
// blocks or box-drawing glyphs, or refers to one as "plaatje" or "afbeelding".
func HasVisual(text string) bool {
	if validate.HasVisualGlyphs(text) {
		return true
	}
	_, ok := validate.FirstWord(text, []string{"plaatje", "afbeelding"})
	return ok
}
