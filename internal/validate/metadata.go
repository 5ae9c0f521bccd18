package validate

import (
	"strings"

	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/rules"
)

// CheckDifficulty checks an optional difficulty in [0,1] against the level
// range. A null value (unknown, e.g. after legacy conversion) is an info.
func CheckDifficulty(r *Report, it item.Item, key string, want rules.Range) (float64, bool) {
	if _, present := it[key]; !present {
		return 0, false
	}
	if !it.Has(key) {
		r.Infof("%s is unknown; difficulty checks skipped", key)
		return 0, false
	}
	d, ok := it.Float(key)
	if !ok {
		r.Errorf("%s must be a number in 0..1, got %q", key, it.Str(key))
		return 0, false
	}
	if d < 0 || d > 1 {
		r.Errorf("%s %.2f outside 0..1", key, d)
		return d, true
	}
	if !want.Contains(d) {
		r.Warnf("%s %.2f outside the expected range %s for this level", key, d, want)
	}
	return d, true
}

// CheckDuration checks an optional non-negative duration against the level
// range. unit is used in messages only ("s" or "min").
func CheckDuration(r *Report, it item.Item, key string, want rules.Range, unit string) (float64, bool) {
	if _, present := it[key]; !present {
		return 0, false
	}
	if !it.Has(key) {
		r.Infof("%s is unknown; time checks skipped", key)
		return 0, false
	}
	t, ok := it.Float(key)
	if !ok {
		r.Errorf("%s must be a number, got %q", key, it.Str(key))
		return 0, false
	}
	if t < 0 {
		r.Errorf("%s must not be negative (%s%s)", key, FormatNumber(t), unit)
		return t, true
	}
	if !want.Contains(t) {
		r.Warnf("%s %s%s outside the expected time range %s%s for this level", key, FormatNumber(t), unit, want, unit)
	}
	return t, true
}

// CheckExplanation requires the toelichting where required, flags the
// legacy auto-conversion marker and warns on very short explanations.
func CheckExplanation(r *Report, text string, required bool, minLen int) {
	text = strings.TrimSpace(text)
	if item.IsAutoConverted(text) {
		r.Error("toelichting was auto-converted from the legacy format and requires manual completion")
		return
	}
	if text == "" {
		if required {
			r.Error("toelichting is missing")
		} else {
			r.Info("no toelichting provided")
		}
		return
	}
	if minLen > 0 && len([]rune(text)) < minLen {
		r.Warnf("toelichting is too short (%d characters, want at least %d)", len([]rune(text)), minLen)
	}
}

// CrossDifficultyTime flags a difficulty that does not match the time
// estimate: hard items with less than the minimum time, easy items with
// more than the maximum.
func CrossDifficultyTime(r *Report, difficulty float64, seconds float64, want rules.Range) {
	if want.IsZero() {
		return
	}
	switch {
	case difficulty >= 0.7 && seconds < want.Min:
		r.Warnf("difficulty %.2f is high but the time estimate %ss is below the level minimum %ss", difficulty, FormatNumber(seconds), FormatNumber(want.Min))
	case difficulty <= 0.3 && seconds > want.Max:
		r.Warnf("difficulty %.2f is low but the time estimate %ss exceeds the level maximum %ss", difficulty, FormatNumber(seconds), FormatNumber(want.Max))
	}
}
