// Package validate holds the engine shared by every domain validator: the
// finding accumulators, the result and its score, the ordered check
// pipeline, and the checks and text heuristics common to all domains.
package validate

import (
	"fmt"
	"math"
)

// Report accumulates the findings of one validation call. A Report is not
// shared between calls.
type Report struct {
	errors   []string
	warnings []string
	infos    []string
}

// Error records a violated constraint; the item becomes invalid.
func (r *Report) Error(msg string) { r.errors = append(r.errors, msg) }

// Errorf is Error with formatting.
func (r *Report) Errorf(format string, args ...any) { r.Error(fmt.Sprintf(format, args...)) }

// Criticalf records an error for one of the named critical rules
// (half-hour reading, dt-rule, tussen-n).
func (r *Report) Criticalf(format string, args ...any) {
	r.Error("CRITICAL: " + fmt.Sprintf(format, args...))
}

// Warn records a soft constraint violation; the item stays valid.
func (r *Report) Warn(msg string) { r.warnings = append(r.warnings, msg) }

// Warnf is Warn with formatting.
func (r *Report) Warnf(format string, args ...any) { r.Warn(fmt.Sprintf(format, args...)) }

// Info records a diagnostic note.
func (r *Report) Info(msg string) { r.infos = append(r.infos, msg) }

// Infof is Info with formatting.
func (r *Report) Infof(format string, args ...any) { r.Info(fmt.Sprintf(format, args...)) }

// ErrorCount returns the number of errors recorded so far.
func (r *Report) ErrorCount() int { return len(r.errors) }

// Result freezes the report into a Result.
func (r *Report) Result(id, domain string, sc Scoring) *Result {
	res := &Result{
		ID:             id,
		Domain:         domain,
		Errors:         append([]string{}, r.errors...),
		Warnings:       append([]string{}, r.warnings...),
		Infos:          append([]string{}, r.infos...),
		ScoringVersion: sc.Version,
	}
	res.Valid = len(res.Errors) == 0
	res.Score = sc.Score(len(res.Errors), len(res.Warnings))
	res.QualityBreakdown = Breakdown(res.Errors, res.Warnings)
	return res
}

// Result is the verdict for one item.
type Result struct {
	ID               string               `json:"id" jsonschema:"description=Item id as found in the input"`
	Domain           string               `json:"domain"`
	Valid            bool                 `json:"valid" jsonschema:"description=True iff errors is empty"`
	Errors           []string             `json:"errors"`
	Warnings         []string             `json:"warnings"`
	Infos            []string             `json:"infos"`
	Score            float64              `json:"score" jsonschema:"minimum=0,maximum=1"`
	ScoringVersion   string               `json:"scoring_version"`
	QualityBreakdown map[Category]float64 `json:"quality_breakdown,omitempty"`
}

// Scoring is a versioned score formula:
// clamp(1 - ErrorPenalty*errors - WarningPenalty*warnings, 0, 1).
type Scoring struct {
	Version        string
	ErrorPenalty   float64
	WarningPenalty float64
}

var (
	// Standard is used by every domain except verhoudingen.
	Standard = Scoring{Version: "v1", ErrorPenalty: 0.15, WarningPenalty: 0.05}

	// Strict weighs errors heavier; used by verhoudingen.
	Strict = Scoring{Version: "v1-strict", ErrorPenalty: 0.20, WarningPenalty: 0.05}
)

// Score applies the formula. The result is rounded to four decimals so that
// reports do not show floating-point noise.
func (s Scoring) Score(errors, warnings int) float64 {
	return clamp01(1 - s.ErrorPenalty*float64(errors) - s.WarningPenalty*float64(warnings))
}

func clamp01(v float64) float64 {
	v = math.Round(v*10000) / 10000
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
