package batch

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/verhoudingen"
)

// Above positionShare of the ratio items at one letter the summary flags a
// predictable answer key; runs with fewer than minPositionItems are not judged.
const (
	positionShare    = 0.5
	minPositionItems = 4
)

// Summary aggregates a run.
type Summary struct {
	RunID     string    `json:"run_id" jsonschema:"description=Random id of this validation run"`
	StartedAt time.Time `json:"started_at"`
	Files     int       `json:"files"`
	Items     int       `json:"items"`
	Valid     int       `json:"valid"`
	Invalid   int       `json:"invalid"`
	Errors    int       `json:"errors"`
	Warnings  int       `json:"warnings"`
	Infos     int       `json:"infos"`

	// AverageScore is the mean item score, 0 for an empty run.
	AverageScore float64                  `json:"average_score"`
	Domains      map[string]DomainSummary `json:"domains"`

	// AnswerPositions counts the letter (A..D) of the correct answer over
	// all ratio items whose answer ids encode a position.
	AnswerPositions map[string]int `json:"answer_positions,omitempty"`
	Notes           []string       `json:"notes,omitempty"`
}

// DomainSummary counts the items of one domain.
type DomainSummary struct {
	Items        int     `json:"items"`
	Invalid      int     `json:"invalid"`
	AverageScore float64 `json:"average_score"`
}

// Summarize aggregates file results.
func Summarize(files []FileResult) Summary {
	s := Summary{
		RunID:   newRunID(),
		Files:   len(files),
		Domains: make(map[string]DomainSummary),
	}
	var total float64
	domainTotals := make(map[string]float64)
	positions := make(map[string]int)
	for _, f := range files {
		for _, r := range f.Results {
			s.Items++
			if r.Valid {
				s.Valid++
			} else {
				s.Invalid++
			}
			s.Errors += len(r.Errors)
			s.Warnings += len(r.Warnings)
			s.Infos += len(r.Infos)
			total += r.Score

			d := s.Domains[r.Domain]
			d.Items++
			if !r.Valid {
				d.Invalid++
			}
			s.Domains[r.Domain] = d
			domainTotals[r.Domain] += r.Score
		}
		for pos, n := range f.positions {
			positions[pos] += n
		}
	}
	if s.Items > 0 {
		s.AverageScore = round2(total / float64(s.Items))
	}
	for name, d := range s.Domains {
		d.AverageScore = round2(domainTotals[name] / float64(d.Items))
		s.Domains[name] = d
	}
	if len(positions) > 0 {
		s.AnswerPositions = positions
		s.Notes = positionNotes(positions)
	}
	return s
}

// DomainNames returns the domains of the run, sorted.
func (s Summary) DomainNames() []string {
	names := make([]string, 0, len(s.Domains))
	for n := range s.Domains {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func answerPosition(domainName string, it item.Item) (string, bool) {
	if domainName != verhoudingen.Name {
		return "", false
	}
	return verhoudingen.AnswerPosition(it)
}

func positionNotes(positions map[string]int) []string {
	n := 0
	for _, c := range positions {
		n += c
	}
	letters := []string{"A", "B", "C", "D"}
	parts := make([]string, 0, len(letters))
	for _, l := range letters {
		parts = append(parts, fmt.Sprintf("%s=%d", l, positions[l]))
	}
	notes := []string{"correct answer positions: " + strings.Join(parts, " ")}
	if n < minPositionItems {
		return notes
	}
	for _, l := range letters {
		if share := float64(positions[l]) / float64(n); share > positionShare {
			notes = append(notes, fmt.Sprintf("the correct answer is at position %s in %.0f%% of ratio items; spread it over A..D", l, share*100))
		}
	}
	return notes
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
