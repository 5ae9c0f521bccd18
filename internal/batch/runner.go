// Package batch runs validators over item files and reports the results.
package batch

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	"github.com/TomLouwers/websitesara/internal/domain"
	"github.com/TomLouwers/websitesara/internal/getallen"
	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/legacy"
	"github.com/TomLouwers/websitesara/internal/validate"
)

var (
	// ErrInvalidItems is returned by Run.Err when at least one item failed.
	ErrInvalidItems = errors.New("one or more items are invalid")

	// ErrWarnings is returned by Run.Err when warnings are treated as failures.
	ErrWarnings = errors.New("one or more items have warnings")

	// ErrNoFiles is returned when the patterns match no file.
	ErrNoFiles = errors.New("no input files matched")
)

// Runner validates files item by item, in file order.
type Runner struct {
	registry *domain.Registry
	forced   domain.Validator
}

// NewRunner returns a runner. A non-empty forceDomain sends every
// current-shape item to that domain's validator instead of inferring it.
func NewRunner(reg *domain.Registry, forceDomain string) (*Runner, error) {
	r := &Runner{registry: reg}
	if forceDomain != "" {
		v, err := reg.Get(forceDomain)
		if err != nil {
			return nil, err
		}
		r.forced = v
	}
	return r, nil
}

// FileResult holds the results of one file, in item order.
type FileResult struct {
	Path string `json:"path"`

	// Converted is set when the file used the legacy multiple-choice shape.
	Converted bool               `json:"converted,omitempty"`
	Results   []*validate.Result `json:"results"`

	// positions counts the correct-answer letter of ratio items.
	positions map[string]int
}

// Run is the outcome of validating a set of files.
type Run struct {
	Summary Summary      `json:"summary"`
	Files   []FileResult `json:"files"`
}

// Err reports the run verdict: ErrInvalidItems when any item is invalid,
// ErrWarnings when failOnWarnings is set and any item has warnings.
func (r *Run) Err(failOnWarnings bool) error {
	switch {
	case r.Summary.Invalid > 0:
		return fmt.Errorf("%w: %d of %d", ErrInvalidItems, r.Summary.Invalid, r.Summary.Items)
	case failOnWarnings && r.Summary.Warnings > 0:
		return fmt.Errorf("%w: %d warnings", ErrWarnings, r.Summary.Warnings)
	}
	return nil
}

// Expand resolves glob patterns (content/**/*.json) to a sorted list of
// files. A pattern without glob characters is kept as is so that a missing
// file surfaces as a read error.
func Expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, p := range patterns {
		matches, err := doublestar.FilepathGlob(p, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		if len(matches) == 0 && !hasMeta(p) {
			matches = []string{p}
		}
		sort.Strings(matches)
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	if len(out) == 0 {
		return nil, ErrNoFiles
	}
	return out, nil
}

func hasMeta(p string) bool {
	for _, c := range p {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// RunFiles validates every file in order. A file that cannot be read or
// decoded stops the run.
func (r *Runner) RunFiles(paths []string) (*Run, error) {
	run := &Run{}
	started := time.Now()
	for _, p := range paths {
		fr, err := r.RunFile(p)
		if err != nil {
			return nil, err
		}
		run.Files = append(run.Files, *fr)
	}
	run.Summary = Summarize(run.Files)
	run.Summary.StartedAt = started
	slog.Debug("validation run finished", "run_id", run.Summary.RunID, "files", len(paths), "items", run.Summary.Items, "elapsed", time.Since(started))
	return run, nil
}

// RunFile loads and validates one file. Legacy files are converted first.
func (r *Runner) RunFile(path string) (*FileResult, error) {
	doc, err := item.Load(path)
	if err != nil {
		return nil, err
	}
	fr := &FileResult{Path: path}
	items := doc.Items
	if doc.Legacy != nil {
		items, err = legacy.ConvertData(doc.Legacy)
		if err != nil {
			return nil, fmt.Errorf("convert %s: %w", path, err)
		}
		fr.Converted = true
		slog.Debug("converted legacy file", "path", path, "items", len(items))
	}
	fr.Results, fr.positions = r.validateAll(items, fr.Converted)
	return fr, nil
}

// ValidateItems validates items already in memory.
func (r *Runner) ValidateItems(items []item.Item) []*validate.Result {
	res, _ := r.validateAll(items, false)
	return res
}

func (r *Runner) validateAll(items []item.Item, converted bool) ([]*validate.Result, map[string]int) {
	results := make([]*validate.Result, 0, len(items))
	positions := make(map[string]int)
	for _, it := range items {
		v := r.validatorFor(it, converted)
		results = append(results, v.Validate(it))
		if pos, ok := answerPosition(v.Name(), it); ok {
			positions[pos]++
		}
	}
	return results, positions
}

func (r *Runner) validatorFor(it item.Item, converted bool) domain.Validator {
	if converted {
		// Legacy files only ever held arithmetic.
		v, _ := r.registry.Get(getallen.Name)
		return v
	}
	if r.forced != nil {
		return r.forced
	}
	return r.registry.ForItem(it)
}

func newRunID() string { return uuid.New().String() }
