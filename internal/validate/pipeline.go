package validate

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/rules"
)

// Step is one named check over an item and its rule entry. Steps only
// append findings to the context's report; they never modify the item.
type Step[R any] struct {
	Name string
	Run  func(c *Context[R])
}

// Context is what a step sees: the item, its (grade, level) key, the rule
// entry for that key and the report to write findings to.
type Context[R any] struct {
	*Report
	Item item.Item
	Key  rules.Key
	Rule R
}

// Pipeline runs the fixed check order shared by all domains:
// required fields, id format, grade/level + rule lookup, then the domain's
// own steps in declared order. The first three gate the rest.
type Pipeline[R any] struct {
	Domain    string
	Shape     item.Shape
	IDPattern *regexp.Regexp
	IDFormat  string
	Book      rules.Book[R]
	Steps     []Step[R]
	Scoring   Scoring
}

// Validate checks one item. It is deterministic and keeps no state between
// calls, so one Pipeline may serve concurrent callers.
func (p *Pipeline[R]) Validate(it item.Item) *Result {
	rep := &Report{}
	p.run(it, rep)
	return rep.Result(it.ID(), p.Domain, p.Scoring)
}

func (p *Pipeline[R]) run(it item.Item, rep *Report) {
	shapeErrs := item.CheckShape(p.Shape, it)
	for _, m := range shapeErrs {
		rep.Error(m)
	}
	CheckID(rep, it.ID(), p.IDPattern, p.IDFormat)
	if len(shapeErrs) > 0 {
		return
	}

	key, ok := GradeLevel(rep, it)
	if !ok {
		return
	}
	rule, ok := p.Book.Lookup(key)
	if !ok {
		slog.Debug("rule lookup missed", "domain", p.Domain, "key", key.String(), "id", it.ID())
		rep.Errorf("no rules for this combination: %s has no %s rule entry", key, p.Domain)
		return
	}

	c := &Context[R]{Report: rep, Item: it, Key: key, Rule: rule}
	for _, s := range p.Steps {
		runStep(s, c)
	}
}

// runStep keeps a failing heuristic from aborting the whole validation; the
// item is marked invalid instead of crashing the batch.
func runStep[R any](s Step[R], c *Context[R]) {
	defer func() {
		if v := recover(); v != nil {
			slog.Debug("check panicked", "key", c.Key.String(), "step", s.Name, "id", c.Item.ID(), "panic", v)
			c.Errorf("check %q could not complete on this item", s.Name)
		}
	}()
	s.Run(c)
}

var idGradeLevelRe = regexp.MustCompile(`_G(\d)_([ME])_`)

// CheckID warns when a non-empty id does not follow the domain pattern.
func CheckID(r *Report, id string, pattern *regexp.Regexp, format string) {
	if id == "" || pattern == nil {
		return
	}
	if !pattern.MatchString(id) {
		r.Warnf("id %q does not match the expected format %s", id, format)
	}
}

// GradeLevel reads groep/niveau and rejects values outside 3..8 and M/E.
// An id that encodes a different grade or level is a warning.
func GradeLevel(r *Report, it item.Item) (rules.Key, bool) {
	grade, ok := it.Int("groep")
	if !ok || grade < rules.MinGrade || grade > rules.MaxGrade {
		r.Errorf("groep must be an integer in %d..%d, got %q", rules.MinGrade, rules.MaxGrade, it.Str("groep"))
		return rules.Key{}, false
	}
	level, ok := rules.ParseLevel(it.Str("niveau"))
	if !ok {
		r.Errorf("niveau must be M or E, got %q", it.Str("niveau"))
		return rules.Key{}, false
	}
	key := rules.K(grade, level)

	if m := idGradeLevelRe.FindStringSubmatch(it.ID()); m != nil {
		idGrade, _ := strconv.Atoi(m[1])
		if idGrade != grade || rules.Level(m[2]) != level {
			r.Warnf("id %q encodes G%s-%s but groep/niveau say %s", it.ID(), m[1], m[2], key)
		}
	}
	return key, true
}

// Common adapts a rule-independent check to a step of any pipeline.
func Common[R any](name string, fn func(it item.Item, r *Report)) Step[R] {
	return Step[R]{Name: name, Run: func(c *Context[R]) { fn(c.Item, c.Report) }}
}

// IDPattern builds the standard "<PREFIX>_G<3-8>_<M|E>_<NNN>" pattern.
func IDPattern(prefix string) (*regexp.Regexp, string) {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `_G[3-8]_[ME]_\d{3}$`),
		fmt.Sprintf("%s_G<3-8>_<M|E>_<NNN>", prefix)
}
