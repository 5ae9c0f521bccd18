package lezen

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/TomLouwers/websitesara/internal/validate"
)

const (
	// lengthTolerance is how far tekst_lengte_woorden may be off, in words.
	lengthTolerance = 5
	// timeTolerance is how far totale_tijd_sec may be off the estimate, in seconds.
	timeTolerance = 60
	// distributionTolerance is the allowed deviation of a question-type share.
	distributionTolerance = 0.25
	// distributionMinQuestions is the smallest set a distribution is judged on.
	distributionMinQuestions = 3
)

func questions(it item.Item) []item.Item { return it.List("vragen") }

// prose is the text with drawn pictures removed.
func prose(it item.Item) string {
	return validate.StripVisuals(it.Str("tekst"))
}

func checkTextMeta(c *validate.Context[Rule]) {
	if avi := strings.TrimSpace(c.Item.Str("avi_niveau")); avi != "" && !rules.Contains(c.Rule.AVI, avi) {
		c.Warnf("avi_niveau %s is unusual at %s (expected %s)", avi, c.Key, strings.Join(c.Rule.AVI, " or "))
	}
	if soort := strings.TrimSpace(c.Item.Str("tekstsoort")); soort != "" && !rules.Contains(c.Rule.TextTypes, soort) {
		c.Warnf("tekstsoort %q is not expected at %s", soort, c.Key)
	}
}

func checkLength(c *validate.Context[Rule]) {
	words := validate.WordCount(prose(c.Item))
	if words == 0 {
		c.Error("tekst is empty")
		return
	}
	if !c.Rule.Length.Contains(float64(words)) {
		c.Errorf("text has %d words, expected %s at %s", words, c.Rule.Length, c.Key)
	}
	if declared, ok := c.Item.Int("tekst_lengte_woorden"); ok {
		if diff := declared - words; diff > lengthTolerance || diff < -lengthTolerance {
			c.Warnf("tekst_lengte_woorden is %d but the text has %d words (tolerance ±%d)", declared, words, lengthTolerance)
		}
	}
}

func checkSentences(c *validate.Context[Rule]) {
	if c.Rule.MaxSentenceWords == 0 {
		return
	}
	over, longest := 0, 0
	for _, s := range validate.Sentences(prose(c.Item)) {
		n := validate.WordCount(s)
		if n > c.Rule.MaxSentenceWords {
			over++
		}
		longest = max(longest, n)
	}
	switch {
	case over == 0:
	case longest > c.Rule.MaxSentenceWords+5:
		c.Errorf("%d sentences exceed %d words; the longest has %d", over, c.Rule.MaxSentenceWords, longest)
	default:
		c.Warnf("%d sentences exceed %d words; the longest has %d", over, c.Rule.MaxSentenceWords, longest)
	}
}

func checkParagraphs(c *validate.Context[Rule]) {
	if c.Rule.MinParagraphs == 0 {
		return
	}
	if n := len(validate.Paragraphs(c.Item.Str("tekst"))); n < c.Rule.MinParagraphs {
		c.Warnf("text has %d paragraphs, at least %d expected from %s", n, c.Rule.MinParagraphs, c.Key)
	}
}

func checkVisual(c *validate.Context[Rule]) {
	texts := []string{c.Item.Str("tekst")}
	present := false
	for _, q := range questions(c.Item) {
		texts = append(texts, q.Str("hoofdvraag"))
		present = present || validate.HasVisual(q, nil, nil)
	}
	present = present || validate.HasVisual(c.Item, texts, nil)
	validate.CheckVisual(c.Report, c.Rule.Visual, present, fmt.Sprintf("G%d", c.Key.Grade))
}

// checkDistribution compares the share of each targeted question type with
// its target.
func checkDistribution(c *validate.Context[Rule]) {
	qs := questions(c.Item)
	if len(qs) < distributionMinQuestions || len(c.Rule.Distribution) == 0 {
		return
	}
	counts := map[string]int{}
	for _, q := range qs {
		counts[strings.ToLower(strings.TrimSpace(q.Str("vraagtype")))]++
	}
	types := make([]string, 0, len(c.Rule.Distribution))
	for t := range c.Rule.Distribution {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		share := float64(counts[t]) / float64(len(qs))
		target := c.Rule.Distribution[t]
		if math.Abs(share-target) > distributionTolerance {
			c.Warnf("vraagtype %s makes up %.0f%% of the questions, target is %.0f%% (±%.0f%%)", t, share*100, target*100, distributionTolerance*100)
		}
	}
}

// EstimateSeconds estimates the time an item takes: reading the text at the
// DMT speed plus the estimated time of each question.
func EstimateSeconds(it item.Item, dmt float64) float64 {
	words := validate.WordCount(prose(it))
	est := float64(words) / dmt * 60
	for _, q := range questions(it) {
		if t, ok := q.Float("geschatte_tijd_sec"); ok {
			est += t
		}
	}
	return est
}

func checkMetadata(c *validate.Context[Rule]) {
	validate.CheckDifficulty(c.Report, c.Item, "moeilijkheidsgraad", c.Rule.Difficulty)
	validate.CheckDuration(c.Report, c.Item, "totale_tijd_sec", c.Rule.Time, "s")
}

func checkReadingTime(c *validate.Context[Rule]) {
	total, ok := c.Item.Float("totale_tijd_sec")
	if !ok {
		return
	}
	est := EstimateSeconds(c.Item, c.Rule.DMT)
	if math.Abs(total-est) > timeTolerance {
		c.Warnf("totale_tijd_sec is %s but reading at %s words/min plus the questions takes about %.0fs (tolerance ±%ds)",
			validate.FormatNumber(total), validate.FormatNumber(c.Rule.DMT), est, timeTolerance)
	}
}
