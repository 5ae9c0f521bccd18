package lezen

import (
	"fmt"
	"strings"

	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/TomLouwers/websitesara/internal/validate"
)

// maxLengthDeviation is how much a distractor may differ in length from the
// correct answer before it stands out.
const maxLengthDeviation = 0.5

func checkQuestions(c *validate.Context[Rule]) {
	qs := questions(c.Item)
	if len(qs) == 0 {
		c.Error("vragen is empty")
		return
	}
	if !c.Rule.Questions.Contains(float64(len(qs))) {
		c.Warnf("%d questions; %s expected at %s", len(qs), c.Rule.Questions, c.Key)
	}
	for i, q := range qs {
		checkQuestion(c, i+1, q)
	}
}

func checkQuestion(c *validate.Context[Rule], n int, q item.Item) {
	label := fmt.Sprintf("vraag %d", n)
	vraag := strings.TrimSpace(q.Str("hoofdvraag"))
	if vraag == "" {
		c.Errorf("%s: hoofdvraag is missing", label)
	}
	if strings.TrimSpace(q.Str("correct_antwoord")) == "" {
		c.Errorf("%s: correct_antwoord is missing", label)
	}

	switch t := strings.ToLower(strings.TrimSpace(q.Str("vraagtype"))); {
	case t == "":
		c.Warnf("%s: vraagtype is missing", label)
	case !QuestionTypes.Has(t):
		c.Errorf("%s: unknown vraagtype %q", label, t)
	case !rules.Contains(c.Rule.QuestionTypes, t):
		c.Warnf("%s: vraagtype %s is unusual at %s", label, t, c.Key)
	}

	if opener, ok := forbiddenOpener(vraag, c.Rule.ForbiddenOpeners); ok {
		c.Errorf("%s: %q questions are not asked at %s", label, opener, c.Key)
	}

	checkRALFI(c, label, q)

	correct := q.Str("correct_antwoord")
	distractors := q.Strings("afleiders")
	validate.CheckDistractors(c.Report, correct, distractors, validate.DistractorSpec{Label: label + ": afleiders", Min: 2, Max: 4})
	if cl := len([]rune(strings.TrimSpace(correct))); cl > 0 {
		for _, d := range distractors {
			dl := len([]rune(strings.TrimSpace(d)))
			if dl == 0 {
				continue
			}
			if dev := float64(dl-cl) / float64(cl); dev > maxLengthDeviation || dev < -maxLengthDeviation {
				c.Warnf("%s: distractor %q differs more than 50%% in length from the correct answer", label, d)
			}
		}
	}
	if ci := strings.TrimSpace(correct); len([]rune(ci)) > 3 && validate.ContainsWord(q.Str("hoofdvraag"), ci) {
		c.Infof("%s: the correct answer appears verbatim in the question", label)
	}

	validate.CheckDifficulty(c.Report, q, "moeilijkheidsgraad", c.Rule.Difficulty)
	if expl := q.Str("toelichting"); item.IsAutoConverted(expl) {
		validate.CheckExplanation(c.Report, expl, false, 0)
	}
}

// forbiddenOpener returns the forbidden phrasing a question uses.
func forbiddenOpener(vraag string, openers []string) (string, bool) {
	for _, o := range openers {
		if validate.ContainsWord(vraag, o) {
			return o, true
		}
	}
	return "", false
}

func checkRALFI(c *validate.Context[Rule], label string, q item.Item) {
	if !q.Has("ralfi_focus") {
		return
	}
	focus := strings.ToUpper(strings.TrimSpace(q.Str("ralfi_focus")))
	switch {
	case !c.Rule.RALFI:
		c.Infof("%s: ralfi_focus is not used before G4", label)
	case focus == "" || RALFIFocus.Has(focus):
	default:
		c.Errorf("%s: ralfi_focus %q must be one of R, A, L, F, I or null", label, q.Str("ralfi_focus"))
	}
}
