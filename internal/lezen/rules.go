// Package lezen validates reading-comprehension items: one text with a
// list of multiple-choice questions about it.
package lezen

import (
	"fmt"

	"github.com/TomLouwers/websitesara/internal/rules"
)

// Question types.
const (
	Letterlijk    = "letterlijk"
	Inferentie    = "inferentie"
	Evaluatie     = "evaluatie"
	Hoofdgedachte = "hoofdgedachte"
	Mening        = "mening"
	Volgorde      = "volgorde"
	Woordenschat  = "woordenschat"
	Structuur     = "structuur"
	Retorisch     = "retorisch"
)

// QuestionTypes is the question-type taxonomy.
var QuestionTypes = rules.NewSet(Letterlijk, Inferentie, Evaluatie, Hoofdgedachte, Mening, Volgorde, Woordenschat, Structuur, Retorisch)

// RALFIFocus are the reading skills a question may be tagged with.
var RALFIFocus = rules.NewSet("R", "A", "L", "F", "I")

// Rule constrains reading items of one (grade, level).
type Rule struct {
	AVI       []string    `json:"avi"`
	TextTypes []string    `json:"text_types"`
	Length    rules.Range `json:"length_words"`

	MaxSentenceWords int `json:"max_sentence_words"`
	MinParagraphs    int `json:"min_paragraphs,omitempty"`

	QuestionTypes []string `json:"question_types"`
	// Distribution is the target share per question type.
	Distribution map[string]float64 `json:"distribution"`
	Questions    rules.Range        `json:"questions"`
	// ForbiddenOpeners are question phrasings not asked at this level.
	ForbiddenOpeners []string `json:"forbidden_openers,omitempty"`
	RALFI            bool     `json:"ralfi"`

	Visual rules.Visual `json:"visual"`

	// DMT is the average reading speed in words per minute.
	DMT        float64     `json:"dmt_wpm"`
	Time       rules.Range `json:"total_time_sec"`
	Difficulty rules.Range `json:"difficulty"`
}

// Check keeps the question types within the taxonomy and the target
// distribution within the allowed types.
func (r Rule) Check() error {
	for _, t := range r.QuestionTypes {
		if !QuestionTypes.Has(t) {
			return fmt.Errorf("unknown question type %q", t)
		}
	}
	sum := 0.0
	for t, share := range r.Distribution {
		if !rules.Contains(r.QuestionTypes, t) {
			return fmt.Errorf("distribution names %q, which is not an allowed question type", t)
		}
		sum += share
	}
	if sum > 1.0001 {
		return fmt.Errorf("distribution shares add up to %.2f", sum)
	}
	if r.Length.Min > r.Length.Max {
		return fmt.Errorf("text length %s is empty", r.Length)
	}
	if r.DMT <= 0 {
		return fmt.Errorf("no DMT reading speed")
	}
	return nil
}

var (
	typesYoung = []string{Letterlijk, Inferentie, Volgorde, Woordenschat}
	typesMid   = []string{Letterlijk, Inferentie, Volgorde, Woordenschat, Hoofdgedachte, Mening}
	typesAll   = []string{Letterlijk, Inferentie, Evaluatie, Hoofdgedachte, Mening, Volgorde, Woordenschat, Structuur, Retorisch}

	textsYoung = []string{"verhaal", "informatief", "gedicht", "instructie"}
	textsMid   = []string{"verhaal", "informatief", "gedicht", "instructie", "brief", "nieuwsbericht", "recept"}
	textsAll   = []string{"verhaal", "informatief", "gedicht", "instructie", "brief", "nieuwsbericht", "recept", "betoog", "verslag", "recensie", "advertentie"}
)

var book = rules.MustBook("lezen", map[rules.Key]Rule{
	rules.K(3, rules.Mid): {
		AVI: []string{"M3"}, TextTypes: []string{"verhaal", "informatief"},
		Length: rules.R(30, 120), MaxSentenceWords: 8,
		QuestionTypes:    []string{Letterlijk, Volgorde, Woordenschat},
		Distribution:     map[string]float64{Letterlijk: 0.7},
		Questions:        rules.R(2, 4),
		ForbiddenOpeners: []string{"waarom", "hoe voelt"},
		Visual:           rules.VisualRequired,
		DMT:              25, Time: rules.R(60, 420), Difficulty: rules.R(0.1, 0.4),
	},
	rules.K(3, rules.End): {
		AVI: []string{"M3", "E3"}, TextTypes: textsYoung,
		Length: rules.R(50, 180), MaxSentenceWords: 10,
		QuestionTypes: typesYoung,
		Distribution:  map[string]float64{Letterlijk: 0.6, Inferentie: 0.2},
		Questions:     rules.R(3, 5),
		Visual:        rules.VisualRequired,
		DMT:           40, Time: rules.R(90, 480), Difficulty: rules.R(0.15, 0.5),
	},
	rules.K(4, rules.Mid): {
		AVI: []string{"E3", "M4"}, TextTypes: textsYoung,
		Length: rules.R(80, 250), MaxSentenceWords: 12, MinParagraphs: 2,
		QuestionTypes: typesYoung,
		Distribution:  map[string]float64{Letterlijk: 0.5, Inferentie: 0.3},
		Questions:     rules.R(3, 6), RALFI: true,
		Visual: rules.VisualStronglyRecommended,
		DMT:    52, Time: rules.R(120, 600), Difficulty: rules.R(0.2, 0.55),
	},
	rules.K(4, rules.End): {
		AVI: []string{"M4", "E4"}, TextTypes: textsMid,
		Length: rules.R(100, 300), MaxSentenceWords: 12, MinParagraphs: 2,
		QuestionTypes: typesMid,
		Distribution:  map[string]float64{Letterlijk: 0.45, Inferentie: 0.35},
		Questions:     rules.R(4, 6), RALFI: true,
		Visual: rules.VisualRecommended,
		DMT:    62, Time: rules.R(150, 660), Difficulty: rules.R(0.25, 0.6),
	},
	rules.K(5, rules.Mid): {
		AVI: []string{"E4", "M5"}, TextTypes: textsMid,
		Length: rules.R(150, 400), MaxSentenceWords: 14, MinParagraphs: 3,
		QuestionTypes: typesMid,
		Distribution:  map[string]float64{Letterlijk: 0.4, Inferentie: 0.35, Hoofdgedachte: 0.1},
		Questions:     rules.R(4, 7), RALFI: true,
		Visual: rules.VisualRecommended,
		DMT:    70, Time: rules.R(180, 720), Difficulty: rules.R(0.25, 0.65),
	},
	rules.K(5, rules.End): {
		AVI: []string{"M5", "E5"}, TextTypes: textsMid,
		Length: rules.R(180, 450), MaxSentenceWords: 15, MinParagraphs: 3,
		QuestionTypes: typesMid,
		Distribution:  map[string]float64{Letterlijk: 0.35, Inferentie: 0.35, Hoofdgedachte: 0.15},
		Questions:     rules.R(5, 8), RALFI: true,
		Visual: rules.VisualOptional,
		DMT:    77, Time: rules.R(200, 780), Difficulty: rules.R(0.3, 0.7),
	},
	rules.K(6, rules.Mid): {
		AVI: []string{"E5", "M6"}, TextTypes: textsAll,
		Length: rules.R(200, 500), MaxSentenceWords: 16, MinParagraphs: 3,
		QuestionTypes: typesAll,
		Distribution:  map[string]float64{Letterlijk: 0.3, Inferentie: 0.35, Hoofdgedachte: 0.15, Evaluatie: 0.1},
		Questions:     rules.R(5, 8), RALFI: true,
		Visual: rules.VisualOptional,
		DMT:    82, Time: rules.R(240, 840), Difficulty: rules.R(0.3, 0.75),
	},
	rules.K(6, rules.End): {
		AVI: []string{"M6", "E6"}, TextTypes: textsAll,
		Length: rules.R(250, 550), MaxSentenceWords: 17, MinParagraphs: 4,
		QuestionTypes: typesAll,
		Distribution:  map[string]float64{Letterlijk: 0.25, Inferentie: 0.35, Hoofdgedachte: 0.15, Evaluatie: 0.15},
		Questions:     rules.R(5, 8), RALFI: true,
		Visual: rules.VisualOptional,
		DMT:    87, Time: rules.R(240, 900), Difficulty: rules.R(0.35, 0.8),
	},
	rules.K(7, rules.Mid): {
		AVI: []string{"E6", "M7"}, TextTypes: textsAll,
		Length: rules.R(300, 650), MaxSentenceWords: 18, MinParagraphs: 4,
		QuestionTypes: typesAll,
		Distribution:  map[string]float64{Letterlijk: 0.2, Inferentie: 0.35, Hoofdgedachte: 0.15, Evaluatie: 0.15, Structuur: 0.1},
		Questions:     rules.R(6, 10), RALFI: true,
		Visual: rules.VisualOptional,
		DMT:    91, Time: rules.R(300, 960), Difficulty: rules.R(0.35, 0.85),
	},
	rules.K(7, rules.End): {
		AVI: []string{"M7", "E7"}, TextTypes: textsAll,
		Length: rules.R(350, 700), MaxSentenceWords: 19, MinParagraphs: 4,
		QuestionTypes: typesAll,
		Distribution:  map[string]float64{Letterlijk: 0.2, Inferentie: 0.3, Hoofdgedachte: 0.15, Evaluatie: 0.2, Structuur: 0.1},
		Questions:     rules.R(6, 10), RALFI: true,
		Visual: rules.VisualOptional,
		DMT:    95, Time: rules.R(300, 1020), Difficulty: rules.R(0.4, 0.9),
	},
	rules.K(8, rules.Mid): {
		AVI: []string{"E7", "PLUS"}, TextTypes: textsAll,
		Length: rules.R(400, 800), MaxSentenceWords: 20, MinParagraphs: 5,
		QuestionTypes: typesAll,
		Distribution:  map[string]float64{Letterlijk: 0.15, Inferentie: 0.3, Hoofdgedachte: 0.15, Evaluatie: 0.2, Structuur: 0.1},
		Questions:     rules.R(6, 12), RALFI: true,
		Visual: rules.VisualOptional,
		DMT:    99, Time: rules.R(360, 1200), Difficulty: rules.R(0.4, 0.95),
	},
	rules.K(8, rules.End): {
		AVI: []string{"E7", "PLUS"}, TextTypes: textsAll,
		Length: rules.R(400, 900), MaxSentenceWords: 22, MinParagraphs: 5,
		QuestionTypes: typesAll,
		Distribution:  map[string]float64{Letterlijk: 0.15, Inferentie: 0.3, Hoofdgedachte: 0.15, Evaluatie: 0.2, Structuur: 0.1},
		Questions:     rules.R(6, 12), RALFI: true,
		Visual: rules.VisualOptional,
		DMT:    103, Time: rules.R(360, 1320), Difficulty: rules.R(0.45, 1),
	},
})
