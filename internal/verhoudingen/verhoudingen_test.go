package verhoudingen

import (
	"strings"
	"testing"

	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/TomLouwers/websitesara/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ans(id, tekst string, waarde float64, correct bool, fouttype string) map[string]any {
	a := map[string]any{"id": id, "tekst": tekst, "waarde": waarde, "correct": correct}
	if fouttype != "" {
		a["fouttype"] = fouttype
	}
	return a
}

// kortingItem is a complete, valid G6-M percentage item.
func kortingItem() item.Item {
	return item.Item{
		"id":        "VH_G6_M_001",
		"groep":     float64(6),
		"niveau":    "M",
		"domein":    "Verhoudingen",
		"subdomein": "Procenten",
		"vraag": map[string]any{
			"context":    "Een jas kost €120. In de uitverkoop krijg je 25% korting.",
			"hoofdvraag": "Hoeveel euro korting krijg je?",
		},
		"antwoorden": []any{
			ans("A", "€30", 30, true, ""),
			ans("B", "€25", 25, false, "percentage_fout"),
			ans("C", "€90", 90, false, "complement_berekend"),
			ans("D", "€4,80", 4.8, false, "plaatswaarde_fout"),
		},
		"metadata": map[string]any{
			"moeilijkheidsgraad": 0.4,
			"geschatte_tijd_sec": float64(60),
			"stappen_aantal":     float64(1),
		},
		"didactiek": map[string]any{
			"conceptuitleg":      "Korting is een deel van de prijs; 25% is een kwart van het geheel.",
			"berekening_stappen": []any{"25% van 120 = 30"},
			"lova": map[string]any{
				"lezen":      "De jas kost 120 euro, de korting is 25%.",
				"ordenen":    "Gevraagd wordt het bedrag van de korting.",
				"vormen":     "Reken 25% van 120 uit: een kwart van 120.",
				"antwoorden": "De korting is 30 euro.",
			},
			"feedback": map[string]any{
				"correct":                  "Goed zo, een kwart van 120 is 30.",
				"fout_percentage_fout":     "Je nam het percentage zelf als bedrag.",
				"fout_complement_berekend": "Dit is de nieuwe prijs, niet de korting.",
				"fout_plaatswaarde_fout":   "Let op de plaats van de komma.",
			},
		},
	}
}

func setAnswers(it item.Item, list ...map[string]any) {
	out := make([]any, len(list))
	for i, a := range list {
		out[i] = a
	}
	it["antwoorden"] = out
}

func hasMessage(msgs []string, sub string) bool {
	for _, m := range msgs {
		if strings.Contains(m, sub) {
			return true
		}
	}
	return false
}

func countMessages(msgs []string, sub string) int {
	n := 0
	for _, m := range msgs {
		if strings.Contains(m, sub) {
			n++
		}
	}
	return n
}

func TestValidItem(t *testing.T) {
	res := New().Validate(kortingItem())
	assert.True(t, res.Valid, res.Errors)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, 1.0, res.Score)
	assert.Equal(t, "v1-strict", res.ScoringVersion)
}

func TestBook_StartsInGroep4(t *testing.T) {
	_, ok := Book().Lookup(rules.K(3, rules.End))
	assert.False(t, ok)
	_, ok = Book().Lookup(rules.K(4, rules.Mid))
	assert.True(t, ok)
	assert.Len(t, Book().Keys(), 10)

	it := kortingItem()
	it["id"] = "VH_G3_E_001"
	it["groep"] = float64(3)
	it["niveau"] = "E"
	res := New().Validate(it)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "no rules for this combination")
}

func TestDistractorClustering(t *testing.T) {
	tests := []struct {
		name        string
		distractors []float64
	}{
		{"25 28 32", []float64{25, 28, 32}},
		{"28 29 32", []float64{28, 29, 32}},
	}
	types := []string{"percentage_fout", "complement_berekend", "bewerking_fout"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := kortingItem()
			list := []map[string]any{ans("A", "30", 30, true, "")}
			for i, d := range tt.distractors {
				list = append(list, ans(string(rune('B'+i)), validate.FormatNumber(d), d, false, types[i]))
			}
			setAnswers(it, list...)
			res := New().Validate(it)
			assert.True(t, hasMessage(res.Warnings, "distractors cluster"), res.Warnings)
		})
	}

	res := New().Validate(kortingItem())
	assert.False(t, hasMessage(res.Warnings, "distractors cluster"))
}

func TestStructure_OneErrorPerViolation(t *testing.T) {
	t.Run("three answers", func(t *testing.T) {
		it := kortingItem()
		setAnswers(it,
			ans("A", "€30", 30, true, ""),
			ans("B", "€25", 25, false, "percentage_fout"),
			ans("C", "€90", 90, false, "complement_berekend"),
		)
		res := New().Validate(it)
		assert.Equal(t, 1, countMessages(res.Errors, "antwoorden must"), res.Errors)
		assert.True(t, hasMessage(res.Errors, "exactly 4 answers, got 3"))
	})
	t.Run("two correct", func(t *testing.T) {
		it := kortingItem()
		setAnswers(it,
			ans("A", "€30", 30, true, ""),
			ans("B", "€25", 25, true, ""),
			ans("C", "€90", 90, false, "complement_berekend"),
			ans("D", "€4,80", 4.8, false, "plaatswaarde_fout"),
		)
		res := New().Validate(it)
		assert.Equal(t, 1, countMessages(res.Errors, "antwoorden must"), res.Errors)
		assert.True(t, hasMessage(res.Errors, "exactly one correct answer, got 2"))
	})
	t.Run("both violated", func(t *testing.T) {
		it := kortingItem()
		setAnswers(it,
			ans("A", "€30", 30, false, "bewerking_fout"),
			ans("B", "€25", 25, false, "percentage_fout"),
			ans("C", "€90", 90, false, "complement_berekend"),
		)
		res := New().Validate(it)
		assert.Equal(t, 2, countMessages(res.Errors, "antwoorden must"), res.Errors)
	})
	t.Run("fouttype", func(t *testing.T) {
		it := kortingItem()
		setAnswers(it,
			ans("A", "€30", 30, true, ""),
			ans("B", "€25", 25, false, ""),
			ans("C", "€90", 90, false, "gokje"),
			ans("D", "€4,80", 4.8, false, "plaatswaarde_fout"),
		)
		res := New().Validate(it)
		assert.True(t, hasMessage(res.Errors, "fouttype missing on distractor 2"), res.Errors)
		assert.True(t, hasMessage(res.Errors, `fouttype "gokje" on distractor 3`), res.Errors)
		assert.Zero(t, countMessages(res.Errors, "antwoorden must"))
	})
}

func TestVisualisationGate(t *testing.T) {
	it := kortingItem()
	it["vraag"].(map[string]any)["visualisatie"] = "required"
	res := New().Validate(it)
	assert.False(t, res.Valid)
	assert.True(t, hasMessage(res.Errors, "visualization required"), res.Errors)

	it["vraag"].(map[string]any)["visualisatie_type"] = "strook"
	it["has_visual"] = true
	res = New().Validate(it)
	assert.True(t, res.Valid, res.Errors)
}

func TestCheckStep(t *testing.T) {
	tests := []struct {
		step  string
		wrong bool
	}{
		{"1/4 + 2/4 = 3/4", false},
		{"25% van 80 = 20", false},
		{"Stap 2: 12 : 4 = 3", false},
		{"3 x 4 = 12", false},
		{"0,5 × 30 = 15", false},
		{"3/4 × 40 = 20", true},
		{"10% van 50 = 6", true},
		{"Je deelt de taart in stukken", false},
	}
	for _, tt := range tests {
		t.Run(tt.step, func(t *testing.T) {
			msgs := CheckStep(tt.step)
			if tt.wrong {
				require.Len(t, msgs, 1)
				assert.Contains(t, msgs[0], "is wrong")
			} else {
				assert.Empty(t, msgs)
			}
		})
	}
}

func TestCalculationStepsInItem(t *testing.T) {
	it := kortingItem()
	it["didactiek"].(map[string]any)["berekening_stappen"] = []any{"25% van 120 = 35"}
	res := New().Validate(it)
	assert.True(t, hasMessage(res.Errors, "berekening_stappen 1:"), res.Errors)
	assert.True(t, hasMessage(res.Warnings, "last calculation step ends at 35"), res.Warnings)
}

func TestContentChecks(t *testing.T) {
	tests := []struct {
		name    string
		grade   int
		level   string
		sub     string
		context string
		want    string
	}{
		{"blocked context", 6, "M", "Procenten", "Bij het gokken win je 25% van je inzet.", "context 'gokken' is not appropriate for groep 6"},
		{"percentage set", 6, "M", "Procenten", "Je krijgt 30% korting op een jas van €120.", "percentage 30% is not in the set"},
		{"stem fraction", 4, "M", "Breuken", "Je eet 1/3 van de pizza.", "stambreuk 1/3 is not used"},
		{"mixed decimals", 6, "M", "Decimalen", "Een pak weegt 2.5 kg en een zak 3,75 kg.", "mixed decimal notation"},
		{"decimal digits", 5, "M", "Decimalen", "Een fles bevat 1,25 liter.", "1,25 has 2 decimal places"},
		{"subdomain", 4, "M", "Procenten", "Je krijgt korting.", "subdomein Procenten is not offered at G4-M"},
		{"scale", 6, "M", "Schaal", "Op de kaart is de schaal 1:250.", "scale 1:250 is not used"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := kortingItem()
			it["groep"] = float64(tt.grade)
			it["niveau"] = tt.level
			it["subdomein"] = tt.sub
			it["vraag"].(map[string]any)["context"] = tt.context
			res := New().Validate(it)
			assert.True(t, hasMessage(res.Errors, tt.want), res.Errors)
		})
	}
}

func TestSubdomainIsCaseInsensitive(t *testing.T) {
	for _, sub := range []string{"procenten", "PROCENTEN"} {
		it := kortingItem()
		it["subdomein"] = sub
		res := New().Validate(it)
		assert.False(t, hasMessage(res.Errors, "subdomein"), res.Errors)
	}

	it := kortingItem()
	it["groep"] = float64(4)
	it["subdomein"] = "procenten"
	res := New().Validate(it)
	assert.True(t, hasMessage(res.Errors, "subdomein Procenten is not offered at G4-M"), res.Errors)
}

func TestPercentageOutOfRange(t *testing.T) {
	it := kortingItem()
	it["vraag"].(map[string]any)["context"] = "De prijs steeg met 150%."
	res := New().Validate(it)
	assert.True(t, hasMessage(res.Warnings, "percentage 150% lies outside 0..100%"), res.Warnings)
}

func TestUnreducedFractionInfo(t *testing.T) {
	it := kortingItem()
	it["groep"] = float64(5)
	it["subdomein"] = "Breuken"
	it["vraag"].(map[string]any)["context"] = "Sam eet 2/4 van de taart."
	res := New().Validate(it)
	assert.True(t, hasMessage(res.Infos, "2/4 can be simplified to 1/2"), res.Infos)
}

func TestLOVAAndFeedback(t *testing.T) {
	it := kortingItem()
	d := it["didactiek"].(map[string]any)
	d["lova"].(map[string]any)["vormen"] = "kort"
	delete(d["lova"].(map[string]any), "ordenen")
	delete(d["feedback"].(map[string]any), "fout_complement_berekend")
	res := New().Validate(it)
	assert.True(t, hasMessage(res.Errors, "lova.ordenen is missing"), res.Errors)
	assert.True(t, hasMessage(res.Errors, "lova.vormen is too short"), res.Errors)
	assert.True(t, hasMessage(res.Warnings, "feedback.fout_complement_berekend is missing"), res.Warnings)
}

func TestFractionReduced(t *testing.T) {
	assert.Equal(t, Fraction{1, 2}, Fraction{2, 4}.Reduced())
	assert.Equal(t, Fraction{3, 4}, Fraction{3, 4}.Reduced())
}

func TestFractions(t *testing.T) {
	fr := Fractions("1/2 en 3/4, maar niet op 1/2/2024 of 0,5/2")
	assert.Equal(t, []Fraction{{1, 2}, {3, 4}}, fr)
}

func TestAnswerPosition(t *testing.T) {
	pos, ok := AnswerPosition(kortingItem())
	require.True(t, ok)
	assert.Equal(t, "A", pos)

	it := kortingItem()
	setAnswers(it, ans("x1", "€30", 30, true, ""))
	_, ok = AnswerPosition(it)
	assert.False(t, ok)
}

func TestDeterminism(t *testing.T) {
	it := kortingItem()
	it["vraag"].(map[string]any)["context"] = "Bij het gokken win je 30% en 2.5 of 3,75."
	a := New().Validate(it)
	b := New().Validate(it)
	assert.Equal(t, a, b)
}
