package verhaaltjes

import (
	"strings"
	"testing"

	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stap(n int, actie, berekening, resultaat string) map[string]any {
	return map[string]any{"stap": float64(n), "actie": actie, "berekening": berekening, "resultaat": resultaat}
}

// stickerItem is a valid two-step G4-M word problem.
func stickerItem() item.Item {
	return item.Item{
		"id":                   "VT_G4_M_001",
		"groep":                float64(4),
		"niveau":               "M",
		"domein":               "GETALLEN",
		"context_type":         "speelgoed",
		"avi_niveau":           "M4",
		"verhaal_tekst":        "Sam heeft 12 stickers. Hij krijgt er 5 van zijn lieve oma. Daarna geeft hij 3 stickers aan zijn zus.",
		"tekst_lengte_woorden": float64(20),
		"hoofdvraag":           "Hoeveel stickers heeft Sam nu?",
		"correct_antwoord":     "14 stickers",
		"afleiders":            []any{"20 stickers", "10 stickers", "9 stickers"},
		"stappenstructuur": []any{
			stap(1, "Tel de stickers van oma erbij", "12 + 5", "17"),
			stap(2, "Haal de stickers voor zijn zus eraf", "17 - 3", "14"),
		},
		"toelichting_lova": map[string]any{
			"lezen":      "Je weet dat Sam 12 stickers heeft en gevraagd wordt hoeveel hij er nu heeft.",
			"ordenen":    "Eerst komen er 5 bij, dan gaan er 3 af.",
			"vormen":     "12 + 5 = 17 en 17 - 3 = 14",
			"antwoorden": "Sam heeft nu 14 stickers.",
		},
		"toelichting":        "Eerst tel je 5 erbij en dan haal je 3 eraf.",
		"moeilijkheidsgraad": 0.35,
		"geschatte_tijd_sec": float64(90),
	}
}

func steps(it item.Item) []any { return it["stappenstructuur"].([]any) }

func hasMessage(msgs []string, sub string) bool {
	for _, m := range msgs {
		if strings.Contains(m, sub) {
			return true
		}
	}
	return false
}

func TestBook_CoversEveryLevel(t *testing.T) {
	assert.Equal(t, rules.AllKeys(), Book().Keys())
}

func TestValidWordProblem(t *testing.T) {
	res := New().Validate(stickerItem())
	assert.True(t, res.Valid, res.Errors)
	assert.Empty(t, res.Warnings)
	assert.Empty(t, res.Infos)
	assert.Equal(t, 1.0, res.Score)
}

func TestNegativeAnswer(t *testing.T) {
	it := item.Item{
		"id":                   "VT_G4_M_003",
		"groep":                float64(4),
		"niveau":               "M",
		"domein":               "GETALLEN",
		"hoofdvraag":           "Emma had 3 knikkers en verliest er 5. Hoeveel houdt ze over?",
		"correct_antwoord":     "-2 knikkers",
		"afleiders":            []any{"0", "2", "-1"},
		"verhaal_tekst":        "...",
		"tekst_lengte_woorden": float64(20),
		"context_type":         "speelgoed",
		"avi_niveau":           "M4",
	}
	res := New().Validate(it)
	require.False(t, res.Valid)
	found := false
	for _, e := range res.Errors {
		if strings.Contains(e, "reality check") && strings.Contains(e, "negative answer") {
			found = true
		}
	}
	assert.True(t, found, res.Errors)
}

func TestG3MOnlyGetallen(t *testing.T) {
	it := stickerItem()
	it["id"] = "VT_G3_M_001"
	it["groep"] = float64(3)
	it["domein"] = "METEN"
	res := New().Validate(it)
	assert.True(t, hasMessage(res.Errors, "G3-M word problems are restricted to GETALLEN, got METEN"), res.Errors)

	it["domein"] = "RUIMTE"
	res = New().Validate(it)
	assert.True(t, hasMessage(res.Errors, `domein must be one of`), res.Errors)
}

func TestStepStructure(t *testing.T) {
	it := stickerItem()
	delete(steps(it)[1].(map[string]any), "berekening")
	res := New().Validate(it)
	assert.Equal(t, []string{"stap 2: berekening is missing"}, res.Errors)

	it = stickerItem()
	steps(it)[1].(map[string]any)["resultaat"] = "15"
	res = New().Validate(it)
	assert.True(t, hasMessage(res.Errors, "stap 2: 17 - 3 = 15 is wrong"), res.Errors)
	assert.True(t, hasMessage(res.Warnings, "the last step ends in 15 but correct_antwoord is 14"), res.Warnings)

	it = stickerItem()
	it["stappenstructuur"] = append(steps(it),
		stap(3, "Controleer", "14 + 0", "14"),
		stap(4, "Schrijf op", "14", "14"))
	res = New().Validate(it)
	assert.True(t, res.Valid, res.Errors)
	assert.True(t, hasMessage(res.Warnings, "stappenstructuur has 4 steps, expected 2..3 at G4-M"), res.Warnings)

	delete(it, "stappenstructuur")
	res = New().Validate(it)
	assert.Equal(t, []string{"stappenstructuur is missing"}, res.Errors)
}

func TestLOVA(t *testing.T) {
	it := stickerItem()
	lova := it["toelichting_lova"].(map[string]any)
	lova["ordenen"] = ""
	lova["lezen"] = "Sam heeft stickers."
	lova["vormen"] = "Dat is makkelijk."
	res := New().Validate(it)
	assert.Equal(t, []string{"toelichting_lova.ordenen is missing"}, res.Errors)
	assert.True(t, hasMessage(res.Warnings, "lezen should say what is given"), res.Warnings)
	assert.True(t, hasMessage(res.Warnings, "vormen names no operation"), res.Warnings)

	delete(it, "toelichting_lova")
	res = New().Validate(it)
	assert.Equal(t, []string{"toelichting_lova is missing"}, res.Errors)
}

func TestQuestion(t *testing.T) {
	it := stickerItem()
	it["hoofdvraag"] = "Reken uit hoeveel stickers Sam nu heeft."
	res := New().Validate(it)
	assert.True(t, hasMessage(res.Errors, "hoofdvraag must end with a question mark"), res.Errors)

	it["hoofdvraag"] = "Sam heeft nu hoeveel stickers?"
	res = New().Validate(it)
	assert.True(t, res.Valid, res.Errors)
	assert.True(t, hasMessage(res.Warnings, "should open with a question word"), res.Warnings)
}

func TestDomainSpotChecks(t *testing.T) {
	it := stickerItem()
	it["domein"] = "METEN"
	it["verhaal_tekst"] = "Sam heeft een lint van 12 cm. Hij krijgt er 5 cm bij van zijn oma. Hij knipt 3 cm af."
	it["tekst_lengte_woorden"] = float64(22)
	it["correct_antwoord"] = "14"
	it["afleiders"] = []any{"20", "10", "9"}
	res := New().Validate(it)
	assert.True(t, hasMessage(res.Warnings, `METEN: correct_antwoord "14" names no unit`), res.Warnings)

	it["correct_antwoord"] = "14 cm"
	res = New().Validate(it)
	assert.False(t, hasMessage(res.Warnings, "METEN"), res.Warnings)

	it = stickerItem()
	it["correct_antwoord"] = "veertien"
	res = New().Validate(it)
	assert.True(t, hasMessage(res.Errors, `GETALLEN: correct_antwoord "veertien" contains no number`), res.Errors)
	assert.True(t, hasMessage(res.Infos, "reality check skipped"), res.Infos)
}

func TestRealityWarnings(t *testing.T) {
	it := stickerItem()
	it["correct_antwoord"] = "500 stickers"
	res := New().Validate(it)
	assert.True(t, hasMessage(res.Warnings, "reality check: answer 500 is large for G4-M (above 100)"), res.Warnings)

	it["correct_antwoord"] = "30 uur"
	res = New().Validate(it)
	assert.True(t, hasMessage(res.Warnings, "reality check: 30 hours is more than a day"), res.Warnings)

	it["correct_antwoord"] = "80 kinderen"
	res = New().Validate(it)
	assert.True(t, hasMessage(res.Warnings, "reality check: 80 children"), res.Warnings)
}

func TestTextChecks(t *testing.T) {
	it := stickerItem()
	it["tekst_lengte_woorden"] = float64(30)
	res := New().Validate(it)
	assert.Equal(t, []string{"tekst_lengte_woorden is 30 but the story has 20 words (tolerance ±5)"}, res.Warnings)

	it = stickerItem()
	it["verhaal_tekst"] = "Sam heeft 12 stickers in een groot boek met heel veel mooie bladzijden van dik papier. " +
		"Hij krijgt er 5 van zijn lieve oma. Daarna geeft hij 3 stickers aan zijn zus."
	it["tekst_lengte_woorden"] = float64(32)
	res = New().Validate(it)
	assert.True(t, hasMessage(res.Errors, "1 sentences exceed 10 words; the longest has 16"), res.Errors)

	it["verhaal_tekst"] = "Emma heeft een mooie rode fiets."
	res = New().Validate(it)
	assert.True(t, hasMessage(res.Warnings, "verhaal_tekst has 6 words"), res.Warnings)
}
