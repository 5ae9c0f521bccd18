package woordenschat

import (
	"strings"
	"testing"

	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/stretchr/testify/assert"
)

// rennenItem is a valid G4-E context item.
func rennenItem() item.Item {
	return item.Item{
		"id":                 "W_G4_E_001",
		"groep":              float64(4),
		"niveau":             "E",
		"woordenschat_type":  "receptief",
		"woordcategorie":     "alledaags",
		"item_type":          "context_betekenis",
		"doelwoord":          "rennen",
		"hoofdvraag":         "Wat betekent rennen in deze zin?",
		"context_zin":        "De hond rent snel naar de bal.",
		"correct_antwoord":   "heel snel lopen",
		"afleiders":          []any{"langzaam lopen", "springen", "zwemmen"},
		"strategie":          "context",
		"woordfrequentie":    "hoog",
		"toelichting":        "Rennen is heel snel lopen. Dat zie je aan het woord snel in de zin.",
		"moeilijkheidsgraad": 0.4,
		"geschatte_tijd_sec": float64(30),
	}
}

func atLevel(it item.Item, grade int, level string) item.Item {
	it["groep"] = float64(grade)
	it["niveau"] = level
	it["id"] = "W_G" + string(rune('0'+grade)) + "_" + level + "_001"
	return it
}

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

func TestValidContextItem(t *testing.T) {
	res := New().Validate(rennenItem())
	assert.True(t, res.Valid, res.Errors)
	assert.Empty(t, res.Warnings)
	assert.Empty(t, res.Infos)
	assert.Equal(t, 1.0, res.Score)
}

func TestWoordenschatType(t *testing.T) {
	it := rennenItem()
	it["woordenschat_type"] = "actief"
	res := New().Validate(it)
	assert.Equal(t, []string{`woordenschat_type must be receptief or productief, got "actief"`}, res.Errors)
}

func TestItemTypeGating(t *testing.T) {
	tests := []struct {
		name     string
		itemType string
		grade    int
		level    string
		wantErr  string
	}{
		{"figurative before G4-E", "uitdrukking", 4, "M", "only used from G4-E"},
		{"figurative at G4-E", "uitdrukking", 4, "E", ""},
		{"academic at G5-E", "academisch_woord", 5, "E", "only used from G6"},
		{"academic at G6-M", "academisch_woord", 6, "M", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := atLevel(rennenItem(), tt.grade, tt.level)
			it["item_type"] = tt.itemType
			res := New().Validate(it)
			if tt.wantErr == "" {
				assert.True(t, res.Valid, res.Errors)
				return
			}
			assert.True(t, hasMessage(res.Errors, tt.wantErr), res.Errors)
		})
	}
}

func TestCategoryGating(t *testing.T) {
	it := atLevel(rennenItem(), 3, "M")
	it["woordcategorie"] = "abstract"
	res := New().Validate(it)
	assert.True(t, hasMessage(res.Errors, "woordcategorie abstract is not used at G3-M"), res.Errors)

	it = rennenItem()
	it["woordcategorie"] = "vaktaal"
	res = New().Validate(it)
	assert.True(t, hasMessage(res.Errors, "woordcategorie vaktaal is not used at G4-E"), res.Errors)

	it["woordcategorie"] = "wiskunde"
	res = New().Validate(it)
	assert.True(t, hasMessage(res.Errors, `unknown woordcategorie "wiskunde"`), res.Errors)
}

func TestPictureItems(t *testing.T) {
	it := atLevel(rennenItem(), 3, "M")
	it["item_type"] = "meerkeuze_plaatje"
	it["hoofdvraag"] = "Welk woord hoort bij de hond?"
	delete(it, "context_zin")
	res := New().Validate(it)
	assert.True(t, hasMessage(res.Errors, "needs a picture or a picture description"), res.Errors)

	it["plaatje_beschrijving"] = "Een hond die hard over het gras rent."
	res = New().Validate(it)
	assert.True(t, res.Valid, res.Errors)

	it = atLevel(rennenItem(), 3, "M")
	res = New().Validate(it)
	assert.True(t, hasMessage(res.Infos, "G3-M: visualization recommended"), res.Infos)
}

func TestContextRequirement(t *testing.T) {
	it := rennenItem()
	delete(it, "context_zin")
	res := New().Validate(it)
	assert.Equal(t, []string{"item_type context_betekenis needs context_zin or context_tekst"}, res.Errors)

	it["context_tekst"] = "De kat ligt in de zon."
	res = New().Validate(it)
	assert.Equal(t, []string{`doelwoord "rennen" does not occur in the context`}, res.Errors)
}

func TestOccurs(t *testing.T) {
	assert.True(t, occurs("De hond rent snel naar de bal.", "rennen"))
	assert.True(t, occurs("Hij was erg nieuwsgierig.", "nieuwsgierig"))
	assert.True(t, occurs("De katten spelen.", "kat"))
	assert.False(t, occurs("De kat slaapt.", "rennen"))
}

func TestRelations(t *testing.T) {
	it := rennenItem()
	it["item_type"] = "synoniem"
	it["correct_antwoord"] = "Rennen"
	res := New().Validate(it)
	assert.True(t, hasMessage(res.Errors, `synoniem: correct_antwoord repeats the doelwoord "rennen"`), res.Errors)

	it = rennenItem()
	it["item_type"] = "antoniem"
	it["doelwoord"] = "snel"
	it["correct_antwoord"] = "langzaam"
	it["afleiders"] = []any{"vlug", "hard", "gauw"}
	res = New().Validate(it)
	assert.True(t, res.Valid, res.Errors)
	assert.True(t, hasMessage(res.Warnings, "antoniem: toelichting should say"), res.Warnings)

	it["toelichting"] = "Langzaam betekent het tegenovergestelde van snel, het is het antoniem."
	res = New().Validate(it)
	assert.False(t, hasMessage(res.Warnings, "antoniem"), res.Warnings)
}

func TestStrategyAndFrequency(t *testing.T) {
	it := rennenItem()
	it["strategie"] = "woordenboek"
	it["woordfrequentie"] = "laag"
	res := New().Validate(it)
	assert.True(t, res.Valid, res.Errors)
	assert.True(t, hasMessage(res.Warnings, "strategie woordenboek is not taught yet at G4-E"), res.Warnings)
	assert.True(t, hasMessage(res.Warnings, "woordfrequentie laag is below the midden tier"), res.Warnings)
}

func TestProductiveItemsNeedNoDistractors(t *testing.T) {
	it := rennenItem()
	it["woordenschat_type"] = "productief"
	delete(it, "afleiders")
	res := New().Validate(it)
	assert.True(t, res.Valid, res.Errors)

	it["woordenschat_type"] = "receptief"
	res = New().Validate(it)
	assert.True(t, hasMessage(res.Errors, "expected at least 2 distractors, got 0"), res.Errors)
}
