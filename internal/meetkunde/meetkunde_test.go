package meetkunde

import (
	"fmt"
	"strings"
	"testing"

	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clockItem(correct string, afleiders ...any) item.Item {
	return item.Item{
		"id":                 "MM_G3_E_001",
		"groep":              float64(3),
		"niveau":             "E",
		"subdomein":          "METEN",
		"hoofdvraag":         "De klok wijst half 4. Hoe laat is het op de digitale klok?",
		"correct_antwoord":   correct,
		"afleiders":          afleiders,
		"toelichting":        "...",
		"moeilijkheidsgraad": 0.40,
		"geschatte_tijd_sec": float64(35),
	}
}

func metenItem(grade int, level, sub, vraag string) item.Item {
	return item.Item{
		"id":               fmt.Sprintf("MM_G%d_%s_001", grade, level),
		"groep":            float64(grade),
		"niveau":           level,
		"subdomein":        sub,
		"hoofdvraag":       vraag,
		"correct_antwoord": "1",
		"afleiders":        []any{"2", "3"},
		"has_visual":       true,
	}
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

func TestHalfHour_CriticalMistake(t *testing.T) {
	res := New().Validate(clockItem("4:30", "3:30", "3:00", "2:30"))
	assert.False(t, res.Valid)
	assert.True(t, hasMessage(res.Errors, "half 4 = 3:30, niet 4:30"), res.Errors)
	assert.True(t, hasMessage(res.Errors, "CRITICAL"), res.Errors)
	assert.True(t, hasMessage(res.Warnings, "common-mistake distractor 4:30"), res.Warnings)
}

func TestHalfHour_Correct(t *testing.T) {
	res := New().Validate(clockItem("3:30", "4:30", "3:00", "2:30"))
	assert.True(t, res.Valid, res.Errors)
	assert.False(t, hasMessage(res.Warnings, "common-mistake"))
}

func TestHalfHour_EveryHour(t *testing.T) {
	for k := 1; k <= 12; k++ {
		for _, vraag := range []string{"Het is half %d. Hoe laat is het?", "De klok wijst half %d aan. Hoe laat is het?"} {
			it := clockItem(fmt.Sprintf("%d:30", k), "1:00", "2:00")
			it["hoofdvraag"] = fmt.Sprintf(vraag, k)
			res := New().Validate(it)
			assert.True(t, hasMessage(res.Errors, fmt.Sprintf("half %d = ", k)), "k=%d: %v", k, res.Errors)
		}
	}
}

func TestHalfHourParsing(t *testing.T) {
	k, ok := HalfHour("De klok wijst half drie aan")
	require.True(t, ok)
	assert.Equal(t, 3, k)
	_, ok = HalfHour("De helft van de taart")
	assert.False(t, ok)

	h, m, ok := ParseClock("15.30 uur")
	require.True(t, ok)
	assert.Equal(t, 15, h)
	assert.Equal(t, 30, m)
}

func TestMetenUnits(t *testing.T) {
	tests := []struct {
		name  string
		grade int
		level string
		vraag string
		want  string
	}{
		{"G3-M formal weight", 3, "M", "De appel weegt 2 kg. Welke is zwaarder?", "formal gewicht units"},
		{"G3-M formal volume", 3, "M", "In de fles zit 1 liter. Welke is voller?", "formal inhoud units"},
		{"G3-E decimal meters", 3, "E", "Het touw is 2,5 m lang. Hoe lang is het?", "only whole meters"},
		{"G3-E decimal kilograms", 3, "E", "De tas weegt 1,5 kg. Hoe zwaar is de tas?", "only whole kilo's"},
		{"G3-E centimeters", 3, "E", "Het potlood is 15 cm lang. Hoe lang is het?", `unit "cm" is not allowed`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := New().Validate(metenItem(tt.grade, tt.level, "METEN", tt.vraag))
			assert.False(t, res.Valid)
			assert.True(t, hasMessage(res.Errors, tt.want), res.Errors)
		})
	}
}

func TestMetenMoney(t *testing.T) {
	res := New().Validate(metenItem(3, "M", "METEN", "Je betaalt met een briefje van 5 euro."))
	assert.True(t, hasMessage(res.Errors, "bank notes"), res.Errors)
	assert.True(t, hasMessage(res.Errors, "exceeds the maximum €1,00"), res.Errors)

	res = New().Validate(metenItem(3, "E", "METEN", "Een ijsje kost €1,50. Wat betaal je?"))
	assert.True(t, hasMessage(res.Errors, "coins it is made of"), res.Errors)

	res = New().Validate(metenItem(3, "E", "METEN", "Een ijsje kost €1,50. Je betaalt met munten. Welke munten?"))
	assert.False(t, hasMessage(res.Errors, "coins it is made of"), res.Errors)
}

func TestMeetkunde(t *testing.T) {
	tests := []struct {
		name  string
		level string
		vraag string
		want  string
	}{
		{"counting in G3-M", "M", "Hoeveel hoeken heeft een driehoek?", "counting properties (hoeken)"},
		{"inventory", "M", "Welke vorm is een kubus?", "figure 'kubus' is not in the inventory"},
		{"symmetry", "M", "Teken de spiegelas in het vierkant.", "symmetry (spiegelas)"},
		{"angles", "E", "Meet de hoek van de driehoek in graden.", "formal angle measurement (graden)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := New().Validate(metenItem(3, tt.level, "MEETKUNDE", tt.vraag))
			assert.True(t, hasMessage(res.Errors, tt.want), res.Errors)
		})
	}

	res := New().Validate(metenItem(3, "E", "MEETKUNDE", "Hoeveel hoeken heeft een driehoek?"))
	assert.True(t, res.Valid, res.Errors)
}

func TestUnknownSubdomain(t *testing.T) {
	res := New().Validate(metenItem(4, "M", "GETALLEN", "Hoe lang is het touw?"))
	assert.True(t, hasMessage(res.Errors, "subdomein must be METEN or MEETKUNDE"), res.Errors)
}

func TestVisualRequiredInG3(t *testing.T) {
	it := metenItem(3, "M", "MEETKUNDE", "Welke vorm heeft vier hoeken?")
	delete(it, "has_visual")
	res := New().Validate(it)
	assert.True(t, hasMessage(res.Errors, "G3: visualization required"), res.Errors)
}

func TestCrossUnit(t *testing.T) {
	it := metenItem(5, "M", "METEN", "Hoeveel centimeter is de tafel lang?")
	it["correct_antwoord"] = "2 m"
	it["afleiders"] = []any{"20 cm", "2 cm"}
	res := New().Validate(it)
	assert.True(t, hasMessage(res.Warnings, "asks for cm but correct_antwoord is in m"), res.Warnings)
}

func TestFamilies(t *testing.T) {
	assert.Equal(t, []string{familyTime}, Families("De klok wijst half 4."))
	assert.Equal(t, []string{familyMoney}, Families("Een ijsje is €2."))
	assert.Equal(t, []string{familyLength}, Families("Het touw is 3 m."))
}
