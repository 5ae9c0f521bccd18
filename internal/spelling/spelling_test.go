package spelling

import (
	"strings"
	"testing"

	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/stretchr/testify/assert"
)

func dtItem(correct string, afleiders ...any) item.Item {
	return item.Item{
		"id":                 "S_G4_E_001",
		"groep":              float64(4),
		"niveau":             "E",
		"spellingcategorie":  "dt_regel",
		"item_type":          "meerkeuze",
		"hoofdvraag":         "Gisteren ... hij hard in de tuin. (werken)",
		"werkwoord":          "werken",
		"correct_antwoord":   correct,
		"afleiders":          afleiders,
		"toelichting":        "Werk eindigt op een k uit 't kofschip, dus schrijf je -te.",
		"moeilijkheidsgraad": 0.4,
		"geschatte_tijd_sec": float64(30),
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

func TestValidDTItem(t *testing.T) {
	res := New().Validate(dtItem("werkte", "werkde", "werkten"))
	assert.True(t, res.Valid, res.Errors)
	assert.Empty(t, res.Warnings)
	assert.Empty(t, res.Infos)
}

func TestDTRule_Critical(t *testing.T) {
	res := New().Validate(dtItem("werkde", "werkte", "werkten"))
	assert.False(t, res.Valid)
	assert.True(t, hasMessage(res.Errors, `CRITICAL: dt-rule: "werkde" should end in -t(e)`), res.Errors)

	it := dtItem("woonte", "woonde", "woonden")
	it["werkwoord"] = "wonen"
	it["toelichting"] = "Woon eindigt niet op een letter uit 't kofschip."
	res = New().Validate(it)
	assert.True(t, hasMessage(res.Errors, `CRITICAL: dt-rule: "woonte" should end in -d(e)`), res.Errors)
}

func TestDTRule_NotBeforeG4E(t *testing.T) {
	it := dtItem("werkde", "werkte", "werkten")
	it["id"] = "S_G4_M_001"
	it["niveau"] = "M"
	res := New().Validate(it)
	assert.True(t, hasMessage(res.Errors, "spellingcategorie dt_regel is not taught at G4-M"), res.Errors)
	assert.False(t, hasMessage(res.Errors, "CRITICAL"), res.Errors)
}

func TestDTRule_KofschipExplanation(t *testing.T) {
	it := dtItem("woonde", "woonte", "woonden")
	it["werkwoord"] = "wonen"
	res := New().Validate(it)
	assert.True(t, res.Valid, res.Errors)
	assert.True(t, hasMessage(res.Warnings, `stem "woon" does not end in t, k, f, s, ch or p`), res.Warnings)
}

func TestDTRule_MissingMistakeDistractor(t *testing.T) {
	res := New().Validate(dtItem("werkte", "werkten", "gewerkt"))
	assert.True(t, hasMessage(res.Warnings, `no distractor shows the dt mistake ("werkde")`), res.Warnings)
}

func TestDTRule_Unverifiable(t *testing.T) {
	it := dtItem("leefde", "leefte", "leefden")
	delete(it, "werkwoord")
	it["toelichting"] = "Leven heeft een v in de stam, dus -de."
	res := New().Validate(it)
	assert.True(t, res.Valid, res.Errors)
	assert.True(t, hasMessage(res.Infos, `dt-rule could not be verified for "leefde"`), res.Infos)
}

func TestCheckDT(t *testing.T) {
	tests := []struct {
		form, stem string
		want       DTVerdict
	}{
		{"werkte", "werk", DTCorrect},
		{"werkde", "werk", DTShouldBeT},
		{"woonte", "woon", DTShouldBeD},
		{"woonde", "", DTCorrect},
		{"gefietst", "fiets", DTCorrect},
		{"gefietsd", "fiets", DTShouldBeT},
		{"gewerkd", "", DTShouldBeT},
		{"lachte", "lach", DTCorrect},
		{"gepraat", "", DTCorrect},
		{"gezet", "zet", DTCorrect},
		{"leefde", "", DTUnknown},
		{"leefde", StemFromInfinitive("leven"), DTCorrect},
		{"fietsde", StemFromInfinitive("fietsen"), DTShouldBeT},
		{"fiets", "", DTUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.form+"/"+tt.stem, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckDT(tt.form, tt.stem))
		})
	}
}

func TestStemFromInfinitive(t *testing.T) {
	tests := map[string]string{
		"werken":  "werk",
		"fietsen": "fiets",
		"zetten":  "zet",
		"wonen":   "woon",
		"maken":   "maak",
		"lachen":  "lach",
	}
	for inf, want := range tests {
		assert.Equal(t, want, StemFromInfinitive(inf), inf)
	}
}

func TestTussenN_Critical(t *testing.T) {
	for _, tt := range []struct{ wrong, right string }{
		{"lopenbrug", "loopbrug"},
		{"grotenmoeder", "grootmoeder"},
		{"slapebank", "slaapbank"},
	} {
		it := item.Item{
			"id":                "S_G5_M_004",
			"groep":             float64(5),
			"niveau":            "M",
			"spellingcategorie": "tussen_n",
			"correct_antwoord":  tt.wrong,
			"afleiders":         []any{tt.right, tt.right + "s"},
		}
		res := New().Validate(it)
		assert.False(t, res.Valid)
		assert.True(t, hasMessage(res.Errors, `CRITICAL: tussen-n: "`+tt.wrong+`" is wrong, write "`+tt.right+`"`), res.Errors)
	}
}

func TestTussenN_NotCheckedBeforeIntroduction(t *testing.T) {
	it := item.Item{
		"id":               "S_G4_M_004",
		"groep":            float64(4),
		"niveau":           "M",
		"correct_antwoord": "lopenbrug",
		"afleiders":        []any{"loopbrug", "loopbrugs"},
	}
	res := New().Validate(it)
	assert.False(t, hasMessage(res.Errors, "tussen-n"), res.Errors)
}

func TestWordChecks(t *testing.T) {
	it := item.Item{
		"id":                "S_G3_M_002",
		"groep":             float64(3),
		"niveau":            "M",
		"spellingcategorie": "klankzuivere_woorden",
		"item_type":         "dictee",
		"correct_antwoord":  "olifant",
		"woordfrequentie":   "laag",
	}
	res := New().Validate(it)
	assert.True(t, res.Valid, res.Errors)
	assert.True(t, hasMessage(res.Warnings, `word "olifant" has 7 letters`), res.Warnings)
	assert.True(t, hasMessage(res.Warnings, "has about 3 syllables, at most 1"), res.Warnings)
	assert.True(t, hasMessage(res.Warnings, "woordfrequentie laag is below the hoog tier"), res.Warnings)
	assert.True(t, hasMessage(res.Infos, "no toelichting provided"), res.Infos)
}

func TestCategoryChecks(t *testing.T) {
	it := item.Item{
		"id":                "S_G3_M_003",
		"groep":             float64(3),
		"niveau":            "M",
		"spellingcategorie": "komma",
		"correct_antwoord":  "kat",
		"afleiders":         []any{"kad", "katt"},
	}
	res := New().Validate(it)
	assert.True(t, hasMessage(res.Errors, `unknown spellingcategorie "komma"`), res.Errors)

	it["spellingcategorie"] = "ei_ij"
	res = New().Validate(it)
	assert.True(t, hasMessage(res.Warnings, "spellingcategorie ei_ij is not expected at G3-M"), res.Warnings)
}

func TestSyllables(t *testing.T) {
	assert.Equal(t, 1, syllables("kat"))
	assert.Equal(t, 2, syllables("werkte"))
	assert.Equal(t, 3, syllables("olifant"))
	assert.Equal(t, 2, syllables("fietsen"))
}
