package getallen

import (
	"strings"
	"testing"

	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func base(grade int, level string, vraag, correct string, afleiders ...string) item.Item {
	list := make([]any, len(afleiders))
	for i, a := range afleiders {
		list[i] = a
	}
	return item.Item{
		"id":               "G_G" + string(rune('0'+grade)) + "_" + level + "_001",
		"groep":            float64(grade),
		"niveau":           level,
		"hoofdvraag":       vraag,
		"correct_antwoord": correct,
		"afleiders":        list,
		"toelichting":      "Tel door vanaf het grootste getal, dat is handig tellen.",
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

func TestSemanticDivisionIsForbiddenInG3M(t *testing.T) {
	it := item.Item{
		"id":               "G_G3_M_010",
		"groep":            float64(3),
		"niveau":           "M",
		"hoofdvraag":       "Verdeel 12 koekjes door 4 kinderen.",
		"correct_antwoord": "3",
		"afleiders":        []any{"2", "4", "6"},
		"toelichting":      "...",
	}
	res := New().Validate(it)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, "forbidden operation 'delen'")
}

func TestSpacedColonIsDivision(t *testing.T) {
	for _, vraag := range []string{"Hoeveel is 20 : 10?", "Hoeveel is 12 : 12?", "Hoeveel is 18 : 20?"} {
		t.Run(vraag, func(t *testing.T) {
			calcs := Calculations(vraag)
			require.Len(t, calcs, 1)
			assert.Equal(t, OpDelen, calcs[0].Op)

			res := New().Validate(base(3, "M", vraag, "1", "2", "3"))
			assert.Contains(t, res.Errors, "forbidden operation 'delen'")
		})
	}

	assert.Empty(t, Calculations("De les begint om 12:30."))
}

func TestSubtractionWithoutCarryIsAllowedInG3M(t *testing.T) {
	res := New().Validate(base(3, "M", "Hoeveel is 20 - 5?", "14", "16", "10"))
	assert.NotContains(t, res.Errors, "forbidden operation 'tientalovergang'")

	res = New().Validate(base(3, "M", "Hoeveel is 14 - 7?", "6", "8", "5"))
	assert.Contains(t, res.Errors, "forbidden operation 'tientalovergang'")
}

func TestForbiddenOperations(t *testing.T) {
	tests := []struct {
		name  string
		vraag string
		want  string
	}{
		{"times word", "Hoeveel is 3 keer 4?", "forbidden operation 'vermenigvuldigen'"},
		{"times symbol", "Wat is 3 × 4?", "forbidden operation 'vermenigvuldigen'"},
		{"groups of", "Er zijn 2 groepjes van 5 kinderen. Hoeveel kinderen?", "forbidden operation 'vermenigvuldigen'"},
		{"gedeeld door", "Wat is 10 gedeeld door 2?", "forbidden operation 'delen'"},
		{"colon", "Wat is 12 : 4?", "forbidden operation 'delen'"},
		{"carry", "Wat is 8 + 5?", "forbidden operation 'tientalovergang'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := New().Validate(base(3, "M", tt.vraag, "1", "2", "3"))
			assert.False(t, res.Valid)
			assert.True(t, hasMessage(res.Errors, tt.want), res.Errors)
		})
	}
}

func TestLooseDelenWordIsNotDivision(t *testing.T) {
	it := base(3, "M", "Lisa wil haar snoep delen met Tom. Ze heeft 5 snoepjes en krijgt er 2 bij. Hoeveel heeft ze?", "7", "6", "8", "9")
	res := New().Validate(it)
	assert.False(t, hasMessage(res.Errors, "forbidden operation"), res.Errors)
}

func TestComputedResultMismatch(t *testing.T) {
	res := New().Validate(base(4, "E", "Wat is 6 × 4?", "25", "24", "20", "30"))
	assert.False(t, res.Valid)
	assert.True(t, hasMessage(res.Errors, "computed result"), res.Errors)
}

func TestTablesOutsideLevel(t *testing.T) {
	res := New().Validate(base(4, "M", "Wat is 7 × 8?", "56", "54", "48", "64"))
	assert.True(t, hasMessage(res.Errors, "outside the allowed tables"), res.Errors)
}

func TestNumberRange(t *testing.T) {
	res := New().Validate(base(3, "M", "Er zijn 25 kinderen. Er gaan er 3 weg.", "22", "21", "20", "23"))
	assert.True(t, hasMessage(res.Errors, "number 25 outside the allowed range 0..20"), res.Errors)
	assert.True(t, hasMessage(res.Errors, "correct_antwoord 22 outside"), res.Errors)
}

func TestMoneyAboveLevelMaximum(t *testing.T) {
	res := New().Validate(base(3, "M", "Een appel kost €2. Hoeveel betaal je?", "2", "1", "3", "4"))
	assert.True(t, hasMessage(res.Warnings, "exceeds the maximum €1,00"), res.Warnings)
}

func TestSubordinateClauseInG3(t *testing.T) {
	res := New().Validate(base(3, "M", "Tim pakt 2 ballen omdat hij wil spelen.", "2", "1", "3"))
	assert.True(t, hasMessage(res.Errors, `subordinate clause marker "omdat"`), res.Errors)
}

func TestValidItem(t *testing.T) {
	it := item.Item{
		"id":                 "G_G5_M_001",
		"groep":              float64(5),
		"niveau":             "M",
		"hoofdvraag":         "Wat is 125 + 37?",
		"correct_antwoord":   "162",
		"afleiders":          []any{"152", "172", "163"},
		"toelichting":        "Splitsen: 125 + 30 = 155 en 155 + 7 = 162.",
		"moeilijkheidsgraad": 0.4,
		"geschatte_tijd_sec": float64(30),
	}
	res := New().Validate(it)
	assert.True(t, res.Valid, res.Errors)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, 1.0, res.Score)
	assert.Equal(t, "v1", res.ScoringVersion)
}

func TestAutoConvertedExplanationIsAnError(t *testing.T) {
	it := base(3, "M", "Lisa heeft 3 appels. Ze krijgt er 2 bij. Hoeveel appels heeft Lisa nu?", "5", "4", "6", "7")
	it["toelichting"] = item.AutoConvertedMarker
	res := New().Validate(it)
	assert.False(t, res.Valid)
	assert.True(t, hasMessage(res.Errors, "requires manual completion"), res.Errors)
}

func TestDistractorUniqueness(t *testing.T) {
	res := New().Validate(base(5, "M", "Wat is 125 + 37?", "162", "162", "172"))
	assert.False(t, res.Valid)
	res = New().Validate(base(5, "M", "Wat is 125 + 37?", "162", "150", " 150 "))
	assert.False(t, res.Valid)
}

func TestCalculations(t *testing.T) {
	assert.Empty(t, Calculations("Het is 12:30."))
	assert.Empty(t, Calculations("Neem 3/4 van de taart."))

	calcs := Calculations("Wat is 12 : 4?")
	require.Len(t, calcs, 1)
	assert.Equal(t, OpDelen, calcs[0].Op)

	calcs = Calculations("Er zijn 4 groepjes van 3 kinderen.")
	require.Len(t, calcs, 1)
	assert.Equal(t, OpVermenigvuldigen, calcs[0].Op)
	got, ok := calcs[0].Result()
	require.True(t, ok)
	assert.Equal(t, 12.0, got)

	calcs = Calculations("We verdelen 20 knikkers eerlijk over 5 kinderen.")
	require.Len(t, calcs, 1)
	assert.Equal(t, OpDelen, calcs[0].Op)
}

func TestCrosses(t *testing.T) {
	tests := []struct {
		c    Calculation
		want bool
	}{
		{Calculation{Op: OpOptellen, A: 8, B: 5}, true},
		{Calculation{Op: OpOptellen, A: 3, B: 4}, false},
		{Calculation{Op: OpAftrekken, A: 13, B: 5}, true},
		{Calculation{Op: OpAftrekken, A: 15, B: 3}, false},
		{Calculation{Op: OpAftrekken, A: 23, B: 5}, false},
		{Calculation{Op: OpAftrekken, A: 20, B: 5}, false},
		{Calculation{Op: OpAftrekken, A: 14, B: 7}, true},
		{Calculation{Op: OpVermenigvuldigen, A: 7, B: 8}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.c.Crosses(), "%+v", tt.c)
	}
}

func TestHasCue(t *testing.T) {
	assert.True(t, HasCue("Ze krijgt er 2 bij.", OpOptellen))
	assert.True(t, HasCue("Hij geeft er 3 weg.", OpAftrekken))
	assert.True(t, HasCue("Verdeel de appels eerlijk.", OpDelen))
	assert.False(t, HasCue("Wat is 3 + 4?", OpDelen))
}

func TestRuleCheck(t *testing.T) {
	bad := Rule{Operations: []string{OpDelen}, Forbidden: []string{OpDelen}}
	assert.ErrorIs(t, bad.Check(), rules.ErrOverlap)

	bad = Rule{Forbidden: []string{OpTientalovergang}, Carry: rules.Full}
	assert.Error(t, bad.Check())
}
