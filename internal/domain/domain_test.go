package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/rules"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		"getallen", "lezen", "meetkunde", "schrijven",
		"spelling", "verhaaltjes", "verhoudingen", "woordenschat",
	}, New().Names())
}

func TestGet(t *testing.T) {
	r := New()
	for _, name := range []string{"getallen", "Meten-Meetkunde", " verhaaltjessommen ", "begrijpend_lezen"} {
		v, err := r.Get(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, v.Name())
	}
	v, _ := r.Get("meten")
	assert.Equal(t, "meetkunde", v.Name())

	_, err := r.Get("aardrijkskunde")
	assert.ErrorIs(t, err, ErrUnknownDomain)
}

func TestInfer_IDPrefix(t *testing.T) {
	tests := map[string]string{
		"G_G3_M_001":   "getallen",
		"MM_G3_E_004":  "meetkunde",
		"VH_G6_M_010":  "verhoudingen",
		"L_G4_M_002":   "lezen",
		"S_G4_E_007":   "spelling",
		"SCH_G5_M_001": "schrijven",
		"W_G4_E_003":   "woordenschat",
		"VT_G4_M_001":  "verhaaltjes",
		"vt_g4_m_001":  "verhaaltjes",
	}
	r := New()
	for id, want := range tests {
		assert.Equal(t, want, r.Infer(item.Item{"id": id}), id)
	}
}

func TestInfer_Shape(t *testing.T) {
	tests := []struct {
		name string
		it   item.Item
		want string
	}{
		{"ratios", item.Item{"id": "X1", "vraag": map[string]any{}, "antwoorden": []any{}}, "verhoudingen"},
		{"reading", item.Item{"tekst": "...", "vragen": []any{}}, "lezen"},
		{"writing", item.Item{"schrijfopdracht": "Schrijf een brief."}, "schrijven"},
		{"vocabulary", item.Item{"doelwoord": "rennen"}, "woordenschat"},
		{"word problem steps", item.Item{"stappenstructuur": []any{}}, "verhaaltjes"},
		{"word problem story", item.Item{"verhaal_tekst": "..."}, "verhaaltjes"},
		{"measurement", item.Item{"subdomein": "METEN"}, "meetkunde"},
		{"spelling", item.Item{"spellingcategorie": "dt"}, "spelling"},
		{"fallback", item.Item{"hoofdvraag": "Hoeveel is 3 + 4?"}, "getallen"},
		{"unknown prefix", item.Item{"id": "QQ_G3_M_001", "doelwoord": "boom"}, "woordenschat"},
	}
	r := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Infer(tt.it))
			assert.Equal(t, tt.want, r.ForItem(tt.it).Name())
		})
	}
}

func TestEveryDomainHasRules(t *testing.T) {
	r := New()
	for _, name := range r.Names() {
		v, err := r.Get(name)
		require.NoError(t, err)
		_, ok := v.RuleFor(rules.K(4, rules.End))
		assert.True(t, ok, name)
		_, ok = v.RuleFor(rules.Key{Grade: 9, Level: rules.Mid})
		assert.False(t, ok, name)
	}
}
