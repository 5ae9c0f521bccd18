package schrijven

import (
	"strings"
	"testing"

	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/stretchr/testify/assert"
)

// verslagItem is a valid G5-M assignment.
func verslagItem() item.Item {
	return item.Item{
		"id":             "SCH_G5_M_001",
		"groep":          float64(5),
		"niveau":         "M",
		"schrijf_domein": "stellen",
		"tekstsoort":     "verslag",
		"schrijfdoel":    "informeren",
		"schrijfopdracht": "Schrijf een verslag over het schoolreisje voor de schoolkrant. " +
			"Je verslag moet een inleiding, een middenstuk en een slot hebben.",
		"structuur_eisen": map[string]any{
			"lengte_min_woorden": float64(80),
			"lengte_max_woorden": float64(150),
			"alineas":            float64(3),
		},
		"beoordelingscriteria": map[string]any{
			"inhoud":         "Wat heb je gedaan en gezien?",
			"structuur":      "Inleiding, middenstuk en slot",
			"taal":           "Hele zinnen, hoofdletters en punten",
			"doelgroep_doel": "Lezers van de schoolkrant weten wat er gebeurde",
		},
		"schrijfproces_stappen":  []any{"plannen", "schrijven", "reviseren", "herschrijven"},
		"moeilijkheidsgraad":     0.5,
		"geschatte_tijd_minuten": float64(20),
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

func TestValidAssignment(t *testing.T) {
	res := New().Validate(verslagItem())
	assert.True(t, res.Valid, res.Errors)
	assert.Empty(t, res.Warnings)
	assert.Empty(t, res.Infos)
	assert.Equal(t, 1.0, res.Score)
}

func TestG3Domain(t *testing.T) {
	it := item.Item{
		"id":              "SCH_G3_M_001",
		"groep":           float64(3),
		"niveau":          "M",
		"schrijf_domein":  "stellen",
		"tekstsoort":      "lijstje",
		"schrijfopdracht": "Maak een lijstje met vijf dingen voor je tas.",
		"beoordelingscriteria": map[string]any{
			"inhoud": "vijf dingen", "structuur": "onder elkaar", "taal": "goed gespeld",
		},
	}
	res := New().Validate(it)
	assert.False(t, res.Valid)
	assert.True(t, hasMessage(res.Errors, "schrijf_domein in G3 must be technisch+spelling"), res.Errors)
	assert.True(t, hasMessage(res.Infos, "no ondersteuning given"), res.Infos)

	it["schrijf_domein"] = "technisch+spelling"
	it["ondersteuning"] = []any{"woordkaart"}
	res = New().Validate(it)
	assert.True(t, res.Valid, res.Errors)
	assert.Empty(t, res.Infos)
}

func TestTextType(t *testing.T) {
	it := verslagItem()
	it["id"] = "SCH_G4_E_001"
	it["groep"] = float64(4)
	it["niveau"] = "E"
	it["tekstsoort"] = "betoog"
	delete(it, "schrijfdoel")
	res := New().Validate(it)
	assert.True(t, hasMessage(res.Warnings, "tekstsoort betoog is a complex text type"), res.Warnings)

	it = verslagItem()
	it["tekstsoort"] = "roman"
	res = New().Validate(it)
	assert.True(t, hasMessage(res.Errors, `unknown tekstsoort "roman"`), res.Errors)
}

func TestAssignment(t *testing.T) {
	it := verslagItem()
	it["schrijfopdracht"] = "Schrijf iets."
	res := New().Validate(it)
	assert.True(t, hasMessage(res.Errors, "schrijfopdracht is too short"), res.Errors)

	it = verslagItem()
	it["id"] = "SCH_G4_M_002"
	it["groep"] = float64(4)
	it["tekstsoort"] = "brief"
	it["schrijfopdracht"] = "Schrijf een brief aan je oma over je verjaardag."
	delete(it, "structuur_eisen")
	delete(it, "schrijfdoel")
	res = New().Validate(it)
	assert.True(t, hasMessage(res.Warnings, "lists no explicit requirements"), res.Warnings)

	it["schrijfopdracht"] = "Schrijf een brief aan je oma. Je brief moet een aanhef en een groet hebben."
	res = New().Validate(it)
	assert.False(t, hasMessage(res.Warnings, "lists no explicit requirements"), res.Warnings)
}

func TestStructureRequirements(t *testing.T) {
	it := verslagItem()
	it["structuur_eisen"].(map[string]any)["lengte_min_woorden"] = float64(200)
	res := New().Validate(it)
	assert.True(t, hasMessage(res.Errors, "lengte_min_woorden 200 exceeds lengte_max_woorden 150"), res.Errors)

	it = verslagItem()
	it["structuur_eisen"].(map[string]any)["lengte_max_woorden"] = float64(400)
	res = New().Validate(it)
	assert.True(t, res.Valid, res.Errors)
	assert.True(t, hasMessage(res.Warnings, "lengte_max_woorden 400 is above 1.5 × 150"), res.Warnings)
}

func TestAssessmentCriteria(t *testing.T) {
	it := verslagItem()
	crit := it["beoordelingscriteria"].(map[string]any)
	delete(crit, "taal")
	crit["doelgroep_doel"] = " "
	res := New().Validate(it)
	assert.Len(t, res.Errors, 2, res.Errors)
	assert.True(t, hasMessage(res.Errors, "beoordelingscriteria.taal is missing"))
	assert.True(t, hasMessage(res.Errors, "doelgroep_doel is required from G5"))

	delete(it, "beoordelingscriteria")
	res = New().Validate(it)
	assert.Equal(t, []string{"beoordelingscriteria is missing"}, res.Errors)
}

func TestWritingProcess(t *testing.T) {
	it := verslagItem()
	it["schrijfproces_stappen"] = []any{"plannen", "Schrijven"}
	res := New().Validate(it)
	assert.Equal(t, []string{`schrijfproces_stappen lacks "reviseren"`}, res.Errors)
	assert.True(t, hasMessage(res.Warnings, "has no advanced step"), res.Warnings)

	delete(it, "schrijfproces_stappen")
	res = New().Validate(it)
	assert.True(t, hasMessage(res.Errors, "schrijfproces_stappen is missing"), res.Errors)
}

func TestPurpose(t *testing.T) {
	it := verslagItem()
	it["schrijfdoel"] = "vermaken"
	res := New().Validate(it)
	assert.True(t, res.Valid, res.Errors)
	assert.True(t, hasMessage(res.Warnings, "schrijfdoel vermaken does not fit tekstsoort verslag"), res.Warnings)
}

func TestTimeVersusLength(t *testing.T) {
	it := verslagItem()
	it["geschatte_tijd_minuten"] = float64(35)
	res := New().Validate(it)
	assert.Len(t, res.Warnings, 1, res.Warnings)
	assert.True(t, hasMessage(res.Warnings, "does not fit 80 words (expected 8..27 minutes)"), res.Warnings)
}
