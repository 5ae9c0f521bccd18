package schrijven

import (
	"regexp"
	"strings"

	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/TomLouwers/websitesara/internal/validate"
)

const minAssignmentLen = 20

func textType(c *validate.Context[Rule]) string {
	return strings.ToLower(strings.TrimSpace(c.Item.Str("tekstsoort")))
}

func checkTextType(c *validate.Context[Rule]) {
	t := textType(c)
	switch {
	case !TextTypes.Has(t):
		c.Errorf("unknown tekstsoort %q", c.Item.Str("tekstsoort"))
	case complexTypes.Has(t) && c.Key.Grade < 5:
		c.Warnf("tekstsoort %s is a complex text type, unusual below G5", t)
	case !rules.Contains(c.Rule.TextTypes, t):
		c.Warnf("tekstsoort %s is not expected at %s", t, c.Key)
	}
}

func checkDomain(c *validate.Context[Rule]) {
	d := strings.ToLower(strings.ReplaceAll(c.Item.Str("schrijf_domein"), " ", ""))
	switch {
	case !Domains.Has(d):
		c.Errorf("schrijf_domein must be one of %s, got %q", strings.Join(Domains.Sorted(), ", "), c.Item.Str("schrijf_domein"))
	case c.Key.Grade == 3 && d != "technisch+spelling":
		c.Errorf("schrijf_domein in G3 must be technisch+spelling, got %s", d)
	case !rules.Contains(c.Rule.Domains, d):
		c.Warnf("schrijf_domein %s is unusual at %s", d, c.Key)
	}
}

// requirementRe spots an explicit list of requirements in the assignment.
var requirementRe = regexp.MustCompile(`(?m)^\s*(?:[-•*]|\d+[.)])\s+\S`)

var requirementWords = []string{"moet", "moeten", "eisen", "zorg dat", "gebruik", "schrijf minstens", "minimaal"}

func checkAssignment(c *validate.Context[Rule]) {
	opdracht := strings.TrimSpace(c.Item.Str("schrijfopdracht"))
	if n := len([]rune(opdracht)); n < minAssignmentLen {
		c.Errorf("schrijfopdracht is too short (%d characters, want at least %d)", n, minAssignmentLen)
		return
	}
	if t := textType(c); t != "" && !validate.ContainsWord(opdracht, t) {
		c.Warnf("schrijfopdracht does not name the text type (%s)", t)
	}
	if !c.Rule.ExplicitRequirements {
		return
	}
	if c.Item.Map("structuur_eisen") != nil || requirementRe.MatchString(opdracht) {
		return
	}
	if _, ok := validate.FirstWord(opdracht, requirementWords); !ok {
		c.Warnf("schrijfopdracht lists no explicit requirements, expected from G4")
	}
}

func checkStructure(c *validate.Context[Rule]) {
	eisen := c.Item.Map("structuur_eisen")
	if eisen == nil {
		return
	}
	lo, okLo := eisen.Float("lengte_min_woorden")
	hi, okHi := eisen.Float("lengte_max_woorden")
	if okLo && okHi && lo > hi {
		c.Errorf("structuur_eisen: lengte_min_woorden %s exceeds lengte_max_woorden %s", validate.FormatNumber(lo), validate.FormatNumber(hi))
		return
	}
	if okLo && lo < 0.7*c.Rule.Length.Min {
		c.Warnf("structuur_eisen: lengte_min_woorden %s is below 0.7 × %s for %s", validate.FormatNumber(lo), validate.FormatNumber(c.Rule.Length.Min), c.Key)
	}
	if okHi && hi > 1.5*c.Rule.Length.Max {
		c.Warnf("structuur_eisen: lengte_max_woorden %s is above 1.5 × %s for %s", validate.FormatNumber(hi), validate.FormatNumber(c.Rule.Length.Max), c.Key)
	}
	if n, ok := eisen.Int("alineas"); ok && n < 1 {
		c.Errorf("structuur_eisen: alineas must be at least 1, got %d", n)
	}
}

func checkCriteria(c *validate.Context[Rule]) {
	crit := c.Item.Map("beoordelingscriteria")
	if crit == nil {
		c.Error("beoordelingscriteria is missing")
		return
	}
	for _, k := range []string{"inhoud", "structuur", "taal"} {
		if isEmpty(crit, k) {
			c.Errorf("beoordelingscriteria.%s is missing", k)
		}
	}
	if c.Rule.RequireAudience && isEmpty(crit, "doelgroep_doel") {
		c.Errorf("beoordelingscriteria.doelgroep_doel is required from G5")
	}
}

// isEmpty treats both blank strings and empty lists as missing.
func isEmpty(it map[string]any, key string) bool {
	switch v := it[key].(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	default:
		return false
	}
}

func checkProcess(c *validate.Context[Rule]) {
	if !c.Rule.ProcessSteps {
		return
	}
	var steps []string
	for _, s := range c.Item.Strings("schrijfproces_stappen") {
		steps = append(steps, strings.ToLower(strings.TrimSpace(s)))
	}
	if len(steps) == 0 {
		c.Error("schrijfproces_stappen is missing; expected from G4")
		return
	}
	for _, want := range baseSteps {
		if !rules.Contains(steps, want) {
			c.Errorf("schrijfproces_stappen lacks %q", want)
		}
	}
	if c.Rule.AdvancedStep {
		for _, a := range advancedSteps {
			if rules.Contains(steps, a) {
				return
			}
		}
		c.Warnf("schrijfproces_stappen has no advanced step (%s)", strings.Join(advancedSteps, ", "))
	}
}

func checkPurpose(c *validate.Context[Rule]) {
	doel := strings.ToLower(strings.TrimSpace(c.Item.Str("schrijfdoel")))
	if doel == "" {
		return
	}
	if fits, ok := purposes[textType(c)]; ok && !rules.Contains(fits, doel) {
		c.Warnf("schrijfdoel %s does not fit tekstsoort %s (expected %s)", doel, textType(c), strings.Join(fits, " or "))
	}
}

func checkSupport(c *validate.Context[Rule]) {
	if c.Rule.Support && !c.Item.Has("ondersteuning") {
		c.Infof("no ondersteuning given; young writers usually get a word bank or sentence starters")
	}
}

func checkMetadata(c *validate.Context[Rule]) {
	validate.CheckDifficulty(c.Report, c.Item, "moeilijkheidsgraad", c.Rule.Difficulty)
	validate.CheckDuration(c.Report, c.Item, "geschatte_tijd_minuten", c.Rule.Time, "min")
}

// checkTimeLength expects between length_min/10 and length_min/3 minutes of writing.
func checkTimeLength(c *validate.Context[Rule]) {
	minutes, ok := c.Item.Float("geschatte_tijd_minuten")
	if !ok {
		return
	}
	lo, ok := c.Item.Map("structuur_eisen").Float("lengte_min_woorden")
	if !ok || lo <= 0 {
		return
	}
	if minutes < lo/10 || minutes > lo/3 {
		c.Warnf("geschatte_tijd_minuten %s does not fit %s words (expected %.0f..%.0f minutes)",
			validate.FormatNumber(minutes), validate.FormatNumber(lo), lo/10, lo/3)
	}
}
