package meetkunde

import (
	"regexp"
	"strings"

	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/TomLouwers/websitesara/internal/validate"
)

// figureForms maps the forms a figure name takes in prose to the
// inventory name.
var figureForms = map[string]string{
	"cirkel": "cirkel", "cirkels": "cirkel", "rondje": "cirkel",
	"vierkant": "vierkant", "vierkanten": "vierkant",
	"driehoek": "driehoek", "driehoeken": "driehoek",
	"rechthoek": "rechthoek", "rechthoeken": "rechthoek",
	"ovaal": "ovaal", "ovalen": "ovaal",
	"vijfhoek": "vijfhoek", "vijfhoeken": "vijfhoek",
	"zeshoek": "zeshoek", "zeshoeken": "zeshoek",
	"achthoek": "achthoek", "achthoeken": "achthoek",
	"veelhoek": "veelhoek", "veelhoeken": "veelhoek",
	"kubus": "kubus", "kubussen": "kubus",
	"bol": "bol", "bollen": "bol",
	"balk": "balk", "balken": "balk",
	"cilinder": "cilinder", "cilinders": "cilinder",
	"piramide": "piramide", "piramides": "piramide",
	"kegel": "kegel", "kegels": "kegel",
	"prisma": "prisma", "prisma's": "prisma",
	"ruit": "ruit", "ruiten": "ruit",
	"parallellogram": "parallellogram", "parallellogrammen": "parallellogram",
	"trapezium": "trapezium", "trapeziums": "trapezium",
	"vlieger": "vlieger", "vliegers": "vlieger",
}

// Figures returns the inventory names of the figures mentioned in text, in
// order of first mention.
func Figures(text string) []string {
	var out []string
	seen := map[string]bool{}
	for _, w := range validate.Words(text) {
		if f, ok := figureForms[w]; ok && !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

var (
	countPropertyRe = regexp.MustCompile(`(?i)\bhoeveel\s+(?:\p{L}+\s+)?(hoeken|zijden|zijkanten|ribben|hoekpunten|vlakken|kanten)\b`)
	symmetryWords   = []string{"symmetrie", "symmetrisch", "spiegelas", "spiegelen", "spiegelbeeld", "spiegellijn"}
	angleWords      = []string{"graden", "gradenboog", "hoekmeter", "geodriehoek"}
)

func checkMeetkunde(c *itemCheck) {
	for _, f := range Figures(c.text) {
		if !contains(c.Rule.Figures, f) {
			c.Errorf("figure '%s' is not in the inventory for %s", f, c.Key)
		}
	}

	if !c.Rule.CountProperties {
		if m := countPropertyRe.FindStringSubmatch(c.text); m != nil {
			c.Errorf("counting properties (%s) is not expected at %s; figures are only recognised", strings.ToLower(m[1]), c.Key)
		}
	}

	if w, ok := validate.FirstWord(c.text, symmetryWords); ok {
		switch c.Rule.Symmetry {
		case rules.Forbidden:
			c.Errorf("symmetry (%s) is not taught before G3-E", w)
		case rules.Introduction:
			c.Infof("symmetry is introduced at %s; keep to one mirror line", c.Key)
		}
	}

	angle, ok := validate.FirstWord(c.text, angleWords)
	if !ok && strings.Contains(c.text, "°") {
		angle, ok = "°", true
	}
	if ok {
		switch c.Rule.Angles {
		case rules.Forbidden:
			c.Errorf("formal angle measurement (%s) is not taught before G4", angle)
		case rules.Introduction:
			c.Warnf("angle measurement in degrees (%s) goes beyond naming right, acute and obtuse angles at %s", angle, c.Key)
		}
	}
}
