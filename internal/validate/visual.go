package validate

import (
	"strings"

	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/rules"
)

// VisualCues are Dutch words that reference a picture in prompt text.
var VisualCues = []string{"plaatje", "tekening", "afbeelding", "figuur", "foto", "illustratie", "prent"}

// HasVisual reports whether an item satisfies a visualization requirement:
// has_visual is true, assets are listed, the text draws a picture with
// glyphs, or the text references a visual with a cue word (or one of the
// level-specific extras such as "liniaal" or "klok").
func HasVisual(it item.Item, texts []string, extras []string) bool {
	if it.Bool("has_visual") {
		return true
	}
	for _, a := range it.Strings("assets") {
		if strings.TrimSpace(a) != "" {
			return true
		}
	}
	cues := append(append([]string{}, VisualCues...), extras...)
	for _, t := range texts {
		if HasVisualGlyphs(t) {
			return true
		}
		if _, ok := HasWordPrefix(t, cues); ok {
			return true
		}
	}
	return false
}

// CheckVisual applies the shared visualization policy. subject prefixes the
// finding, e.g. "G3".
func CheckVisual(r *Report, req rules.Visual, present bool, subject string) {
	switch {
	case req.Mandatory() && !present:
		r.Errorf("%s: visualization required (%s) but no has_visual, asset or picture reference found", subject, req)
	case req == rules.VisualStronglyRecommended && !present:
		r.Warnf("%s: visualization strongly recommended but none found", subject)
	case req == rules.VisualRecommended && !present:
		r.Infof("%s: visualization recommended but none found", subject)
	case req == rules.VisualForbidden && present:
		r.Warnf("%s: visualization is not expected at this level", subject)
	}
}
