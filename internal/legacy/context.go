package legacy

import (
	"strings"

	"github.com/TomLouwers/websitesara/internal/validate"
)

// DefaultContextTag is used when no vocabulary word matches.
const DefaultContextTag = "algemeen"

// contextVocabulary maps each context tag to the word stems that signal it,
// checked in this order. Stems match word prefixes: "appel" finds "appels".
var contextVocabulary = []struct {
	tag   string
	stems []string
}{
	{"snoep", []string{"snoep", "lolly", "drop", "koekje", "chocola", "zuurtje", "taart"}},
	{"fruit", []string{"appel", "peer", "peren", "banaan", "bananen", "sinaasappel", "aardbei", "druif", "druiven", "kers", "fruit", "mandarijn"}},
	{"speelgoed", []string{"knikker", "speelgoed", "pop", "poppen", "bal", "ballen", "blokje", "auto", "autootje", "lego"}},
	{"dieren", []string{"hond", "kat", "poes", "vogel", "vis", "vissen", "eend", "koe", "koeien", "paard", "schaap", "kip", "konijn", "dier"}},
	{"vingers", []string{"vinger", "hand", "handen", "duim"}},
	{"dobbelstenen", []string{"dobbelsteen", "dobbelstenen", "ogen", "stippen"}},
	{"geld", []string{"euro", "cent", "munt", "geld", "betaal", "kost", "portemonnee"}},
	{"tijd", []string{"klok", "uur", "minuut", "minuten", "dag", "dagen", "week", "weken"}},
	{"groepjes", []string{"groepje", "groepjes", "verdeel", "elk", "ieder", "rijtje", "rijen"}},
}

// ContextTags lists every tag ContextTag can return.
func ContextTags() []string {
	tags := make([]string, 0, len(contextVocabulary)+1)
	for _, v := range contextVocabulary {
		tags = append(tags, v.tag)
	}
	return append(tags, DefaultContextTag)
}

// ContextTag picks the context tag of a question. A legacy theme that names
// a known tag wins; otherwise the first vocabulary family with a word in
// text does.
func ContextTag(text, theme string) string {
	theme = strings.ToLower(strings.TrimSpace(theme))
	for _, v := range contextVocabulary {
		if v.tag == theme {
			return theme
		}
	}
	for _, v := range contextVocabulary {
		if _, ok := validate.HasWordPrefix(text, v.stems); ok {
			return v.tag
		}
	}
	return DefaultContextTag
}
