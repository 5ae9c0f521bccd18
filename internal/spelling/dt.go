package spelling

import (
	"slices"
	"strings"
)

// kofschip reports whether a stem ends in one of the consonants of
// "'t kofschip" (t, k, f, s, ch, p), which take -te(n) and -t.
func kofschip(stem string) bool {
	stem = strings.ToLower(stem)
	if strings.HasSuffix(stem, "ch") {
		return true
	}
	if stem == "" {
		return false
	}
	return strings.ContainsRune("tkfsp", rune(stem[len(stem)-1]))
}

// StemFromInfinitive derives the stem that decides the ending: the
// infinitive without -en, a doubled final consonant undone and, for one
// syllable, the long vowel restored ("maken" gives "maak"). A v or z
// before -en stays, since "leven" gives "leefde", not "leefte".
func StemFromInfinitive(inf string) string {
	inf = strings.ToLower(strings.TrimSpace(inf))
	stem, ok := strings.CutSuffix(inf, "en")
	if !ok || len(stem) < 2 {
		return inf
	}
	n := len(stem)
	if stem[n-1] == stem[n-2] && !isVowel(stem[n-1]) {
		return stem[:n-1]
	}
	if n >= 3 && syllables(stem) == 1 && !isVowel(stem[n-1]) && isVowel(stem[n-2]) && !isVowel(stem[n-3]) && stem[n-2] != 'i' {
		return stem[:n-1] + stem[n-2:n-1] + stem[n-1:]
	}
	return stem
}

func isVowel(b byte) bool { return strings.IndexByte("aeiouy", b) >= 0 }

// VerbForm is a past tense or past participle split into stem and ending.
type VerbForm struct {
	Stem   string
	Ending string
}

// SplitVerbForm recognises "ge...d/t" participles and "...de(n)/te(n)"
// past tenses.
func SplitVerbForm(form string) (VerbForm, bool) {
	f := strings.ToLower(strings.TrimSpace(form))
	if strings.ContainsAny(f, " \t") || len(f) < 4 {
		return VerbForm{}, false
	}
	for _, end := range []string{"ten", "den", "te", "de"} {
		if stem, ok := strings.CutSuffix(f, end); ok && len(stem) >= 2 && !isVowel(stem[len(stem)-1]) {
			return VerbForm{Stem: stem, Ending: end}, true
		}
	}
	if rest, ok := strings.CutPrefix(f, "ge"); ok && len(rest) >= 3 {
		last := rest[len(rest)-1]
		if last == 'd' || last == 't' {
			return VerbForm{Stem: rest[:len(rest)-1], Ending: string(last)}, true
		}
	}
	return VerbForm{}, false
}

// wantsT reports whether the form uses the -t/-te(n) ending.
func (v VerbForm) wantsT() bool { return strings.HasPrefix(v.Ending, "t") }

// DTVerdict is the outcome of the 't kofschip check on one verb form.
type DTVerdict int

const (
	DTUnknown DTVerdict = iota
	DTCorrect
	DTShouldBeT
	DTShouldBeD
)

// CheckDT judges a past tense or participle. stem is the stem from the
// infinitive when known; otherwise it is read from the form itself, which
// is ambiguous for stems ending in f or s (v and z verbs).
func CheckDT(form, stem string) DTVerdict {
	vf, ok := SplitVerbForm(form)
	if !ok {
		return DTUnknown
	}
	participle := vf.Ending == "t" || vf.Ending == "d"
	if stem == "" {
		last := vf.Stem[len(vf.Stem)-1]
		switch {
		case participle && isVowel(last):
			// "gepraat": the final letter belongs to the stem.
			return DTCorrect
		case last == 'f' || last == 's':
			return DTUnknown
		}
		stem = vf.Stem
	}
	// A stem ending in t or d adds nothing in the participle: "gezet", "geantwoord".
	if participle && (strings.HasSuffix(stem, "t") || strings.HasSuffix(stem, "d")) {
		if strings.HasSuffix(vf.Stem+vf.Ending, stem) {
			return DTCorrect
		}
		return DTUnknown
	}
	switch k := kofschip(stem); {
	case k && !vf.wantsT():
		return DTShouldBeT
	case !k && vf.wantsT():
		return DTShouldBeD
	default:
		return DTCorrect
	}
}

// swapDT returns form with its final d/t (or de/te) swapped, the classic
// dt mistake.
func swapDT(form string) string {
	f := strings.ToLower(strings.TrimSpace(form))
	for _, p := range [][2]string{{"ten", "den"}, {"den", "ten"}, {"te", "de"}, {"de", "te"}, {"dt", "t"}, {"t", "d"}, {"d", "t"}} {
		if rest, ok := strings.CutSuffix(f, p[0]); ok {
			return rest + p[1]
		}
	}
	return f
}

// tussenNBlocklist maps known wrong compounds to their correct spelling.
var tussenNBlocklist = map[string]string{
	"lopenbrug":    "loopbrug",
	"grotenmoeder": "grootmoeder",
	"slapebank":    "slaapbank",
	"pannekoek":    "pannenkoek",
	"ruggegraat":   "ruggengraat",
	"zonnenbloem":  "zonnebloem",
}

// blocklistOrder lists the blocklist longest first, so the most specific
// entry is reported.
var blocklistOrder = func() []string {
	out := make([]string, 0, len(tussenNBlocklist))
	for k := range tussenNBlocklist {
		out = append(out, k)
	}
	slices.SortFunc(out, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a, b)
	})
	return out
}()

// TussenNMistake returns the correct spelling when word contains a known
// wrong tussen-n compound.
func TussenNMistake(word string) (wrong, right string, found bool) {
	w := strings.ToLower(word)
	for _, bad := range blocklistOrder {
		if strings.Contains(w, bad) {
			return bad, tussenNBlocklist[bad], true
		}
	}
	return "", "", false
}
