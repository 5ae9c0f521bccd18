package validate

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var wordRe = regexp.MustCompile(`[\p{L}\p{N}]+(?:['’][\p{L}]+)*`)

// Fold normalises text for comparisons: NFC, Unicode case folding and
// collapsed whitespace. "  Drie  Appels " and "drie appels" fold equal.
func Fold(s string) string {
	// A Caser keeps state, so each call gets its own.
	folded := cases.Fold().String(norm.NFC.String(s))
	return strings.Join(strings.Fields(folded), " ")
}

// CompareKey folds s and drops all whitespace; used for distractor identity.
func CompareKey(s string) string {
	return strings.ReplaceAll(Fold(s), " ", "")
}

// Words returns the folded word tokens of s.
func Words(s string) []string {
	return wordRe.FindAllString(Fold(s), -1)
}

// WordCount counts word tokens; numbers count as words.
func WordCount(s string) int {
	return len(wordRe.FindAllString(s, -1))
}

// ContainsWord reports whether phrase occurs in text on word boundaries,
// ignoring case. Phrases without any letters or digits (e.g. "€", "%")
// are matched as plain substrings.
func ContainsWord(text, phrase string) bool {
	pw := Words(phrase)
	if len(pw) == 0 {
		return strings.Contains(text, strings.TrimSpace(phrase))
	}
	hay := " " + strings.Join(Words(text), " ") + " "
	return strings.Contains(hay, " "+strings.Join(pw, " ")+" ")
}

// FirstWord returns the first phrase in phrases that occurs in text.
func FirstWord(text string, phrases []string) (string, bool) {
	for _, p := range phrases {
		if ContainsWord(text, p) {
			return p, true
		}
	}
	return "", false
}

// HasWordPrefix reports whether any word of text starts with one of the
// prefixes; "plaatje" matches "plaatjes".
func HasWordPrefix(text string, prefixes []string) (string, bool) {
	words := Words(text)
	for _, p := range prefixes {
		fp := Fold(p)
		for _, w := range words {
			if strings.HasPrefix(w, fp) {
				return p, true
			}
		}
	}
	return "", false
}

// isVisualGlyph reports runes used to draw pictures in plain text: the
// coloured square emoji block and box-drawing characters.
func isVisualGlyph(r rune) bool {
	return (r >= 0x1F7E6 && r <= 0x1F7EB) || (r >= 0x2500 && r <= 0x257F)
}

// HasVisualGlyphs reports whether s contains drawn-picture glyphs.
func HasVisualGlyphs(s string) bool {
	return strings.IndexFunc(s, isVisualGlyph) >= 0
}

// StripVisuals removes drawn-picture glyphs and collapses newlines so
// sentence heuristics only see prose.
func StripVisuals(s string) string {
	s = strings.Map(func(r rune) rune {
		if isVisualGlyph(r) {
			return -1
		}
		if r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// Sentences splits prose on '.', '!' and '?'. A full stop between two
// digits (a decimal) does not end a sentence.
func Sentences(s string) []string {
	s = StripVisuals(s)
	runes := []rune(s)
	var out []string
	start := 0
	for i, r := range runes {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if r == '.' && i > 0 && i+1 < len(runes) && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
			continue
		}
		if sent := strings.TrimSpace(string(runes[start:i])); sent != "" && WordCount(sent) > 0 {
			out = append(out, sent)
		}
		start = i + 1
	}
	if tail := strings.TrimSpace(string(runes[start:])); tail != "" && WordCount(tail) > 0 {
		out = append(out, tail)
	}
	return out
}

var paragraphRe = regexp.MustCompile(`\n\s*\n`)

// Paragraphs splits text on blank lines and drops empty parts.
func Paragraphs(s string) []string {
	var out []string
	for _, p := range paragraphRe.Split(strings.ReplaceAll(s, "\r\n", "\n"), -1) {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// LastSentence returns the final sentence of s including its terminator.
func LastSentence(s string) string {
	s = strings.TrimSpace(StripVisuals(s))
	cut := strings.LastIndexAny(strings.TrimRight(s, ".!?"), ".!?")
	return strings.TrimSpace(s[cut+1:])
}
