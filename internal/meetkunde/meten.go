package meetkunde

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/TomLouwers/websitesara/internal/validate"
)

// unitAliases maps written unit words to their symbol.
var unitAliases = map[string]string{
	"millimeter": "mm", "centimeter": "cm", "decimeter": "dm", "meter": "m", "kilometer": "km",
	"milligram": "mg", "gram": "g", "kilogram": "kg", "kilo": "kg",
	"milliliter": "ml", "centiliter": "cl", "deciliter": "dl", "liter": "l",
}

// quantityRe finds a number followed by a unit.
var quantityRe = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(millimeter|centimeter|decimeter|kilometer|meter|milligram|kilogram|kilo|gram|milliliter|centiliter|deciliter|liter|ons|pond|mm|cm|dm|km|mg|kg|ml|cl|dl|m|g|l)\b`)

// Quantity is a measured amount with its unit symbol.
type Quantity struct {
	Value float64
	Unit  string
	Raw   string
}

// Family returns the quantity family of the unit.
func (q Quantity) Family() string { return unitFamily[q.Unit] }

// Quantities returns the measured amounts written in text.
func Quantities(text string) []Quantity {
	var out []Quantity
	for _, m := range quantityRe.FindAllStringSubmatch(text, -1) {
		v, ok := validate.ParseNumber(m[1])
		if !ok {
			continue
		}
		unit := strings.ToLower(m[2])
		if sym, ok := unitAliases[unit]; ok {
			unit = sym
		}
		out = append(out, Quantity{Value: v, Unit: unit, Raw: m[0]})
	}
	return out
}

// familyWords trigger a METEN subcheck when found in the question.
var familyWords = map[string][]string{
	familyLength: {"lengte", "lang", "langer", "langst", "kort", "korter", "hoog", "hoger", "breed", "afstand", "meter", "centimeter", "liniaal", "meetlat"},
	familyWeight: {"gewicht", "weegt", "wegen", "zwaar", "zwaarder", "zwaarst", "licht", "lichter", "kilo", "gram", "weegschaal"},
	familyVolume: {"inhoud", "liter", "vol", "voller", "leeg", "past", "maatbeker", "emmer", "fles"},
	familyTime:   {"klok", "hoe laat", "uur", "kwart", "minuten", "minuut", "tijd", "digitale klok"},
	familyMoney:  {"euro", "cent", "munt", "munten", "muntjes", "betalen", "betaalt", "kost", "kosten", "geld", "wisselgeld", "briefje"},
}

var familyOrder = []string{familyLength, familyWeight, familyVolume, familyTime, familyMoney}

// Families returns the METEN families the question is about, in fixed order.
func Families(text string) []string {
	var out []string
	for _, f := range familyOrder {
		if _, ok := validate.FirstWord(text, familyWords[f]); ok {
			out = append(out, f)
			continue
		}
		switch f {
		case familyTime:
			if halfRe.MatchString(text) || clockRe.MatchString(text) {
				out = append(out, f)
			}
		case familyMoney:
			if strings.Contains(text, "€") {
				out = append(out, f)
			}
		default:
			for _, q := range Quantities(text) {
				if q.Family() == f {
					out = append(out, f)
					break
				}
			}
		}
	}
	return out
}

func (r Rule) unitRule(family string) UnitRule {
	switch family {
	case familyLength:
		return r.Length
	case familyWeight:
		return r.Weight
	default:
		return r.Volume
	}
}

func checkUnits(c *itemCheck, family string) {
	ur := c.Rule.unitRule(family)
	for _, q := range Quantities(c.text) {
		if q.Family() != family {
			continue
		}
		switch {
		case ur.ComparativeOnly:
			c.Errorf("%s: formal %s units are not used at %s; only comparative words (%s)", q.Raw, family, c.Key, comparativeHint[family])
			continue
		case len(ur.Allowed) > 0 && !contains(ur.Allowed, q.Unit):
			c.Errorf("unit %q is not allowed at %s (allowed: %s)", q.Unit, c.Key, strings.Join(ur.Allowed, ", "))
		}
		if ur.WholeOnly && q.Value != float64(int64(q.Value)) {
			c.Errorf("%s: only whole %s are allowed at %s; decimals are not", q.Raw, unitPlural[q.Unit], c.Key)
		}
		if ur.Max > 0 && q.Value > ur.Max {
			c.Warnf("%s exceeds the usual maximum %s %s at %s", q.Raw, validate.FormatNumber(ur.Max), q.Unit, c.Key)
		}
	}
}

var comparativeHint = map[string]string{
	familyWeight: "zwaarder, lichter",
	familyVolume: "meer, minder, voller",
	familyLength: "langer, korter",
}

var unitPlural = map[string]string{
	"m": "meters", "cm": "centimeters", "km": "kilometers", "kg": "kilo's", "g": "grammen", "l": "liters",
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}

// Clock reading.

var (
	halfRe  = regexp.MustCompile(`(?i)\bhalf\s+(\d{1,2}|een|één|twee|drie|vier|vijf|zes|zeven|acht|negen|tien|elf|twaalf)\b`)
	clockRe = regexp.MustCompile(`\b(\d{1,2})[:.](\d{2})\b`)
	kwartRe = regexp.MustCompile(`(?i)\bkwart\s+(?:over|voor)\b`)
)

var hourWords = map[string]int{
	"een": 1, "één": 1, "twee": 2, "drie": 3, "vier": 4, "vijf": 5, "zes": 6,
	"zeven": 7, "acht": 8, "negen": 9, "tien": 10, "elf": 11, "twaalf": 12,
}

// HalfHour returns K for a prompt reading "half K".
func HalfHour(text string) (int, bool) {
	m := halfRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	k, err := strconv.Atoi(m[1])
	if err != nil {
		k = hourWords[strings.ToLower(m[1])]
	}
	if k < 1 || k > 12 {
		return 0, false
	}
	return k, true
}

// ParseClock reads "3:30", "03:30" or "15.30".
func ParseClock(s string) (hour, minute int, ok bool) {
	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if hour > 24 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// sameHour compares clock hours on a 12-hour dial.
func sameHour(a, b int) bool { return a%12 == b%12 }

// checkHalfHour enforces Dutch "half K" semantics: half 4 is 3:30.
func checkHalfHour(c *itemCheck) {
	k, ok := HalfHour(c.Item.Str("hoofdvraag"))
	if !ok {
		return
	}
	before := k - 1
	if before == 0 {
		before = 12
	}
	hour, minute, ok := ParseClock(c.Item.Str("correct_antwoord"))
	if !ok {
		c.Infof("half %d: correct_antwoord %q is not a clock time; half-hour check skipped", k, c.Item.Str("correct_antwoord"))
		return
	}
	switch {
	case minute == 30 && sameHour(hour, k):
		c.Criticalf("half %d = %d:30, niet %d:30", k, before, k)
	case minute != 30 || !sameHour(hour, before):
		c.Errorf("correct_antwoord %s does not read as half %d (%d:30)", c.Item.Str("correct_antwoord"), k, before)
	}

	mistake := false
	for _, d := range c.Item.Strings("afleiders") {
		if h, m, ok := ParseClock(d); ok && m == 30 && sameHour(h, k) {
			mistake = true
			break
		}
	}
	if !mistake {
		c.Warnf("half %d: the common-mistake distractor %d:30 is missing", k, k)
	}
}

// resolutionOf returns the finest clock reading used in texts.
func resolutionOf(texts ...string) Resolution {
	res := WholeHours
	for _, t := range texts {
		if halfRe.MatchString(t) && res < HalfHours {
			res = HalfHours
		}
		if kwartRe.MatchString(t) && res < Quarters {
			res = Quarters
		}
		for _, m := range clockRe.FindAllStringSubmatch(t, -1) {
			minute, _ := strconv.Atoi(m[2])
			var r Resolution
			switch {
			case minute == 0:
				r = WholeHours
			case minute == 30:
				r = HalfHours
			case minute%15 == 0:
				r = Quarters
			case minute%5 == 0:
				r = FiveMinutes
			default:
				r = Minutes
			}
			if r > res {
				res = r
			}
		}
	}
	return res
}

func checkClock(c *itemCheck) {
	checkHalfHour(c)

	texts := append([]string{c.text, c.Item.Str("correct_antwoord")}, c.Item.Strings("afleiders")...)
	if res := resolutionOf(texts...); res > c.Rule.Clock.Resolution {
		c.Errorf("clock reading in %s is not taught at %s (up to %s)", res, c.Key, c.Rule.Clock.Resolution)
	}
	for _, t := range texts {
		if h, _, ok := ParseClock(t); ok && h > 12 && !c.Rule.Clock.Hours24 {
			c.Warnf("24-hour notation %q is used before it is taught", t)
			break
		}
	}
	digital := validate.ContainsWord(c.text, "digitale klok") || validate.ContainsWord(c.text, "digitaal")
	if digital && c.Rule.Clock.Digital == rules.Forbidden {
		c.Errorf("digital clock notation is not taught at %s", c.Key)
	}
}

// Money.

var (
	noteWords   = []string{"briefje", "briefjes", "biljet", "biljetten", "bankbiljet", "bankbiljetten"}
	coinWords   = []string{"munt", "munten", "muntje", "muntjes", "cent", "centen", "euromunt", "betaalt met", "betaal met", "wisselgeld"}
	euroDecRe   = regexp.MustCompile(`€\s*\d+,\d{2}\b`)
	euroAmounts = regexp.MustCompile(`(?i)(?:€\s*(\d+(?:,\d{1,2})?)|(\d+(?:,\d{1,2})?)\s*(euro|cent)\b)`)
)

// amountsCents returns every written amount of money in cents.
func amountsCents(text string) []int {
	var out []int
	for _, m := range euroAmounts.FindAllStringSubmatch(text, -1) {
		raw, unit := m[1], "euro"
		if raw == "" {
			raw, unit = m[2], strings.ToLower(m[3])
		}
		v, ok := validate.ParseNumber(raw)
		if !ok {
			continue
		}
		if unit == "euro" {
			v *= 100
		}
		out = append(out, int(v+0.5))
	}
	return out
}

func formatEuro(cents int) string { return fmt.Sprintf("€%d,%02d", cents/100, cents%100) }

func checkMoney(c *itemCheck) {
	mr := c.Rule.Money
	all := c.text + " " + c.Item.Str("correct_antwoord")
	if mr.CoinsOnly {
		if w, ok := validate.FirstWord(all, noteWords); ok {
			c.Errorf("bank notes (%s) are not used at %s; coins only", w, c.Key)
		}
	}
	if mr.MaxCents > 0 {
		for _, cents := range amountsCents(all) {
			if cents > mr.MaxCents {
				c.Errorf("amount %s exceeds the maximum %s at %s", formatEuro(cents), formatEuro(mr.MaxCents), c.Key)
			}
		}
	}
	if mr.DecimalNeedsCoins && euroDecRe.MatchString(all) {
		if _, ok := validate.FirstWord(c.text, coinWords); !ok {
			c.Errorf("decimal amount %q needs a context that shows the coins it is made of", euroDecRe.FindString(all))
		}
	}
}

func checkMeten(c *itemCheck) {
	families := Families(c.Item.Str("hoofdvraag"))
	if len(families) == 0 {
		families = Families(c.text)
	}
	if len(families) == 0 {
		c.Info("no measurement topic (length, weight, volume, time, money) recognised in the question")
		return
	}
	for _, f := range families {
		switch f {
		case familyLength, familyWeight, familyVolume:
			checkUnits(c, f)
		case familyTime:
			checkClock(c)
		case familyMoney:
			checkMoney(c)
		}
	}
}
