// Package schrijven validates writing assignments. There is no answer to
// check; the assignment, its requirements and its assessment criteria are.
package schrijven

import (
	"fmt"

	"github.com/TomLouwers/websitesara/internal/rules"
)

// TextTypes is the writing text-type taxonomy.
var TextTypes = rules.NewSet(
	"lijstje", "kaart", "verhaal", "uitnodiging", "beschrijving", "brief", "dagboek",
	"instructie", "verslag", "recensie", "nieuwsbericht", "e-mail", "samenvatting",
	"gedicht", "betoog", "werkstuk", "essay",
)

// complexTypes need argumentation or research and are unusual below G5.
var complexTypes = rules.NewSet("betoog", "werkstuk", "essay")

// Domains are the values of schrijf_domein.
var Domains = rules.NewSet("technisch", "spelling", "stellen", "technisch+spelling", "spelling+stellen")

// Process steps.
var (
	baseSteps     = []string{"plannen", "schrijven", "reviseren"}
	advancedSteps = []string{"onderzoeken", "herschrijven", "oriënteren"}
)

// purposes maps a text type to the writing purposes that fit it.
var purposes = map[string][]string{
	"verhaal":     {"vermaken"},
	"verslag":     {"informeren", "documenteren"},
	"betoog":      {"overtuigen"},
	"instructie":  {"instrueren"},
	"recensie":    {"overtuigen", "informeren"},
	"uitnodiging": {"informeren", "uitnodigen"},
}

// Rule constrains writing assignments of one (grade, level).
type Rule struct {
	TextTypes []string    `json:"text_types"`
	Domains   []string    `json:"domains"`
	Length    rules.Range `json:"length_words"`

	// ExplicitRequirements requires the assignment to spell out what the text must contain.
	ExplicitRequirements bool `json:"explicit_requirements"`
	RequireAudience      bool `json:"require_audience"`
	ProcessSteps         bool `json:"process_steps"`
	AdvancedStep         bool `json:"advanced_step"`
	// Support expects scaffolding (word banks, sentence starters).
	Support bool `json:"support"`

	Time       rules.Range `json:"time_min"`
	Difficulty rules.Range `json:"difficulty"`
}

// Check keeps the lists within the taxonomies.
func (r Rule) Check() error {
	for _, t := range r.TextTypes {
		if !TextTypes.Has(t) {
			return fmt.Errorf("unknown text type %q", t)
		}
	}
	for _, d := range r.Domains {
		if !Domains.Has(d) {
			return fmt.Errorf("unknown schrijf_domein %q", d)
		}
	}
	if r.AdvancedStep && !r.ProcessSteps {
		return fmt.Errorf("advanced process step required without process steps")
	}
	return nil
}

var (
	typesG3M = []string{"lijstje", "kaart", "verhaal"}
	typesG3E = append(append([]string{}, typesG3M...), "uitnodiging", "beschrijving")
	typesG4M = append(append([]string{}, typesG3E...), "brief", "dagboek", "instructie", "gedicht")
	typesG4E = append(append([]string{}, typesG4M...), "verslag")
	typesG5M = append(append([]string{}, typesG4E...), "recensie", "nieuwsbericht", "e-mail", "samenvatting")
	typesG5E = append(append([]string{}, typesG5M...), "betoog")
	typesG6  = append(append([]string{}, typesG5E...), "werkstuk")
	typesG7  = append(append([]string{}, typesG6...), "essay")

	domainsG3 = []string{"technisch+spelling"}
	domainsG4 = []string{"technisch+spelling", "spelling", "stellen", "spelling+stellen"}
	domainsG5 = []string{"spelling", "stellen", "spelling+stellen"}
)

var book = rules.MustBook("schrijven", map[rules.Key]Rule{
	rules.K(3, rules.Mid): {TextTypes: typesG3M, Domains: domainsG3, Length: rules.R(5, 30), Support: true,
		Time: rules.R(5, 20), Difficulty: rules.R(0.1, 0.4)},
	rules.K(3, rules.End): {TextTypes: typesG3E, Domains: domainsG3, Length: rules.R(10, 50), Support: true,
		Time: rules.R(5, 20), Difficulty: rules.R(0.15, 0.5)},
	rules.K(4, rules.Mid): {TextTypes: typesG4M, Domains: domainsG4, Length: rules.R(30, 80),
		ExplicitRequirements: true, ProcessSteps: true, Support: true,
		Time: rules.R(10, 30), Difficulty: rules.R(0.2, 0.55)},
	rules.K(4, rules.End): {TextTypes: typesG4E, Domains: domainsG4, Length: rules.R(40, 120),
		ExplicitRequirements: true, ProcessSteps: true, Support: true,
		Time: rules.R(10, 30), Difficulty: rules.R(0.25, 0.6)},
	rules.K(5, rules.Mid): {TextTypes: typesG5M, Domains: domainsG5, Length: rules.R(60, 150),
		ExplicitRequirements: true, RequireAudience: true, ProcessSteps: true, AdvancedStep: true,
		Time: rules.R(15, 40), Difficulty: rules.R(0.25, 0.65)},
	rules.K(5, rules.End): {TextTypes: typesG5E, Domains: domainsG5, Length: rules.R(80, 200),
		ExplicitRequirements: true, RequireAudience: true, ProcessSteps: true, AdvancedStep: true,
		Time: rules.R(15, 40), Difficulty: rules.R(0.3, 0.7)},
	rules.K(6, rules.Mid): {TextTypes: typesG6, Domains: domainsG5, Length: rules.R(100, 250),
		ExplicitRequirements: true, RequireAudience: true, ProcessSteps: true, AdvancedStep: true,
		Time: rules.R(20, 50), Difficulty: rules.R(0.3, 0.75)},
	rules.K(6, rules.End): {TextTypes: typesG6, Domains: domainsG5, Length: rules.R(120, 300),
		ExplicitRequirements: true, RequireAudience: true, ProcessSteps: true, AdvancedStep: true,
		Time: rules.R(20, 50), Difficulty: rules.R(0.35, 0.8)},
	rules.K(7, rules.Mid): {TextTypes: typesG7, Domains: domainsG5, Length: rules.R(150, 350),
		ExplicitRequirements: true, RequireAudience: true, ProcessSteps: true, AdvancedStep: true,
		Time: rules.R(25, 60), Difficulty: rules.R(0.35, 0.85)},
	rules.K(7, rules.End): {TextTypes: typesG7, Domains: domainsG5, Length: rules.R(180, 400),
		ExplicitRequirements: true, RequireAudience: true, ProcessSteps: true, AdvancedStep: true,
		Time: rules.R(25, 60), Difficulty: rules.R(0.4, 0.9)},
	rules.K(8, rules.Mid): {TextTypes: typesG7, Domains: domainsG5, Length: rules.R(200, 450),
		ExplicitRequirements: true, RequireAudience: true, ProcessSteps: true, AdvancedStep: true,
		Time: rules.R(30, 75), Difficulty: rules.R(0.4, 0.95)},
	rules.K(8, rules.End): {TextTypes: typesG7, Domains: domainsG5, Length: rules.R(250, 500),
		ExplicitRequirements: true, RequireAudience: true, ProcessSteps: true, AdvancedStep: true,
		Time: rules.R(30, 75), Difficulty: rules.R(0.45, 1)},
})
