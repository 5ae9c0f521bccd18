// Package domain maps domain names to their validators and infers the
// domain of an item that does not say which one it belongs to.
package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/TomLouwers/websitesara/internal/getallen"
	"github.com/TomLouwers/websitesara/internal/item"
	"github.com/TomLouwers/websitesara/internal/lezen"
	"github.com/TomLouwers/websitesara/internal/meetkunde"
	"github.com/TomLouwers/websitesara/internal/rules"
	"github.com/TomLouwers/websitesara/internal/schrijven"
	"github.com/TomLouwers/websitesara/internal/spelling"
	"github.com/TomLouwers/websitesara/internal/validate"
	"github.com/TomLouwers/websitesara/internal/verhaaltjes"
	"github.com/TomLouwers/websitesara/internal/verhoudingen"
	"github.com/TomLouwers/websitesara/internal/woordenschat"
)

// ErrUnknownDomain is returned when a name matches no registered domain.
var ErrUnknownDomain = errors.New("unknown domain")

// Validator checks the items of one domain.
type Validator interface {
	Name() string
	Validate(it item.Item) *validate.Result
	RuleFor(k rules.Key) (any, bool)
}

// Registry holds one validator per domain.
type Registry struct {
	byName   map[string]Validator
	byPrefix map[string]string
	aliases  map[string]string
}

// New returns a registry with every domain registered.
func New() *Registry {
	r := &Registry{
		byName:   make(map[string]Validator),
		byPrefix: make(map[string]string),
		aliases: map[string]string{
			"rekenen":           getallen.Name,
			"meten":             meetkunde.Name,
			"meten-meetkunde":   meetkunde.Name,
			"meten_meetkunde":   meetkunde.Name,
			"breuken":           verhoudingen.Name,
			"begrijpend-lezen":  lezen.Name,
			"begrijpend_lezen":  lezen.Name,
			"verhaaltjessommen": verhaaltjes.Name,
		},
	}
	r.register(getallen.IDPrefix, getallen.New())
	r.register(meetkunde.IDPrefix, meetkunde.New())
	r.register(verhoudingen.IDPrefix, verhoudingen.New())
	r.register(lezen.IDPrefix, lezen.New())
	r.register(spelling.IDPrefix, spelling.New())
	r.register(schrijven.IDPrefix, schrijven.New())
	r.register(woordenschat.IDPrefix, woordenschat.New())
	r.register(verhaaltjes.IDPrefix, verhaaltjes.New())
	return r
}

func (r *Registry) register(prefix string, v Validator) {
	r.byName[v.Name()] = v
	r.byPrefix[prefix] = v.Name()
}

// Names returns the registered domain names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Get returns the validator for a domain name or one of its aliases.
func (r *Registry) Get(name string) (Validator, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if a, ok := r.aliases[n]; ok {
		n = a
	}
	v, ok := r.byName[n]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownDomain, name, strings.Join(r.Names(), ", "))
	}
	return v, nil
}

// ForItem returns the validator for it, inferred with Infer.
func (r *Registry) ForItem(it item.Item) Validator {
	return r.byName[r.Infer(it)]
}

// Infer names the domain of an item. The id prefix decides when it is a
// known one; otherwise keys only one domain uses do. Items that match
// nothing are arithmetic.
func (r *Registry) Infer(it item.Item) string {
	if prefix, _, ok := strings.Cut(it.ID(), "_"); ok {
		if n, ok := r.byPrefix[strings.ToUpper(prefix)]; ok {
			return n
		}
	}
	return inferFromShape(it)
}

func inferFromShape(it item.Item) string {
	switch {
	case it.Has("vraag") && it.Has("antwoorden"):
		return verhoudingen.Name
	case it.Has("tekst") && it.Has("vragen"):
		return lezen.Name
	case it.Has("schrijfopdracht"):
		return schrijven.Name
	case it.Has("doelwoord"):
		return woordenschat.Name
	case it.Has("stappenstructuur"), it.Has("verhaal_tekst"):
		return verhaaltjes.Name
	case it.Has("subdomein"):
		return meetkunde.Name
	case it.Has("spellingcategorie"):
		return spelling.Name
	default:
		return getallen.Name
	}
}
