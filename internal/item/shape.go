package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Shape describes the top-level structure a domain expects of an item.
// Types maps a property to its JSON type; alternatives are separated by
// "|" (e.g. "number|string|null").
type Shape struct {
	Name     string
	Required []string
	Types    map[string]string
}

// schemaCache caches compiled shape schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

var printer = message.NewPrinter(language.English)

// CheckShape validates it against the shape and returns one message per
// violation, in a stable order. An empty result means the shape holds.
func CheckShape(s Shape, it Item) []string {
	compiled, err := compiledShape(s)
	if err != nil {
		return []string{fmt.Sprintf("structure: internal schema %q: %v", s.Name, err)}
	}

	// The jsonschema library expects plain JSON values; round-trip the item
	// so YAML-decoded numbers and nested maps are normalised.
	raw, err := json.Marshal(it)
	if err != nil {
		return []string{fmt.Sprintf("structure: item is not serialisable: %v", err)}
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return []string{fmt.Sprintf("structure: item is not valid JSON: %v", err)}
	}

	err = compiled.Validate(doc)
	if err == nil {
		return nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return []string{fmt.Sprintf("structure: %v", err)}
	}
	var msgs []string
	collectLeaves(verr, &msgs)
	sort.Strings(msgs)
	return msgs
}

func collectLeaves(e *jsonschema.ValidationError, out *[]string) {
	if len(e.Causes) == 0 {
		msg := e.ErrorKind.LocalizedString(printer)
		if len(e.InstanceLocation) == 0 {
			*out = append(*out, "structure: "+msg)
		} else {
			*out = append(*out, fmt.Sprintf("structure: %s: %s", strings.Join(e.InstanceLocation, "."), msg))
		}
		return
	}
	for _, c := range e.Causes {
		collectLeaves(c, out)
	}
}

// compiledShape returns a cached compiled schema or compiles and caches it.
func compiledShape(s Shape) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(s.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", s.Name)
	if err := c.AddResource(url, s.definition()); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	schemaCache.Store(s.Name, compiled)
	return compiled, nil
}

// definition renders the shape as a JSON-schema document built from plain
// JSON values, as the compiler requires.
func (s Shape) definition() map[string]any {
	props := make(map[string]any, len(s.Types))
	for name, types := range s.Types {
		alts := strings.Split(types, "|")
		if len(alts) == 1 {
			props[name] = map[string]any{"type": alts[0]}
			continue
		}
		list := make([]any, 0, len(alts))
		for _, a := range alts {
			list = append(list, a)
		}
		props[name] = map[string]any{"type": list}
	}
	required := make([]any, 0, len(s.Required))
	for _, r := range s.Required {
		required = append(required, r)
	}
	return map[string]any{
		"$schema":    "https://json-schema.org/draft/2020-12/schema",
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}
