package item

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyFile is returned for files without any content.
	ErrEmptyFile = errors.New("file is empty")

	// ErrUnknownShape is returned when the top-level value is neither an
	// item, a list of items, nor a recognised wrapper.
	ErrUnknownShape = errors.New("unrecognised item file shape")
)

// Document is the decoded content of one item file.
type Document struct {
	// Items holds current-shape items in file order.
	Items []Item

	// Legacy is set instead of Items when the file uses the old
	// multiple-choice shape ({metadata, items[{question, options, answer}]}).
	// It holds the raw JSON so the legacy package can decode it strictly.
	Legacy json.RawMessage
}

// Load reads and decodes an item file. Files ending in .yaml/.yml are
// decoded as YAML, everything else as JSON.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	doc, err := Decode(data, ext == ".yaml" || ext == ".yml")
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}

// Decode parses item data. A single object, a list of objects and an
// {"items": [...]} wrapper are accepted.
func Decode(data []byte, isYAML bool) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyFile
	}

	var root any
	if isYAML {
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		// Re-encode through JSON so numbers and nested maps have the same
		// dynamic types as for JSON input.
		normalized, err := json.Marshal(root)
		if err != nil {
			return nil, fmt.Errorf("normalize yaml: %w", err)
		}
		data = normalized
	}
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	switch v := root.(type) {
	case []any:
		return &Document{Items: toItems(v)}, nil
	case map[string]any:
		if IsLegacyShape(v) {
			return &Document{Legacy: json.RawMessage(data)}, nil
		}
		if list, ok := v["items"].([]any); ok && !Item(v).Has("groep") {
			return &Document{Items: toItems(list)}, nil
		}
		return &Document{Items: []Item{Item(v)}}, nil
	default:
		return nil, ErrUnknownShape
	}
}

func toItems(list []any) []Item {
	out := make([]Item, 0, len(list))
	for _, e := range list {
		if m, ok := e.(map[string]any); ok {
			out = append(out, Item(m))
		} else {
			// Keep the position so item numbering matches the file; an
			// empty item fails the structural check with a clear message.
			out = append(out, Item{})
		}
	}
	return out
}

// IsLegacyShape reports whether root looks like the old multiple-choice
// file: a metadata object with grade/level and items carrying question/options.
func IsLegacyShape(root map[string]any) bool {
	meta, ok := root["metadata"].(map[string]any)
	if !ok {
		return false
	}
	if _, ok := meta["grade"]; !ok {
		return false
	}
	items, ok := root["items"].([]any)
	if !ok || len(items) == 0 {
		return false
	}
	first, ok := items[0].(map[string]any)
	if !ok {
		return false
	}
	_, hasQuestion := first["question"]
	_, hasOptions := first["options"]
	return hasQuestion && hasOptions
}
