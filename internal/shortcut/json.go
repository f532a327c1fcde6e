package shortcut

import (
	"encoding/json"
	"fmt"
)

// wireShortcut is the exact field shape spec.md §4.5 specifies for JSON
// export/import. encoding/json already performs the \", \\, \n, \r, \t,
// and \uXXXX-for-control-character escaping the spec calls for, so no
// custom string escaper is needed here (unlike the Rust original, which
// hand-rolled escape_json_string because it had no serde dependency in
// this file) — this is the one place in the module that reaches for the
// standard library over a pack dependency: no example repo in the corpus
// imports a third-party JSON codec (goccy/go-json, json-iterator, …), and
// encoding/json already satisfies the wire format exactly.
type wireShortcut struct {
	Trigger     string `json:"trigger"`
	Replacement string `json:"replacement"`
	Enabled     bool   `json:"enabled"`
	Method      string `json:"method"`
	Condition   string `json:"condition"`
}

type wireDocument struct {
	Version   int            `json:"version"`
	Shortcuts []wireShortcut `json:"shortcuts"`
}

func methodString(m Method) string {
	switch m {
	case MethodTelex:
		return "telex"
	case MethodVNI:
		return "vni"
	default:
		return "all"
	}
}

func methodFromString(s string) Method {
	switch s {
	case "telex":
		return MethodTelex
	case "vni":
		return MethodVNI
	default:
		return MethodAll
	}
}

func conditionString(c Condition) string {
	if c == Immediate {
		return "immediate"
	}
	return "word_boundary"
}

func conditionFromString(s string) Condition {
	if s == "immediate" {
		return Immediate
	}
	return OnWordBoundary
}

// ToJSON exports the whole table to the spec.md §4.5 wire shape.
func (t *Table) ToJSON() (string, error) {
	doc := wireDocument{Version: 1}
	for _, trig := range t.sorted {
		s := t.byTrigger[trig]
		doc.Shortcuts = append(doc.Shortcuts, wireShortcut{
			Trigger:     s.Trigger,
			Replacement: s.Replacement,
			Enabled:     s.Enabled,
			Method:      methodString(s.Method),
			Condition:   conditionString(s.Condition),
		})
	}
	if doc.Shortcuts == nil {
		doc.Shortcuts = []wireShortcut{}
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("shortcut: marshal: %w", err)
	}
	return string(b), nil
}

// FromJSON imports shortcuts from the spec.md §4.5 wire shape, returning
// the count actually added. Entries are added with New()'s defaults for
// Condition/CaseMode, overridden from the wire fields present.
func (t *Table) FromJSON(data string) (int, error) {
	var doc wireDocument
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return 0, fmt.Errorf("shortcut: invalid JSON: %w", err)
	}
	n := 0
	for _, ws := range doc.Shortcuts {
		s := Shortcut{
			Trigger:     ws.Trigger,
			Replacement: truncate(ws.Replacement, MaxReplacementLen),
			Enabled:     ws.Enabled,
			Method:      methodFromString(ws.Method),
			Condition:   conditionFromString(ws.Condition),
			CaseMode:    Exact,
		}
		if !t.Add(s) {
			break
		}
		n++
	}
	return n, nil
}
