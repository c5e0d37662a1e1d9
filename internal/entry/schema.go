package entry

import (
	"fmt"
	"math"
	"strings"
)

// Kind classifies the value a schema field accepts.
type Kind int

// Field value kinds.
const (
	KindText Kind = iota
	KindURL
	KindInt
	KindEnum
)

// Field describes one schema member.
type Field struct {
	Name     string
	Required bool
	Kind     Kind
	Enum     []string
}

// Schema is the ordered list of members an entry may carry. It is assembled
// once at startup and passed explicitly; nothing reads it from global state.
type Schema struct {
	fields []Field
}

// DefaultSchema returns the schema the dataset file conforms to.
func DefaultSchema() Schema {
	return Schema{fields: []Field{
		{Name: "title", Required: true, Kind: KindText},
		{Name: "description", Required: true, Kind: KindText},
		{Name: "ciuName", Kind: KindText},
		{Name: "org", Required: true, Kind: KindEnum, Enum: []string{"W3C", "IETF", "Ecma", "Other"}},
		{Name: "group", Kind: KindText},
		{Name: "url", Required: true, Kind: KindURL},
		{Name: "mozBugUrl", Kind: KindURL},
		{Name: "mozPositionIssue", Kind: KindInt},
		{Name: "mozPosition", Required: true, Kind: KindEnum, Enum: []string{
			"under consideration",
			"participating",
			"defer",
			"harmful",
		}},
		{Name: "mozPositionDetail", Kind: KindText},
	}}
}

// Fields returns the schema members in declaration order.
func (s Schema) Fields() []Field {
	return s.fields
}

// ValidateEntry checks one entry against the schema. It accumulates every
// applicable error and returns the full list; empty means valid. label names
// the entry in error messages.
func (s Schema) ValidateEntry(e Entry, label string) []string {
	if label == "" {
		label = "Entry"
	}
	var errs []string
	for _, f := range s.fields {
		value, ok := e[f.Name]
		if value == nil {
			ok = false
		}
		if !ok {
			if f.Required {
				errs = append(errs, fmt.Sprintf("%s doesn't have required member %s", label, f.Name))
			}
			continue
		}
		if msg := checkValue(f, value, label); msg != "" {
			errs = append(errs, msg)
		}
	}
	for name := range e {
		if !s.knownField(name) {
			errs = append(errs, fmt.Sprintf("%s includes unrecognized member: %s", label, name))
		}
	}
	return errs
}

func (s Schema) knownField(name string) bool {
	for _, f := range s.fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

func checkValue(f Field, value any, label string) string {
	switch f.Kind {
	case KindText:
		if _, ok := value.(string); !ok {
			return fmt.Sprintf("%s's %s isn't a string", label, f.Name)
		}
	case KindURL:
		// URL members are only checked to be strings; the dataset predates
		// any stricter URL validation.
		if _, ok := value.(string); !ok {
			return fmt.Sprintf("%s's %s isn't a URL string", label, f.Name)
		}
	case KindInt:
		if !isWholeNumber(value) {
			return fmt.Sprintf("%s's %s isn't an integer", label, f.Name)
		}
	case KindEnum:
		s, ok := value.(string)
		if !ok || !contains(f.Enum, s) {
			return fmt.Sprintf("%s's %s isn't one of [%s]", label, f.Name, strings.Join(f.Enum, ", "))
		}
	}
	return ""
}

// isWholeNumber accepts native ints and the float64 values encoding/json
// produces for JSON numbers, as long as they carry no fractional part.
func isWholeNumber(value any) bool {
	switch n := value.(type) {
	case int:
		return true
	case int64:
		return true
	case float64:
		return n == math.Trunc(n)
	default:
		return false
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
