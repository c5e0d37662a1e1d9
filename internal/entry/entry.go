// Package entry defines the dataset entry shape and its validation schema.
package entry

import (
	"encoding/json"
	"fmt"
)

// Entry is a single activity record. It stays a flat map so that fields the
// schema doesn't know about survive a load/save round trip and can be
// reported as unrecognized members during validation.
type Entry map[string]any

// New returns an entry with every schema field present and the default
// position set. Optional fields start as nil, which serializes to null.
func New() Entry {
	return Entry{
		"title":             nil,
		"description":       nil,
		"ciuName":           nil,
		"org":               nil,
		"group":             nil,
		"url":               nil,
		"mozBugUrl":         nil,
		"mozPositionIssue":  nil,
		"mozPosition":       "under consideration",
		"mozPositionDetail": nil,
	}
}

// String returns the string value of a field, or "" when unset or non-string.
func (e Entry) String(name string) string {
	s, _ := e[name].(string)
	return s
}

// Format renders the entry as indented JSON with sorted keys, the same shape
// the dataset file uses.
func (e Entry) Format() (string, error) {
	out, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", fmt.Errorf("format entry: %w", err)
	}
	return string(out), nil
}
