// Package dataset owns the activities file: loading, validation, uniqueness
// checks, and whole-file rewrites.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"activities/internal/entry"
)

const jsonIndent = "  "

// ValidationError carries the accumulated validator output for an entry or
// dataset that failed a hard check.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}

// Store is the in-memory dataset. The file is read once, mutated in memory,
// and written back in full; there is no incremental persistence.
type Store struct {
	path   string
	schema entry.Schema

	// raw holds whatever the file decoded to, so Validate can report a
	// malformed top level instead of Load refusing the file outright.
	raw     any
	entries []entry.Entry
}

// Load reads the dataset file at path. Decode or I/O failures are returned
// as errors; shape problems (non-list top level, non-object entries) are
// deferred to Validate.
func Load(path string, schema entry.Schema) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't load %s: %w", path, err)
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("can't load %s: %w", path, err)
	}

	s := &Store{path: path, schema: schema, raw: raw}
	if list, ok := raw.([]any); ok {
		for _, item := range list {
			if m, ok := item.(map[string]any); ok {
				s.entries = append(s.entries, entry.Entry(m))
			} else {
				s.entries = append(s.entries, nil)
			}
		}
	}
	return s, nil
}

// Save rewrites the dataset file in full, 2-space indented with sorted keys.
func (s *Store) Save() error {
	out, err := json.MarshalIndent(s.entries, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("can't write %s: %w", s.path, err)
	}
	if err := os.WriteFile(s.path, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("can't write %s: %w", s.path, err)
	}
	return nil
}

// Entries returns the loaded records in file order.
func (s *Store) Entries() []entry.Entry {
	return s.entries
}

// Append validates e and adds it to the tail. An invalid entry is rejected
// with the full validator error list.
func (s *Store) Append(e entry.Entry) error {
	if errs := s.schema.ValidateEntry(e, ""); len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	s.entries = append(s.entries, e)
	return nil
}

// CheckUnique rejects e when an existing entry has the same normalized title
// or the same exact url.
func (s *Store) CheckUnique(e entry.Entry) error {
	title := normalizeTitle(e.String("title"))
	url := e.String("url")
	for _, existing := range s.entries {
		if existing == nil {
			continue
		}
		if normalizeTitle(existing.String("title")) == title {
			return &ValidationError{Errors: []string{
				fmt.Sprintf("%s already contains %s", s.path, e.String("title")),
			}}
		}
		if existing.String("url") == url {
			return &ValidationError{Errors: []string{
				fmt.Sprintf("%s already contains %s", s.path, url),
			}}
		}
	}
	return nil
}

// Validate checks the whole dataset and returns every error found; an empty
// list means the file is clean.
func (s *Store) Validate() []string {
	if _, ok := s.raw.([]any); !ok {
		return []string{"Top-level data structure is not a list."}
	}
	var errs []string
	for i, e := range s.entries {
		label := fmt.Sprintf("entry %d", i+1)
		if e == nil {
			errs = append(errs, fmt.Sprintf("Entry %d is not a dictionary.", i+1))
			continue
		}
		if title := e.String("title"); title != "" {
			label = title
		}
		errs = append(errs, s.schema.ValidateEntry(e, label)...)
	}
	return errs
}

func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
