package model

import (
	"strings"

	"github.com/mandap-labs/vivaha/pkg/domain/model/config"
)

// Selection is the state of one multi-select-with-custom-entry control:
// an ordered, duplicate-free set of values plus the dropdown's open state
// and live search query. Selection order is stable and governs chip
// rendering order.
type Selection struct {
	values []string
	open   bool
	query  string
}

// NewSelection creates a Selection seeded with the given values.
// Duplicates are dropped, first occurrence wins.
func NewSelection(values ...string) *Selection {
	s := &Selection{}
	for _, v := range values {
		if !s.Has(v) {
			s.values = append(s.values, v)
		}
	}
	return s
}

// Has reports whether the value is a member of the selection
func (s *Selection) Has(value string) bool {
	for _, v := range s.values {
		if v == value {
			return true
		}
	}
	return false
}

// Toggle removes the value when already selected, otherwise appends it.
// Re-toggling never reorders the untouched members.
func (s *Selection) Toggle(value string) {
	for i, v := range s.values {
		if v == value {
			s.values = append(s.values[:i], s.values[i+1:]...)
			return
		}
	}
	s.values = append(s.values, value)
}

// AddCustom appends a free-text value. It is a no-op when the trimmed
// text is empty or already a member. Returns true when the value was added.
func (s *Selection) AddCustom(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || s.Has(trimmed) {
		return false
	}
	s.values = append(s.values, trimmed)
	return true
}

// SetOnly replaces the whole selection with a single value. Used by
// single-select dropdowns, where picking an option displaces the
// previous one.
func (s *Selection) SetOnly(value string) {
	s.values = []string{value}
}

// Remove deletes a value regardless of whether it came from the option
// list or custom entry. Returns true when the value was present.
func (s *Selection) Remove(value string) bool {
	for i, v := range s.values {
		if v == value {
			s.values = append(s.values[:i], s.values[i+1:]...)
			return true
		}
	}
	return false
}

// Values returns the selected values in selection order
func (s *Selection) Values() []string {
	return append([]string(nil), s.values...)
}

// Count returns the cardinality of the selection
func (s *Selection) Count() int {
	return len(s.values)
}

// ToggleOpen flips the dropdown between Closed and Open
func (s *Selection) ToggleOpen() {
	s.open = !s.open
}

// Dismiss closes the dropdown and clears the search query
func (s *Selection) Dismiss() {
	s.open = false
	s.query = ""
}

// IsOpen reports whether the dropdown is open
func (s *Selection) IsOpen() bool {
	return s.open
}

// Search sets the live search query used to filter the option list
func (s *Selection) Search(query string) {
	s.query = query
}

// Query returns the current search query
func (s *Selection) Query() string {
	return s.query
}

// FilterOptions returns the predefined options whose name or ID contains
// the query, case-insensitively. Filtering never touches the selection;
// custom values are rendered as chips outside the dropdown and are not
// filtered here.
func FilterOptions(options []config.FieldOption, query string) []config.FieldOption {
	if query == "" {
		return append([]config.FieldOption(nil), options...)
	}
	q := strings.ToLower(query)
	var filtered []config.FieldOption
	for _, opt := range options {
		if strings.Contains(strings.ToLower(opt.Name), q) ||
			strings.Contains(strings.ToLower(opt.ID), q) {
			filtered = append(filtered, opt)
		}
	}
	return filtered
}
