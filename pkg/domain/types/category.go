package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// CategoryID represents a vendor category identifier (e.g. "venue", "jeweler")
type CategoryID string

var categoryIDPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// Validate checks if the category ID is a valid lowercase slug
func (c CategoryID) Validate() error {
	if c == "" {
		return goerr.New("category ID is required")
	}
	if !categoryIDPattern.MatchString(string(c)) {
		return goerr.New("category ID must be a lowercase slug", goerr.V("id", string(c)))
	}
	return nil
}

// String returns the string representation of the category ID
func (c CategoryID) String() string {
	return string(c)
}
