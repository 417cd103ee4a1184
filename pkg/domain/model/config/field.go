package config

import "github.com/mandap-labs/vivaha/pkg/domain/types"

// FieldOption represents one predefined option of a select/multi-select field
type FieldOption struct {
	ID   string
	Name string
}

// FieldDefinition declares one form field of a category schema
type FieldDefinition struct {
	ID          string
	Label       string
	Kind        types.FieldKind
	Required    bool
	Description string
	Options     []FieldOption // Only used for select and multi-select kinds
	AllowCustom bool          // Multi-select only: free-text custom values allowed
}

// OptionIDs returns the IDs of all predefined options
func (f *FieldDefinition) OptionIDs() []string {
	ids := make([]string, len(f.Options))
	for i, opt := range f.Options {
		ids[i] = opt.ID
	}
	return ids
}
