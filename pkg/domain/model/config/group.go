package config

// SubFieldDefinition declares one sub-field of a repeatable group record
type SubFieldDefinition struct {
	ID       string
	Label    string
	Required bool
}

// GroupDefinition declares a repeatable group of structurally identical
// records (services, packages, policies, store locations). Every group
// keeps at least one record at all times; that floor is enforced by the
// record list itself, not by validation.
type GroupDefinition struct {
	ID       string
	Label    string
	Fields   []SubFieldDefinition
	Required bool
	// NameField is the sub-field that must be non-blank for a record to
	// count as a populated entry during validation. Defaults to the first
	// sub-field when empty.
	NameField string
}

// EntryNameField returns the sub-field used for the populated-entry rule
func (g *GroupDefinition) EntryNameField() string {
	if g.NameField != "" {
		return g.NameField
	}
	if len(g.Fields) > 0 {
		return g.Fields[0].ID
	}
	return ""
}
