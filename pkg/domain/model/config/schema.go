package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
)

// CategorySchema holds the complete form configuration for one vendor
// category: scalar/select fields, repeatable groups and media slots.
type CategorySchema struct {
	Category   types.CategoryID
	Name       string
	Fields     []FieldDefinition
	Groups     []GroupDefinition
	MediaSlots []MediaSlotDefinition
}

// Field returns the field definition with the given ID, or nil
func (s *CategorySchema) Field(id string) *FieldDefinition {
	for i := range s.Fields {
		if s.Fields[i].ID == id {
			return &s.Fields[i]
		}
	}
	return nil
}

// Group returns the group definition with the given ID, or nil
func (s *CategorySchema) Group(id string) *GroupDefinition {
	for i := range s.Groups {
		if s.Groups[i].ID == id {
			return &s.Groups[i]
		}
	}
	return nil
}

// MediaSlot returns the media slot definition with the given ID, or nil
func (s *CategorySchema) MediaSlot(id string) *MediaSlotDefinition {
	for i := range s.MediaSlots {
		if s.MediaSlots[i].ID == id {
			return &s.MediaSlots[i]
		}
	}
	return nil
}

// Validate checks if the CategorySchema is valid
func (s *CategorySchema) Validate() error {
	if err := s.Category.Validate(); err != nil {
		return goerr.Wrap(err, "invalid category")
	}
	if s.Name == "" {
		return goerr.New("category name is required", goerr.V("category", s.Category))
	}

	fieldIDs := make(map[string]bool)
	for _, fd := range s.Fields {
		if fd.ID == "" {
			return goerr.New("field ID is required", goerr.V("category", s.Category))
		}
		if fd.Label == "" {
			return goerr.New("field label is required", goerr.V("field", fd.ID))
		}
		if !fd.Kind.IsValid() {
			return goerr.New("invalid field kind", goerr.V("field", fd.ID), goerr.V("kind", fd.Kind))
		}
		if fieldIDs[fd.ID] {
			return goerr.New("duplicate field ID", goerr.V("field", fd.ID))
		}
		fieldIDs[fd.ID] = true

		if len(fd.Options) > 0 && fd.Kind.IsScalar() {
			return goerr.New("options are only allowed for select kinds",
				goerr.V("field", fd.ID), goerr.V("kind", fd.Kind))
		}
		if fd.AllowCustom && fd.Kind != types.FieldKindMultiSelect {
			return goerr.New("custom entry is only allowed for multi-select fields",
				goerr.V("field", fd.ID), goerr.V("kind", fd.Kind))
		}
		optionIDs := make(map[string]bool)
		for _, opt := range fd.Options {
			if opt.ID == "" {
				return goerr.New("option ID is required", goerr.V("field", fd.ID))
			}
			if optionIDs[opt.ID] {
				return goerr.New("duplicate option ID", goerr.V("field", fd.ID), goerr.V("option", opt.ID))
			}
			optionIDs[opt.ID] = true
		}
	}

	groupIDs := make(map[string]bool)
	for _, gd := range s.Groups {
		if gd.ID == "" {
			return goerr.New("group ID is required", goerr.V("category", s.Category))
		}
		if groupIDs[gd.ID] {
			return goerr.New("duplicate group ID", goerr.V("group", gd.ID))
		}
		groupIDs[gd.ID] = true
		if len(gd.Fields) == 0 {
			return goerr.New("group requires at least one sub-field", goerr.V("group", gd.ID))
		}
		subIDs := make(map[string]bool)
		for _, sf := range gd.Fields {
			if sf.ID == "" {
				return goerr.New("group sub-field ID is required", goerr.V("group", gd.ID))
			}
			if subIDs[sf.ID] {
				return goerr.New("duplicate group sub-field ID", goerr.V("group", gd.ID), goerr.V("field", sf.ID))
			}
			subIDs[sf.ID] = true
		}
		if gd.NameField != "" && !subIDs[gd.NameField] {
			return goerr.New("group name field is not a sub-field",
				goerr.V("group", gd.ID), goerr.V("name_field", gd.NameField))
		}
	}

	slotIDs := make(map[string]bool)
	for _, ms := range s.MediaSlots {
		if ms.ID == "" {
			return goerr.New("media slot ID is required", goerr.V("category", s.Category))
		}
		if slotIDs[ms.ID] {
			return goerr.New("duplicate media slot ID", goerr.V("slot", ms.ID))
		}
		slotIDs[ms.ID] = true
		if !ms.Cardinality.IsValid() {
			return goerr.New("invalid slot cardinality", goerr.V("slot", ms.ID), goerr.V("cardinality", ms.Cardinality))
		}
		if ms.Cardinality == types.SlotCardinalitySingle {
			if ms.Cap > 1 || ms.MinCount > 1 || ms.ExactCount > 1 {
				return goerr.New("single slot counts cannot exceed one", goerr.V("slot", ms.ID))
			}
		}
		if ms.Cap > 0 && ms.ExactCount > ms.Cap {
			return goerr.New("exact count exceeds slot cap", goerr.V("slot", ms.ID),
				goerr.V("exact", ms.ExactCount), goerr.V("cap", ms.Cap))
		}
	}

	return nil
}
