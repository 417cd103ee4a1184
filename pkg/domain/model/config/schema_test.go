package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mandap-labs/vivaha/pkg/domain/model/config"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
)

func validSchema() *config.CategorySchema {
	return &config.CategorySchema{
		Category: "caterer",
		Name:     "Caterer",
		Fields: []config.FieldDefinition{
			{ID: "name", Label: "Business Name", Kind: types.FieldKindText, Required: true},
			{
				ID: "cuisines", Label: "Cuisines", Kind: types.FieldKindMultiSelect,
				Options:     []config.FieldOption{{ID: "north-indian", Name: "North Indian"}},
				AllowCustom: true,
			},
		},
		Groups: []config.GroupDefinition{
			{
				ID: "menus", Label: "Menus", NameField: "menu-name",
				Fields: []config.SubFieldDefinition{
					{ID: "menu-name", Label: "Menu Name", Required: true},
				},
			},
		},
		MediaSlots: []config.MediaSlotDefinition{
			{ID: "dishes", Label: "Dish Photos", Cardinality: types.SlotCardinalityMany, Cap: 10, MinCount: 3},
		},
	}
}

func TestSchemaValidate(t *testing.T) {
	t.Run("valid schema passes", func(t *testing.T) {
		gt.NoError(t, validSchema().Validate())
	})

	mutations := map[string]func(s *config.CategorySchema){
		"uppercase category":        func(s *config.CategorySchema) { s.Category = "Caterer" },
		"missing name":              func(s *config.CategorySchema) { s.Name = "" },
		"field without label":       func(s *config.CategorySchema) { s.Fields[0].Label = "" },
		"unknown field kind":        func(s *config.CategorySchema) { s.Fields[0].Kind = "blob" },
		"duplicate field ID":        func(s *config.CategorySchema) { s.Fields[1].ID = "name" },
		"options on scalar field":   func(s *config.CategorySchema) { s.Fields[0].Options = []config.FieldOption{{ID: "x", Name: "X"}} },
		"custom entry on scalar":    func(s *config.CategorySchema) { s.Fields[0].AllowCustom = true },
		"group without sub-fields":  func(s *config.CategorySchema) { s.Groups[0].Fields = nil },
		"name field not a subfield": func(s *config.CategorySchema) { s.Groups[0].NameField = "missing" },
		"invalid slot cardinality":  func(s *config.CategorySchema) { s.MediaSlots[0].Cardinality = "triple" },
		"exact count above cap":     func(s *config.CategorySchema) { s.MediaSlots[0].ExactCount = 11 },
		"single slot with cap two": func(s *config.CategorySchema) {
			s.MediaSlots[0].Cardinality = types.SlotCardinalitySingle
			s.MediaSlots[0].Cap = 2
			s.MediaSlots[0].MinCount = 0
		},
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			schema := validSchema()
			mutate(schema)
			gt.Error(t, schema.Validate())
		})
	}
}

func TestSchemaLookups(t *testing.T) {
	schema := validSchema()

	gt.Value(t, schema.Field("name").Label).Equal("Business Name")
	gt.Value(t, schema.Group("menus").NameField).Equal("menu-name")
	gt.Value(t, schema.MediaSlot("dishes").Cap).Equal(10)

	t.Run("unknown IDs return nil", func(t *testing.T) {
		gt.Value(t, schema.Field("missing") == nil).Equal(true)
		gt.Value(t, schema.Group("missing") == nil).Equal(true)
		gt.Value(t, schema.MediaSlot("missing") == nil).Equal(true)
	})
}
