package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mandap-labs/vivaha/pkg/domain/model"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
)

func TestCategoryRegistry(t *testing.T) {
	registry := model.NewCategoryRegistry()
	registry.Register(testSchema())

	t.Run("get known category", func(t *testing.T) {
		schema, err := registry.Get("photographer")
		gt.NoError(t, err).Required()
		gt.Value(t, schema.Name).Equal("Photographer")
	})

	t.Run("get unknown category", func(t *testing.T) {
		_, err := registry.Get("florist")
		gt.Bool(t, errors.Is(err, model.ErrCategoryNotFound)).True()
	})

	t.Run("re-register replaces without duplicating order", func(t *testing.T) {
		replaced := testSchema()
		replaced.Name = "Wedding Photographer"
		registry.Register(replaced)

		gt.Array(t, registry.List()).Length(1)
		schema, err := registry.Get("photographer")
		gt.NoError(t, err).Required()
		gt.Value(t, schema.Name).Equal("Wedding Photographer")
	})
}

func TestDefaultRegistry(t *testing.T) {
	registry := model.DefaultRegistry()

	want := []types.CategoryID{
		"venue", "jeweler", "photographer", "makeup-artist",
		"event-planner", "anchor", "invitation-shop", "caterer",
	}
	categories := registry.Categories()
	gt.Array(t, categories).Length(len(want))
	for i, cat := range categories {
		gt.Value(t, cat.ID).Equal(want[i])
	}

	t.Run("every schema is internally consistent", func(t *testing.T) {
		for _, schema := range registry.List() {
			gt.NoError(t, schema.Validate())
		}
	})
}
