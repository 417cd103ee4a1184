package fixtures_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mandap-labs/vivaha/pkg/domain/model"
	"github.com/mandap-labs/vivaha/pkg/repository/memory"
	"github.com/mandap-labs/vivaha/pkg/service/fixtures"
)

func TestVendorsMatchTheDefaultSchemas(t *testing.T) {
	registry := model.DefaultRegistry()

	for _, vendor := range fixtures.Vendors() {
		schema, err := registry.Get(vendor.Category)
		gt.NoError(t, err).Required()

		draft := model.SeedDraft(schema, vendor)
		result := model.NewDraftValidator(schema).Validate(draft)
		if !result.Valid {
			t.Errorf("fixture %q (%s) fails validation: %v", vendor.Name, vendor.Category, result.Errors)
		}
	}
}

func TestVendorsCoverEveryCategory(t *testing.T) {
	counts := make(map[string]int)
	for _, vendor := range fixtures.Vendors() {
		counts[vendor.Category.String()]++
	}

	for _, category := range model.DefaultRegistry().Categories() {
		gt.Bool(t, counts[category.ID.String()] >= 2).True()
	}

	t.Run("venues spill onto a second listing page", func(t *testing.T) {
		gt.Bool(t, counts["venue"] > 9).True()
	})
}

func TestLoad(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	gt.NoError(t, fixtures.Load(ctx, repo)).Required()

	vendors, err := repo.Vendor().List(ctx, "venue")
	gt.NoError(t, err).Required()
	gt.Bool(t, len(vendors) > 9).True()

	t.Run("loading is repeatable without ID collisions", func(t *testing.T) {
		gt.NoError(t, fixtures.Load(ctx, repo)).Required()

		again, err := repo.Vendor().List(ctx, "venue")
		gt.NoError(t, err).Required()
		gt.Value(t, len(again)).Equal(len(vendors) * 2)
	})
}
