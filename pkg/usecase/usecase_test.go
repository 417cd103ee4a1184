package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mandap-labs/vivaha/pkg/domain/model"
	"github.com/mandap-labs/vivaha/pkg/domain/model/config"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
	"github.com/mandap-labs/vivaha/pkg/repository/memory"
	"github.com/mandap-labs/vivaha/pkg/service/media"
	"github.com/mandap-labs/vivaha/pkg/usecase"
)

func testRegistry() *model.CategoryRegistry {
	registry := model.NewCategoryRegistry()
	registry.Register(&config.CategorySchema{
		Category: "photographer",
		Name:     "Photographer",
		Fields: []config.FieldDefinition{
			{ID: "name", Label: "Business Name", Kind: types.FieldKindText, Required: true},
			{ID: "phone", Label: "Phone Number", Kind: types.FieldKindPhone, Required: true},
			{ID: "package-price", Label: "Package Price", Kind: types.FieldKindCurrency},
			{
				ID: "styles", Label: "Photography Styles", Kind: types.FieldKindMultiSelect, Required: true,
				Options: []config.FieldOption{
					{ID: "candid", Name: "Candid"},
					{ID: "traditional", Name: "Traditional"},
				},
				AllowCustom: true,
			},
			{
				ID: "languages", Label: "Languages", Kind: types.FieldKindMultiSelect,
				Options: []config.FieldOption{{ID: "hindi", Name: "Hindi"}},
			},
			{
				ID: "shoot-format", Label: "Shoot Format", Kind: types.FieldKindSelect,
				Options: []config.FieldOption{
					{ID: "digital", Name: "Digital"},
					{ID: "film", Name: "Film"},
				},
			},
		},
		Groups: []config.GroupDefinition{
			{
				ID: "packages", Label: "Packages", Required: true, NameField: "package-name",
				Fields: []config.SubFieldDefinition{
					{ID: "package-name", Label: "Package Name", Required: true},
					{ID: "price", Label: "Price"},
				},
			},
		},
		MediaSlots: []config.MediaSlotDefinition{
			{ID: "thumbnail", Label: "Profile Photo", Cardinality: types.SlotCardinalitySingle, ExactCount: 1},
			{ID: "portfolio", Label: "Portfolio", Cardinality: types.SlotCardinalityMany, Cap: 3, MinCount: 2},
		},
	})
	return registry
}

type testEnv struct {
	uc    *usecase.UseCases
	repo  *memory.Memory
	media *media.Memory
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	repo := memory.New()
	store := media.NewMemory()
	uc := usecase.New(repo, testRegistry(), usecase.WithMediaStore(store))
	return &testEnv{uc: uc, repo: repo, media: store}
}

func fileRef(name string) model.FileRef {
	return model.FileRef{
		Name:        name,
		ContentType: "image/jpeg",
		Content:     []byte("jpeg-bytes-" + name),
	}
}

// fillDraft drives a fresh Add-mode draft to a state that passes
// validation, through the use case entry points only.
func fillDraft(t *testing.T, env *testEnv, draftID types.DraftID) {
	t.Helper()
	ctx := context.Background()

	gt.NoError(t, env.uc.Draft.SetField(ctx, draftID, "name", "Candid Tales")).Required()
	gt.NoError(t, env.uc.Draft.SetField(ctx, draftID, "phone", "+91 98991 23456")).Required()
	gt.NoError(t, env.uc.Draft.ToggleOption(ctx, draftID, "styles", "candid")).Required()

	draft, err := env.uc.Draft.Get(ctx, draftID)
	gt.NoError(t, err).Required()
	recordID := draft.Group("packages").Records()[0].ID
	gt.NoError(t, env.uc.Draft.UpdateRecordField(ctx, draftID, "packages", recordID, "package-name", "One Day")).Required()

	gt.NoError(t, env.uc.Draft.PutMediaSingle(ctx, draftID, "thumbnail", fileRef("me.jpg"))).Required()
	gt.NoError(t, env.uc.Draft.PutMediaMany(ctx, draftID, "portfolio", []model.FileRef{
		fileRef("a.jpg"), fileRef("b.jpg"),
	})).Required()
}
