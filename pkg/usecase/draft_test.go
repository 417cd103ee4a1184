package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mandap-labs/vivaha/pkg/domain/model"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
	"github.com/mandap-labs/vivaha/pkg/usecase"
)

func TestOpenAdd(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	draft, err := env.uc.Draft.OpenAdd(ctx, "photographer")
	gt.NoError(t, err).Required()
	gt.Value(t, draft.Mode).Equal(types.DraftModeAdd)

	got, err := env.uc.Draft.Get(ctx, draft.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, got.ID).Equal(draft.ID)

	t.Run("unknown category", func(t *testing.T) {
		_, err := env.uc.Draft.OpenAdd(ctx, "florist")
		gt.Error(t, err).Is(model.ErrCategoryNotFound)
	})
}

func TestOpenEdit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	vendor, err := env.repo.Vendor().Create(ctx, &model.Vendor{
		Category: "photographer",
		Name:     "Candid Tales",
		Fields:   map[string]any{"name": "Candid Tales"},
	})
	gt.NoError(t, err).Required()

	draft, err := env.uc.Draft.OpenEdit(ctx, "photographer", vendor.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, draft.Mode).Equal(types.DraftModeEdit)
	gt.Value(t, draft.VendorID).Equal(vendor.ID)
	gt.Value(t, draft.Fields["name"]).Equal(any("Candid Tales"))

	t.Run("unknown vendor", func(t *testing.T) {
		_, err := env.uc.Draft.OpenEdit(ctx, "photographer", types.NewVendorID())
		gt.Error(t, err).Is(usecase.ErrVendorNotFound)
	})
}

func TestSetFieldLookup(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	draft, err := env.uc.Draft.OpenAdd(ctx, "photographer")
	gt.NoError(t, err).Required()

	t.Run("unknown field", func(t *testing.T) {
		err := env.uc.Draft.SetField(ctx, draft.ID, "missing", "x")
		gt.Error(t, err).Is(usecase.ErrUnknownField)
	})

	t.Run("multi-select is not a scalar target", func(t *testing.T) {
		err := env.uc.Draft.SetField(ctx, draft.ID, "styles", "candid")
		gt.Error(t, err).Is(usecase.ErrUnknownField)
	})

	t.Run("unknown draft", func(t *testing.T) {
		err := env.uc.Draft.SetField(ctx, "gone", "name", "x")
		gt.Error(t, err).Is(usecase.ErrDraftNotFound)
	})
}

func TestSelectionOperations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	draft, err := env.uc.Draft.OpenAdd(ctx, "photographer")
	gt.NoError(t, err).Required()

	t.Run("toggle and remove", func(t *testing.T) {
		gt.NoError(t, env.uc.Draft.ToggleOption(ctx, draft.ID, "styles", "candid")).Required()
		gt.NoError(t, env.uc.Draft.ToggleOption(ctx, draft.ID, "styles", "traditional")).Required()
		gt.NoError(t, env.uc.Draft.RemoveValue(ctx, draft.ID, "styles", "candid")).Required()

		got, err := env.uc.Draft.Get(ctx, draft.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, got.Selection("styles").Values()).Equal([]string{"traditional"})
	})

	t.Run("custom entry respects the field flag", func(t *testing.T) {
		gt.NoError(t, env.uc.Draft.AddCustomValue(ctx, draft.ID, "styles", "Drone")).Required()

		err := env.uc.Draft.AddCustomValue(ctx, draft.ID, "languages", "Marathi")
		gt.Error(t, err).Is(usecase.ErrUnknownField)
	})

	t.Run("search stores the query without touching the selection", func(t *testing.T) {
		matched, err := env.uc.Draft.SearchOptions(ctx, draft.ID, "styles", "trad")
		gt.NoError(t, err).Required()
		gt.Array(t, matched).Length(1)
		gt.Value(t, matched[0].ID).Equal("traditional")

		got, err := env.uc.Draft.Get(ctx, draft.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, got.Selection("styles").Values()).Equal([]string{"traditional", "Drone"})
	})

	t.Run("single select displaces the previous pick", func(t *testing.T) {
		gt.NoError(t, env.uc.Draft.ToggleOption(ctx, draft.ID, "shoot-format", "digital")).Required()
		gt.NoError(t, env.uc.Draft.ToggleOption(ctx, draft.ID, "shoot-format", "film")).Required()

		got, err := env.uc.Draft.Get(ctx, draft.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, got.Selection("shoot-format").Values()).Equal([]string{"film"})
	})

	t.Run("dropdown open state", func(t *testing.T) {
		gt.NoError(t, env.uc.Draft.ToggleDropdown(ctx, draft.ID, "styles")).Required()
		got, err := env.uc.Draft.Get(ctx, draft.ID)
		gt.NoError(t, err).Required()
		gt.Bool(t, got.Selection("styles").IsOpen()).True()

		gt.NoError(t, env.uc.Draft.DismissDropdown(ctx, draft.ID, "styles")).Required()
		got, err = env.uc.Draft.Get(ctx, draft.ID)
		gt.NoError(t, err).Required()
		gt.Bool(t, got.Selection("styles").IsOpen()).False()
	})
}

func TestGroupOperations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	draft, err := env.uc.Draft.OpenAdd(ctx, "photographer")
	gt.NoError(t, err).Required()

	record, err := env.uc.Draft.AddRecord(ctx, draft.ID, "packages")
	gt.NoError(t, err).Required()
	gt.NoError(t, env.uc.Draft.UpdateRecordField(ctx, draft.ID, "packages", record.ID, "package-name", "Two Day")).Required()

	got, err := env.uc.Draft.Get(ctx, draft.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, got.Group("packages").Len()).Equal(2)

	t.Run("removing down to one record is allowed", func(t *testing.T) {
		first := got.Group("packages").Records()[0].ID
		gt.NoError(t, env.uc.Draft.RemoveRecord(ctx, draft.ID, "packages", first)).Required()

		got, err := env.uc.Draft.Get(ctx, draft.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Group("packages").Len()).Equal(1)
	})

	t.Run("the last record never leaves", func(t *testing.T) {
		got, err := env.uc.Draft.Get(ctx, draft.ID)
		gt.NoError(t, err).Required()
		last := got.Group("packages").Records()[0].ID

		gt.NoError(t, env.uc.Draft.RemoveRecord(ctx, draft.ID, "packages", last)).Required()

		got, err = env.uc.Draft.Get(ctx, draft.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Group("packages").Len()).Equal(1)
	})

	t.Run("unknown group", func(t *testing.T) {
		_, err := env.uc.Draft.AddRecord(ctx, draft.ID, "missing")
		gt.Error(t, err).Is(usecase.ErrUnknownGroup)
	})
}

func TestMediaPreviewLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	draft, err := env.uc.Draft.OpenAdd(ctx, "photographer")
	gt.NoError(t, err).Required()

	t.Run("single slot replacement releases the old preview", func(t *testing.T) {
		gt.NoError(t, env.uc.Draft.PutMediaSingle(ctx, draft.ID, "thumbnail", fileRef("one.jpg"))).Required()
		gt.Value(t, env.media.PreviewCount()).Equal(1)

		gt.NoError(t, env.uc.Draft.PutMediaSingle(ctx, draft.ID, "thumbnail", fileRef("two.jpg"))).Required()
		gt.Value(t, env.media.PreviewCount()).Equal(1)

		got, err := env.uc.Draft.Get(ctx, draft.ID)
		gt.NoError(t, err).Required()
		files := got.MediaSlot("thumbnail").Files()
		gt.Array(t, files).Length(1)
		gt.Value(t, files[0].Name).Equal("two.jpg")
		gt.Bool(t, env.media.HasPreview(got.MediaSlot("thumbnail").Previews()[0])).True()
	})

	t.Run("many slot drops input beyond the cap", func(t *testing.T) {
		files := []model.FileRef{
			fileRef("a.jpg"), fileRef("b.jpg"), fileRef("c.jpg"), fileRef("d.jpg"), fileRef("e.jpg"),
		}
		gt.NoError(t, env.uc.Draft.PutMediaMany(ctx, draft.ID, "portfolio", files)).Required()

		got, err := env.uc.Draft.Get(ctx, draft.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.MediaSlot("portfolio").Len()).Equal(3)
		gt.Value(t, env.media.PreviewCount()).Equal(4) // thumbnail + 3 portfolio
	})

	t.Run("many slot replacement releases every old preview", func(t *testing.T) {
		gt.NoError(t, env.uc.Draft.PutMediaMany(ctx, draft.ID, "portfolio", []model.FileRef{
			fileRef("x.jpg"), fileRef("y.jpg"),
		})).Required()

		got, err := env.uc.Draft.Get(ctx, draft.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.MediaSlot("portfolio").Len()).Equal(2)
		gt.Value(t, env.media.PreviewCount()).Equal(3)
	})

	t.Run("remove at index releases its preview", func(t *testing.T) {
		gt.NoError(t, env.uc.Draft.RemoveMediaAt(ctx, draft.ID, "portfolio", 0)).Required()

		got, err := env.uc.Draft.Get(ctx, draft.ID)
		gt.NoError(t, err).Required()
		files := got.MediaSlot("portfolio").Files()
		gt.Array(t, files).Length(1)
		gt.Value(t, files[0].Name).Equal("y.jpg")
		gt.Value(t, env.media.PreviewCount()).Equal(2)
	})

	t.Run("clear releases the whole slot", func(t *testing.T) {
		gt.NoError(t, env.uc.Draft.ClearMedia(ctx, draft.ID, "portfolio")).Required()
		gt.Value(t, env.media.PreviewCount()).Equal(1)
	})

	t.Run("unknown slot acquires nothing", func(t *testing.T) {
		err := env.uc.Draft.PutMediaSingle(ctx, draft.ID, "missing", fileRef("z.jpg"))
		gt.Error(t, err).Is(usecase.ErrUnknownSlot)
		gt.Value(t, env.media.PreviewCount()).Equal(1)
	})
}

func TestRemovalEditsClearOwnError(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	draft, err := env.uc.Draft.OpenAdd(ctx, "photographer")
	gt.NoError(t, err).Required()
	gt.NoError(t, env.uc.Draft.ToggleOption(ctx, draft.ID, "styles", "candid")).Required()
	gt.NoError(t, env.uc.Draft.PutMediaMany(ctx, draft.ID, "portfolio", []model.FileRef{
		fileRef("a.jpg"), fileRef("b.jpg"),
	})).Required()

	seedErrors := func() {
		draft.ReplaceErrors(map[string]string{
			"styles":    "Photography Styles is required",
			"portfolio": "Portfolio needs at least 2 files",
			"name":      "Business Name is required",
		})
	}

	t.Run("removing a chip clears only that field's error", func(t *testing.T) {
		seedErrors()
		gt.NoError(t, env.uc.Draft.RemoveValue(ctx, draft.ID, "styles", "candid")).Required()
		_, hasStyles := draft.Errors["styles"]
		gt.Bool(t, hasStyles).False()
		gt.Value(t, draft.Errors["name"]).Equal("Business Name is required")
	})

	t.Run("removing an absent value keeps the error", func(t *testing.T) {
		seedErrors()
		gt.NoError(t, env.uc.Draft.RemoveValue(ctx, draft.ID, "styles", "not-selected")).Required()
		gt.Value(t, draft.Errors["styles"]).Equal("Photography Styles is required")
	})

	t.Run("removing a media file clears the slot error", func(t *testing.T) {
		seedErrors()
		gt.NoError(t, env.uc.Draft.RemoveMediaAt(ctx, draft.ID, "portfolio", 0)).Required()
		_, hasPortfolio := draft.Errors["portfolio"]
		gt.Bool(t, hasPortfolio).False()
		gt.Value(t, draft.Errors["name"]).Equal("Business Name is required")
	})

	t.Run("clearing a slot clears its error", func(t *testing.T) {
		seedErrors()
		gt.NoError(t, env.uc.Draft.ClearMedia(ctx, draft.ID, "portfolio")).Required()
		_, hasPortfolio := draft.Errors["portfolio"]
		gt.Bool(t, hasPortfolio).False()
	})
}

func TestDiscard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	draft, err := env.uc.Draft.OpenAdd(ctx, "photographer")
	gt.NoError(t, err).Required()
	fillDraft(t, env, draft.ID)
	gt.Value(t, env.media.PreviewCount()).Equal(3)

	gt.NoError(t, env.uc.Draft.Discard(ctx, draft.ID)).Required()

	gt.Value(t, env.media.PreviewCount()).Equal(0)
	_, err = env.uc.Draft.Get(ctx, draft.ID)
	gt.Error(t, err).Is(usecase.ErrDraftNotFound)

	t.Run("discarding twice fails", func(t *testing.T) {
		err := env.uc.Draft.Discard(ctx, draft.ID)
		gt.Error(t, err).Is(usecase.ErrDraftNotFound)
	})
}
