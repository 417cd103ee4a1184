package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mandap-labs/vivaha/pkg/domain/model"
	"github.com/mandap-labs/vivaha/pkg/domain/model/config"
)

func TestSelectionToggle(t *testing.T) {
	t.Run("toggle adds then removes", func(t *testing.T) {
		sel := model.NewSelection()

		sel.Toggle("candid")
		gt.Bool(t, sel.Has("candid")).True()
		gt.Value(t, sel.Count()).Equal(1)

		sel.Toggle("candid")
		gt.Bool(t, sel.Has("candid")).False()
		gt.Value(t, sel.Count()).Equal(0)
	})

	t.Run("selection order is insertion order", func(t *testing.T) {
		sel := model.NewSelection()
		sel.Toggle("cinematic")
		sel.Toggle("candid")
		sel.Toggle("drone")

		gt.Array(t, sel.Values()).Equal([]string{"cinematic", "candid", "drone"})

		// Removing and re-adding moves the value to the end
		sel.Toggle("cinematic")
		sel.Toggle("cinematic")
		gt.Array(t, sel.Values()).Equal([]string{"candid", "drone", "cinematic"})
	})
}

func TestSelectionSetOnly(t *testing.T) {
	sel := model.NewSelection("banquet-hall")

	sel.SetOnly("lawn")
	gt.Array(t, sel.Values()).Equal([]string{"lawn"})

	sel.SetOnly("resort")
	gt.Array(t, sel.Values()).Equal([]string{"resort"})
}

func TestSelectionAddCustom(t *testing.T) {
	sel := model.NewSelection("candid")

	t.Run("custom value is trimmed", func(t *testing.T) {
		gt.Bool(t, sel.AddCustom("  underwater  ")).True()
		gt.Bool(t, sel.Has("underwater")).True()
	})

	t.Run("blank input is a no-op", func(t *testing.T) {
		gt.Bool(t, sel.AddCustom("   ")).False()
		gt.Value(t, sel.Count()).Equal(2)
	})

	t.Run("duplicate is a no-op", func(t *testing.T) {
		gt.Bool(t, sel.AddCustom("candid")).False()
		gt.Bool(t, sel.AddCustom("underwater")).False()
		gt.Value(t, sel.Count()).Equal(2)
	})
}

func TestSelectionRemove(t *testing.T) {
	sel := model.NewSelection("a", "b", "c")

	gt.Bool(t, sel.Remove("b")).True()
	gt.Array(t, sel.Values()).Equal([]string{"a", "c"})

	gt.Bool(t, sel.Remove("missing")).False()
	gt.Value(t, sel.Count()).Equal(2)
}

func TestSelectionDropdown(t *testing.T) {
	sel := model.NewSelection()

	gt.Bool(t, sel.IsOpen()).False()
	sel.ToggleOpen()
	gt.Bool(t, sel.IsOpen()).True()

	sel.Search("can")
	gt.Value(t, sel.Query()).Equal("can")

	sel.Dismiss()
	gt.Bool(t, sel.IsOpen()).False()
	gt.Value(t, sel.Query()).Equal("")
}

func TestFilterOptions(t *testing.T) {
	options := []config.FieldOption{
		{ID: "candid", Name: "Candid"},
		{ID: "cinematic", Name: "Cinematic"},
		{ID: "traditional", Name: "Traditional"},
	}

	t.Run("case-insensitive substring match", func(t *testing.T) {
		matched := model.FilterOptions(options, "CIN")
		gt.Array(t, matched).Length(1)
		gt.Value(t, matched[0].ID).Equal("cinematic")
	})

	t.Run("empty query matches everything", func(t *testing.T) {
		gt.Array(t, model.FilterOptions(options, "")).Length(3)
	})

	t.Run("no match yields empty result", func(t *testing.T) {
		gt.Array(t, model.FilterOptions(options, "zzz")).Length(0)
	})

	t.Run("filtering never touches the selection", func(t *testing.T) {
		sel := model.NewSelection("candid")
		sel.Search("trad")
		_ = model.FilterOptions(options, sel.Query())
		gt.Array(t, sel.Values()).Equal([]string{"candid"})
	})
}
