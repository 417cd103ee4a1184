package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mandap-labs/vivaha/pkg/domain/model"
	"github.com/mandap-labs/vivaha/pkg/domain/model/config"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
)

func TestRunValidation(t *testing.T) {
	t.Run("defaults and fixtures pass", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, runValidation(&buf, model.DefaultRegistry(), true)).Required()
		gt.Bool(t, strings.Contains(buf.String(), "All checks passed")).True()
	})

	t.Run("a broken schema fails the run", func(t *testing.T) {
		registry := model.NewCategoryRegistry()
		registry.Register(&config.CategorySchema{
			Category: "venue",
			Name:     "Venue",
			Fields: []config.FieldDefinition{
				{ID: "name", Label: "Name", Kind: types.FieldKind("hologram")},
			},
		})

		var buf bytes.Buffer
		err := runValidation(&buf, registry, false)
		gt.Error(t, err)
		gt.Bool(t, strings.Contains(buf.String(), "venue")).True()
	})

	t.Run("fixtures against an empty registry fail", func(t *testing.T) {
		var buf bytes.Buffer
		err := runValidation(&buf, model.NewCategoryRegistry(), true)
		gt.Error(t, err)
	})
}
