package cli

import (
	"testing"

	"github.com/m-mizutani/fireconf"
	"github.com/m-mizutani/gt"
)

func TestIndexConfig(t *testing.T) {
	cfg := getIndexConfig("")
	gt.Array(t, cfg.Collections).Length(1)
	gt.Value(t, cfg.Collections[0].Name).Equal("vendors")
	gt.NoError(t, cfg.Validate()).Required()

	t.Run("listing index orders newest first", func(t *testing.T) {
		idx := cfg.Collections[0].Indexes[0]
		gt.Array(t, idx.Fields).Length(2)
		gt.Value(t, idx.Fields[0].Path).Equal("category")
		gt.Value(t, idx.Fields[1].Path).Equal("created_at")
		gt.Value(t, idx.Fields[1].Order).Equal(fireconf.OrderDescending)
	})

	t.Run("status filter gets its own composite index", func(t *testing.T) {
		idx := cfg.Collections[0].Indexes[1]
		gt.Array(t, idx.Fields).Length(3)
		gt.Value(t, idx.Fields[1].Path).Equal("status")
	})

	t.Run("collection prefix namespaces the collection", func(t *testing.T) {
		prefixed := getIndexConfig("staging")
		gt.Value(t, prefixed.Collections[0].Name).Equal("staging_vendors")
	})
}
