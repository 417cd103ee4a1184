package media_test

import (
	"context"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mandap-labs/vivaha/pkg/domain/model"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
	"github.com/mandap-labs/vivaha/pkg/service/media"
)

func TestMemoryPreviews(t *testing.T) {
	store := media.NewMemory()
	ctx := context.Background()

	h1, err := store.Acquire(ctx, model.FileRef{Name: "a.jpg", Content: []byte("a")})
	gt.NoError(t, err).Required()
	h2, err := store.Acquire(ctx, model.FileRef{Name: "b.jpg", Content: []byte("b")})
	gt.NoError(t, err).Required()

	gt.Value(t, store.PreviewCount()).Equal(2)
	gt.Bool(t, h1 != h2).True()

	t.Run("release drops exactly one handle", func(t *testing.T) {
		gt.NoError(t, store.Release(ctx, h1)).Required()
		gt.Value(t, store.PreviewCount()).Equal(1)
		gt.Bool(t, store.HasPreview(h1)).False()
		gt.Bool(t, store.HasPreview(h2)).True()
	})

	t.Run("releasing an unknown handle is harmless", func(t *testing.T) {
		gt.NoError(t, store.Release(ctx, types.PreviewHandle("gone")))
		gt.NoError(t, store.Release(ctx, h1))
		gt.Value(t, store.PreviewCount()).Equal(1)
	})
}

func TestMemoryPersist(t *testing.T) {
	store := media.NewMemory()
	ctx := context.Background()
	vendorID := types.NewVendorID()

	files := []model.FileRef{
		{Name: "front.jpg", ContentType: "image/jpeg", Size: 5, Content: []byte("front")},
		{Name: "back.jpg", ContentType: "image/jpeg", Size: 5, Content: []byte("back!")},
	}

	objs, err := store.Persist(ctx, vendorID, "gallery", files)
	gt.NoError(t, err).Required()
	gt.Array(t, objs).Length(2)

	gt.Value(t, objs[0].Name).Equal("front.jpg")
	gt.Value(t, objs[0].ContentType).Equal("image/jpeg")
	gt.Value(t, objs[0].Size).Equal(int64(5))
	gt.Bool(t, strings.HasPrefix(objs[0].URL, "mem://")).True()
	gt.Bool(t, strings.Contains(objs[0].URL, vendorID.String())).True()

	t.Run("objects keep their slot order", func(t *testing.T) {
		gt.Value(t, objs[1].Name).Equal("back.jpg")
	})
}

func TestMemoryRemove(t *testing.T) {
	store := media.NewMemory()
	ctx := context.Background()
	keep := types.NewVendorID()
	drop := types.NewVendorID()

	_, err := store.Persist(ctx, keep, "gallery", []model.FileRef{{Name: "keep.jpg", Content: []byte("k")}})
	gt.NoError(t, err).Required()
	_, err = store.Persist(ctx, drop, "gallery", []model.FileRef{
		{Name: "a.jpg", Content: []byte("a")},
		{Name: "b.jpg", Content: []byte("b")},
	})
	gt.NoError(t, err).Required()
	gt.Value(t, store.ObjectCount()).Equal(3)

	gt.NoError(t, store.Remove(ctx, drop)).Required()
	gt.Value(t, store.ObjectCount()).Equal(1)

	t.Run("removing a vendor without media is harmless", func(t *testing.T) {
		gt.NoError(t, store.Remove(ctx, types.NewVendorID()))
		gt.Value(t, store.ObjectCount()).Equal(1)
	})
}
