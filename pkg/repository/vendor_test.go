package repository_test

import (
	"context"
	"os"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mandap-labs/vivaha/pkg/domain/interfaces"
	"github.com/mandap-labs/vivaha/pkg/domain/model"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
	"github.com/mandap-labs/vivaha/pkg/repository/firestore"
	"github.com/mandap-labs/vivaha/pkg/repository/memory"
)

func testVendor(name string) *model.Vendor {
	return &model.Vendor{
		Category: "venue",
		Name:     name,
		Contact:  "+91 98100 11223",
		Location: "Jaipur",
		Fields: map[string]any{
			"name":  name,
			"phone": "+91 98100 11223",
		},
		Selections: map[string][]string{
			"locations": {"jaipur"},
		},
		Groups: map[string][]model.GroupRecordData{
			"halls": {{Fields: map[string]string{"hall-name": "Main Lawn", "capacity": "500"}}},
		},
		Media: map[string][]model.MediaObject{
			"thumbnail": {{Name: "front.jpg", URL: "mem://front", ContentType: "image/jpeg", Size: 2048}},
		},
	}
}

func runVendorRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns ID, status and timestamps", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Vendor().Create(ctx, testVendor("Rambagh Gardens"))
		gt.NoError(t, err).Required()

		gt.Bool(t, created.ID != "").True()
		gt.Value(t, created.Status).Equal(types.VendorStatusActive)
		gt.Bool(t, created.CreatedAt.IsZero()).False()
		gt.Bool(t, created.UpdatedAt.IsZero()).False()
	})

	t.Run("Create keeps a caller-provided ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		vendor := testVendor("Umaid Palace Grounds")
		vendor.ID = types.NewVendorID()

		created, err := repo.Vendor().Create(ctx, vendor)
		gt.NoError(t, err).Required()
		gt.Value(t, created.ID).Equal(vendor.ID)
	})

	t.Run("Get returns the full stored shape", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Vendor().Create(ctx, testVendor("Rambagh Gardens"))
		gt.NoError(t, err).Required()

		got, err := repo.Vendor().Get(ctx, created.ID)
		gt.NoError(t, err).Required()

		gt.Value(t, got.Name).Equal("Rambagh Gardens")
		gt.Value(t, got.Fields["phone"]).Equal(any("+91 98100 11223"))
		gt.Array(t, got.Selections["locations"]).Equal([]string{"jaipur"})
		gt.Array(t, got.Groups["halls"]).Length(1)
		gt.Value(t, got.Groups["halls"][0].Fields["hall-name"]).Equal("Main Lawn")
		gt.Value(t, got.Media["thumbnail"][0].URL).Equal("mem://front")
	})

	t.Run("Get fails for unknown ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Vendor().Get(ctx, types.NewVendorID())
		gt.Error(t, err)
	})

	t.Run("List filters by category", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		venue := testVendor("Rambagh Gardens")
		caterer := testVendor("Rasoi Royale")
		caterer.Category = "caterer"

		_, err := repo.Vendor().Create(ctx, venue)
		gt.NoError(t, err).Required()
		_, err = repo.Vendor().Create(ctx, caterer)
		gt.NoError(t, err).Required()

		vendors, err := repo.Vendor().List(ctx, "venue")
		gt.NoError(t, err).Required()
		gt.Array(t, vendors).Length(1)
		gt.Value(t, vendors[0].Name).Equal("Rambagh Gardens")
	})

	t.Run("List orders newest first", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, name := range []string{"First Venue", "Second Venue", "Third Venue"} {
			_, err := repo.Vendor().Create(ctx, testVendor(name))
			gt.NoError(t, err).Required()
		}

		vendors, err := repo.Vendor().List(ctx, "venue")
		gt.NoError(t, err).Required()
		gt.Array(t, vendors).Length(3)
		for i := 0; i < len(vendors)-1; i++ {
			gt.Bool(t, vendors[i].CreatedAt.Before(vendors[i+1].CreatedAt)).False()
		}
	})

	t.Run("List filters by status", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		active, err := repo.Vendor().Create(ctx, testVendor("Open Venue"))
		gt.NoError(t, err).Required()

		inactive := testVendor("Shuttered Venue")
		inactive.Status = types.VendorStatusInactive
		_, err = repo.Vendor().Create(ctx, inactive)
		gt.NoError(t, err).Required()

		vendors, err := repo.Vendor().List(ctx, "venue", interfaces.WithStatus(types.VendorStatusActive))
		gt.NoError(t, err).Required()
		gt.Array(t, vendors).Length(1)
		gt.Value(t, vendors[0].ID).Equal(active.ID)
	})

	t.Run("Update replaces fields and keeps CreatedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Vendor().Create(ctx, testVendor("Rambagh Gardens"))
		gt.NoError(t, err).Required()

		created.Name = "Rambagh Gardens & Lawns"
		created.Fields["name"] = "Rambagh Gardens & Lawns"
		created.Status = types.VendorStatusInactive

		updated, err := repo.Vendor().Update(ctx, created)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Name).Equal("Rambagh Gardens & Lawns")
		gt.Value(t, updated.Status).Equal(types.VendorStatusInactive)
		gt.Bool(t, updated.CreatedAt.Equal(created.CreatedAt)).True()
	})

	t.Run("Update fails for unknown vendor", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		vendor := testVendor("Ghost Venue")
		vendor.ID = types.NewVendorID()
		_, err := repo.Vendor().Update(ctx, vendor)
		gt.Error(t, err)
	})

	t.Run("Delete removes the vendor", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Vendor().Create(ctx, testVendor("Rambagh Gardens"))
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Vendor().Delete(ctx, created.ID)).Required()

		_, err = repo.Vendor().Get(ctx, created.ID)
		gt.Error(t, err)

		gt.Error(t, repo.Vendor().Delete(ctx, created.ID))
	})

	t.Run("mutating a returned vendor does not change the store", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Vendor().Create(ctx, testVendor("Rambagh Gardens"))
		gt.NoError(t, err).Required()

		created.Selections["locations"][0] = "mutated"
		created.Groups["halls"][0].Fields["hall-name"] = "mutated"

		got, err := repo.Vendor().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Selections["locations"][0]).Equal("jaipur")
		gt.Value(t, got.Groups["halls"][0].Fields["hall-name"]).Equal("Main Lawn")
	})
}

func TestVendorRepository_Memory(t *testing.T) {
	runVendorRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestVendorRepository_Firestore(t *testing.T) {
	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("FIRESTORE_PROJECT_ID not set")
	}

	runVendorRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		repo, err := firestore.New(context.Background(), projectID, "",
			firestore.WithCollectionPrefix("test"))
		gt.NoError(t, err).Required()
		return repo
	})
}
