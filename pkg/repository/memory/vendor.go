package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mandap-labs/vivaha/pkg/domain/interfaces"
	"github.com/mandap-labs/vivaha/pkg/domain/model"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
)

type vendorRepository struct {
	mu      sync.RWMutex
	vendors map[types.VendorID]*model.Vendor
}

func newVendorRepository() *vendorRepository {
	return &vendorRepository{
		vendors: make(map[types.VendorID]*model.Vendor),
	}
}

func (r *vendorRepository) Create(ctx context.Context, v *model.Vendor) (*model.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := model.CloneVendor(v)
	if created.ID == "" {
		created.ID = types.NewVendorID()
	}
	created.Status = created.Status.Normalize()
	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now

	r.vendors[created.ID] = created
	return model.CloneVendor(created), nil
}

func (r *vendorRepository) Get(ctx context.Context, id types.VendorID) (*model.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, exists := r.vendors[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "vendor not found", goerr.V("id", id))
	}
	return model.CloneVendor(v), nil
}

func (r *vendorRepository) List(ctx context.Context, category types.CategoryID, opts ...interfaces.ListVendorOption) ([]*model.Vendor, error) {
	cfg := interfaces.BuildListVendorConfig(opts...)

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Vendor, 0)
	for _, v := range r.vendors {
		if v.Category != category {
			continue
		}
		if cfg.Status() != nil && v.Status.Normalize() != *cfg.Status() {
			continue
		}
		result = append(result, model.CloneVendor(v))
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (r *vendorRepository) Update(ctx context.Context, v *model.Vendor) (*model.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.vendors[v.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "vendor not found", goerr.V("id", v.ID))
	}

	updated := model.CloneVendor(v)
	updated.Status = updated.Status.Normalize()
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.vendors[updated.ID] = updated
	return model.CloneVendor(updated), nil
}

func (r *vendorRepository) Delete(ctx context.Context, id types.VendorID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.vendors[id]; !exists {
		return goerr.Wrap(ErrNotFound, "vendor not found", goerr.V("id", id))
	}
	delete(r.vendors, id)
	return nil
}
