package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mandap-labs/vivaha/pkg/domain/interfaces"
	"github.com/mandap-labs/vivaha/pkg/domain/model"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
)

// PageSize is the fixed number of vendors per listing page
const PageSize = 9

// ListingUseCase serves the per-category vendor listing with substring
// search and fixed-size pagination.
type ListingUseCase struct {
	repo     interfaces.Repository
	registry *model.CategoryRegistry
}

func NewListingUseCase(repo interfaces.Repository, registry *model.CategoryRegistry) *ListingUseCase {
	return &ListingUseCase{
		repo:     repo,
		registry: registry,
	}
}

// ListingPage is one page of the filtered vendor listing
type ListingPage struct {
	Vendors    []*model.Vendor
	Page       int
	TotalPages int
	TotalCount int
	Query      string
}

// Categories returns every registered category in registration order
func (uc *ListingUseCase) Categories() []model.Category {
	return uc.registry.Categories()
}

// List returns one page of a category's vendors. The query is a
// case-insensitive substring matched against name, contact and location;
// the requested page is clamped into the valid range of the filtered
// set. An empty filtered set yields page 1 with no rows.
func (uc *ListingUseCase) List(ctx context.Context, category types.CategoryID, query string, page int, opts ...interfaces.ListVendorOption) (*ListingPage, error) {
	if _, err := uc.registry.Get(category); err != nil {
		return nil, err
	}

	vendors, err := uc.repo.Vendor().List(ctx, category, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list vendors", goerr.V("category", category))
	}

	filtered := vendors[:0:0]
	for _, v := range vendors {
		if v.Matches(query) {
			filtered = append(filtered, v)
		}
	}

	totalPages := (len(filtered) + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return &ListingPage{
		Vendors:    filtered[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalCount: len(filtered),
		Query:      query,
	}, nil
}

// SetStatus flips a vendor between active and inactive on the listing
// surface without opening an editing draft.
func (uc *ListingUseCase) SetStatus(ctx context.Context, vendorID types.VendorID, status types.VendorStatus) (*model.Vendor, error) {
	if !status.Normalize().IsValid() {
		return nil, goerr.New("invalid vendor status", goerr.V("status", status))
	}

	vendor, err := uc.repo.Vendor().Get(ctx, vendorID)
	if err != nil {
		return nil, goerr.Wrap(ErrVendorNotFound, "vendor not found", goerr.V(VendorIDKey, vendorID))
	}

	vendor.Status = status.Normalize()
	updated, err := uc.repo.Vendor().Update(ctx, vendor)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update vendor status", goerr.V(VendorIDKey, vendorID))
	}
	return updated, nil
}

// GetVendor returns one persisted vendor
func (uc *ListingUseCase) GetVendor(ctx context.Context, vendorID types.VendorID) (*model.Vendor, error) {
	vendor, err := uc.repo.Vendor().Get(ctx, vendorID)
	if err != nil {
		return nil, goerr.Wrap(ErrVendorNotFound, "vendor not found", goerr.V(VendorIDKey, vendorID))
	}
	return vendor, nil
}
