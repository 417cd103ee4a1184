package interfaces

import (
	"context"

	"github.com/mandap-labs/vivaha/pkg/domain/model"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
)

// VendorRepository defines the interface for vendor listing data access
type VendorRepository interface {
	// Create creates a new vendor with an auto-generated ID
	Create(ctx context.Context, v *model.Vendor) (*model.Vendor, error)

	// Get retrieves a vendor by ID
	Get(ctx context.Context, id types.VendorID) (*model.Vendor, error)

	// List retrieves vendors of a category with optional filtering,
	// ordered by creation time descending
	List(ctx context.Context, category types.CategoryID, opts ...ListVendorOption) ([]*model.Vendor, error)

	// Update updates an existing vendor
	Update(ctx context.Context, v *model.Vendor) (*model.Vendor, error)

	// Delete deletes a vendor by ID
	Delete(ctx context.Context, id types.VendorID) error
}
