package interfaces

import (
	"context"

	"github.com/mandap-labs/vivaha/pkg/domain/model"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
)

// MediaStore allocates ephemeral preview handles for files held in draft
// media slots and persists slot contents when a draft is submitted.
// Every acquired handle must be released exactly once, when the owning
// file leaves its slot or the draft is discarded.
type MediaStore interface {
	// Acquire stores the file's preview data and returns a handle for it
	Acquire(ctx context.Context, file model.FileRef) (types.PreviewHandle, error)

	// Release invalidates a preview handle and frees its backing data.
	// Releasing an unknown handle is not an error.
	Release(ctx context.Context, handle types.PreviewHandle) error

	// Persist turns a slot's files into durable media objects for the
	// saved vendor record
	Persist(ctx context.Context, vendorID types.VendorID, slotID string, files []model.FileRef) ([]model.MediaObject, error)

	// Remove drops every persisted media object belonging to the vendor.
	// Removing a vendor with no media is not an error.
	Remove(ctx context.Context, vendorID types.VendorID) error
}
