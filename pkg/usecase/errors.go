package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Not found errors
	ErrDraftNotFound  = errors.New("draft not found")
	ErrVendorNotFound = errors.New("vendor not found")

	// Schema lookup errors
	ErrUnknownField = errors.New("unknown field")
	ErrUnknownGroup = errors.New("unknown group")
	ErrUnknownSlot  = errors.New("unknown media slot")

	// Submission errors
	ErrSubmitInFlight      = errors.New("submission already in progress")
	ErrDeleteNotConfirmed  = errors.New("delete requires confirmation")
	ErrDeleteNotInEditMode = errors.New("delete is only available while editing an existing vendor")
)

// Context keys for error values
const (
	DraftIDKey  = "draft_id"
	VendorIDKey = "vendor_id"
	FieldIDKey  = "field_id"
	SlotIDKey   = "slot_id"
)
