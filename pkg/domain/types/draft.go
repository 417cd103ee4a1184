package types

import "github.com/google/uuid"

// DraftID is a UUID-based identifier for a draft session
type DraftID string

// NewDraftID generates a new UUID v4 DraftID
func NewDraftID() DraftID {
	return DraftID(uuid.New().String())
}

// String returns the string representation of the draft ID
func (d DraftID) String() string {
	return string(d)
}

// DraftMode represents whether a draft creates a new vendor or edits an
// existing one. Some media requirements apply only in Add mode.
type DraftMode string

const (
	DraftModeAdd  DraftMode = "add"
	DraftModeEdit DraftMode = "edit"
)

// IsValid checks if the draft mode is valid
func (m DraftMode) IsValid() bool {
	switch m {
	case DraftModeAdd, DraftModeEdit:
		return true
	default:
		return false
	}
}

// String returns the string representation of the draft mode
func (m DraftMode) String() string {
	return string(m)
}

// RecordID identifies one record inside a repeatable group. IDs are
// monotonic within a draft session and survive removal of other records.
type RecordID int64
