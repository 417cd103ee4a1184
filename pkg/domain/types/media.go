package types

// SlotID represents the identifier of a named media slot (e.g. "thumbnail")
type SlotID string

// String returns the string representation of the slot ID
func (s SlotID) String() string {
	return string(s)
}

// SlotCardinality represents how many files a media slot holds
type SlotCardinality string

const (
	SlotCardinalitySingle SlotCardinality = "single"
	SlotCardinalityMany   SlotCardinality = "many"
)

// IsValid checks if the slot cardinality is valid
func (c SlotCardinality) IsValid() bool {
	switch c {
	case SlotCardinalitySingle, SlotCardinalityMany:
		return true
	default:
		return false
	}
}

// String returns the string representation of the slot cardinality
func (c SlotCardinality) String() string {
	return string(c)
}

// PreviewHandle is an ephemeral reference to a rendered preview of a file
// held in a media slot. Handles are acquired from a MediaStore and must be
// released when the owning file leaves its slot.
type PreviewHandle string

// String returns the string representation of the preview handle
func (p PreviewHandle) String() string {
	return string(p)
}
