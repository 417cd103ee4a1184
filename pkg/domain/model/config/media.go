package config

import "github.com/mandap-labs/vivaha/pkg/domain/types"

// MediaSlotDefinition declares a named upload slot of a category schema.
//
// Add-mode requirements come in two observed policies: a minimum count
// ("at least one portfolio image") and an exact count ("exactly 4 design
// images"). Both are kept as explicit per-slot configuration; neither
// applies in Edit mode.
type MediaSlotDefinition struct {
	ID          string
	Label       string
	Cardinality types.SlotCardinality
	// Cap truncates SetMany input for many-cardinality slots. Zero means
	// no cap.
	Cap int
	// MinCount is the minimum number of files required in Add mode.
	// Zero means the slot is optional.
	MinCount int
	// ExactCount, when non-zero, requires exactly this many files in Add
	// mode and takes precedence over MinCount.
	ExactCount int
}

// RequiredInAdd reports whether the slot carries any Add-mode requirement
func (m *MediaSlotDefinition) RequiredInAdd() bool {
	return m.MinCount > 0 || m.ExactCount > 0
}
