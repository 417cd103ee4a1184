package types

// FieldID represents the unique identifier for a form field
type FieldID string

// String returns the string representation of the field ID
func (f FieldID) String() string {
	return string(f)
}

// FieldKind represents the kind of a form field
type FieldKind string

const (
	FieldKindText        FieldKind = "text"
	FieldKindTextarea    FieldKind = "textarea"
	FieldKindNumber      FieldKind = "number"
	FieldKindCurrency    FieldKind = "currency"
	FieldKindCheckbox    FieldKind = "checkbox"
	FieldKindSelect      FieldKind = "select"
	FieldKindMultiSelect FieldKind = "multi-select"
	FieldKindEmail       FieldKind = "email"
	FieldKindPhone       FieldKind = "phone"
	FieldKindURL         FieldKind = "url"
)

// AllFieldKinds returns all valid field kinds
func AllFieldKinds() []FieldKind {
	return []FieldKind{
		FieldKindText,
		FieldKindTextarea,
		FieldKindNumber,
		FieldKindCurrency,
		FieldKindCheckbox,
		FieldKindSelect,
		FieldKindMultiSelect,
		FieldKindEmail,
		FieldKindPhone,
		FieldKindURL,
	}
}

// IsValid checks if the field kind is valid
func (k FieldKind) IsValid() bool {
	switch k {
	case FieldKindText,
		FieldKindTextarea,
		FieldKindNumber,
		FieldKindCurrency,
		FieldKindCheckbox,
		FieldKindSelect,
		FieldKindMultiSelect,
		FieldKindEmail,
		FieldKindPhone,
		FieldKindURL:
		return true
	default:
		return false
	}
}

// IsScalar reports whether values of this kind live in the draft's scalar
// field map. Select and multi-select values are managed as selections.
func (k FieldKind) IsScalar() bool {
	switch k {
	case FieldKindSelect, FieldKindMultiSelect:
		return false
	default:
		return true
	}
}

// String returns the string representation of the field kind
func (k FieldKind) String() string {
	return string(k)
}
