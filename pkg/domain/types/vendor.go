package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// VendorID is a UUID-based identifier for a vendor listing
type VendorID string

// NewVendorID generates a new UUID v4 VendorID
func NewVendorID() VendorID {
	return VendorID(uuid.New().String())
}

// String returns the string representation of the vendor ID
func (v VendorID) String() string {
	return string(v)
}

// VendorStatus represents the listing status of a vendor
type VendorStatus string

const (
	VendorStatusActive   VendorStatus = "ACTIVE"
	VendorStatusInactive VendorStatus = "INACTIVE"
)

// AllVendorStatuses returns all valid vendor statuses
func AllVendorStatuses() []VendorStatus {
	return []VendorStatus{
		VendorStatusActive,
		VendorStatusInactive,
	}
}

// IsValid checks if the vendor status is valid
func (s VendorStatus) IsValid() bool {
	switch s {
	case VendorStatusActive, VendorStatusInactive:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as VendorStatusActive
func (s VendorStatus) Normalize() VendorStatus {
	if s == "" {
		return VendorStatusActive
	}
	return s
}

// String returns the string representation of the vendor status
func (s VendorStatus) String() string {
	return string(s)
}

// ParseVendorStatus parses a string into a VendorStatus
func ParseVendorStatus(s string) (VendorStatus, error) {
	status := VendorStatus(s)
	if !status.IsValid() {
		return "", goerr.New("invalid vendor status", goerr.V("status", s))
	}
	return status, nil
}
