package memory

import (
	"github.com/mandap-labs/vivaha/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is an in-memory repository backend for development and tests
type Memory struct {
	vendor *vendorRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		vendor: newVendorRepository(),
	}
}

func (m *Memory) Vendor() interfaces.VendorRepository {
	return m.vendor
}

func (m *Memory) Close() error {
	return nil
}
