package interfaces

import "github.com/mandap-labs/vivaha/pkg/domain/types"

// ListVendorOption is a functional option for filtering vendors in List
type ListVendorOption func(*listVendorConfig)

type listVendorConfig struct {
	status *types.VendorStatus
}

// WithStatus filters vendors by listing status
func WithStatus(status types.VendorStatus) ListVendorOption {
	return func(c *listVendorConfig) {
		c.status = &status
	}
}

// BuildListVendorConfig builds a listVendorConfig from options
func BuildListVendorConfig(opts ...ListVendorOption) *listVendorConfig {
	cfg := &listVendorConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Status returns the status filter value, or nil if not set
func (c *listVendorConfig) Status() *types.VendorStatus {
	return c.status
}
