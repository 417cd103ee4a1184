package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/mandap-labs/vivaha/pkg/domain/model/config"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
)

// ErrCategoryNotFound is returned when a category is not found in the registry
var ErrCategoryNotFound = goerr.New("category not found")

// Category represents a vendor category's identity
type Category struct {
	ID   types.CategoryID
	Name string
}

// CategoryRegistry holds the form schema of every vendor category.
// It holds settings only, never repositories or use cases.
type CategoryRegistry struct {
	entries map[types.CategoryID]*config.CategorySchema
	order   []types.CategoryID // preserves registration order
}

// NewCategoryRegistry creates a new empty CategoryRegistry
func NewCategoryRegistry() *CategoryRegistry {
	return &CategoryRegistry{
		entries: make(map[types.CategoryID]*config.CategorySchema),
	}
}

// Register adds a category schema to the registry
func (r *CategoryRegistry) Register(schema *config.CategorySchema) {
	if _, exists := r.entries[schema.Category]; !exists {
		r.order = append(r.order, schema.Category)
	}
	r.entries[schema.Category] = schema
}

// Get retrieves a category schema by ID
func (r *CategoryRegistry) Get(id types.CategoryID) (*config.CategorySchema, error) {
	schema, ok := r.entries[id]
	if !ok {
		return nil, goerr.Wrap(ErrCategoryNotFound, "category not found",
			goerr.V("category", id))
	}
	return schema, nil
}

// List returns all registered schemas in registration order
func (r *CategoryRegistry) List() []*config.CategorySchema {
	result := make([]*config.CategorySchema, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.entries[id])
	}
	return result
}

// Categories returns all registered category identities in registration order
func (r *CategoryRegistry) Categories() []Category {
	result := make([]Category, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, Category{ID: id, Name: r.entries[id].Name})
	}
	return result
}
