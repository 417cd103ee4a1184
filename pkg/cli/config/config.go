package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mandap-labs/vivaha/pkg/domain/model"
	domainConfig "github.com/mandap-labs/vivaha/pkg/domain/model/config"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// AppConfig holds the schema file flag. The schema file replaces the
// built-in category registry entirely; when no file is given, the eight
// default categories are used.
type AppConfig struct {
	schemaPath string
}

// Flags returns CLI flags for application configuration
func (a *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "schema",
			Usage:       "Path to a TOML file with category form schemas",
			Sources:     cli.EnvVars("VIVAHA_SCHEMA"),
			Destination: &a.schemaPath,
		},
	}
}

// Configure builds the category registry from the schema file or the
// built-in defaults.
func (a *AppConfig) Configure() (*model.CategoryRegistry, error) {
	if a.schemaPath == "" {
		return model.DefaultRegistry(), nil
	}

	schemas, err := LoadSchemaFile(a.schemaPath)
	if err != nil {
		return nil, err
	}

	registry := model.NewCategoryRegistry()
	for _, schema := range schemas {
		registry.Register(schema)
	}
	return registry, nil
}

// SchemaFile is the TOML shape of a category schema file
type SchemaFile struct {
	Categories []CategorySchema `toml:"category"`
}

// CategorySchema is one category's form schema in TOML
type CategorySchema struct {
	ID     string      `toml:"id"`
	Name   string      `toml:"name"`
	Fields []Field     `toml:"field"`
	Groups []Group     `toml:"group"`
	Media  []MediaSlot `toml:"media"`
}

// Field is one form field in TOML
type Field struct {
	ID          string   `toml:"id"`
	Label       string   `toml:"label"`
	Kind        string   `toml:"kind"`
	Required    bool     `toml:"required"`
	Description string   `toml:"description"`
	Options     []Option `toml:"option"`
	AllowCustom bool     `toml:"allow_custom"`
}

// Option is one predefined select option in TOML
type Option struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

// Group is one repeatable group in TOML
type Group struct {
	ID        string     `toml:"id"`
	Label     string     `toml:"label"`
	Fields    []SubField `toml:"field"`
	Required  bool       `toml:"required"`
	NameField string     `toml:"name_field"`
}

// SubField is one sub-field of a repeatable group in TOML
type SubField struct {
	ID       string `toml:"id"`
	Label    string `toml:"label"`
	Required bool   `toml:"required"`
}

// MediaSlot is one upload slot in TOML
type MediaSlot struct {
	ID          string `toml:"id"`
	Label       string `toml:"label"`
	Cardinality string `toml:"cardinality"`
	Cap         int    `toml:"cap"`
	MinCount    int    `toml:"min_count"`
	ExactCount  int    `toml:"exact_count"`
}

// ToSchema converts the TOML shape into the domain schema
func (c *CategorySchema) ToSchema() *domainConfig.CategorySchema {
	schema := &domainConfig.CategorySchema{
		Category:   types.CategoryID(c.ID),
		Name:       c.Name,
		Fields:     make([]domainConfig.FieldDefinition, len(c.Fields)),
		Groups:     make([]domainConfig.GroupDefinition, len(c.Groups)),
		MediaSlots: make([]domainConfig.MediaSlotDefinition, len(c.Media)),
	}
	for i, f := range c.Fields {
		options := make([]domainConfig.FieldOption, len(f.Options))
		for j, opt := range f.Options {
			options[j] = domainConfig.FieldOption(opt)
		}
		schema.Fields[i] = domainConfig.FieldDefinition{
			ID:          f.ID,
			Label:       f.Label,
			Kind:        types.FieldKind(f.Kind),
			Required:    f.Required,
			Description: f.Description,
			Options:     options,
			AllowCustom: f.AllowCustom,
		}
	}
	for i, g := range c.Groups {
		fields := make([]domainConfig.SubFieldDefinition, len(g.Fields))
		for j, sf := range g.Fields {
			fields[j] = domainConfig.SubFieldDefinition(sf)
		}
		schema.Groups[i] = domainConfig.GroupDefinition{
			ID:        g.ID,
			Label:     g.Label,
			Fields:    fields,
			Required:  g.Required,
			NameField: g.NameField,
		}
	}
	for i, m := range c.Media {
		schema.MediaSlots[i] = domainConfig.MediaSlotDefinition{
			ID:          m.ID,
			Label:       m.Label,
			Cardinality: types.SlotCardinality(m.Cardinality),
			Cap:         m.Cap,
			MinCount:    m.MinCount,
			ExactCount:  m.ExactCount,
		}
	}
	return schema
}

// LoadSchemaFile loads and validates category schemas from a TOML file
func LoadSchemaFile(path string) ([]*domainConfig.CategorySchema, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read schema file", goerr.V("path", path))
	}

	var file SchemaFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML schema", goerr.V("path", path))
	}
	if len(file.Categories) == 0 {
		return nil, goerr.New("schema file defines no categories", goerr.V("path", path))
	}

	seen := make(map[string]bool, len(file.Categories))
	schemas := make([]*domainConfig.CategorySchema, 0, len(file.Categories))
	for i := range file.Categories {
		c := &file.Categories[i]
		if seen[c.ID] {
			return nil, goerr.New("duplicate category ID", goerr.V("id", c.ID), goerr.V("path", path))
		}
		seen[c.ID] = true

		schema := c.ToSchema()
		if err := schema.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid category schema", goerr.V("id", c.ID), goerr.V("path", path))
		}
		schemas = append(schemas, schema)
	}
	return schemas, nil
}
