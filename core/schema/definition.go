// Package schema describes the shape of documents so filters can be derived
// for them without declaring every field by hand.
package schema

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/asaidimu/go-sieve/utils"
)

// Document is a single record held as field name to value.
type Document map[string]any

// FieldType represents the basic field types supported by the schema system.
type FieldType string

const (
	FieldTypeString  FieldType = "string"  // Text data
	FieldTypeNumber  FieldType = "number"  // Numeric data
	FieldTypeInteger FieldType = "integer" // Numeric data
	FieldTypeDecimal FieldType = "decimal" // Numeric data
	FieldTypeBoolean FieldType = "boolean" // True/false values
	FieldTypeArray   FieldType = "array"   // Ordered list of items
	FieldTypeObject  FieldType = "object"  // Structured data with nested fields
	FieldTypeRecord  FieldType = "record"  // Unorganized key-value object
)

// IndexType represents index types. Only primary indexes matter for filtering.
type IndexType string

const (
	IndexTypeNormal  IndexType = "normal"
	IndexTypeUnique  IndexType = "unique"
	IndexTypePrimary IndexType = "primary"
)

// FieldDefinition describes one document field.
type FieldDefinition struct {
	Name string    `json:"name"`
	Type FieldType `json:"type"`
	// Required fields are never null; optional ones may be absent or null.
	Required    *bool   `json:"required,omitempty"`
	Unique      *bool   `json:"unique,omitempty"`
	Description *string `json:"description,omitempty"`
}

// IsRequired reports whether the field must hold a non-null value.
func (f *FieldDefinition) IsRequired() bool {
	return f.Required != nil && *f.Required
}

// IndexDefinition names the fields covered by an index.
type IndexDefinition struct {
	Name   string    `json:"name"`
	Fields []string  `json:"fields"`
	Type   IndexType `json:"type"`
}

// SchemaDefinition is the full description of a document collection.
type SchemaDefinition struct {
	Name        string                      `json:"name"`
	Version     string                      `json:"version"`
	Description *string                     `json:"description,omitempty"`
	Fields      map[string]*FieldDefinition `json:"fields"`
	Indexes     []IndexDefinition           `json:"indexes,omitempty"`
}

// Parse decodes a JSON schema definition. Field definitions without a name take
// the key they are listed under.
func Parse(data []byte) (*SchemaDefinition, error) {
	var def SchemaDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse schema definition: %w", err)
	}
	if def.Name == "" {
		return nil, fmt.Errorf("schema definition has no name")
	}
	for key, field := range def.Fields {
		if field == nil {
			return nil, fmt.Errorf("schema %q: field %q has no definition", def.Name, key)
		}
		if field.Name == "" {
			field.Name = key
		}
	}
	return &def, nil
}

// FindField returns the field with the given name, or nil.
func (s *SchemaDefinition) FindField(name string) *FieldDefinition {
	if field, ok := s.Fields[name]; ok && field != nil {
		return field
	}
	for _, field := range s.Fields {
		if field != nil && field.Name == name {
			return field
		}
	}
	return nil
}

// FieldNames returns the declared field names in sorted order, each listed once.
// A field without a name is known by the key it is listed under.
func (s *SchemaDefinition) FieldNames() []string {
	seen := make(map[string]struct{}, len(s.Fields))
	names := make([]string, 0, len(s.Fields))
	for key, field := range s.Fields {
		if field == nil {
			continue
		}
		name := field.Name
		if name == "" {
			name = key
		}
		if _, ok := seen[name]; ok || name == "" {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PrimaryFields returns the set of fields covered by a primary index.
func (s *SchemaDefinition) PrimaryFields() map[string]struct{} {
	primary := make(map[string]struct{})
	for _, index := range s.Indexes {
		if index.Type != IndexTypePrimary {
			continue
		}
		for _, name := range index.Fields {
			primary[name] = struct{}{}
		}
	}
	return primary
}

// ToDocument converts a struct into a Document using its JSON field names.
func ToDocument[T any](record T) (Document, error) {
	m, err := utils.StructToMap(record)
	if err != nil {
		return nil, err
	}
	return Document(m), nil
}
