package simpleschema

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Type is the reduced set of value types a Schema node can describe.
type Type string

const (
	TypeString  Type = "STRING"
	TypeNumber  Type = "NUMBER"
	TypeInteger Type = "INTEGER"
	TypeBoolean Type = "BOOLEAN"
	TypeArray   Type = "ARRAY"
	TypeObject  Type = "OBJECT"
)

// Schema is a single flattened schema node. References are already resolved
// and union keywords collapsed, so the tree serializes to plain JSON that
// restrictive structured-output backends accept.
//
// Count and length bounds are carried as decimal strings because that is how
// the consuming backends expect them on the wire.
type Schema struct {
	Type             Type                                    `json:"type"`
	Format           string                                  `json:"format,omitempty"`
	Title            string                                  `json:"title,omitempty"`
	Description      string                                  `json:"description,omitempty"`
	Nullable         *bool                                   `json:"nullable,omitempty"`
	Enum             []string                                `json:"enum,omitempty"`
	MaxItems         string                                  `json:"maxItems,omitempty"`
	MinItems         string                                  `json:"minItems,omitempty"`
	Properties       *orderedmap.OrderedMap[string, *Schema] `json:"properties,omitempty"`
	Required         []string                                `json:"required,omitempty"`
	MinProperties    string                                  `json:"minProperties,omitempty"`
	MaxProperties    string                                  `json:"maxProperties,omitempty"`
	MinLength        string                                  `json:"minLength,omitempty"`
	MaxLength        string                                  `json:"maxLength,omitempty"`
	Pattern          string                                  `json:"pattern,omitempty"`
	Example          json.RawMessage                         `json:"example,omitempty"`
	AnyOf            []*Schema                               `json:"anyOf,omitempty"`
	PropertyOrdering []string                                `json:"propertyOrdering,omitempty"`
	Default          json.RawMessage                         `json:"default,omitempty"`
	Items            *Schema                                 `json:"items,omitempty"`
	Minimum          *float64                                `json:"minimum,omitempty"`
	Maximum          *float64                                `json:"maximum,omitempty"`
}

// Property returns the schema for a named property, or nil if absent.
func (s *Schema) Property(name string) *Schema {
	if s == nil || s.Properties == nil {
		return nil
	}
	v, ok := s.Properties.Get(name)
	if !ok {
		return nil
	}
	return v
}

// PropertyNames returns the property names in their declared order.
func (s *Schema) PropertyNames() []string {
	if s == nil || s.Properties == nil {
		return nil
	}
	names := make([]string, 0, s.Properties.Len())
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// ErrorKind discriminates conversion failures.
type ErrorKind int

const (
	ErrUnsupportedType ErrorKind = iota
	ErrInvalidSchema
	ErrMissingField
	ErrRefResolution
)

// ConversionError reports why a JSON Schema could not be reduced.
type ConversionError struct {
	Kind   ErrorKind
	Detail string
}

func (e *ConversionError) Error() string {
	switch e.Kind {
	case ErrUnsupportedType:
		return "unsupported schema type: " + e.Detail
	case ErrInvalidSchema:
		return "invalid JSON Schema: " + e.Detail
	case ErrMissingField:
		return "missing required field: " + e.Detail
	case ErrRefResolution:
		return "reference resolution error: " + e.Detail
	}
	return e.Detail
}
