package simpleschema

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"
)

// For reflects the Go type T into a JSON Schema and reduces it. Struct
// fields use their json tags for property names and jsonschema tags for
// descriptions and constraints.
func For[T any]() (*Schema, error) {
	var v T
	r := jsonschema.Reflector{}
	full := r.Reflect(&v)
	raw, err := json.Marshal(full)
	if err != nil {
		return nil, &ConversionError{Kind: ErrInvalidSchema, Detail: err.Error()}
	}
	return Convert(raw)
}

// NameFor returns a stable schema name for T, used to label structured
// output requests.
func NameFor[T any]() string {
	var v T
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Name() == "" {
		return "Response"
	}
	return t.Name()
}
