package simpleschema

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type converter struct {
	definitions map[string]json.RawMessage
}

// Convert reduces a full JSON Schema document to a Schema tree. Local
// references against $defs or definitions are resolved inline, union
// keywords are flattened, and $-prefixed bookkeeping fields are stripped.
func Convert(schema json.RawMessage) (*Schema, error) {
	c := &converter{definitions: make(map[string]json.RawMessage)}
	if obj, err := decodeObject(schema); err == nil {
		c.harvestDefinitions(obj)
	}
	return c.convert(schema)
}

// decodeObject parses raw as a JSON object, preserving key order.
func decodeObject(raw json.RawMessage) (*orderedmap.OrderedMap[string, json.RawMessage], error) {
	om := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(raw, om); err != nil {
		return nil, err
	}
	return om, nil
}

func getString(om *orderedmap.OrderedMap[string, json.RawMessage], key string) (string, bool) {
	raw, ok := om.Get(key)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func getBool(om *orderedmap.OrderedMap[string, json.RawMessage], key string) (bool, bool) {
	raw, ok := om.Get(key)
	if !ok {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, false
	}
	return b, true
}

func getUint(om *orderedmap.OrderedMap[string, json.RawMessage], key string) (uint64, bool) {
	raw, ok := om.Get(key)
	if !ok {
		return 0, false
	}
	var u uint64
	if err := json.Unmarshal(raw, &u); err != nil {
		return 0, false
	}
	return u, true
}

func getFloat(om *orderedmap.OrderedMap[string, json.RawMessage], key string) (float64, bool) {
	raw, ok := om.Get(key)
	if !ok {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	return f, true
}

func getArray(om *orderedmap.OrderedMap[string, json.RawMessage], key string) ([]json.RawMessage, bool) {
	raw, ok := om.Get(key)
	if !ok {
		return nil, false
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil, false
	}
	return arr, true
}

// harvestDefinitions collects reusable schema fragments from both the
// draft-2020 $defs keyword and the legacy definitions keyword.
func (c *converter) harvestDefinitions(obj *orderedmap.OrderedMap[string, json.RawMessage]) {
	for _, key := range []string{"$defs", "definitions"} {
		raw, ok := obj.Get(key)
		if !ok {
			continue
		}
		defs, err := decodeObject(raw)
		if err != nil {
			continue
		}
		for pair := defs.Oldest(); pair != nil; pair = pair.Next() {
			c.definitions[pair.Key] = pair.Value
		}
	}
}

// resolveRef handles internal references of the form #/$defs/name or
// #/definitions/name.
func (c *converter) resolveRef(ref string) (json.RawMessage, error) {
	if strings.HasPrefix(ref, "#/") {
		parts := strings.Split(ref, "/")
		if len(parts) >= 3 && (parts[1] == "$defs" || parts[1] == "definitions") {
			if def, ok := c.definitions[parts[2]]; ok {
				return def, nil
			}
		}
	}
	return nil, &ConversionError{Kind: ErrRefResolution, Detail: "could not resolve reference: " + ref}
}

// cleanSchema strips $-prefixed keys recursively.
func cleanSchema(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return raw
	}
	switch trimmed[0] {
	case '{':
		om, err := decodeObject(trimmed)
		if err != nil {
			return raw
		}
		cleaned := orderedmap.New[string, json.RawMessage]()
		for pair := om.Oldest(); pair != nil; pair = pair.Next() {
			if strings.HasPrefix(pair.Key, "$") {
				continue
			}
			cleaned.Set(pair.Key, cleanSchema(pair.Value))
		}
		out, err := json.Marshal(cleaned)
		if err != nil {
			return raw
		}
		return out
	case '[':
		var arr []json.RawMessage
		if err := json.Unmarshal(trimmed, &arr); err != nil {
			return raw
		}
		for i := range arr {
			arr[i] = cleanSchema(arr[i])
		}
		out, err := json.Marshal(arr)
		if err != nil {
			return raw
		}
		return out
	}
	return raw
}

func (c *converter) convert(raw json.RawMessage) (*Schema, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, &ConversionError{Kind: ErrInvalidSchema, Detail: "schema must be an object"}
	}

	// References take precedence over everything else.
	if ref, ok := getString(obj, "$ref"); ok {
		resolved, err := c.resolveRef(ref)
		if err != nil {
			return nil, err
		}
		return c.convert(resolved)
	}

	if oneOf, ok := getArray(obj, "oneOf"); ok {
		return c.flattenUnion(oneOf, obj)
	}
	if allOf, ok := getArray(obj, "allOf"); ok {
		return c.flattenAllOf(allOf)
	}
	if anyOf, ok := getArray(obj, "anyOf"); ok {
		return c.flattenUnion(anyOf, obj)
	}

	cleaned, err := decodeObject(cleanSchema(raw))
	if err != nil {
		return nil, &ConversionError{Kind: ErrInvalidSchema, Detail: "schema must be an object"}
	}

	typ, err := determineType(cleaned)
	if err != nil {
		return nil, err
	}

	out := &Schema{Type: typ}
	if v, ok := getString(cleaned, "title"); ok {
		out.Title = v
	}
	if v, ok := getString(cleaned, "description"); ok {
		out.Description = v
	}
	if v, ok := cleaned.Get("example"); ok {
		out.Example = v
	}
	if v, ok := cleaned.Get("default"); ok {
		out.Default = v
	}
	if v, ok := getBool(cleaned, "nullable"); ok {
		out.Nullable = &v
	}

	switch typ {
	case TypeString:
		err = convertStringFields(cleaned, out)
	case TypeNumber, TypeInteger:
		err = convertNumberFields(cleaned, out)
	case TypeArray:
		// Items may carry a $ref, so work from the uncleaned object.
		err = c.convertArrayFields(obj, out)
	case TypeObject:
		err = c.convertObjectFields(obj, out)
	case TypeBoolean:
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// flattenUnion collapses oneOf and anyOf. When every variant is a string
// enum the enum values are merged; otherwise the first variant wins.
func (c *converter) flattenUnion(variants []json.RawMessage, parent *orderedmap.OrderedMap[string, json.RawMessage]) (*Schema, error) {
	if len(variants) == 0 {
		return nil, &ConversionError{Kind: ErrInvalidSchema, Detail: "empty oneOf array"}
	}

	merged := make([]string, 0, len(variants))
	allStringEnums := true
	for _, variant := range variants {
		vobj, err := decodeObject(variant)
		if err != nil {
			allStringEnums = false
			break
		}
		if t, ok := getString(vobj, "type"); !ok || t != "string" {
			allStringEnums = false
			break
		}
		values, ok := getArray(vobj, "enum")
		if !ok {
			allStringEnums = false
			break
		}
		for _, v := range values {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				allStringEnums = false
				break
			}
			merged = append(merged, s)
		}
		if !allStringEnums {
			break
		}
	}

	if allStringEnums && len(merged) > 0 {
		out := &Schema{Type: TypeString, Format: "enum", Enum: merged}
		if desc, ok := getString(parent, "description"); ok {
			out.Description = desc
		}
		return out, nil
	}

	slog.Debug("schema union collapsed to first variant", "variants", len(variants))
	return c.convert(variants[0])
}

// flattenAllOf picks the first concrete entry. Merging arbitrary allOf
// members is not attempted.
func (c *converter) flattenAllOf(entries []json.RawMessage) (*Schema, error) {
	if len(entries) == 0 {
		return nil, &ConversionError{Kind: ErrInvalidSchema, Detail: "empty allOf array"}
	}
	if len(entries) == 1 {
		return c.convert(entries[0])
	}
	for _, entry := range entries {
		eobj, err := decodeObject(entry)
		if err != nil {
			continue
		}
		if _, ok := eobj.Get("$ref"); !ok {
			slog.Debug("allOf reduced to first concrete entry", "entries", len(entries))
			return c.convert(entry)
		}
	}
	return c.convert(entries[0])
}

func typeFromName(name string) (Type, error) {
	switch name {
	case "string":
		return TypeString, nil
	case "number":
		return TypeNumber, nil
	case "integer":
		return TypeInteger, nil
	case "boolean":
		return TypeBoolean, nil
	case "array":
		return TypeArray, nil
	case "object":
		return TypeObject, nil
	}
	return "", &ConversionError{Kind: ErrUnsupportedType, Detail: name}
}

func determineType(obj *orderedmap.OrderedMap[string, json.RawMessage]) (Type, error) {
	if raw, ok := obj.Get("type"); ok {
		var name string
		if err := json.Unmarshal(raw, &name); err == nil {
			if name == "null" {
				return "", &ConversionError{Kind: ErrUnsupportedType, Detail: "null type not directly supported"}
			}
			return typeFromName(name)
		}

		var names []string
		if err := json.Unmarshal(raw, &names); err == nil {
			// Union types such as ["string", "null"] collapse to the
			// sole non-null entry.
			nonNull := names[:0]
			for _, n := range names {
				if n != "null" {
					nonNull = append(nonNull, n)
				}
			}
			if len(nonNull) == 1 {
				return typeFromName(nonNull[0])
			}
			return "", &ConversionError{Kind: ErrUnsupportedType, Detail: "multiple non-null types not supported"}
		}

		return "", &ConversionError{Kind: ErrInvalidSchema, Detail: "type must be string or array"}
	}

	if _, ok := obj.Get("properties"); ok {
		return TypeObject, nil
	}
	if _, ok := obj.Get("additionalProperties"); ok {
		return TypeObject, nil
	}
	if _, ok := obj.Get("items"); ok {
		return TypeArray, nil
	}
	if _, ok := obj.Get("enum"); ok {
		return TypeString, nil
	}
	if obj.Len() == 0 {
		return "", &ConversionError{Kind: ErrInvalidSchema, Detail: "empty schema after cleaning, possibly an unresolved $ref"}
	}
	return "", &ConversionError{Kind: ErrMissingField, Detail: "type"}
}

func convertStringFields(obj *orderedmap.OrderedMap[string, json.RawMessage], out *Schema) error {
	if format, ok := getString(obj, "format"); ok {
		switch format {
		case "date-time", "enum":
			out.Format = format
		}
	}

	if values, ok := getArray(obj, "enum"); ok {
		strs := make([]string, 0, len(values))
		for _, v := range values {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return &ConversionError{Kind: ErrInvalidSchema, Detail: "enum values must be strings"}
			}
			strs = append(strs, s)
		}
		out.Enum = strs
		out.Format = "enum"
	}

	if v, ok := getUint(obj, "minLength"); ok {
		out.MinLength = strconv.FormatUint(v, 10)
	}
	if v, ok := getUint(obj, "maxLength"); ok {
		out.MaxLength = strconv.FormatUint(v, 10)
	}
	if v, ok := getString(obj, "pattern"); ok {
		out.Pattern = v
	}
	return nil
}

func convertNumberFields(obj *orderedmap.OrderedMap[string, json.RawMessage], out *Schema) error {
	if format, ok := getString(obj, "format"); ok {
		switch {
		case (format == "float" || format == "double") && out.Type == TypeNumber:
			out.Format = format
		case (format == "int32" || format == "int64") && out.Type == TypeInteger:
			out.Format = format
		}
	}

	if v, ok := getFloat(obj, "minimum"); ok {
		out.Minimum = &v
	}
	if v, ok := getFloat(obj, "maximum"); ok {
		out.Maximum = &v
	}
	return nil
}

func (c *converter) convertArrayFields(obj *orderedmap.OrderedMap[string, json.RawMessage], out *Schema) error {
	if items, ok := obj.Get("items"); ok {
		converted, err := c.convert(items)
		if err != nil {
			return err
		}
		out.Items = converted
	}

	if v, ok := getUint(obj, "minItems"); ok {
		out.MinItems = strconv.FormatUint(v, 10)
	}
	if v, ok := getUint(obj, "maxItems"); ok {
		out.MaxItems = strconv.FormatUint(v, 10)
	}
	return nil
}

func (c *converter) convertObjectFields(obj *orderedmap.OrderedMap[string, json.RawMessage], out *Schema) error {
	if raw, ok := obj.Get("properties"); ok {
		props, err := decodeObject(raw)
		if err != nil {
			return &ConversionError{Kind: ErrInvalidSchema, Detail: "properties must be an object"}
		}
		converted := orderedmap.New[string, *Schema]()
		for pair := props.Oldest(); pair != nil; pair = pair.Next() {
			sub, err := c.convert(pair.Value)
			if err != nil {
				return err
			}
			converted.Set(pair.Key, sub)
		}
		out.Properties = converted
	}

	if values, ok := getArray(obj, "required"); ok {
		strs := make([]string, 0, len(values))
		for _, v := range values {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return &ConversionError{Kind: ErrInvalidSchema, Detail: "required field names must be strings"}
			}
			strs = append(strs, s)
		}
		out.Required = strs
	}

	if v, ok := getUint(obj, "minProperties"); ok {
		out.MinProperties = strconv.FormatUint(v, 10)
	}
	if v, ok := getUint(obj, "maxProperties"); ok {
		out.MaxProperties = strconv.FormatUint(v, 10)
	}
	return nil
}
