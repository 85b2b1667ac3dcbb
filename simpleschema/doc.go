// Package simpleschema reduces full JSON Schema documents to the flat
// subset that restrictive structured-output backends accept.
//
// The converter resolves local $ref pointers against $defs and definitions,
// collapses oneOf/anyOf/allOf, strips $-prefixed bookkeeping fields, and
// projects per-type constraints onto a single Schema node type. Property
// order from the source document is preserved so the reduced schema
// serializes deterministically.
//
// Use Convert for an existing schema document, or For to derive one from a
// Go type:
//
//	schema, err := simpleschema.For[MyResult]()
//	if err != nil {
//		return err
//	}
//	payload, _ := json.Marshal(schema)
package simpleschema
