package structure

import (
	"encoding/json"
	"fmt"
)

// Manifest is the decoded root manifest. Values keep their generic JSON
// shape (map[string]any, []any, string, float64, bool, nil).
type Manifest map[string]any

// ParseManifest decodes data as a JSON object.
func ParseManifest(data []byte) (Manifest, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedManifest, err)
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrManifestNotObject, jsonKind(doc))
	}
	return Manifest(obj), nil
}

// Has reports whether field is a top-level key, whatever its value.
func (m Manifest) Has(field string) bool {
	_, ok := m[field]
	return ok
}

// Object returns field as a JSON object. The second result is false when the
// field is absent or holds a non-object value.
func (m Manifest) Object(field string) (map[string]any, bool) {
	v, ok := m[field]
	if !ok {
		return nil, false
	}
	obj, ok := v.(map[string]any)
	return obj, ok
}

// jsonKind names the JSON type of a decoded value.
func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
