package conekta

// Metadata is the opaque value bag callers attach to resources. The engine
// round-trips arbitrary JSON-compatible values without imposing a schema;
// the typed accessors below cover the common top-level lookups. Nested
// values keep encoding/json's generic shapes (map[string]interface{},
// []interface{}, float64).
type Metadata map[string]interface{}

func (m Metadata) Bool(key string) (bool, bool) {
	v, ok := m[key].(bool)
	return v, ok
}

func (m Metadata) String(key string) (string, bool) {
	v, ok := m[key].(string)
	return v, ok
}

// Number returns a numeric value. JSON numbers decode as float64; callers
// needing integers convert on their side.
func (m Metadata) Number(key string) (float64, bool) {
	v, ok := m[key].(float64)
	return v, ok
}

func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
