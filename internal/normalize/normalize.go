// Package normalize coerces the shape-shifting JSON fields coming out of
// the schema-less profile columns into canonical native values. Every
// function here is total: undecodable input degrades to the documented
// default, it never returns an error and never mutates its input.
package normalize

import "encoding/json"

// Shape is the expected container type of a flexible field.
type Shape int

const (
	StringList Shape = iota // JSON array of strings
	ObjectList              // JSON array of objects
	Object                  // single JSON object
)

// FieldSpec names a flexible field and the shape it must end up in.
type FieldSpec struct {
	Name  string
	Shape Shape
}

// Record returns a copy of raw where every spec'd field holds a canonical
// native value of its declared shape. Fields not listed in the spec pass
// through unchanged. Absent, null or undecodable fields become the shape's
// empty default.
func Record(raw map[string]interface{}, spec []FieldSpec) map[string]interface{} {
	out := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		out[k] = v
	}

	for _, field := range spec {
		v := raw[field.Name]
		switch field.Shape {
		case StringList:
			out[field.Name] = Strings(v)
		case ObjectList:
			out[field.Name] = Objects(v)
		case Object:
			out[field.Name] = Map(v)
		}
	}

	return out
}

// Strings coerces v into a string slice. Accepts native slices,
// JSON-encoded strings and raw JSON bytes; anything else yields the
// empty slice.
func Strings(v interface{}) []string {
	out := []string{}
	if v == nil {
		return out
	}

	switch t := v.(type) {
	case []string:
		return append(out, t...)
	case []interface{}:
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		var decoded []string
		if Decode(v, &decoded) && decoded != nil {
			return decoded
		}
		return out
	}
}

// Objects coerces v into a slice of generic objects.
func Objects(v interface{}) []map[string]interface{} {
	out := []map[string]interface{}{}
	if v == nil {
		return out
	}

	switch t := v.(type) {
	case []map[string]interface{}:
		return append(out, t...)
	case []interface{}:
		for _, item := range t {
			if m, ok := item.(map[string]interface{}); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		var decoded []map[string]interface{}
		if Decode(v, &decoded) && decoded != nil {
			return decoded
		}
		return out
	}
}

// Map coerces v into a single generic object.
func Map(v interface{}) map[string]interface{} {
	if v == nil {
		return map[string]interface{}{}
	}

	if m, ok := v.(map[string]interface{}); ok {
		out := make(map[string]interface{}, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out
	}

	var decoded map[string]interface{}
	if Decode(v, &decoded) && decoded != nil {
		return decoded
	}
	return map[string]interface{}{}
}

// Decode unmarshals v into out, tolerating the forms the storage layer
// produces: raw JSON bytes, JSON-encoded strings (including strings that
// were encoded twice) and already-native values. Returns false when
// nothing usable could be decoded; out is only written on success.
func Decode(v interface{}, out interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case []byte:
		return decodeBytes(t, out)
	case json.RawMessage:
		return decodeBytes(t, out)
	case string:
		return decodeBytes([]byte(t), out)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return false
		}
		return json.Unmarshal(b, out) == nil
	}
}

func decodeBytes(b []byte, out interface{}) bool {
	if len(b) == 0 {
		return false
	}
	if json.Unmarshal(b, out) == nil {
		return true
	}

	// The storage layer sometimes hands back a JSON string whose contents
	// are the actual document.
	var s string
	if json.Unmarshal(b, &s) == nil {
		return json.Unmarshal([]byte(s), out) == nil
	}
	return false
}
