package domain

// ManifestState describes how loading a manifest file went.
type ManifestState int

const (
	// ManifestLoaded means the file was read and parsed successfully.
	ManifestLoaded ManifestState = iota
	// ManifestAbsent means the file does not exist.
	ManifestAbsent
	// ManifestMalformed means the file exists but is not valid YAML.
	ManifestMalformed
)

// Manifest is a parsed Kubernetes manifest as a generic document, or one of
// the two sentinel states for a missing or unparseable file. Manifests are
// read-only once constructed.
type Manifest struct {
	State      ManifestState
	Doc        map[string]any
	ParseError string
}

// LoadedManifest wraps a parsed document.
func LoadedManifest(doc map[string]any) Manifest {
	return Manifest{State: ManifestLoaded, Doc: doc}
}

// AbsentManifest marks a missing file.
func AbsentManifest() Manifest {
	return Manifest{State: ManifestAbsent}
}

// MalformedManifest carries the parse error verbatim.
func MalformedManifest(errMsg string) Manifest {
	return Manifest{State: ManifestMalformed, ParseError: errMsg}
}

// ValueAt walks nested mappings and returns the value at the key path, or
// nil if any step is missing or not a mapping. It never panics.
func ValueAt(doc map[string]any, keys ...string) any {
	if len(keys) == 0 {
		return doc
	}
	current := doc
	for i, key := range keys {
		v, ok := current[key]
		if !ok {
			return nil
		}
		if i == len(keys)-1 {
			return v
		}
		current = AsMap(v)
		if current == nil {
			return nil
		}
	}
	return nil
}

// MapAt returns the mapping at the key path, or an empty map when the path
// is missing or holds a non-mapping value.
func MapAt(doc map[string]any, keys ...string) map[string]any {
	if m := AsMap(ValueAt(doc, keys...)); m != nil {
		return m
	}
	return map[string]any{}
}

// SliceAt returns the sequence at the key path, or nil when the path is
// missing or holds a non-sequence value.
func SliceAt(doc map[string]any, keys ...string) []any {
	if s, ok := ValueAt(doc, keys...).([]any); ok {
		return s
	}
	return nil
}

// StringAt returns the string at the key path, or "" for anything else.
func StringAt(doc map[string]any, keys ...string) string {
	if s, ok := ValueAt(doc, keys...).(string); ok {
		return s
	}
	return ""
}

// IntAt returns the integer at the key path, or 0 for anything else.
// YAML integers decode as int, but int64 and float64 show up for large or
// re-marshaled documents, so those are accepted too.
func IntAt(doc map[string]any, keys ...string) int {
	switch v := ValueAt(doc, keys...).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// AsMap converts a generic value to a string-keyed mapping, or nil.
func AsMap(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case map[any]any:
		// yaml.v2-style documents; normalize string keys.
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out
	default:
		return nil
	}
}

// Truthy reports whether a generic value counts as "set": non-empty strings,
// maps, and sequences, non-zero numbers, and true booleans.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	case map[string]any:
		return len(t) > 0
	case map[any]any:
		return len(t) > 0
	case []any:
		return len(t) > 0
	default:
		return true
	}
}
