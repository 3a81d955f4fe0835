package catalog

// Value helpers shared by the catalog, normalizer, and translation
// orchestrator. Section payloads are JSON-shaped (string, bool, number,
// map[string]any, []any), so a handful of type-class checks covers the
// whole domain.

// CloneMap deep-copies a JSON-shaped map.
func CloneMap(input map[string]any) map[string]any {
	if input == nil {
		return nil
	}
	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = CloneValue(value)
	}
	return out
}

// CloneSlice deep-copies a JSON-shaped slice.
func CloneSlice(input []any) []any {
	if input == nil {
		return nil
	}
	out := make([]any, len(input))
	for i, value := range input {
		out[i] = CloneValue(value)
	}
	return out
}

// CloneValue deep-copies a JSON-shaped value.
func CloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return CloneMap(typed)
	case []any:
		return CloneSlice(typed)
	default:
		return value
	}
}

// SameTypeClass reports whether candidate belongs to the same JSON type
// class as the reference value. Numbers are one class regardless of the Go
// representation, since decoded JSON yields float64 while authored defaults
// may use int.
func SameTypeClass(reference, candidate any) bool {
	switch reference.(type) {
	case string:
		_, ok := candidate.(string)
		return ok
	case bool:
		_, ok := candidate.(bool)
		return ok
	case map[string]any:
		_, ok := candidate.(map[string]any)
		return ok
	case []any:
		_, ok := candidate.([]any)
		return ok
	default:
		if isNumber(reference) {
			return isNumber(candidate)
		}
		return false
	}
}

// ZeroValue produces the safe-empty value for the type class of the
// reference: empty string, false, zero, empty list, or a recursively zeroed
// object. A nil reference zeroes to the empty string, the most common field
// type for section content.
func ZeroValue(reference any) any {
	switch typed := reference.(type) {
	case string:
		return ""
	case bool:
		return false
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[key] = ZeroValue(value)
		}
		return out
	case []any:
		return []any{}
	default:
		if isNumber(reference) {
			return float64(0)
		}
		return ""
	}
}

func isNumber(value any) bool {
	switch value.(type) {
	case int, int32, int64, float32, float64:
		return true
	default:
		return false
	}
}
