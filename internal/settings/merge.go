package settings

// Apply merges overlay onto base and returns a new map; neither input is
// mutated. A key present in overlay wins, including keys holding empty
// strings or zero values. Nested maps merge recursively; any other value is
// replaced wholesale.
//
// Reconciliation layers every settings section through this single function
// with the precedence remote > local cache > static default: the stronger
// layer is the overlay, the weaker layer the base, and Defaults() is always
// the terminal base. A missing nested object on either side is treated as an
// empty record, so arbitrarily sparse input merges cleanly.
func Apply(base, overlay map[string]any) map[string]any {
	result := make(map[string]any, len(base)+len(overlay))
	for key, val := range base {
		result[key] = cloneValue(val)
	}

	for key, overlayVal := range overlay {
		baseVal, exists := result[key]
		if !exists {
			result[key] = cloneValue(overlayVal)
			continue
		}

		overlayMap, overlayIsMap := overlayVal.(map[string]any)
		baseMap, baseIsMap := baseVal.(map[string]any)
		if overlayIsMap && baseIsMap {
			result[key] = Apply(baseMap, overlayMap)
		} else {
			result[key] = cloneValue(overlayVal)
		}
	}

	return result
}

func cloneValue(val any) any {
	switch v := val.(type) {
	case map[string]any:
		return cloneMap(v)
	case []any:
		return cloneSlice(v)
	default:
		return val
	}
}

func cloneMap(m map[string]any) map[string]any {
	clone := make(map[string]any, len(m))
	for k, v := range m {
		clone[k] = cloneValue(v)
	}
	return clone
}

func cloneSlice(s []any) []any {
	clone := make([]any, len(s))
	for i, v := range s {
		clone[i] = cloneValue(v)
	}
	return clone
}

// section returns the named nested object of data, or an empty record when
// the key is absent or holds a non-object value.
func section(data map[string]any, key string) map[string]any {
	if data == nil {
		return map[string]any{}
	}
	if m, ok := data[key].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}
