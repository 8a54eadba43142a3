package tsconfig

// deepMerge returns a new object with override laid over base. Nested objects
// are merged key by key; every other value in override, arrays included,
// replaces the one in base. Neither argument is modified.
func deepMerge(base, override Object) Object {
	out := make(Object, len(base)+len(override))
	for key, value := range base {
		out[key] = cloneValue(value)
	}

	for key, value := range override {
		if src, ok := value.(map[string]any); ok {
			if dst, ok := out[key].(map[string]any); ok {
				out[key] = deepMerge(dst, src)
				continue
			}
		}
		out[key] = cloneValue(value)
	}

	return out
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return deepMerge(nil, v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
