package service

// Helpers for reading values out of guard-validated payloads. By the
// time a payload reaches a service the request pipeline has already
// type-checked everything, so these do best-effort coercion rather
// than validation.

func stringField(payload map[string]any, key string) (string, bool) {
	value, ok := payload[key]
	if !ok {
		return "", false
	}
	s, isString := value.(string)
	return s, isString
}

func documentField(payload map[string]any, key string) (map[string]any, bool) {
	value, ok := payload[key]
	if !ok {
		return nil, false
	}
	doc, isMap := value.(map[string]any)
	return doc, isMap
}

func stringsField(payload map[string]any, key string) ([]string, bool) {
	value, ok := payload[key]
	if !ok {
		return nil, false
	}
	elements, isSlice := value.([]any)
	if !isSlice {
		return nil, false
	}
	out := make([]string, 0, len(elements))
	for _, element := range elements {
		s, isString := element.(string)
		if !isString {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
