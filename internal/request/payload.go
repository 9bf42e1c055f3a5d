package request

// BuildPayload copies the allowed fields out of body into a fresh
// payload and stamps the authenticated caller's userId, overriding
// whatever the body claimed. Only truthy values are copied: a field
// submitted as null, "", 0, or false is dropped rather than persisted.
// That mirrors the API's long-standing update semantics — clients clear
// a field by dedicated means (folder delete cascade), never by sending
// a zero value. Empty arrays are kept; emptiness is meaningful for
// `tags`.
func BuildPayload(allowed []string, body map[string]any, userID string) map[string]any {
	payload := map[string]any{"userId": userID}
	for _, field := range allowed {
		value, ok := body[field]
		if ok && truthy(value) {
			payload[field] = value
		}
	}
	return payload
}

// truthy reports whether a decoded JSON value is truthy in the
// JavaScript sense. Arrays and objects are always truthy, including
// empty ones.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	default:
		return true
	}
}
