//go:build unit

package testutil

// Field mutates (or deletes, when value is nil) a key in a DTO map.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
