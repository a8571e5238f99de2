//go:build unit || e2e

package testutil

// Field sets a key in a DtoMap, or removes it when value is nil so required
// field validation can be exercised.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
