//go:build unit || e2e

package testutil

// Field sets key on a DtoMap result; a nil value removes the key so the
// request omits the field entirely.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// Null sends an explicit JSON null, unlike Field(key, nil).
func Null(key string) func(m map[string]any) {
	return func(m map[string]any) {
		m[key] = nil
	}
}
