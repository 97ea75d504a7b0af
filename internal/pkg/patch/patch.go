package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalescePtr keeps the current pointer unless a replacement is supplied.
func CoalescePtr[T any](replacement, current *T) *T {
	if replacement != nil {
		return replacement
	}
	return current
}
