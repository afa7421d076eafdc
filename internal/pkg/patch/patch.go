package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback.
// Package edits arrive as optional fields; absent fields keep the stored value.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
