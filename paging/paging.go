// Package paging applies skip/limit windows to ordered result sets.
package paging

// Normalize clamps malformed pagination input instead of rejecting it.
// A negative skip becomes 0 and a non-positive limit means no cap (0).
func Normalize(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}
	return skip, limit
}

// Apply returns the window of items selected by skip and limit. The returned
// slice never aliases past the window, and is empty (not nil) when skip runs
// past the end.
func Apply[T any](items []T, skip, limit int) []T {
	skip, limit = Normalize(skip, limit)
	if skip >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && limit < end-skip {
		end = skip + limit
	}
	out := make([]T, end-skip)
	copy(out, items[skip:end])
	return out
}
