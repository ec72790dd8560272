package roster

import "strings"

// Filter predicates compose conjunctively: a record matches only when every
// supplied filter matches. An empty filter value means "no narrowing" and
// matches everything, so callers can pass query parameters through directly.

// ContainsFold reports whether value contains substr, ignoring case.
// Used for free-text fields (names, aliases, notes).
func ContainsFold(value, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(substr))
}

// EqualFold reports whether value equals want, ignoring case.
// Used for categorical fields (cell blocks, departments, incident types).
func EqualFold(value, want string) bool {
	if want == "" {
		return true
	}
	return strings.EqualFold(value, want)
}

// AnyContainsFold reports whether any element of values contains substr,
// ignoring case. Used for list fields such as diagnosed disorders.
func AnyContainsFold(values []string, substr string) bool {
	if substr == "" {
		return true
	}
	for _, v := range values {
		if ContainsFold(v, substr) {
			return true
		}
	}
	return false
}

// InRange reports whether v lies within the optional bounds. A nil bound is
// open on that side.
func InRange(v int, min, max *int) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

// Page applies offset and limit slicing to records and returns the page
// together with the total count before slicing. A negative offset is treated
// as 0; a non-positive limit falls back to defaultLimit.
func Page[T any](items []T, offset, limit, defaultLimit int) ([]T, int) {
	total := len(items)

	start := offset
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}

	if limit <= 0 {
		limit = defaultLimit
	}

	end := start + limit
	if end > total {
		end = total
	}

	return items[start:end], total
}
