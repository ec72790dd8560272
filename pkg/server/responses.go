package server

// ListResponse is the envelope for list and search endpoints. Total counts
// matches before pagination; Items carries the requested page.
type ListResponse[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// listResponse pairs a page with its pre-pagination total.
func listResponse[T any](items []T, total, offset, limit int) ListResponse[T] {
	return ListResponse[T]{Items: items, Total: total, Offset: offset, Limit: limit}
}
