package pagination

// Page is the uniform envelope wrapping every list endpoint response.
type Page[T any] struct {
	Page            int   `json:"page"`
	Limit           int   `json:"limit"`
	TotalItems      int64 `json:"totalItems"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
	Data            []T   `json:"data"`
}

// New builds the envelope. TotalPages is at least 1 even for empty sets.
func New[T any](page, limit int, totalItems int64, data []T) Page[T] {
	totalPages := 1
	if totalItems > 0 {
		totalPages = int((totalItems + int64(limit) - 1) / int64(limit))
	}
	if data == nil {
		data = []T{}
	}
	return Page[T]{
		Page:            page,
		Limit:           limit,
		TotalItems:      totalItems,
		TotalPages:      totalPages,
		HasNextPage:     totalPages > 1 && page < totalPages,
		HasPreviousPage: page > 1,
		Data:            data,
	}
}

// Remap returns the same envelope carrying data converted to another type.
func Remap[T, U any](p Page[T], data []U) Page[U] {
	if data == nil {
		data = []U{}
	}
	return Page[U]{
		Page:            p.Page,
		Limit:           p.Limit,
		TotalItems:      p.TotalItems,
		TotalPages:      p.TotalPages,
		HasNextPage:     p.HasNextPage,
		HasPreviousPage: p.HasPreviousPage,
		Data:            data,
	}
}

// Normalize applies the shared defaults: page 1, limit 10.
func Normalize(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

// Offset converts the 1-based page into a row offset.
func Offset(page, limit int) int {
	return (page - 1) * limit
}
