package pagination

// Result wraps one page of an in-memory collection.
type Result[T any] struct {
	Items      []T  `json:"items"`
	TotalCount int  `json:"total_count"`
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// TotalPages computes the page count for a collection. A collection always has
// at least one page, even when it is empty.
func TotalPages(totalCount, perPage int) int {
	if perPage < 1 {
		perPage = 1
	}
	pages := totalCount / perPage
	if totalCount%perPage > 0 {
		pages++
	}
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Clamp forces page into the valid range [1, totalPages].
func Clamp(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate slices one page out of an in-memory collection. The requested page
// is clamped into range, so callers always get a valid (possibly empty) slice.
func Paginate[T any](items []T, page, perPage int) Result[T] {
	if perPage < 1 {
		perPage = 1
	}

	totalCount := len(items)
	totalPages := TotalPages(totalCount, perPage)
	page = Clamp(page, totalPages)

	start := (page - 1) * perPage
	if start > totalCount {
		start = totalCount
	}
	end := start + perPage
	if end > totalCount {
		end = totalCount
	}

	return Result[T]{
		Items:      items[start:end],
		TotalCount: totalCount,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
