package utils

import (
	"math"
)

const DefaultPageSize = 10

type Pagination struct {
	Page       int
	PageSize   int
	Offset     int
	TotalPages int64
}

// Paginate normalizes the requested page and size and derives the row offset
// and total page count. Non-positive pages become 1 and non-positive sizes
// fall back to DefaultPageSize. A page past the last is allowed; it simply
// selects an empty slice of rows.
func Paginate(totalItems int64, page, pageSize int) Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	var totalPages int64
	if totalItems > 0 {
		totalPages = int64(math.Ceil(float64(totalItems) / float64(pageSize)))
	}

	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		Offset:     (page - 1) * pageSize,
		TotalPages: totalPages,
	}
}
