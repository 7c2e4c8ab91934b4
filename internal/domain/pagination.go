package domain

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type PaginationParams struct {
	Page  int
	Limit int
}

func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type PaginatedResult[T any] struct {
	Items      []T
	Total      int64
	Pagination PaginationMeta
}

// ValidatePaginationParams never fails: non-positive values fall back to the
// defaults, the limit is capped at MaxLimit and the page is capped so Offset
// cannot overflow.
func ValidatePaginationParams(page, limit int) PaginationParams {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if maxPage := math.MaxInt/limit + 1; page > maxPage {
		page = maxPage
	}
	return PaginationParams{Page: page, Limit: limit}
}

func CalculatePagination(page, limit int, total int64) PaginationMeta {
	meta := PaginationMeta{Page: page, Limit: limit, Total: total}
	if limit > 0 {
		meta.TotalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return meta
}

// NewPaginatedResult fills in the meta block from the params used for the query.
func NewPaginatedResult[T any](items []T, total int64, params PaginationParams) PaginatedResult[T] {
	if items == nil {
		items = []T{}
	}
	return PaginatedResult[T]{
		Items:      items,
		Total:      total,
		Pagination: CalculatePagination(params.Page, params.Limit, total),
	}
}
