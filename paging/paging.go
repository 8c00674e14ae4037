package paging

const (
	// DefaultPageSize is applied when no page size is given.
	DefaultPageSize = 20
	// MaxPageSize caps the page size accepted from requests.
	MaxPageSize = 100
)

// Params holds page-number pagination parameters bound from a request.
type Params struct {
	Page     int `json:"page" form:"page" validate:"omitempty,gte=1"`
	PageSize int `json:"page_size" form:"page_size" validate:"omitempty,gte=1,lte=100"`
}

// Normalize fills defaults and clamps the page size into the accepted range.
func Normalize(params Params) Params {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > MaxPageSize {
		params.PageSize = DefaultPageSize
	}
	return params
}

// Paginator computes the visible slice and page-count metadata for one page
// of a fully materialized collection. It is constructed per request, is
// immutable after construction, and its fields marshal directly into a
// paginated response payload.
type Paginator[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// NewPaginator slices items for the requested 1-based page. A page below 1 is
// clamped to 1 and a page size below 1 falls back to DefaultPageSize; callers
// binding request input should still validate Params upstream. A page beyond
// the last yields an empty slice.
func NewPaginator[T any](items []T, page, pageSize int) *Paginator[T] {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	// Comparing against totalPages first keeps the start multiplication from
	// overflowing on arbitrarily large page numbers.
	var start, end int
	if page > totalPages {
		start, end = total, total
	} else {
		start = (page - 1) * pageSize
		end = start + pageSize
		if end > total {
			end = total
		}
	}

	paged := make([]T, end-start)
	copy(paged, items[start:end])

	return &Paginator[T]{
		Items:      paged,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// HasNext reports whether a page exists after the current one.
func (p *Paginator[T]) HasNext() bool {
	return p.Page < p.TotalPages
}

// HasPrev reports whether a page exists before the current one.
func (p *Paginator[T]) HasPrev() bool {
	return p.Page > 1
}

// Offset returns the zero-based index of the first item on the current page,
// for callers pushing pagination down into a query layer.
func (p *Paginator[T]) Offset() int {
	return (p.Page - 1) * p.PageSize
}
