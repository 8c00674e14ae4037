package resp

import (
	"net/http"

	"github.com/aimarket/mcore/paging"
)

// Paginated writes a paginated success response. The payload carries the
// standard five pagination fields: items, total, page, page_size, total_pages.
func Paginated[T any](w http.ResponseWriter, p *paging.Paginator[T]) {
	Success(w, p)
}

// PaginatedSlice paginates a fully materialized slice and writes the result
// in one step.
func PaginatedSlice[T any](w http.ResponseWriter, items []T, params paging.Params) {
	params = paging.Normalize(params)
	Paginated(w, paging.NewPaginator(items, params.Page, params.PageSize))
}
