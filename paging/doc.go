// Package paging provides pagination utilities for web APIs.
//
// Two models are supported:
//
//   - Page-number pagination over a fully materialized collection, driven by
//     an absolute 1-based page and a page size (Paginator). This is the model
//     used by list endpoints that fetch their working set up front.
//   - Cursor pagination driven by an opaque continuation token, for large or
//     frequently mutating datasets where deep offsets degrade (Paginate).
//
// # Page-Number Pagination
//
// Construct a Paginator from an in-memory slice and page coordinates:
//
//	p := paging.NewPaginator(movies, 2, 25)
//	// p.Items       -> movies[25:50]
//	// p.Total       -> len(movies)
//	// p.TotalPages  -> ceil(len(movies)/25)
//	// p.HasNext(), p.HasPrev()
//
// The struct marshals directly into the standard paginated payload:
//
//	{
//	  "items": [...],
//	  "total": 132,
//	  "page": 2,
//	  "page_size": 25,
//	  "total_pages": 6
//	}
//
// Request parameters are carried by Params, validated at the boundary
// (page >= 1, 1 <= page_size <= 100) and normalized with Normalize.
//
// # Cursor Pagination
//
// Execute a paginated query through a PagingFunc:
//
//	result, err := paging.Paginate(params, func(cursor string, limit int) ([]Item, int, string, error) {
//	    return queryItems(cursor, limit)
//	})
//	// Returns: {items: [...], next: "...", has_next: true}
//
// Cursor encoding/decoding is handled by EncodeCursor and DecodeCursor.
//
// # Best Practices
//
//   - Validate page parameters at the request boundary, not in handlers
//   - Set reasonable page size defaults and caps (20/100 here)
//   - Prefer cursors for feeds and very large tables
//   - Return empty item arrays, never null, when a page is out of range
package paging
