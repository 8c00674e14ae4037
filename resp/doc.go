// Package resp provides standardized HTTP response helpers for building
// consistent JSON responses across services.
//
// All responses follow a standard structure:
//
//	{
//	  "code": 0,               // Business error code (0 = success)
//	  "message": "ok",         // Human-readable message
//	  "data": {...},           // Response payload (on success)
//	  "errors": {...}          // Error details (on failure)
//	}
//
// Success responses unwrap the payload to the top level:
//
//	resp.Success(w, userData)
//	resp.WithStatusCode(w, http.StatusCreated, newResource)
//	resp.Success(w, "Operation completed")
//
// Failures use pre-built exceptions carrying an ecode business code:
//
//	resp.Fail(w, resp.NotFound("user not found"))
//	resp.Fail(w, resp.InvalidParam("invalid query", validationErrors))
//
// Paginated list responses are written straight from a paging.Paginator:
//
//	resp.Paginated(w, paging.NewPaginator(movies, params.Page, params.PageSize))
//	// {"items": [...], "total": 132, "page": 2, "page_size": 25, "total_pages": 6}
package resp
