package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// PaginationParams represents pagination parameters
type PaginationParams struct {
	Page     int
	PageSize int
	Offset   int
}

// GetPaginationParams extracts pagination parameters from request
func GetPaginationParams(c echo.Context) PaginationParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("limit"))

	if page <= 0 {
		page = 1
	}

	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20 // Default page size
	}

	offset := (page - 1) * pageSize

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Offset:   offset,
	}
}

// CursorParams carries cursor pagination for Firestore-backed lists. Cursor
// is the document ID of the last item of the previous page, threaded through
// each call explicitly rather than held by the caller.
type CursorParams struct {
	PageSize int
	Cursor   string
}

func GetCursorParams(c echo.Context) CursorParams {
	pageSize, _ := strconv.Atoi(c.QueryParam("limit"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	return CursorParams{
		PageSize: pageSize,
		Cursor:   c.QueryParam("cursor"),
	}
}
