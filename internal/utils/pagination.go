package utils

import (
	"net/url"
	"strconv"

	"github.com/foodgram-dev/foodgram/internal/types"
	"github.com/gin-gonic/gin"
)

type PageParams struct {
	Page  int
	Limit int
}

func GetPageParams(ctx *gin.Context) PageParams {
	params := PageParams{Page: 1, Limit: types.DefaultPageSize}

	if page, err := strconv.Atoi(ctx.Query("page")); err == nil && page > 0 {
		params.Page = page
	}

	if limit, err := strconv.Atoi(ctx.Query("limit")); err == nil && limit > 0 {
		params.Limit = limit
		if params.Limit > types.MaxPageSize {
			params.Limit = types.MaxPageSize
		}
	}

	return params
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Paginated wraps one page of results in the count/next/previous envelope.
func Paginated(ctx *gin.Context, params PageParams, count int64, results interface{}) types.PaginatedResponse {
	return types.PaginatedResponse{
		Count:    count,
		Next:     PageLink(ctx.Request.URL, params, count, params.Page+1),
		Previous: PageLink(ctx.Request.URL, params, count, params.Page-1),
		Results:  results,
	}
}

// PageLink renders the URL for a neighboring page, or nil when that page
// would fall outside the result set.
func PageLink(current *url.URL, params PageParams, count int64, page int) *string {
	if page < 1 || int64(params.Limit)*int64(page-1) >= count {
		return nil
	}

	link := *current
	query := link.Query()
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(params.Limit))
	link.RawQuery = query.Encode()

	rendered := link.String()
	return &rendered
}
