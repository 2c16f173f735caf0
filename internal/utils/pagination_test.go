package utils

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/foodgram-dev/foodgram/internal/types"
	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T, target string) *gin.Context {
	t.Helper()

	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("GET", target, nil)
	return ctx
}

func TestGetPageParams(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantPage  int
		wantLimit int
	}{
		{
			name:      "defaults",
			target:    "/api/recipes",
			wantPage:  1,
			wantLimit: types.DefaultPageSize,
		},
		{
			name:      "explicit page and limit",
			target:    "/api/recipes?page=3&limit=10",
			wantPage:  3,
			wantLimit: 10,
		},
		{
			name:      "limit capped",
			target:    "/api/recipes?limit=10000",
			wantPage:  1,
			wantLimit: types.MaxPageSize,
		},
		{
			name:      "garbage values fall back to defaults",
			target:    "/api/recipes?page=abc&limit=-2",
			wantPage:  1,
			wantLimit: types.DefaultPageSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := GetPageParams(testContext(t, tt.target))

			if params.Page != tt.wantPage || params.Limit != tt.wantLimit {
				t.Errorf("GetPageParams() = %+v, want page %d limit %d", params, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestPageParamsOffset(t *testing.T) {
	params := PageParams{Page: 3, Limit: 6}

	if got := params.Offset(); got != 12 {
		t.Errorf("Offset() = %d, want 12", got)
	}
}

func TestPageLink(t *testing.T) {
	current, _ := url.Parse("/api/recipes?page=2&limit=6")
	params := PageParams{Page: 2, Limit: 6}

	next := PageLink(current, params, 20, 3)

	if next == nil {
		t.Fatal("PageLink() next = nil, want a link")
	}

	if *next != "/api/recipes?limit=6&page=3" {
		t.Errorf("PageLink() next = %q", *next)
	}

	previous := PageLink(current, params, 20, 1)

	if previous == nil || *previous != "/api/recipes?limit=6&page=1" {
		t.Errorf("PageLink() previous = %v", previous)
	}

	if beyond := PageLink(current, params, 20, 5); beyond != nil {
		t.Errorf("PageLink() past the result set = %q, want nil", *beyond)
	}

	if before := PageLink(current, params, 20, 0); before != nil {
		t.Errorf("PageLink() before page 1 = %q, want nil", *before)
	}
}

func TestPageLinkEmptyResultSet(t *testing.T) {
	current, _ := url.Parse("/api/users")
	params := PageParams{Page: 1, Limit: 6}

	if link := PageLink(current, params, 0, 2); link != nil {
		t.Errorf("PageLink() on empty set = %q, want nil", *link)
	}
}
