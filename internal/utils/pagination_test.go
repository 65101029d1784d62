package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/orders?"+query, nil)
	return c
}

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected PaginationParams
	}{
		{
			name:  "defaults",
			query: "",
			expected: PaginationParams{
				Page: 1, PageSize: DefaultPageSize, Sort: "created_at", Order: "desc",
			},
		},
		{
			name:  "explicit values",
			query: "page=3&page_size=10&sort=final_price&order=asc&search=gmail",
			expected: PaginationParams{
				Page: 3, PageSize: 10, Sort: "final_price", Order: "asc", Search: "gmail",
			},
		},
		{
			name:  "page below one clamps",
			query: "page=0&page_size=0",
			expected: PaginationParams{
				Page: 1, PageSize: MinPageSize, Sort: "created_at", Order: "desc",
			},
		},
		{
			name:  "oversized page size clamps",
			query: "page_size=5000&order=sideways",
			expected: PaginationParams{
				Page: 1, PageSize: MaxPageSize, Sort: "created_at", Order: "desc",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := GetPaginationParams(paginationContext(t, tt.query))
			assert.Equal(t, tt.expected, *params)
		})
	}
}

func TestPaginationParams_GetSkip(t *testing.T) {
	params := &PaginationParams{Page: 3, PageSize: 20}
	assert.Equal(t, 40, params.GetSkip())
	assert.Equal(t, 20, params.GetLimit())
}

func TestCreatePaginationMeta(t *testing.T) {
	params := &PaginationParams{Page: 2, PageSize: 20}

	meta := CreatePaginationMeta(params, 45)
	assert.Equal(t, int64(45), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrevious)

	last := CreatePaginationMeta(&PaginationParams{Page: 3, PageSize: 20}, 45)
	assert.False(t, last.HasNext)
}
