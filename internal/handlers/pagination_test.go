package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPageParams(t *testing.T) {
	cases := []struct {
		query string
		page  int
		size  int
	}{
		{"", 1, DefaultPageSize},
		{"page=3&pageSize=10", 3, 10},
		{"page=-1&pageSize=0", 1, DefaultPageSize},
		{"page=abc&pageSize=500", 1, MaxPageSize},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/units?"+tc.query, nil)

		page, size := pageParams(c)
		assert.Equal(t, tc.page, page, tc.query)
		assert.Equal(t, tc.size, size, tc.query)
	}
}

func TestCreatePaginatedResponse_TotalPages(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/units?page=2&pageSize=10", nil)

	resp := CreatePaginatedResponse(c, []string{}, 25)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 2, resp.CurrentPage)
	assert.Equal(t, int64(25), resp.TotalRows)

	// Пустая выборка — ноль страниц, а не одна
	resp = CreatePaginatedResponse(c, []string{}, 0)
	assert.Equal(t, 0, resp.TotalPages)
}
