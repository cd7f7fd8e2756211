package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPaginationParams(t *testing.T) {
	params := NewPaginationParams(3, 10)
	assert.Equal(t, PaginationParams{Page: 3, Limit: 10, Offset: 20}, params)

	params = NewPaginationParams(0, 10)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 0, params.Offset)

	params = NewPaginationParams(-4, 0)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.Limit)
}

func TestGetPaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query string
		page  int
	}{
		{"", 1},
		{"page=2", 2},
		{"page=abc", 1},
		{"page=-1", 1},
	}

	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/tarefas?"+tt.query, nil)

		params := GetPaginationParams(c, 10)
		assert.Equal(t, tt.page, params.Page, tt.query)
		assert.Equal(t, 10, params.Limit, tt.query)
	}
}

func TestNewPaginationMeta(t *testing.T) {
	meta := NewPaginationMeta(NewPaginationParams(1, 10), 25, 10)
	assert.Equal(t, PaginationMeta{CurrentPage: 1, LastPage: 3, PerPage: 10, Total: 25, From: 1, To: 10}, meta)

	meta = NewPaginationMeta(NewPaginationParams(3, 10), 25, 5)
	assert.Equal(t, 21, meta.From)
	assert.Equal(t, 25, meta.To)
	assert.Equal(t, 3, meta.LastPage)

	meta = NewPaginationMeta(NewPaginationParams(1, 10), 0, 0)
	assert.Equal(t, 1, meta.LastPage)
	assert.Equal(t, 0, meta.From)
	assert.Equal(t, 0, meta.To)

	// Past the last page
	meta = NewPaginationMeta(NewPaginationParams(9, 10), 25, 0)
	assert.Equal(t, 9, meta.CurrentPage)
	assert.Equal(t, 0, meta.From)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("")
	assert.NoError(t, err)
	assert.Nil(t, d)

	d, err = ParseDate("2025-03-14")
	assert.NoError(t, err)
	assert.Equal(t, "2025-03-14", d.Format(DateLayout))

	d, err = ParseDate("2025-03-14T23:30:00-03:00")
	assert.NoError(t, err)
	assert.Equal(t, "2025-03-14", d.Format(DateLayout))

	_, err = ParseDate("14/03/2025")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("2025-02-30")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
