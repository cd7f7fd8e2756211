package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/listas-tarefas/task-manager/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// PaginationMeta is the pagination block rendered next to a page of items.
// From and To are 1-based positions of the first and last item shown, or 0
// when the page is empty.
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	From        int   `json:"from"`
	To          int   `json:"to"`
}

// NewPaginationParams normalizes a requested page for a fixed page size.
func NewPaginationParams(page, perPage int) PaginationParams {
	if page < constants.MinPage {
		page = constants.MinPage
	}
	if perPage < 1 {
		perPage = constants.TarefasPerPage
	}

	return PaginationParams{
		Page:   page,
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	}
}

// GetPaginationParams reads the page query parameter; the page size is fixed.
func GetPaginationParams(c *gin.Context, perPage int) PaginationParams {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = constants.MinPage
	}
	return NewPaginationParams(page, perPage)
}

// NewPaginationMeta describes a page holding count items out of total.
func NewPaginationMeta(params PaginationParams, total int64, count int) PaginationMeta {
	lastPage := int((total + int64(params.Limit) - 1) / int64(params.Limit))
	if lastPage < 1 {
		lastPage = 1
	}

	meta := PaginationMeta{
		CurrentPage: params.Page,
		LastPage:    lastPage,
		PerPage:     params.Limit,
		Total:       total,
	}
	if count > 0 {
		meta.From = params.Offset + 1
		meta.To = params.Offset + count
	}
	return meta
}
