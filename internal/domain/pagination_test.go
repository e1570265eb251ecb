package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"propview-backend/internal/domain"
)

func TestPaginationParams_Validate(t *testing.T) {
	params := domain.PaginationParams{Page: 0, PageSize: -5}
	params.Validate()
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.PageSize)

	params = domain.PaginationParams{Page: 3, PageSize: 500}
	params.Validate()
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 100, params.PageSize)
}

func TestPaginationParams_Offset(t *testing.T) {
	params := domain.PaginationParams{Page: 3, PageSize: 25}
	assert.Equal(t, 50, params.Offset())
}

func TestNewPaginatedResponse(t *testing.T) {
	data := []string{"a", "b", "c"}

	resp := domain.NewPaginatedResponse(data, 2, 3, 7)

	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, int64(7), resp.TotalItems)
	assert.True(t, resp.HasNext)
	assert.True(t, resp.HasPrev)

	last := domain.NewPaginatedResponse(data, 3, 3, 7)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)
}
