package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParamsClampsInputs(t *testing.T) {
	cases := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"zero page defaults to first", 0, 10, 1, 10},
		{"negative limit becomes unbounded", 3, -5, 3, 0},
		{"valid values pass through", 2, 25, 2, 25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := GetPaginationParams(tc.page, tc.limit)
			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantLimit, p.Limit)
		})
	}
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, PaginationParams{Page: 1, Limit: 20}.CalculateOffset())
	assert.Equal(t, 40, PaginationParams{Page: 3, Limit: 20}.CalculateOffset())
	assert.Equal(t, 0, PaginationParams{Page: 0, Limit: 20}.CalculateOffset())
}

func TestCalculateMeta(t *testing.T) {
	meta := CalculateMeta(101, 2, 20)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 20, meta.Limit)
	assert.Equal(t, int64(101), meta.TotalCount)
	assert.Equal(t, 6, meta.TotalPages)
}

func TestCalculateMetaUnbounded(t *testing.T) {
	meta := CalculateMeta(15, 4, 0)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 15, meta.Limit)
	assert.Equal(t, int64(15), meta.TotalCount)
	assert.Equal(t, 1, meta.TotalPages)
}
