package pagination_test

import (
	"math"
	"testing"

	"go-talent-intake/pkg/pagination"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	t.Run("Should clamp page below one", func(t *testing.T) {
		p := pagination.Calculate(-3, 20, 45)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 0, p.Offset)
		assert.False(t, p.HasPrev)
	})

	t.Run("Should compute offset and total pages", func(t *testing.T) {
		p := pagination.Calculate(3, 20, 45)
		assert.Equal(t, 40, p.Offset)
		assert.Equal(t, 20, p.Limit)
		assert.Equal(t, 3, p.TotalPages)
		assert.Equal(t, int64(41), p.From)
		assert.Equal(t, int64(45), p.To)
		assert.True(t, p.HasPrev)
		assert.False(t, p.HasNext)
	})

	t.Run("Should report zero pages for an empty listing", func(t *testing.T) {
		p := pagination.Calculate(1, 20, 0)
		assert.Equal(t, 0, p.TotalPages)
		assert.Equal(t, int64(0), p.From)
		assert.Equal(t, int64(0), p.To)
		assert.Empty(t, p.Window)
		assert.False(t, p.HasNext)
	})

	t.Run("Should accept a page past the last one", func(t *testing.T) {
		p := pagination.Calculate(9, 20, 45)
		assert.Equal(t, 160, p.Offset)
		assert.Equal(t, 3, p.TotalPages)
		assert.Equal(t, int64(45), p.From)
		assert.Equal(t, int64(45), p.To)
		assert.Equal(t, []int{}, p.Window)
	})

	t.Run("Should saturate the offset for a huge page number", func(t *testing.T) {
		p := pagination.Calculate(math.MaxInt, 20, 45)
		assert.Equal(t, math.MaxInt, p.Page)
		assert.Equal(t, math.MaxInt, p.Offset)
		assert.Equal(t, 3, p.TotalPages)
		assert.Equal(t, int64(45), p.From)
		assert.Equal(t, int64(45), p.To)
		assert.Equal(t, []int{}, p.Window)
		assert.False(t, p.HasNext)
		assert.True(t, p.PastEnd())
	})

	t.Run("Should only be past the end beyond the last page", func(t *testing.T) {
		assert.False(t, pagination.Calculate(3, 20, 45).PastEnd())
		assert.True(t, pagination.Calculate(4, 20, 45).PastEnd())
		assert.True(t, pagination.Calculate(1, 20, 0).PastEnd())
	})

	t.Run("Should fall back to the default page size", func(t *testing.T) {
		p := pagination.Calculate(2, 0, 100)
		assert.Equal(t, pagination.DefaultPageSize, p.PageSize)
		assert.Equal(t, 20, p.Offset)
	})
}

func TestWindow(t *testing.T) {
	cases := []struct {
		name       string
		page       int
		totalPages int
		want       []int
	}{
		{"centered", 5, 10, []int{3, 4, 5, 6, 7}},
		{"left edge", 1, 10, []int{1, 2, 3}},
		{"right edge", 10, 10, []int{8, 9, 10}},
		{"fewer pages than window", 2, 2, []int{1, 2}},
		{"single page", 1, 1, []int{1}},
		{"huge page", math.MaxInt, 3, []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pagination.Window(tc.page, tc.totalPages))
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, pagination.TotalPages(0, 20))
	assert.Equal(t, 1, pagination.TotalPages(1, 20))
	assert.Equal(t, 1, pagination.TotalPages(20, 20))
	assert.Equal(t, 2, pagination.TotalPages(21, 20))
}
