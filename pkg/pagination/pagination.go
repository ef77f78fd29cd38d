// Package pagination turns a requested page into an offset/limit window and
// the page-link strip shown under the dashboard table.
package pagination

import "math"

// DefaultPageSize is used when a non-positive page size is supplied.
const DefaultPageSize = 20

// neighbors is how many page links are shown on each side of the current page.
const neighbors = 2

// Page describes one page of a listing.
type Page struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Offset     int   `json:"offset"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	From       int64 `json:"from"`
	To         int64 `json:"to"`
	HasPrev    bool  `json:"hasPrev"`
	HasNext    bool  `json:"hasNext"`
	Window     []int `json:"window"`
}

// Offset returns the row offset for a 1-based page; page < 1 counts as 1.
// Offsets that would overflow saturate at math.MaxInt.
func Offset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (page - 1) * pageSize
}

// TotalPages is ceil(total/pageSize), zero for an empty listing.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 {
		return 0
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return int(math.Ceil(float64(total) / float64(pageSize)))
}

// Window returns the page numbers to link, centered on page and clamped to
// [1, totalPages].
func Window(page, totalPages int) []int {
	if totalPages <= 0 {
		return []int{}
	}
	start := max(1, page-neighbors)
	end := totalPages
	if page < totalPages-neighbors {
		end = page + neighbors
	}
	window := make([]int, 0, neighbors*2+1)
	for i := start; i <= end; i++ {
		window = append(window, i)
	}
	return window
}

// Calculate builds the full page description. A page past the last one is not
// an error; the caller simply gets no rows back for it (see PastEnd).
func Calculate(page, pageSize int, total int64) Page {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if total < 0 {
		total = 0
	}

	offset := Offset(page, pageSize)
	totalPages := TotalPages(total, pageSize)

	from, to := total, total
	if int64(offset) < total {
		from = int64(offset) + 1
		to = min(int64(offset)+int64(pageSize), total)
	}

	return Page{
		Page:       page,
		PageSize:   pageSize,
		Offset:     offset,
		Limit:      pageSize,
		Total:      total,
		TotalPages: totalPages,
		From:       from,
		To:         to,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
		Window:     Window(page, totalPages),
	}
}

// PastEnd reports whether the page lies beyond the last row, so no query for
// its rows is needed.
func (p Page) PastEnd() bool {
	return p.Page > p.TotalPages || int64(p.Offset) >= p.Total
}
