// Package pagination computes which page numbers a pagination bar shows.
//
// The window is the contiguous run of page numbers rendered as clickable
// controls. It is centred on the current page and slides to stay inside
// [1, totalPages], so near either end of the sequence the current page is
// no longer in the middle.
package pagination

import (
	"github.com/conneroisu/diary/internal/errors"
)

// Window returns the page numbers to display for currentPage out of
// totalPages when at most pageRange buttons fit in the bar.
//
// The result always lies within [1, totalPages], has at most
// min(pageRange, totalPages) entries and contains currentPage whenever
// currentPage itself is in range.
func Window(currentPage, totalPages, pageRange int) ([]int, error) {
	if totalPages <= 0 {
		return nil, errors.ErrInvalidArgument("totalPages", totalPages, "totalPages must be positive")
	}
	if pageRange <= 0 {
		return nil, errors.ErrInvalidArgument("pageRange", pageRange, "pageRange must be positive")
	}
	if currentPage <= 0 {
		return nil, errors.ErrInvalidArgument("currentPage", currentPage, "currentPage must be positive")
	}

	// A current page past the end shows the last window. Clamping first
	// keeps every sum below within [1, totalPages].
	if currentPage > totalPages {
		currentPage = totalPages
	}
	size := min(pageRange, totalPages)

	// An even size puts the current page just right of centre.
	start := currentPage - size/2
	if maxStart := totalPages - size + 1; start > maxStart {
		start = maxStart
	}
	if start < 1 {
		start = 1
	}

	pages := make([]int, size)
	for i := range pages {
		pages[i] = start + i
	}
	return pages, nil
}

// TotalPages returns how many pages totalItems fill at pageSize per page.
// An empty list still has one page.
func TotalPages(totalItems, pageSize int) int {
	if pageSize <= 0 || totalItems <= 0 {
		return 1
	}
	return (totalItems-1)/pageSize + 1
}

// Bounds returns the [lo, hi) slice bounds of page within totalItems.
func Bounds(page, pageSize, totalItems int) (int, int) {
	if page < 1 || pageSize <= 0 {
		return 0, 0
	}
	if page-1 > totalItems/pageSize {
		return totalItems, totalItems
	}
	lo := min((page-1)*pageSize, totalItems)
	return lo, lo + min(pageSize, totalItems-lo)
}
