package question

import (
	"math"
	"strconv"
)

// DefaultPageSize is the number of questions per page.
const DefaultPageSize = 10

// ParsePage reads a 1-based page number. Absent, malformed and
// non-positive values all mean page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Offset returns the index of the first item on page. ok is false when the
// offset does not fit in an int, which callers treat as past the end.
func Offset(page, size int) (offset int, ok bool) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if page-1 > math.MaxInt/size {
		return 0, false
	}
	return (page - 1) * size, true
}

// Paginate returns items[start:start+size] for the requested page, or an
// empty slice when the page starts past the end.
func Paginate[T any](page int, items []T, size int) []T {
	if size <= 0 {
		size = DefaultPageSize
	}
	start, ok := Offset(page, size)
	if !ok || start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
