// Package paginate slices ordered in-memory lists into numbered pages.
package paginate

import (
	"strconv"

	"github.com/Natali-Skv/forum_board/internal/models"
	"github.com/Natali-Skv/forum_board/internal/tools/errors"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
	WindowWidth  = 3
)

// Limits bounds the page size a client may ask for.
type Limits struct {
	Default int
	Max     int
}

var DefaultLimits = Limits{Default: DefaultLimit, Max: MaxLimit}

type Page[T any] struct {
	Items []T `json:"items"`
	models.PageInfo
}

// TotalPages is ceil(n/size).
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Paginate returns page number page (1-indexed) of items. A page past the end is empty.
func Paginate[T any](items []T, page, size int) (Page[T], error) {
	if page < 1 || size < 1 {
		return Page[T]{}, errors.ErrInvalidPage
	}
	total := TotalPages(len(items), size)
	res := Page[T]{
		Items: []T{},
		PageInfo: models.PageInfo{
			Page:       page,
			Limit:      size,
			Total:      len(items),
			TotalPages: total,
			Pages:      Window(page, total, WindowWidth),
		},
	}
	if page > total {
		return res, nil
	}
	start := (page - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	res.Items = items[start:end]
	return res, nil
}

// Params turns raw query values into a page and a limit. Zero means "not given".
func Params(page, limit, defaultLimit, maxLimit int) (int, int) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// ParseQuery reads the page and limit query values. Empty values take the
// defaults; given values must be positive.
func ParseQuery(page, limit string, l Limits) (int, int, error) {
	p, err := atoi(page)
	if err != nil {
		return 0, 0, err
	}
	n, err := atoi(limit)
	if err != nil {
		return 0, 0, err
	}
	p, n = Params(p, n, l.Default, l.Max)
	return p, n, nil
}

// atoi maps "" to 0, which Params reads as "not given".
func atoi(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, errors.ErrInvalidPage
	}
	return n, nil
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	res := make([]T, len(items))
	for i, item := range items {
		res[len(items)-1-i] = item
	}
	return res
}

// Window lists the page numbers a pager shows: the first and the last page and
// width pages around current. A 0 marks skipped pages.
func Window(current, total, width int) []int {
	if total <= 0 {
		return []int{}
	}
	if width < 1 {
		width = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}
	start := current - width/2
	if start < 1 {
		start = 1
	}
	end := start + width - 1
	if end > total {
		end = total
	}
	start = end - width + 1
	if start < 1 {
		start = 1
	}

	pages := make([]int, 0, width+4)
	if start > 1 {
		pages = append(pages, 1)
		if start > 2 {
			pages = append(pages, 0)
		}
	}
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	if end < total {
		if end < total-1 {
			pages = append(pages, 0)
		}
		pages = append(pages, total)
	}
	return pages
}
