package paginate_test

import (
	"testing"

	"github.com/Natali-Skv/forum_board/internal/tools/errors"
	"github.com/Natali-Skv/forum_board/internal/tools/paginate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	res := make([]int, n)
	for i := range res {
		res[i] = i
	}
	return res
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{32, 10, 4},
		{25, 5, 5},
		{7, 1, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, paginate.TotalPages(tt.n, tt.size), "n=%d size=%d", tt.n, tt.size)
	}
}

func TestPaginateCoversEveryItemOnce(t *testing.T) {
	for n := 0; n <= 40; n++ {
		for size := 1; size <= 12; size++ {
			items := seq(n)
			total := paginate.TotalPages(n, size)
			got := make([]int, 0, n)
			for k := 1; k <= total; k++ {
				page, err := paginate.Paginate(items, k, size)
				require.NoError(t, err)
				start := (k - 1) * size
				end := k * size
				if end > n {
					end = n
				}
				assert.Equal(t, items[start:end], page.Items)
				assert.Equal(t, total, page.TotalPages)
				assert.Equal(t, n, page.Total)
				got = append(got, page.Items...)
			}
			assert.Equal(t, items, got)
		}
	}
}

func TestPaginateBeyondRange(t *testing.T) {
	page, err := paginate.Paginate(seq(25), 4, 10)
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.TotalPages)

	empty, err := paginate.Paginate([]string{}, 1, 10)
	require.NoError(t, err)
	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)
	assert.Equal(t, 0, empty.TotalPages)
	assert.Empty(t, empty.Pages)
}

func TestPaginateInvalid(t *testing.T) {
	_, err := paginate.Paginate(seq(5), 0, 10)
	assert.Equal(t, errors.ErrInvalidPage, err)
	_, err = paginate.Paginate(seq(5), 1, 0)
	assert.Equal(t, errors.ErrInvalidPage, err)
	_, err = paginate.Paginate(seq(5), -2, 3)
	assert.Equal(t, errors.ErrInvalidPage, err)
}

func TestParams(t *testing.T) {
	page, limit := paginate.Params(0, 0, 10, 100)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = paginate.Params(3, 500, 10, 100)
	assert.Equal(t, 3, page)
	assert.Equal(t, 100, limit)

	page, limit = paginate.Params(-1, 5, 10, 100)
	assert.Equal(t, -1, page)
	assert.Equal(t, 5, limit)
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name           string
		current, total int
		want           []int
	}{
		{"no pages", 1, 0, []int{}},
		{"single page", 1, 1, []int{1}},
		{"two pages", 2, 2, []int{1, 2}},
		{"first", 1, 10, []int{1, 2, 3, 0, 10}},
		{"second", 2, 10, []int{1, 2, 3, 0, 10}},
		{"middle", 5, 10, []int{1, 0, 4, 5, 6, 0, 10}},
		{"near start", 3, 10, []int{1, 2, 3, 4, 0, 10}},
		{"near end", 9, 10, []int{1, 0, 8, 9, 10}},
		{"last", 10, 10, []int{1, 0, 8, 9, 10}},
		{"past the end", 12, 4, []int{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paginate.Window(tt.current, tt.total, 3))
		})
	}
}

func TestParseQuery(t *testing.T) {
	limits := paginate.Limits{Default: 10, Max: 50}
	tests := []struct {
		name        string
		page, limit string
		wantPage    int
		wantLimit   int
		wantErr     bool
	}{
		{name: "defaults", wantPage: 1, wantLimit: 10},
		{name: "given", page: "3", limit: "20", wantPage: 3, wantLimit: 20},
		{name: "clamped", page: "1", limit: "500", wantPage: 1, wantLimit: 50},
		{name: "not a number", page: "two", wantErr: true},
		{name: "negative", limit: "-1", wantErr: true},
		{name: "explicit zero page", page: "0", wantErr: true},
		{name: "explicit zero limit", limit: "0", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, err := paginate.ParseQuery(tt.page, tt.limit, limits)
			if tt.wantErr {
				assert.ErrorIs(t, err, errors.ErrInvalidPage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestReverse(t *testing.T) {
	in := []int{1, 2, 3}
	assert.Equal(t, []int{3, 2, 1}, paginate.Reverse(in))
	assert.Equal(t, []int{1, 2, 3}, in)
	assert.Empty(t, paginate.Reverse([]int(nil)))
}
