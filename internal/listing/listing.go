// Package listing filters and paginates lists that are already resident in
// memory. The explicit "Search" action on list pages bypasses this package
// and replaces the list wholesale with server results.
package listing

import "strings"

// Fields extracts the searchable string fields of an item. Which fields
// participate varies per entity (a customer matches on name, email, phone
// and license; a vehicle on make, model and plate).
type Fields[T any] func(item T) []string

// Filter returns the items whose fields contain the query as a
// case-insensitive substring; a single field match suffices. An empty or
// all-whitespace query returns the input unchanged.
func Filter[T any](items []T, query string, fields Fields[T]) []T {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}
	needle := strings.ToLower(query)

	var matched []T
	for _, item := range items {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), needle) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}

// Page is one page of a filtered list.
type Page[T any] struct {
	Items      []T
	Number     int // 1-based
	TotalPages int
	TotalItems int
	PerPage    int
}

// Numbers returns 1..TotalPages for rendering the pager; every page number
// is shown, no windowing.
func (p Page[T]) Numbers() []int {
	nums := make([]int, p.TotalPages)
	for i := range nums {
		nums[i] = i + 1
	}
	return nums
}

func (p Page[T]) HasPrev() bool { return p.Number > 1 }
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }

// Paginate slices items into the requested 1-based page of the given size.
// Out-of-range page numbers clamp to the nearest valid page, and a page
// size below one falls back to the whole list as a single page.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	total := len(items)
	if perPage < 1 {
		perPage = total
		if perPage < 1 {
			perPage = 1
		}
	}

	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     page,
		TotalPages: totalPages,
		TotalItems: total,
		PerPage:    perPage,
	}
}

// FilterPage applies Filter then Paginate. Whenever the query differs from
// prevQuery the page index resets to 1, mirroring how typing in the search
// box rewinds the pager.
func FilterPage[T any](items []T, query, prevQuery string, page, perPage int, fields Fields[T]) Page[T] {
	if strings.TrimSpace(query) != strings.TrimSpace(prevQuery) {
		page = 1
	}
	return Paginate(Filter(items, query, fields), page, perPage)
}
