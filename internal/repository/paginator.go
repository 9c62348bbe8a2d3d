package repository

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidPage is returned when the page parameter is not a positive integer.
	ErrInvalidPage = errors.New("page must be a positive integer")

	// ErrInvalidLimit is returned when the limit parameter is not a positive integer.
	ErrInvalidLimit = errors.New("limit must be a positive integer")
)

const (
	// DefaultPage is the page served when none is requested.
	DefaultPage = 1
	// DefaultPaginationLimit is the default number of items per page.
	DefaultPaginationLimit = 10
)

// Paginator represents 1-based offset pagination.
type Paginator struct {
	Page  int
	Limit int
}

// NewPaginator returns the first page with the default limit.
func NewPaginator() Paginator {
	return Paginator{Page: DefaultPage, Limit: DefaultPaginationLimit}
}

// ParsePaginator parses raw query values. Empty values fall back to the defaults.
func ParsePaginator(page, limit string) (Paginator, error) {
	p := NewPaginator()

	if page != "" {
		v, err := strconv.Atoi(page)
		if err != nil || v < 1 {
			return Paginator{}, ErrInvalidPage
		}
		p.Page = v
	}

	if limit != "" {
		v, err := strconv.Atoi(limit)
		if err != nil || v < 1 {
			return Paginator{}, ErrInvalidLimit
		}
		p.Limit = v
	}

	return p, nil
}

// Bounds returns the half-open range [start, end) of the page within total
// items. A page past the end yields an empty range.
func (p Paginator) Bounds(total int) (start, end int) {
	if p.Page < 1 || p.Limit < 1 {
		return 0, 0
	}
	// compare before multiplying so huge page numbers cannot overflow
	if p.Page-1 > total/p.Limit {
		return total, total
	}
	start = (p.Page - 1) * p.Limit
	end = start + min(p.Limit, total-start)
	return start, end
}

// Paginate returns the page of items selected by p. The result is never nil.
func Paginate[T any](items []T, p Paginator) []T {
	start, end := p.Bounds(len(items))
	page := make([]T, 0, end-start)
	return append(page, items[start:end]...)
}
