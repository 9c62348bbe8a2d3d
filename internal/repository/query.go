package repository

import (
	"strings"

	"github.com/iyhunko/product-inventory-api/internal/model"
)

const (
	// CategoryField filters on an exact category match.
	CategoryField QueryField = "category"
	// SearchField filters on a case-insensitive substring of the name.
	SearchField QueryField = "search"
)

// Query holds list filters and the requested page.
type Query struct {
	Values map[QueryField]string

	Paginator Paginator
}

type QueryField string

func NewQuery() *Query {
	return &Query{
		Values:    map[QueryField]string{},
		Paginator: NewPaginator(),
	}
}

// With sets a filter. Empty values are ignored so optional query parameters
// can be passed straight through.
func (q *Query) With(field QueryField, val string) *Query {
	if val == "" {
		return q
	}
	q.Values[field] = val
	return q
}

// ApplyPagination parses raw page and limit values, keeping the defaults for empty ones.
func (q *Query) ApplyPagination(page, limit string) error {
	paginator, err := ParsePaginator(page, limit)
	if err != nil {
		return err
	}
	q.Paginator = paginator
	return nil
}

// Matches reports whether p passes the category filter and then the search filter.
func (q Query) Matches(p model.Product) bool {
	if category, ok := q.Values[CategoryField]; ok && p.Category != category {
		return false
	}
	if search, ok := q.Values[SearchField]; ok &&
		!strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
		return false
	}
	return true
}
