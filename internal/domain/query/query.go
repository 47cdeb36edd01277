// Package query holds the transient list-request and list-result value
// objects shared by repositories and services.
package query

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type Sort struct {
	Field string
	Desc  bool
}

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

// Normalize clamps a page request to sane bounds: page >= 1, size
// defaulting to DefaultPageSize and capped at MaxPageSize.
func (p Page) Normalize() Page {
	if p.Number <= 0 {
		p.Number = 1
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Params carries the optional free-text search term and sort request of
// a list operation. The sort field is validated against a per-entity
// allow-list by the repository, not here.
type Params struct {
	Search string
	Sort   Sort
}

type Result[T any] struct {
	Items    []T
	Total    int64
	Page     int
	PageSize int
}

func (r *Result[T]) TotalPages() int64 {
	if r.PageSize <= 0 {
		return 0
	}
	return (r.Total + int64(r.PageSize) - 1) / int64(r.PageSize)
}
