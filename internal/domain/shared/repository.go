package shared

// Filter represents query filter options for list operations
type Filter struct {
	Page   int
	Limit  int
	Search string
}

// DefaultFilter returns a filter with default pagination values
func DefaultFilter() Filter {
	return Filter{
		Page:  1,
		Limit: 20,
	}
}

// Normalize clamps pagination values to sane bounds
func (f *Filter) Normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
}

// Offset returns the row offset for the current page
func (f *Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Paginated represents a paginated result
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// NewPaginated creates a new paginated result
func NewPaginated[T any](items []T, total int64, page, limit int) Paginated[T] {
	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}
	return Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
