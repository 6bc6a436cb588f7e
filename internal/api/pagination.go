package api

// Pagination describes a paged list result.
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// NewPagination computes page metadata for a list of total items viewed
// through page/limit. total_pages is ceil(total/limit) and zero when the
// collection is empty; has_next and has_previous are both false for an
// empty collection regardless of the requested page. A page past the end
// is not an error, it simply has no next page.
func NewPagination(total, page, limit int) Pagination {
	p := Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
	}
	if total > 0 && limit > 0 {
		p.TotalPages = (total + limit - 1) / limit
		p.HasNext = page < p.TotalPages
		p.HasPrevious = page > 1
	}
	return p
}

// Offset returns the zero-based index of the first item on the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}
