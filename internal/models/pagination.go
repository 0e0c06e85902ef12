package models

// Pagination is the paging block attached to upstream list responses.
type Pagination struct {
	CurrentPage  int  `json:"current_page"`
	TotalPages   int  `json:"total_pages"`
	TotalRecords int  `json:"total_records"`
	Limit        int  `json:"limit"`
	HasNextPage  bool `json:"has_next_page"`
	HasPrevPage  bool `json:"has_prev_page"`
	NextPage     *int `json:"next_page"`
	PrevPage     *int `json:"prev_page"`
}

// NewPagination derives a consistent pagination block from the current page, page size and record count.
func NewPagination(currentPage, limit, totalRecords int) Pagination {
	p := Pagination{
		CurrentPage:  currentPage,
		TotalRecords: totalRecords,
		Limit:        limit,
	}
	if limit > 0 && totalRecords > 0 {
		p.TotalPages = (totalRecords + limit - 1) / limit
	}
	if currentPage < p.TotalPages {
		next := currentPage + 1
		p.HasNextPage = true
		p.NextPage = &next
	}
	if currentPage > 1 {
		prev := currentPage - 1
		p.HasPrevPage = true
		p.PrevPage = &prev
	}
	return p
}

// Consistent reports whether the next/prev flags agree with the page numbers.
func (p Pagination) Consistent() bool {
	if p.HasNextPage != (p.CurrentPage < p.TotalPages) {
		return false
	}
	if p.HasPrevPage != (p.CurrentPage > 1) {
		return false
	}
	if (p.NextPage != nil) != p.HasNextPage {
		return false
	}
	return (p.PrevPage != nil) == p.HasPrevPage
}
