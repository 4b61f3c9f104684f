package domain

// Pagination describes the window a listing response covers. Pages is
// ceil(total/limit); a page past the last one simply yields an empty
// data set, navigation validity is the caller's concern.
type Pagination struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
}

// NewPagination computes pagination metadata for a 1-based page.
func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{
		Page:    page,
		Limit:   limit,
		Total:   total,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}

// Offset returns the number of records to skip for a 1-based page.
func Offset(page, limit int) int {
	return (page - 1) * limit
}
