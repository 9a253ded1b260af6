package model

import "math"

// PageSize is the number of records on one list page.
const PageSize = 5

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
	Pages         int `json:"pages"`
}

func NewPaging(page, size, total int) Paging {
	p := Paging{
		Page:          page,
		PageSize:      size,
		TotalElements: total,
	}
	if size > 0 {
		p.Pages = (total + size - 1) / size
	}
	return p
}

// Offset is the number of rows before the page. Pages past the int range
// clamp to the last representable page.
func (p Paging) Offset() int {
	if p.Page <= 0 || p.PageSize <= 0 {
		return 0
	}
	if p.Page > math.MaxInt/p.PageSize {
		return math.MaxInt / p.PageSize * p.PageSize
	}
	return p.Page * p.PageSize
}

type List[T any] struct {
	Paging `json:",inline"`
	Items  []T `json:"items"`
}

// ListQuery carries the list endpoints' query string.
type ListQuery struct {
	Page int
	Sort string
}
