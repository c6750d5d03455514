package models

import "math"

// PaginationParams holds the page window requested by the client.
type PaginationParams struct {
	Page  int `json:"page" query:"page" example:"1"`
	Limit int `json:"limit" query:"limit" example:"10"`
}

// Pagination is the page metadata returned next to the data.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// PaginatedResponse is the envelope for list endpoints.
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

const (
	// MaxLimit caps the page size a client may request.
	MaxLimit = 100
	// MaxPage keeps (Page-1)*Limit well inside int64.
	MaxPage = math.MaxInt32
)

// DefaultPagination is page 1 with 10 items.
func DefaultPagination() PaginationParams {
	return PaginationParams{
		Page:  1,
		Limit: 10,
	}
}

// Normalize replaces non-positive values with the defaults and clamps the
// window to MaxPage and MaxLimit.
func (p *PaginationParams) Normalize() {
	def := DefaultPagination()
	if p.Page <= 0 {
		p.Page = def.Page
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit <= 0 {
		p.Limit = def.Limit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// NewPaginatedResponse builds the envelope for data out of total matches.
func NewPaginatedResponse(data interface{}, total int64, params PaginationParams) *PaginatedResponse {
	totalPages := int(math.Ceil(float64(total) / float64(params.Limit)))

	return &PaginatedResponse{
		Data: data,
		Pagination: Pagination{
			CurrentPage: params.Page,
			Limit:       params.Limit,
			Total:       total,
			TotalPages:  totalPages,
			HasNextPage: params.Page < totalPages,
			HasPrevPage: params.Page > 1,
		},
	}
}

// GetSkip returns how many matches precede the requested page.
func (p *PaginationParams) GetSkip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}
