package dto

// ── shared query parameters ──

// PaginationRequest carries the standard page query parameters.
type PaginationRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// Normalize clamps the pagination parameters to sane bounds.
func (p *PaginationRequest) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

// Offset converts page/page_size into a row offset.
func (p *PaginationRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}
