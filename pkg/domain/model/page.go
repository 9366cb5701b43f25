package model

// DefaultPageSize is used when a page request does not specify a size
const DefaultPageSize = 20

// PageRequest describes which page of a collection to fetch
type PageRequest struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

// Normalize clamps the request to valid bounds (page >= 1, size > 0)
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	return p
}

// PageInfo carries pagination metadata for a fetched page. It reflects
// the directory's counts, not post-enrichment row counts: a tombstoned
// row dropped from display does not change these numbers.
type PageInfo struct {
	Page          int `json:"page"`
	Size          int `json:"size"`
	TotalElements int `json:"total_elements"`
	TotalPages    int `json:"total_pages"`
}

// GroupPage is one page of group summaries with its metadata
type GroupPage struct {
	Groups []GroupSummary `json:"groups"`
	Info   PageInfo       `json:"info"`
}

// PersonPage is one page of person summaries with its metadata
type PersonPage struct {
	People []PersonSummary `json:"people"`
	Info   PageInfo        `json:"info"`
}
