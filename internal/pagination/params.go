// Package pagination normalizes page/limit query parameters for list
// endpoints.
package pagination

// DefaultLimit applies when the limit query parameter is absent.
const DefaultLimit = 10

// MaxLimit bounds the page size. Values above it are rejected with a
// validation error rather than clamped, so a client asking for more than it
// can have finds out instead of silently receiving less.
const MaxLimit = 100

// Params embeds into Huma input structs for paged list endpoints. The schema
// tags reject non-numeric, non-positive, and over-limit values with a 422
// naming the offending field.
type Params struct {
	Page  int `query:"page"  doc:"Page number"     default:"1"  minimum:"1"`
	Limit int `query:"limit" doc:"Items per page"  default:"10" minimum:"1" maximum:"100"`
}

// Normalize returns page and limit with defaults applied for zero values
// (Huma fills defaults from the schema; the fallback covers direct callers).
func (p Params) Normalize() (page, limit int) {
	page = p.Page
	if page < 1 {
		page = 1
	}
	limit = p.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	return page, limit
}

// Offset returns the zero-based index of the first item on the page.
func (p Params) Offset() int {
	page, limit := p.Normalize()
	return (page - 1) * limit
}
