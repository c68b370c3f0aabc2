package ports

// ListFilter carries the querystring filters for a list endpoint after
// parsing. Zero values mean "no filter"; IsPublished distinguishes absent
// from false via the pointer.
type ListFilter struct {
	Query       string // partial, case-insensitive match on name
	CategoryID  string // products only; dropped when not a valid object id
	TenantID    string
	IsPublished *bool
	Page        int // 1-based
	Limit       int // rows per page
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Normalize replaces non-positive page/limit values with the defaults.
func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
}
