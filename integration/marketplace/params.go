package marketplace

import (
	"net/url"
	"strconv"
)

// ListParams are the shared pagination and filtering controls for list
// operations. The zero value lists the first page with backend defaults.
type ListParams struct {
	Page    int
	PerPage int
	Filters map[string]string
}

// encode renders the params as a query suffix, empty when nothing is set.
// Filter keys pass through as-is; the backend owns their vocabulary.
func (p ListParams) encode() string {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(p.PerPage))
	}
	for k, v := range p.Filters {
		if k != "" && v != "" {
			q.Set(k, v)
		}
	}

	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
