// ABOUTME: List query parameters shared by every paginated endpoint
// ABOUTME: Normalizes page/limit and encodes search, sort, and filters

package client

import (
	"net/url"
	"strconv"
)

// AllowedLimits are the page sizes the back-office exposes
var AllowedLimits = []int{10, 25, 50, 100}

// ListQuery describes one paginated, filterable list request
type ListQuery struct {
	Page    int
	Limit   int
	Search  string
	OrderBy string
	Order   string // "asc" or "desc"
	Filters map[string]string
}

// Normalized returns a copy with page and limit clamped to valid values
func (q ListQuery) Normalized() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	q.Limit = clampLimit(q.Limit)
	if q.Order != "asc" && q.Order != "desc" {
		q.Order = ""
	}
	return q
}

// Values encodes the query as URL parameters in the backend's contract
func (q ListQuery) Values() url.Values {
	q = q.Normalized()

	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.OrderBy != "" {
		v.Set("orderBy", q.OrderBy)
		if q.Order != "" {
			v.Set("order", q.Order)
		}
	}
	for key, val := range q.Filters {
		if val != "" {
			v.Set(key, val)
		}
	}
	return v
}

func clampLimit(limit int) int {
	for _, allowed := range AllowedLimits {
		if limit == allowed {
			return limit
		}
	}
	return AllowedLimits[0]
}
