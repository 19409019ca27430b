package params

import (
	"net/url"
	"strconv"
	"strings"
)

// URL: /testimonials?limit=5&offset=10
// → ParsePagination(q, 10, 50) → Pagination{Limit:5, Offset:10}
// ?page=3&limit=5 is accepted too and becomes Offset:10.
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ParsePagination reads limit/offset (or page) from the query, clamping
// limit into [1, maxLimit] and offset to >= 0. Unparseable values fall back
// to the defaults.
func ParsePagination(q url.Values, defaultLimit, maxLimit int) Pagination {
	p := Pagination{Limit: defaultLimit}

	if limit, ok := intParam(q, "limit"); ok {
		p.Limit = limit
	}
	switch {
	case p.Limit < 1:
		p.Limit = 1
	case maxLimit > 0 && p.Limit > maxLimit:
		p.Limit = maxLimit
	}

	if offset, ok := intParam(q, "offset"); ok {
		p.Offset = offset
	} else if page, ok := intParam(q, "page"); ok && page > 1 {
		p.Offset = (page - 1) * p.Limit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

func intParam(q url.Values, key string) (int, bool) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
