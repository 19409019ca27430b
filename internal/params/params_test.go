package params

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query string
		want  Pagination
	}{
		{"", Pagination{Limit: 10, Offset: 0}},
		{"limit=5&offset=15", Pagination{Limit: 5, Offset: 15}},
		{"limit=0", Pagination{Limit: 1}},
		{"limit=-4&offset=-2", Pagination{Limit: 1}},
		{"limit=500", Pagination{Limit: 50}},
		{"limit=abc&offset=xyz", Pagination{Limit: 10}},
		{"limit=5&page=3", Pagination{Limit: 5, Offset: 10}},
		{"limit=5&page=3&offset=1", Pagination{Limit: 5, Offset: 1}},
	}
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			q, err := url.ParseQuery(tc.query)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, ParsePagination(q, 10, 50))
		})
	}
}
