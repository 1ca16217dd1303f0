package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTaskListQuery(t *testing.T) {
	q, _ := url.ParseQuery("tab=pending&sort=-requestDate&filter[client]=agro&filter[status]=&filter[requestDateFrom]=2024-01-01")

	got := ParseTaskListQuery(q)

	assert.Equal(t, "pending", got.Tab)
	assert.Equal(t, "requestDate", got.SortBy)
	assert.Equal(t, "desc", got.SortDir)
	assert.Equal(t, map[string]string{"client": "agro", "requestDateFrom": "2024-01-01"}, got.Filters)
}

func TestParseTaskListQuery_ExplicitDir(t *testing.T) {
	q, _ := url.ParseQuery("sort=client&dir=DESC")

	got := ParseTaskListQuery(q)

	assert.Equal(t, "client", got.SortBy)
	assert.Equal(t, "desc", got.SortDir)
	assert.Empty(t, got.Filters)
}
