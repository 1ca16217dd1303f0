package utils

import (
	"net/url"
	"strings"
)

// TaskListQuery - разобранные параметры списка заявок.
// ?tab=pending&sort=-requestDate&filter[client]=агро&filter[requestDateFrom]=2024-01-01
type TaskListQuery struct {
	Tab     string
	Filters map[string]string
	SortBy  string
	SortDir string
}

func ParseTaskListQuery(query url.Values) TaskListQuery {
	params := TaskListQuery{
		Filters: make(map[string]string),
		Tab:     query.Get("tab"),
	}

	for key, values := range query {
		if strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]") && len(values) > 0 {
			filterKey := key[7 : len(key)-1]
			if filterKey != "" && values[0] != "" {
				params.Filters[filterKey] = values[0]
			}
		}
	}

	if sort := query.Get("sort"); sort != "" {
		if strings.HasPrefix(sort, "-") {
			params.SortDir = "desc"
			params.SortBy = sort[1:]
		} else {
			params.SortDir = "asc"
			params.SortBy = sort
		}
	}
	if dir := strings.ToLower(query.Get("dir")); dir == "asc" || dir == "desc" {
		params.SortDir = dir
	}
	return params
}
