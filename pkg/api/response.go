package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Body    T      `json:"body,omitempty"`
}

type ListBody[T any] struct {
	List       []T   `json:"list"`
	TotalCount int   `json:"total_count"`
	Meta       *Meta `json:"meta,omitempty"`
}

// Meta - что именно было применено к списку (для отображения на фронте).
type Meta struct {
	Area    string            `json:"area,omitempty"`
	Tab     string            `json:"tab,omitempty"`
	Tabs    []string          `json:"tabs,omitempty"`
	SortBy  string            `json:"sort_by,omitempty"`
	SortDir string            `json:"sort_dir,omitempty"`
	Filters map[string]string `json:"filters,omitempty"`
}

// SuccessOne - для возврата одного объекта
func SuccessOne[T any](c echo.Context, code int, message string, data T) error {
	return c.JSON(code, Response[T]{
		Status:  true,
		Message: message,
		Body:    data,
	})
}

func SuccessList[T any](c echo.Context, message string, list []T, meta *Meta) error {
	if list == nil {
		list = make([]T, 0)
	}

	return c.JSON(http.StatusOK, Response[ListBody[T]]{
		Status:  true,
		Message: message,
		Body: ListBody[T]{
			List:       list,
			TotalCount: len(list),
			Meta:       meta,
		},
	})
}
