package tasklist

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"

	"service-tasks/internal/entities"
	"service-tasks/pkg/constants"
)

func TestDefaultOrder(t *testing.T) {
	tasks := []entities.Task{
		{ID: 1, Status: constants.TaskStatusDone},
		{ID: 2, Status: constants.TaskStatusNew},
		{ID: 3, Status: constants.TaskStatusBlocked, UrgentRequest: true},
		{ID: 4, Status: constants.TaskStatusInProgress},
		{ID: 5, Status: constants.TaskStatusNew},
		{ID: 6, Status: constants.TaskStatusDone, UrgentRequest: true},
	}

	DefaultOrder(tasks)
	assert.Equal(t, []int64{3, 6, 5, 2, 4, 1}, ids(tasks))
}

func TestSort_TextCollation(t *testing.T) {
	tasks := []entities.Task{
		{ID: 1, Client: "Їжак"},
		{ID: 2, Client: "Іванов"},
		{ID: 3, Client: "ґрунт"},
		{ID: 4, Client: "Гарант"},
		{ID: 5},
	}

	Sort(tasks, "client", DirAsc)
	// г < ґ, і < ї; пустое значение в конце
	assert.Equal(t, []int64{4, 3, 2, 1, 5}, ids(tasks))

	Sort(tasks, "client", DirDesc)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(tasks))
}

func TestSort_NumbersAndDates(t *testing.T) {
	tasks := []entities.Task{
		{ID: 1, ServiceTotal: null.Float64From(100), RequestDate: day(2024, time.May, 1)},
		{ID: 2, ServiceTotal: null.Float64From(9.5), RequestDate: day(2023, time.December, 31)},
		{ID: 3, ServiceTotal: null.Float64From(1000)},
	}

	Sort(tasks, "serviceTotal", DirAsc)
	assert.Equal(t, []int64{2, 1, 3}, ids(tasks))

	Sort(tasks, "requestDate", DirDesc)
	assert.Equal(t, []int64{1, 2, 3}, ids(tasks))
}

func TestSort_UnknownFieldFallsBackToDefault(t *testing.T) {
	tasks := []entities.Task{
		{ID: 1, Status: constants.TaskStatusDone},
		{ID: 2, Status: constants.TaskStatusNew},
	}
	Sort(tasks, "color", DirAsc)
	assert.Equal(t, []int64{2, 1}, ids(tasks))
}
