package tasklist

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"

	"service-tasks/internal/entities"
	"service-tasks/pkg/constants"
)

func day(y int, m time.Month, d int) null.Time {
	return null.TimeFrom(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func sampleTasks() []entities.Task {
	return []entities.Task{
		{
			ID:                   1,
			Status:               constants.TaskStatusDone,
			Client:               "ТОВ Агросвіт",
			Region:               "Київ",
			PaymentType:          constants.PaymentCashless,
			RequestDate:          day(2024, time.January, 10),
			ApprovedByAccountant: constants.ApprovalApproved,
			AirFilterCount:       null.IntFrom(2),
			ServiceBonus:         null.Float64From(150.5),
		},
		{
			ID:                   2,
			Status:               constants.TaskStatusInProgress,
			Client:               "ПП Зерно",
			Region:               "Львів",
			PaymentType:          constants.PaymentCash,
			RequestDate:          day(2024, time.February, 5),
			ApprovedByAccountant: entities.ApprovalTrue,
		},
		{
			ID:                   3,
			Status:               constants.TaskStatusDone,
			Client:               "агро-Люкс",
			Region:               "Київ",
			ApprovedByAccountant: constants.ApprovalPending,
			AirFilterCount:       null.IntFrom(1),
		},
	}
}

func ids(tasks []entities.Task) []int64 {
	out := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestApply_EmptyFiltersReturnInput(t *testing.T) {
	tasks := sampleTasks()
	assert.Equal(t, tasks, Apply(tasks, nil))
	assert.Equal(t, tasks, Apply(tasks, map[string]string{"client": ""}))
}

func TestApply_SubstringCaseInsensitive(t *testing.T) {
	got := Apply(sampleTasks(), map[string]string{"client": "АГРО"})
	assert.Equal(t, []int64{1, 3}, ids(got))
}

func TestApply_MissingFieldNeverMatches(t *testing.T) {
	got := Apply(sampleTasks(), map[string]string{"paymentType": constants.PaymentCash})
	assert.Equal(t, []int64{2}, ids(got))

	got = Apply(sampleTasks(), map[string]string{"invoice": "1"})
	assert.Empty(t, got)

	got = Apply(sampleTasks(), map[string]string{"noSuchField": "x"})
	assert.Empty(t, got)
}

func TestApply_ExactKeys(t *testing.T) {
	got := Apply(sampleTasks(), map[string]string{"status": "Викон"})
	assert.Empty(t, got, "status сравнивается точно")

	got = Apply(sampleTasks(), map[string]string{"approvedByAccountant": "true"})
	assert.Equal(t, []int64{2}, ids(got))

	got = Apply(sampleTasks(), map[string]string{"approvedByAccountant": constants.ApprovalApproved})
	assert.Equal(t, []int64{1}, ids(got))
}

func TestApply_NumericKeys(t *testing.T) {
	got := Apply(sampleTasks(), map[string]string{"airFilterCount": "2.0"})
	assert.Equal(t, []int64{1}, ids(got))

	got = Apply(sampleTasks(), map[string]string{"serviceBonus": "150.5"})
	assert.Equal(t, []int64{1}, ids(got))

	got = Apply(sampleTasks(), map[string]string{"airFilterCount": "два"})
	assert.Empty(t, got)
}

func TestApply_DateRange(t *testing.T) {
	got := Apply(sampleTasks(), map[string]string{"requestDateFrom": "2024-01-10", "requestDateTo": "31.01.2024"})
	assert.Equal(t, []int64{1}, ids(got))

	got = Apply(sampleTasks(), map[string]string{"requestDateFrom": "2024-01-01T00:00:00Z"})
	assert.Equal(t, []int64{1, 2}, ids(got), "заявка без даты отбрасывается")
}

func TestApply_DateRangeInverted(t *testing.T) {
	got := Apply(sampleTasks(), map[string]string{"requestDateFrom": "2024-03-01", "requestDateTo": "2024-01-01"})
	assert.Empty(t, got)
}

func TestApply_MalformedCombinationFailsClosed(t *testing.T) {
	assert.NotPanics(t, func() {
		got := Apply(sampleTasks(), map[string]string{"status": constants.TaskStatusDone, "clientFrom": "2024-01-01"})
		assert.Empty(t, got)
	})

	got := Apply(sampleTasks(), map[string]string{"requestDateFrom": "вчора"})
	assert.Empty(t, got)
}

func TestParseDate(t *testing.T) {
	for _, s := range []string{"2024-05-01", "01.05.2024", "2024-05-01T10:00:00Z", "2024-05-01 10:00:00"} {
		d, ok := ParseDate(s)
		assert.True(t, ok, s)
		assert.Equal(t, time.May, d.Month(), s)
	}
	_, ok := ParseDate("05/01/2024")
	assert.False(t, ok)
}
