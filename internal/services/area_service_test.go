package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"service-tasks/internal/entities"
	"service-tasks/pkg/constants"
	apperrors "service-tasks/pkg/errors"
	"service-tasks/pkg/utils"
)

func areaTasks() []entities.Task {
	return []entities.Task{
		{ID: 1, Status: constants.TaskStatusNew, Client: "Агро"},
		{ID: 2, Status: constants.TaskStatusDone, Client: "Агро Плюс"},
		{
			ID:                  3,
			Status:              constants.TaskStatusDone,
			Client:              "Мрія",
			ApprovedByWarehouse: constants.ApprovalApproved,
		},
		{
			ID:                  4,
			Status:              constants.TaskStatusDone,
			Client:              "Агротех",
			ApprovedByWarehouse: constants.ApprovalRejected,
		},
		{
			ID:                  5,
			Status:              constants.TaskStatusDone,
			Client:              "Мрія",
			ApprovedByWarehouse: entities.ApprovalTrue,
		},
	}
}

func newAreaService(t *testing.T) *AreaService {
	f := newTaskFixture(t, areaTasks()...)
	return NewAreaService(f.svc, loadRules(t), zap.NewNop())
}

func rowIDs(rows []entities.Task) []int64 {
	ids := make([]int64, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

func TestAreaService_WarehousePendingTab(t *testing.T) {
	svc := newAreaService(t)

	rows, meta, err := svc.List(ctxAs(constants.RoleWarehouse, "sklad", ""), constants.AreaWarehouse, utils.TaskListQuery{})
	require.NoError(t, err)

	assert.Equal(t, "pending", meta.Tab)
	assert.Equal(t, []string{"pending", "archive"}, meta.Tabs)
	// Булево true склада не попадает ни в одну вкладку.
	require.Len(t, rows, 2)
	assert.Equal(t, int64(4), rows[0].ID)
	assert.Equal(t, int64(2), rows[1].ID)

	for _, r := range rows {
		assert.Equal(t, "pending", r.Bucket)
		assert.True(t, r.Editable)
		assert.Contains(t, r.Actions, "approve")
	}
	assert.NotContains(t, rows[0].Actions, "reject", "уже отклонено")
}

func TestAreaService_ArchiveIsReadOnlyForApprover(t *testing.T) {
	svc := newAreaService(t)

	rows, _, err := svc.List(ctxAs(constants.RoleWarehouse, "sklad", ""), constants.AreaWarehouse, utils.TaskListQuery{Tab: "archive"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(3), rows[0].ID)
	assert.False(t, rows[0].Editable)
	assert.Equal(t, []string{"view"}, rows[0].Actions)
}

func TestAreaService_FiltersAndSort(t *testing.T) {
	svc := newAreaService(t)

	tasks, _, err := svc.Tasks(ctxAs(constants.RoleOperator, "op", ""), constants.AreaOperator, utils.TaskListQuery{
		Tab:     "archive",
		Filters: map[string]string{"client": "агро"},
		SortBy:  "client",
		SortDir: "desc",
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 2}, rowIDs(tasks))
}

func TestAreaService_Errors(t *testing.T) {
	svc := newAreaService(t)

	_, _, err := svc.List(ctxAs(constants.RoleAdmin, "admin", ""), "unknown", utils.TaskListQuery{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, _, err = svc.List(ctxAs(constants.RoleEngineer, "eng", ""), constants.AreaWarehouse, utils.TaskListQuery{})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, _, err = svc.List(ctxAs(constants.RoleAccountant, "buh", ""), constants.AreaWarehouse, utils.TaskListQuery{Tab: "debt"})
	assert.Equal(t, 400, apperrors.StatusCode(err))
}

func TestAreaService_ReadAccessRows(t *testing.T) {
	svc := newAreaService(t)

	rows, _, err := svc.List(ctxAs(constants.RoleAccountant, "buh", ""), constants.AreaWarehouse, utils.TaskListQuery{})
	require.NoError(t, err)
	for _, r := range rows {
		assert.False(t, r.Editable)
		assert.Equal(t, []string{"view"}, r.Actions)
	}
}
