package services

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"service-tasks/internal/dto"
	"service-tasks/internal/entities"
	"service-tasks/internal/events"
	"service-tasks/pkg/constants"
	apperrors "service-tasks/pkg/errors"
)

func newApprovalFixture(t *testing.T, tasks ...entities.Task) (*ApprovalService, *fakeTaskRepo, *fakeHistoryRepo, *fakePublisher) {
	repo := newFakeTaskRepo(tasks...)
	history := &fakeHistoryRepo{}
	publisher := &fakePublisher{}
	svc := NewApprovalService(fakeTx{}, repo, history, publisher, loadRules(t), zap.NewNop())
	svc.now = fixedClock
	return svc, repo, history, publisher
}

func TestApprovalService_RejectStampsDateAndUser(t *testing.T) {
	svc, _, history, publisher := newApprovalFixture(t, entities.Task{ID: 7, Status: constants.TaskStatusDone})

	task, inv, err := svc.Decide(ctxAs(constants.RoleWarehouse, "sklad", ""), 7, dto.ApprovalDecisionDTO{
		Value:   constants.ApprovalRejected,
		Comment: "Немає накладної",
		Version: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, entities.Approval(constants.ApprovalRejected), task.ApprovedByWarehouse)
	assert.Equal(t, "Немає накладної", task.WarehouseComment.String)
	assert.Equal(t, null.TimeFrom(fixedNow), task.WarehouseRejectionDate)
	assert.Equal(t, "sklad", task.WarehouseRejectionUser.String)
	assert.Equal(t, int64(2), task.Version)
	assert.Equal(t, []int64{7}, inv.TaskIDs())

	require.Len(t, history.items, 1)
	assert.Equal(t, entities.HistoryEventApproval, history.items[0].EventType)
	assert.False(t, history.items[0].OldValue.Valid)

	require.Len(t, publisher.events, 1)
	decided := publisher.events[0].(events.ApprovalDecidedEvent)
	assert.Equal(t, constants.RoleWarehouse, decided.Role)
	assert.False(t, decided.BonusStamped)
}

func TestApprovalService_FinalApprovalStampsBonus(t *testing.T) {
	svc, _, history, publisher := newApprovalFixture(t, entities.Task{
		ID:                        3,
		Status:                    constants.TaskStatusDone,
		ApprovedByWarehouse:       constants.ApprovalApproved,
		ApprovedByAccountant:      entities.ApprovalTrue,
		ApprovedByRegionalManager: constants.ApprovalPending,
	})

	task, _, err := svc.Decide(ctxAs(constants.RoleRegionalManager, "rm", ""), 3, dto.ApprovalDecisionDTO{
		Value:   constants.ApprovalApproved,
		Version: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, "03-2024", task.BonusApprovalDate.String)
	assert.Equal(t, []string{entities.HistoryEventApproval, entities.HistoryEventBonus}, history.eventTypes())
	assert.True(t, publisher.events[0].(events.ApprovalDecidedEvent).BonusStamped)
}

func TestApprovalService_BonusNotOverwritten(t *testing.T) {
	svc, _, history, _ := newApprovalFixture(t, entities.Task{
		ID:                        3,
		Status:                    constants.TaskStatusDone,
		ApprovedByWarehouse:       constants.ApprovalApproved,
		ApprovedByAccountant:      constants.ApprovalRejected,
		ApprovedByRegionalManager: constants.ApprovalApproved,
		BonusApprovalDate:         null.StringFrom("12-2023"),
	})

	task, _, err := svc.Decide(ctxAs(constants.RoleBuhgalteria, "buh", ""), 3, dto.ApprovalDecisionDTO{
		Value:   constants.ApprovalApproved,
		Version: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "12-2023", task.BonusApprovalDate.String)
	assert.Equal(t, []string{entities.HistoryEventApproval}, history.eventTypes())
}

func TestApprovalService_StaleVersion(t *testing.T) {
	svc, repo, history, publisher := newApprovalFixture(t, entities.Task{ID: 1, Status: constants.TaskStatusDone, Version: 4})

	_, inv, err := svc.Decide(ctxAs(constants.RoleWarehouse, "sklad", ""), 1, dto.ApprovalDecisionDTO{
		Value:   constants.ApprovalApproved,
		Version: 3,
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.True(t, inv.IsZero())
	assert.Empty(t, history.items)
	assert.Empty(t, publisher.events)
	assert.Equal(t, int64(4), repo.tasks[1].Version)
}

func TestApprovalService_NotDoneTaskCannotBeDecided(t *testing.T) {
	svc, _, _, _ := newApprovalFixture(t, entities.Task{ID: 1, Status: constants.TaskStatusInProgress})

	_, _, err := svc.Decide(ctxAs(constants.RoleWarehouse, "sklad", ""), 1, dto.ApprovalDecisionDTO{
		Value:   constants.ApprovalApproved,
		Version: 1,
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestApprovalService_RoleChecks(t *testing.T) {
	svc, _, _, _ := newApprovalFixture(t, entities.Task{ID: 1, Status: constants.TaskStatusDone})

	tests := []struct {
		name   string
		role   string
		as     string
		status int
	}{
		{name: "оператор не согласует", role: constants.RoleOperator, status: 403},
		{name: "чужая роль", role: constants.RoleWarehouse, as: constants.RoleAccountant, status: 403},
		{name: "админ без роли", role: constants.RoleAdmin, status: 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Decide(ctxAs(tt.role, "u", ""), 1, dto.ApprovalDecisionDTO{
				Role:    tt.as,
				Value:   constants.ApprovalApproved,
				Version: 1,
			})
			assert.Equal(t, tt.status, apperrors.StatusCode(err))
		})
	}
}

func TestApprovalService_AdminDecidesForRole(t *testing.T) {
	svc, _, _, _ := newApprovalFixture(t, entities.Task{ID: 1, Status: constants.TaskStatusDone})

	task, _, err := svc.Decide(ctxAs(constants.RoleAdmin, "admin", ""), 1, dto.ApprovalDecisionDTO{
		Role:    constants.RoleBuhgalteria,
		Value:   constants.ApprovalPending,
		Version: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.Approval(constants.ApprovalPending), task.ApprovedByAccountant)
}

func TestApprovalService_ForeignRegion(t *testing.T) {
	svc, _, _, _ := newApprovalFixture(t, entities.Task{ID: 1, Status: constants.TaskStatusDone, Region: "Одеса"})

	_, _, err := svc.Decide(ctxAs(constants.RoleRegionalManager, "rm", "Київ"), 1, dto.ApprovalDecisionDTO{
		Value:   constants.ApprovalApproved,
		Version: 1,
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
