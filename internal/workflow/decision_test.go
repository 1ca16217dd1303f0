package workflow

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-tasks/internal/entities"
	"service-tasks/pkg/constants"
)

var decisionTime = time.Date(2024, time.March, 14, 10, 30, 0, 0, time.UTC)

func TestApplyDecision_RejectStampsDateAndUser(t *testing.T) {
	task := *doneTask(constants.ApprovalApproved, constants.ApprovalPending, entities.ApprovalNull)

	next, err := ApplyDecision(task, Decision{
		Role:    constants.RoleAccountant,
		Value:   constants.ApprovalRejected,
		Comment: "missing receipt",
		Actor:   "Олена",
		At:      decisionTime,
	})
	require.NoError(t, err)

	assert.Equal(t, entities.Approval(constants.ApprovalRejected), next.ApprovedByAccountant)
	assert.Equal(t, null.StringFrom("missing receipt"), next.AccountantComment)
	assert.Equal(t, null.TimeFrom(decisionTime), next.AccountantRejectionDate)
	assert.Equal(t, null.StringFrom("Олена"), next.AccountantRejectionUser)

	// исходная заявка не изменилась
	assert.Equal(t, entities.Approval(constants.ApprovalPending), task.ApprovedByAccountant)
	assert.False(t, task.AccountantRejectionDate.Valid)
}

func TestApplyDecision_ApproveClearsRejection(t *testing.T) {
	task := *doneTask(constants.ApprovalRejected, entities.ApprovalNull, entities.ApprovalNull)
	task.WarehouseRejectionDate = null.TimeFrom(decisionTime.Add(-time.Hour))
	task.WarehouseRejectionUser = null.StringFrom("Склад")
	task.WarehouseComment = null.StringFrom("нет накладной")

	next, err := ApplyDecision(task, Decision{
		Role:  constants.RoleWarehouse,
		Value: constants.ApprovalApproved,
		Actor: "Склад",
		At:    decisionTime,
	})
	require.NoError(t, err)

	assert.Equal(t, entities.Approval(constants.ApprovalApproved), next.ApprovedByWarehouse)
	assert.False(t, next.WarehouseRejectionDate.Valid)
	assert.False(t, next.WarehouseRejectionUser.Valid)
	// пустой комментарий не затирает прежний
	assert.Equal(t, null.StringFrom("нет накладной"), next.WarehouseComment)
}

func TestApplyDecision_PendingKeepsRejectionStamp(t *testing.T) {
	task := *doneTask(entities.ApprovalNull, entities.ApprovalNull, constants.ApprovalRejected)
	task.RegionalManagerRejectionDate = null.TimeFrom(decisionTime)

	next, err := ApplyDecision(task, Decision{
		Role:  constants.RoleRegionalManager,
		Value: constants.ApprovalPending,
		At:    decisionTime.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, null.TimeFrom(decisionTime), next.RegionalManagerRejectionDate)
}

func TestApplyDecision_BonusStampedOnFinalApproval(t *testing.T) {
	task := *doneTask(entities.ApprovalTrue, constants.ApprovalApproved, constants.ApprovalPending)

	next, err := ApplyDecision(task, Decision{
		Role:  constants.RoleRegionalManager,
		Value: constants.ApprovalApproved,
		At:    decisionTime,
	})
	require.NoError(t, err)
	assert.Equal(t, null.StringFrom("03-2024"), next.BonusApprovalDate)

	// повторное согласование месяц не меняет
	again, err := ApplyDecision(next, Decision{
		Role:  constants.RoleWarehouse,
		Value: constants.ApprovalApproved,
		At:    decisionTime.AddDate(0, 2, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, null.StringFrom("03-2024"), again.BonusApprovalDate)

	// отказ после утверждения премию не снимает
	rejected, err := ApplyDecision(again, Decision{
		Role:  constants.RoleAccountant,
		Value: constants.ApprovalRejected,
		At:    decisionTime.AddDate(0, 3, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, null.StringFrom("03-2024"), rejected.BonusApprovalDate)
}

func TestApplyDecision_NoBonusUntilDone(t *testing.T) {
	task := *doneTask(constants.ApprovalApproved, constants.ApprovalApproved, entities.ApprovalNull)
	task.Status = constants.TaskStatusInProgress

	next, err := ApplyDecision(task, Decision{Role: constants.RoleRegionalManager, Value: constants.ApprovalApproved, At: decisionTime})
	require.NoError(t, err)
	assert.False(t, next.BonusApprovalDate.Valid)
}

func TestApplyDecision_InvalidInput(t *testing.T) {
	task := *doneTask("", "", "")

	_, err := ApplyDecision(task, Decision{Role: constants.RoleAccountant, Value: "maybe"})
	assert.Error(t, err)

	_, err = ApplyDecision(task, Decision{Role: constants.RoleOperator, Value: constants.ApprovalApproved})
	assert.Error(t, err)

	next, err := ApplyDecision(task, Decision{Role: constants.RoleBuhgalteria, Value: constants.ApprovalApproved})
	require.NoError(t, err)
	assert.Equal(t, entities.Approval(constants.ApprovalApproved), next.ApprovedByAccountant)
}

func TestStampBonus(t *testing.T) {
	task := doneTask(entities.ApprovalTrue, entities.ApprovalTrue, entities.ApprovalTrue)
	assert.True(t, StampBonus(task, decisionTime))
	assert.Equal(t, "03-2024", task.BonusApprovalDate.String)
	assert.False(t, StampBonus(task, decisionTime.AddDate(1, 0, 0)))

	assert.True(t, IsApproverRole(constants.RoleWarehouse))
	assert.False(t, IsApproverRole(constants.RoleAdmin))
}

func TestSetApproval(t *testing.T) {
	task := doneTask(constants.ApprovalPending, constants.ApprovalRejected, entities.ApprovalNull)
	task.AccountantRejectionDate = null.TimeFrom(decisionTime.Add(-time.Hour))
	task.AccountantRejectionUser = null.StringFrom("buh")

	require.NoError(t, SetApproval(task, constants.RoleWarehouse, constants.ApprovalRejected, "admin", decisionTime))
	assert.Equal(t, null.TimeFrom(decisionTime), task.WarehouseRejectionDate)
	assert.Equal(t, null.StringFrom("admin"), task.WarehouseRejectionUser)

	require.NoError(t, SetApproval(task, constants.RoleAccountant, constants.ApprovalApproved, "admin", decisionTime))
	assert.False(t, task.AccountantRejectionDate.Valid)
	assert.False(t, task.AccountantRejectionUser.Valid)

	// то же значение повторно отметку не переписывает
	require.NoError(t, SetApproval(task, constants.RoleWarehouse, constants.ApprovalRejected, "other", decisionTime.Add(time.Hour)))
	assert.Equal(t, null.StringFrom("admin"), task.WarehouseRejectionUser)

	require.NoError(t, SetApproval(task, constants.RoleRegionalManager, entities.ApprovalTrue, "admin", decisionTime))
	assert.Equal(t, entities.ApprovalTrue, task.ApprovedByRegionalManager)
	assert.False(t, task.RegionalManagerRejectionDate.Valid)
}

func TestSetApproval_InvalidInput(t *testing.T) {
	task := doneTask(entities.ApprovalNull, entities.ApprovalNull, entities.ApprovalNull)

	assert.Error(t, SetApproval(task, constants.RoleWarehouse, "garbage", "admin", decisionTime))
	assert.Error(t, SetApproval(task, constants.RoleOperator, constants.ApprovalApproved, "admin", decisionTime))
	assert.True(t, task.ApprovedByWarehouse.IsNull())
}

func TestIsApprovalValue(t *testing.T) {
	for _, v := range []entities.Approval{entities.ApprovalNull, entities.ApprovalTrue, entities.ApprovalFalse, constants.ApprovalPending, constants.ApprovalApproved, constants.ApprovalRejected} {
		assert.True(t, IsApprovalValue(v), string(v))
	}
	assert.False(t, IsApprovalValue("так"))
}
