package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"service-tasks/internal/entities"
	"service-tasks/pkg/constants"
)

var allApprovalValues = []entities.Approval{
	entities.ApprovalNull,
	entities.ApprovalTrue,
	entities.ApprovalFalse,
	constants.ApprovalPending,
	constants.ApprovalApproved,
	constants.ApprovalRejected,
}

func doneTask(wh, acc, reg entities.Approval) *entities.Task {
	return &entities.Task{
		ID:                        1,
		Status:                    constants.TaskStatusDone,
		ApprovedByWarehouse:       wh,
		ApprovedByAccountant:      acc,
		ApprovedByRegionalManager: reg,
	}
}

func TestIsApprovedIsRejected(t *testing.T) {
	for _, v := range allApprovalValues {
		assert.Equal(t, v == entities.ApprovalTrue || v == "Підтверджено", IsApproved(v), "IsApproved(%q)", v)
		assert.Equal(t, v == entities.ApprovalFalse || v == "Відмова", IsRejected(v), "IsRejected(%q)", v)
	}
}

func TestClassify_NotDoneNeverInApprovalBuckets(t *testing.T) {
	statuses := []string{constants.TaskStatusNew, constants.TaskStatusInProgress, constants.TaskStatusBlocked}
	areas := []string{constants.AreaWarehouse, constants.AreaAccountant, constants.AreaAccountantApproval, constants.AreaRegional}

	for _, status := range statuses {
		for _, wh := range allApprovalValues {
			for _, acc := range allApprovalValues {
				for _, reg := range allApprovalValues {
					task := doneTask(wh, acc, reg)
					task.Status = status
					task.PaymentType = constants.PaymentCashless
					for _, area := range areas {
						assert.Equal(t, BucketNone, Classify(area, task), "area=%s status=%s", area, status)
					}
				}
			}
		}
	}
}

func TestClassify_AccountantPendingScenario(t *testing.T) {
	task := doneTask(constants.ApprovalApproved, constants.ApprovalPending, entities.ApprovalNull)

	assert.Equal(t, BucketPending, Classify(constants.AreaAccountant, task))
	assert.Equal(t, BucketPending, Classify(constants.AreaAccountantApproval, task))
	assert.False(t, AccountantArchive(task))
}

func TestClassify_RejectedStaysPending(t *testing.T) {
	task := doneTask(constants.ApprovalApproved, constants.ApprovalRejected, constants.ApprovalApproved)

	assert.Equal(t, BucketPending, Classify(constants.AreaAccountant, task))
	assert.Equal(t, BucketPending, Classify(constants.AreaRegional, task))
}

func TestClassify_WarehouseStrictArchive(t *testing.T) {
	approvedText := doneTask(constants.ApprovalApproved, entities.ApprovalNull, entities.ApprovalNull)
	assert.Equal(t, BucketArchive, Classify(constants.AreaWarehouse, approvedText))

	// true не ждёт решения, но и в архив склада не попадает
	approvedBool := doneTask(entities.ApprovalTrue, entities.ApprovalNull, entities.ApprovalNull)
	assert.Equal(t, BucketNone, Classify(constants.AreaWarehouse, approvedBool))

	// остальные области считают true согласованием
	accountantBool := doneTask(entities.ApprovalNull, entities.ApprovalTrue, entities.ApprovalNull)
	assert.Equal(t, BucketArchive, Classify(constants.AreaAccountantApproval, accountantBool))
}

func TestClassify_Regional(t *testing.T) {
	cases := []struct {
		name         string
		wh, acc, reg entities.Approval
		expected     Bucket
	}{
		{"всё согласовано", constants.ApprovalApproved, entities.ApprovalTrue, constants.ApprovalApproved, BucketArchive},
		{"ждёт склад", entities.ApprovalNull, constants.ApprovalApproved, constants.ApprovalApproved, BucketPending},
		{"ждёт бухгалтерию", constants.ApprovalApproved, constants.ApprovalPending, constants.ApprovalApproved, BucketPending},
		{"ждёт сам", constants.ApprovalApproved, constants.ApprovalApproved, entities.ApprovalNull, BucketPending},
		{"отказ региона", constants.ApprovalApproved, constants.ApprovalApproved, entities.ApprovalFalse, BucketPending},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(constants.AreaRegional, doneTask(tc.wh, tc.acc, tc.reg)))
		})
	}
}

func TestClassify_AccountantDebt(t *testing.T) {
	task := doneTask(constants.ApprovalApproved, constants.ApprovalApproved, entities.ApprovalNull)
	task.PaymentType = constants.PaymentCashless

	assert.Equal(t, BucketDebt, Classify(constants.AreaAccountant, task))
	// в области согласования вкладки долга нет
	assert.Equal(t, BucketArchive, Classify(constants.AreaAccountantApproval, task))

	task.PaymentType = constants.PaymentCash
	assert.Equal(t, BucketArchive, Classify(constants.AreaAccountant, task))
}

func TestClassify_Operator(t *testing.T) {
	task := &entities.Task{Status: constants.TaskStatusInProgress}
	assert.Equal(t, BucketActive, Classify(constants.AreaOperator, task))

	task.Status = constants.TaskStatusDone
	assert.Equal(t, BucketArchive, Classify(constants.AreaOperator, task))

	assert.Equal(t, BucketNone, Classify("unknown", task))
}

func TestClassify_ExactlyOneTab(t *testing.T) {
	for _, area := range constants.Areas {
		for _, wh := range allApprovalValues {
			for _, acc := range allApprovalValues {
				for _, reg := range allApprovalValues {
					task := doneTask(wh, acc, reg)
					task.PaymentType = constants.PaymentCashless

					bucket := Classify(area, task)
					if bucket == BucketNone {
						continue
					}
					assert.True(t, HasTab(area, bucket), "area=%s bucket=%s", area, bucket)
				}
			}
		}
	}
}

func TestTabs(t *testing.T) {
	assert.Equal(t, []Bucket{BucketPending, BucketDebt, BucketArchive}, Tabs(constants.AreaAccountant))
	assert.Nil(t, Tabs("nope"))
	assert.True(t, IsArea(constants.AreaRegional))
	assert.Equal(t, constants.RoleAccountant, ApproverRole(constants.AreaAccountantApproval))
	assert.Equal(t, "", ApproverRole(constants.AreaOperator))
}
