package workflow

import (
	"service-tasks/internal/entities"
	"service-tasks/pkg/constants"
)

// Bucket - вкладка рабочей области, в которую попадает заявка.
type Bucket string

const (
	BucketNone    Bucket = "none"
	BucketActive  Bucket = "active"
	BucketPending Bucket = "pending"
	BucketDebt    Bucket = "debt"
	BucketArchive Bucket = "archive"
)

// IsApproved - true или "Підтверджено".
func IsApproved(v entities.Approval) bool {
	return v == entities.ApprovalTrue || v == constants.ApprovalApproved
}

// IsRejected - false или "Відмова".
func IsRejected(v entities.Approval) bool {
	return v == entities.ApprovalFalse || v == constants.ApprovalRejected
}

// awaiting - решение роли ещё не положительное:
// null, "На розгляді", false или "Відмова".
func awaiting(v entities.Approval) bool {
	return v.IsNull() || v == constants.ApprovalPending || IsRejected(v)
}

func isDone(t *entities.Task) bool {
	return t.Status == constants.TaskStatusDone
}

func allApproved(t *entities.Task) bool {
	return IsApproved(t.ApprovedByWarehouse) &&
		IsApproved(t.ApprovedByAccountant) &&
		IsApproved(t.ApprovedByRegionalManager)
}

// WarehousePending - заявка ждёт решения склада.
func WarehousePending(t *entities.Task) bool {
	return isDone(t) && awaiting(t.ApprovedByWarehouse)
}

// WarehouseArchive сравнивает строго с "Підтверджено": булево true сюда не попадает.
func WarehouseArchive(t *entities.Task) bool {
	return isDone(t) && t.ApprovedByWarehouse == constants.ApprovalApproved
}

func AccountantPending(t *entities.Task) bool {
	return isDone(t) && awaiting(t.ApprovedByAccountant)
}

func AccountantArchive(t *entities.Task) bool {
	return isDone(t) && IsApproved(t.ApprovedByAccountant)
}

// AccountantDebt - согласовано бухгалтером, безналичная оплата, оплаты ещё нет.
func AccountantDebt(t *entities.Task) bool {
	return AccountantArchive(t) &&
		t.PaymentType == constants.PaymentCashless &&
		!t.PaymentDate.Valid
}

// RegionalPending - региональный менеджер согласует последним,
// поэтому заявка висит у него, пока не согласованы склад и бухгалтерия.
func RegionalPending(t *entities.Task) bool {
	if !isDone(t) {
		return false
	}
	return awaiting(t.ApprovedByRegionalManager) ||
		!IsApproved(t.ApprovedByWarehouse) ||
		!IsApproved(t.ApprovedByAccountant)
}

func RegionalArchive(t *entities.Task) bool {
	return isDone(t) && allApproved(t)
}

var areaTabs = map[string][]Bucket{
	constants.AreaOperator:           {BucketActive, BucketArchive},
	constants.AreaWarehouse:          {BucketPending, BucketArchive},
	constants.AreaAccountant:         {BucketPending, BucketDebt, BucketArchive},
	constants.AreaAccountantApproval: {BucketPending, BucketArchive},
	constants.AreaRegional:           {BucketPending, BucketArchive},
}

// Tabs - вкладки рабочей области в порядке отображения. nil - область неизвестна.
func Tabs(area string) []Bucket {
	return areaTabs[area]
}

func IsArea(area string) bool {
	_, ok := areaTabs[area]
	return ok
}

// HasTab проверяет, что вкладка есть в области.
func HasTab(area string, tab Bucket) bool {
	for _, b := range areaTabs[area] {
		if b == tab {
			return true
		}
	}
	return false
}

// Classify относит заявку ровно к одной вкладке области.
// Порядок проверки: pending, debt, archive.
func Classify(area string, t *entities.Task) Bucket {
	switch area {
	case constants.AreaOperator:
		if isDone(t) {
			return BucketArchive
		}
		return BucketActive
	case constants.AreaWarehouse:
		return classify(t, WarehousePending, nil, WarehouseArchive)
	case constants.AreaAccountant:
		return classify(t, AccountantPending, AccountantDebt, AccountantArchive)
	case constants.AreaAccountantApproval:
		return classify(t, AccountantPending, nil, AccountantArchive)
	case constants.AreaRegional:
		return classify(t, RegionalPending, nil, RegionalArchive)
	}
	return BucketNone
}

type predicate func(*entities.Task) bool

func classify(t *entities.Task, pending, debt, archive predicate) Bucket {
	switch {
	case pending(t):
		return BucketPending
	case debt != nil && debt(t):
		return BucketDebt
	case archive(t):
		return BucketArchive
	}
	return BucketNone
}

// ApproverRole - роль, чьё решение собирает область. "" - область без согласования.
func ApproverRole(area string) string {
	switch area {
	case constants.AreaWarehouse:
		return constants.RoleWarehouse
	case constants.AreaAccountant, constants.AreaAccountantApproval:
		return constants.RoleAccountant
	case constants.AreaRegional:
		return constants.RoleRegionalManager
	}
	return ""
}
