package constants

// --- СТАТУСЫ ЗАЯВОК (значения совпадают с тем, что хранится в БД и приходит с фронта) ---
const (
	TaskStatusNew        = "Заявка"
	TaskStatusInProgress = "В роботі"
	TaskStatusDone       = "Виконано"
	TaskStatusBlocked    = "Заблоковано"
)

var TaskStatuses = []string{
	TaskStatusNew,
	TaskStatusInProgress,
	TaskStatusDone,
	TaskStatusBlocked,
}

// StatusPriority - порядок статусов при сортировке по умолчанию.
var StatusPriority = map[string]int{
	TaskStatusNew:        1,
	TaskStatusInProgress: 2,
	TaskStatusBlocked:    3,
	TaskStatusDone:       4,
}

func IsTaskStatus(s string) bool {
	_, ok := StatusPriority[s]
	return ok
}

// --- ЗНАЧЕНИЯ СОГЛАСОВАНИЯ ---
const (
	ApprovalPending  = "На розгляді"
	ApprovalApproved = "Підтверджено"
	ApprovalRejected = "Відмова"
)

func IsApprovalDecision(s string) bool {
	return s == ApprovalPending || s == ApprovalApproved || s == ApprovalRejected
}

// --- ТИПЫ ОПЛАТЫ ---
const (
	PaymentCash     = "Готівка"
	PaymentCashless = "Безготівка"
)

// Формат даты утверждения премии.
const BonusDateLayout = "01-2006"
