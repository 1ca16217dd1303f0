package workflow

import (
	"time"

	"github.com/aarondl/null/v8"

	"service-tasks/internal/entities"
	"service-tasks/pkg/constants"
	apperrors "service-tasks/pkg/errors"
)

// Decision - решение одного согласующего.
type Decision struct {
	Role    string
	Value   string
	Comment string
	// Имя пользователя для отметки об отказе.
	Actor string
	At    time.Time
}

type approvalSlot struct {
	value         *entities.Approval
	comment       *null.String
	rejectionDate *null.Time
	rejectionUser *null.String
}

func slotFor(t *entities.Task, role string) (approvalSlot, bool) {
	switch constants.NormalizeRole(role) {
	case constants.RoleWarehouse:
		return approvalSlot{&t.ApprovedByWarehouse, &t.WarehouseComment, &t.WarehouseRejectionDate, &t.WarehouseRejectionUser}, true
	case constants.RoleAccountant:
		return approvalSlot{&t.ApprovedByAccountant, &t.AccountantComment, &t.AccountantRejectionDate, &t.AccountantRejectionUser}, true
	case constants.RoleRegionalManager:
		return approvalSlot{&t.ApprovedByRegionalManager, &t.RegionalManagerComment, &t.RegionalManagerRejectionDate, &t.RegionalManagerRejectionUser}, true
	}
	return approvalSlot{}, false
}

// IsApproverRole - роль, у которой есть своё поле согласования.
func IsApproverRole(role string) bool {
	_, ok := slotFor(&entities.Task{}, role)
	return ok
}

// ApplyDecision возвращает новую версию заявки с решением согласующего.
// Исходная заявка не меняется.
func ApplyDecision(task entities.Task, d Decision) (entities.Task, error) {
	if !constants.IsApprovalDecision(d.Value) {
		return task, apperrors.NewInvalidInputError("недопустимое значение согласования: %q", d.Value)
	}

	next := task
	slot, ok := slotFor(&next, d.Role)
	if !ok {
		return task, apperrors.NewInvalidInputError("роль %q не участвует в согласовании", d.Role)
	}

	slot.set(entities.Approval(d.Value), d.Actor, d.At)
	if d.Comment != "" {
		*slot.comment = null.StringFrom(d.Comment)
	}

	StampBonus(&next, d.At)
	return next, nil
}

// set меняет значение и отметку об отказе: "Відмова" ставит дату и автора,
// "Підтверджено" их снимает, остальные значения отметку не трогают.
func (s approvalSlot) set(v entities.Approval, actor string, at time.Time) {
	*s.value = v
	switch string(v) {
	case constants.ApprovalRejected:
		*s.rejectionDate = null.TimeFrom(at)
		*s.rejectionUser = null.StringFrom(actor)
	case constants.ApprovalApproved:
		*s.rejectionDate = null.Time{}
		*s.rejectionUser = null.String{}
	}
}

// IsApprovalValue - допустимое значение поля согласования:
// null, булево или одно из решений.
func IsApprovalValue(v entities.Approval) bool {
	return v.IsNull() || v.IsBool() || constants.IsApprovalDecision(string(v))
}

// SetApproval выставляет значение согласования роли в обход решения согласующего
// (правка администратором). Неизменённое значение не трогает.
func SetApproval(t *entities.Task, role string, v entities.Approval, actor string, at time.Time) error {
	if !IsApprovalValue(v) {
		return apperrors.NewInvalidInputError("недопустимое значение согласования: %q", string(v))
	}
	slot, ok := slotFor(t, role)
	if !ok {
		return apperrors.NewInvalidInputError("роль %q не участвует в согласовании", role)
	}
	if *slot.value == v {
		return nil
	}
	slot.set(v, actor, at)
	return nil
}

// StampBonus проставляет месяц премии, когда заявка выполнена и согласована всеми тремя.
// Уже проставленный месяц не трогает. Возвращает true, если дата была проставлена.
func StampBonus(t *entities.Task, now time.Time) bool {
	if !isDone(t) || !allApproved(t) {
		return false
	}
	if t.BonusApprovalDate.Valid && t.BonusApprovalDate.String != "" {
		return false
	}
	t.BonusApprovalDate = null.StringFrom(now.Format(constants.BonusDateLayout))
	return true
}
