package services

import (
	"strings"
	"time"

	"github.com/aarondl/null/v8"

	"service-tasks/internal/dto"
	"service-tasks/internal/entities"
	"service-tasks/internal/tasklist"
	"service-tasks/internal/workflow"
	"service-tasks/pkg/constants"
	apperrors "service-tasks/pkg/errors"
)

func parseTaskDate(field, s string) (null.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return null.Time{}, nil
	}
	t, ok := tasklist.ParseDate(s)
	if !ok {
		return null.Time{}, apperrors.NewInvalidInputError("поле %s: некорректная дата %q", field, s)
	}
	return null.TimeFrom(t), nil
}

// applyPayload переносит поля формы в заявку.
// Месяц премии меняет только администратор, согласования - applyAdminApprovals.
func applyPayload(t *entities.Task, p dto.TaskPayload, isAdmin bool) error {
	var err error
	if t.RequestDate, err = parseTaskDate("requestDate", p.RequestDate); err != nil {
		return err
	}
	if t.Date, err = parseTaskDate("date", p.Date); err != nil {
		return err
	}
	if t.PaymentDate, err = parseTaskDate("paymentDate", p.PaymentDate); err != nil {
		return err
	}

	if p.Status != "" {
		t.Status = p.Status
	}
	t.UrgentRequest = p.UrgentRequest

	t.Client = strings.TrimSpace(p.Client)
	t.Address = strings.TrimSpace(p.Address)
	t.Equipment = strings.TrimSpace(p.Equipment)
	t.EquipmentSerial = strings.TrimSpace(p.EquipmentSerial)
	t.Engineer1 = strings.TrimSpace(p.Engineer1)
	t.Engineer2 = strings.TrimSpace(p.Engineer2)
	t.Region = strings.TrimSpace(p.Region)
	t.PaymentType = strings.TrimSpace(p.PaymentType)
	t.RequestDesc = p.RequestDesc
	t.Work = p.Work
	t.Invoice = strings.TrimSpace(p.Invoice)
	t.Comments = p.Comments

	t.OilType = p.OilType
	t.OilUsed = null.Float64FromPtr(p.OilUsed)
	t.OilPrice = null.Float64FromPtr(p.OilPrice)
	t.OilTotal = null.Float64FromPtr(p.OilTotal)
	t.FilterName = p.FilterName
	t.FilterCount = null.IntFromPtr(p.FilterCount)
	t.FilterPrice = null.Float64FromPtr(p.FilterPrice)
	t.FilterSum = null.Float64FromPtr(p.FilterSum)
	t.AirFilterName = p.AirFilterName
	t.AirFilterCount = null.IntFromPtr(p.AirFilterCount)
	t.AirFilterPrice = null.Float64FromPtr(p.AirFilterPrice)
	t.AirFilterSum = null.Float64FromPtr(p.AirFilterSum)
	t.AntifreezeType = p.AntifreezeType
	t.AntifreezeL = null.Float64FromPtr(p.AntifreezeL)
	t.AntifreezeSum = null.Float64FromPtr(p.AntifreezeSum)
	t.TransportSum = null.Float64FromPtr(p.TransportSum)
	t.OtherMaterials = p.OtherMaterials
	t.OtherSum = null.Float64FromPtr(p.OtherSum)
	t.WorkPrice = null.Float64FromPtr(p.WorkPrice)
	t.ServiceBonus = null.Float64FromPtr(p.ServiceBonus)
	t.ServiceTotal = null.Float64FromPtr(p.ServiceTotal)

	if isAdmin && p.BonusApprovalDate != "" {
		t.BonusApprovalDate = null.StringFrom(p.BonusApprovalDate)
	}
	return nil
}

// applyAdminApprovals переносит согласования из формы администратора
// вместе с отметками об отказе.
func applyAdminApprovals(t *entities.Task, p dto.TaskPayload, actor string, at time.Time) error {
	values := []struct {
		role  string
		value entities.Approval
	}{
		{constants.RoleWarehouse, p.ApprovedByWarehouse},
		{constants.RoleAccountant, p.ApprovedByAccountant},
		{constants.RoleRegionalManager, p.ApprovedByRegionalManager},
	}
	for _, v := range values {
		if err := workflow.SetApproval(t, v.role, v.value, actor, at); err != nil {
			return err
		}
	}
	return nil
}

func historyToDTO(items []entities.TaskHistory) []dto.TaskHistoryDTO {
	out := make([]dto.TaskHistoryDTO, 0, len(items))
	for _, h := range items {
		out = append(out, dto.TaskHistoryDTO{
			ID:        h.ID,
			EventType: h.EventType,
			UserName:  h.UserName,
			Field:     h.Field.String,
			OldValue:  h.OldValue.String,
			NewValue:  h.NewValue.String,
			Comment:   h.Comment.String,
			CreatedAt: h.CreatedAt,
		})
	}
	return out
}
