package documents

import (
	"strconv"

	"github.com/aarondl/null/v8"

	"service-tasks/internal/entities"
	"service-tasks/pkg/constants"
)

const displayDate = "02.01.2006"

// Column - колонка отчёта.
type Column struct {
	Title string
	Width float64
	Value func(t *entities.Task) string
}

// ReportColumns - колонки печатного отчёта и выгрузки в Excel.
var ReportColumns = []Column{
	{"№", 8, func(t *entities.Task) string { return strconv.FormatInt(t.ID, 10) }},
	{"Статус", 14, func(t *entities.Task) string { return t.Status }},
	{"Дата заявки", 14, func(t *entities.Task) string { return formatDate(t.RequestDate) }},
	{"Дата виконання", 14, func(t *entities.Task) string { return formatDate(t.Date) }},
	{"Регіон", 16, func(t *entities.Task) string { return t.Region }},
	{"Замовник", 30, func(t *entities.Task) string { return t.Client }},
	{"Адреса", 30, func(t *entities.Task) string { return t.Address }},
	{"Обладнання", 25, func(t *entities.Task) string { return t.Equipment }},
	{"Інженер 1", 20, func(t *entities.Task) string { return t.Engineer1 }},
	{"Інженер 2", 20, func(t *entities.Task) string { return t.Engineer2 }},
	{"Вид оплати", 14, func(t *entities.Task) string { return t.PaymentType }},
	{"Рахунок", 14, func(t *entities.Task) string { return t.Invoice }},
	{"Дата оплати", 14, func(t *entities.Task) string { return formatDate(t.PaymentDate) }},
	{"Виконані роботи", 40, func(t *entities.Task) string { return t.Work }},
	{"Сума послуги", 14, func(t *entities.Task) string { return formatMoney(t.ServiceTotal) }},
	{"Премія", 12, func(t *entities.Task) string { return formatMoney(t.ServiceBonus) }},
	{"Склад", 16, func(t *entities.Task) string { return ApprovalLabel(t.ApprovedByWarehouse) }},
	{"Бухгалтерія", 16, func(t *entities.Task) string { return ApprovalLabel(t.ApprovedByAccountant) }},
	{"Регіональний менеджер", 16, func(t *entities.Task) string { return ApprovalLabel(t.ApprovedByRegionalManager) }},
	{"Місяць премії", 12, func(t *entities.Task) string { return t.BonusApprovalDate.String }},
}

// ApprovalLabel - текстовое представление согласования. Пустое значение - пустая строка.
func ApprovalLabel(a entities.Approval) string {
	switch a {
	case entities.ApprovalTrue:
		return constants.ApprovalApproved
	case entities.ApprovalFalse:
		return constants.ApprovalRejected
	}
	return a.String()
}

func formatDate(d null.Time) string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(displayDate)
}

func formatMoney(f null.Float64) string {
	if !f.Valid {
		return ""
	}
	return strconv.FormatFloat(f.Float64, 'f', 2, 64)
}

func formatInt(i null.Int) string {
	if !i.Valid {
		return ""
	}
	return strconv.Itoa(i.Int)
}

func formatNumber(f null.Float64) string {
	if !f.Valid {
		return ""
	}
	return strconv.FormatFloat(f.Float64, 'f', -1, 64)
}
