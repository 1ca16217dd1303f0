// Файл: pkg/customvalidator/validators.go

package customvalidator

import (
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"

	"service-tasks/internal/entities"
	"service-tasks/internal/tasklist"
	"service-tasks/internal/workflow"
	"service-tasks/pkg/constants"
)

// RegisterCustomValidations регистрирует правила валидации заявок
// в переданном экземпляре валидатора.
func RegisterCustomValidations(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"task_status":       isTaskStatus,
		"approval_decision": isApprovalDecision,
		"approval_value":    isApprovalValue,
		"task_date":         isTaskDate,
		"month_year":        isMonthYear,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// fieldString достает строку из string, *string или типа на основе string.
func fieldString(fl validator.FieldLevel) (string, bool) {
	field := fl.Field()
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return "", false
		}
		field = field.Elem()
	}
	if field.Kind() != reflect.String {
		return "", false
	}
	return field.String(), true
}

func isTaskStatus(fl validator.FieldLevel) bool {
	s, ok := fieldString(fl)
	return ok && constants.IsTaskStatus(s)
}

func isApprovalDecision(fl validator.FieldLevel) bool {
	s, ok := fieldString(fl)
	return ok && constants.IsApprovalDecision(s)
}

// isApprovalValue - значение поля согласования в форме администратора.
func isApprovalValue(fl validator.FieldLevel) bool {
	s, ok := fieldString(fl)
	return ok && workflow.IsApprovalValue(entities.Approval(s))
}

func isTaskDate(fl validator.FieldLevel) bool {
	s, ok := fieldString(fl)
	if !ok {
		return false
	}
	_, ok = tasklist.ParseDate(s)
	return ok
}

// isMonthYear - формат даты премии "MM-YYYY".
func isMonthYear(fl validator.FieldLevel) bool {
	s, ok := fieldString(fl)
	if !ok || len(s) != len(constants.BonusDateLayout) {
		return false
	}
	_, err := time.Parse(constants.BonusDateLayout, s)
	return err == nil
}
