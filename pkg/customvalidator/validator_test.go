package customvalidator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-tasks/internal/entities"
)

type sample struct {
	Status   string            `validate:"omitempty,task_status"`
	Decision string            `validate:"omitempty,approval_decision"`
	Approval entities.Approval `validate:"omitempty,approval_value"`
	Date     *string           `validate:"omitempty,task_date"`
	Bonus    string            `validate:"omitempty,month_year"`
}

func newValidator(t *testing.T) *validator.Validate {
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))
	return v
}

func strPtr(s string) *string { return &s }

func TestRules_Valid(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(sample{
		Status:   "Виконано",
		Decision: "Відмова",
		Date:     strPtr("15.03.2024"),
		Bonus:    "03-2024",
	})
	assert.NoError(t, err)
	assert.NoError(t, v.Struct(sample{}))
}

func TestRules_Invalid(t *testing.T) {
	v := newValidator(t)

	cases := map[string]sample{
		"Status":   {Status: "Done"},
		"Decision": {Decision: "true"},
		"Approval": {Approval: "garbage"},
		"Date":     {Date: strPtr("2024/03/15")},
		"Bonus":    {Bonus: "3-2024"},
	}
	for field, s := range cases {
		t.Run(field, func(t *testing.T) {
			err := v.Struct(s)
			require.Error(t, err)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, field, verrs[0].Field())
		})
	}
}

func TestMonthYear_RejectsBadMonth(t *testing.T) {
	v := newValidator(t)
	assert.Error(t, v.Struct(sample{Bonus: "13-2024"}))
}

func TestApprovalValue_AcceptsBoolAndDecisions(t *testing.T) {
	v := newValidator(t)
	for _, a := range []entities.Approval{entities.ApprovalTrue, entities.ApprovalFalse, "На розгляді", "Підтверджено", "Відмова"} {
		assert.NoError(t, v.Struct(sample{Approval: a}), string(a))
	}
}
