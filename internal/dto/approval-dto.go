package dto

import "service-tasks/internal/entities"

// ApprovalDecisionDTO - решение согласующего по заявке.
type ApprovalDecisionDTO struct {
	// Роль согласующего. Учитывается только для администратора,
	// остальные согласуют от своей роли.
	Role    string `json:"role" validate:"omitempty,oneof=warehouse accountant buhgalteria regionalManager"`
	Value   string `json:"value" validate:"required,approval_decision"`
	Comment string `json:"comment" validate:"max=2000"`
	Version int64  `json:"version" validate:"required,gt=0"`
}

// TaskMutationResponseDTO - ответ на изменение заявки.
type TaskMutationResponseDTO struct {
	Task *entities.Task `json:"task"`
}
