package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"service-tasks/internal/dto"
	"service-tasks/internal/services"
	"service-tasks/pkg/api"
	"service-tasks/pkg/utils"
)

type ApprovalController struct {
	approvalService services.ApprovalServiceInterface
	invalidator     CacheInvalidator
	logger          *zap.Logger
}

func NewApprovalController(approvalService services.ApprovalServiceInterface, invalidator CacheInvalidator, logger *zap.Logger) *ApprovalController {
	return &ApprovalController{
		approvalService: approvalService,
		invalidator:     invalidator,
		logger:          logger,
	}
}

// Decide - POST /tasks/:id/approval.
// Клиент не патчит таблицу из ответа, а перечитывает список по событию tasks.invalidated.
func (c *ApprovalController) Decide(ctx echo.Context) error {
	id, err := parseTaskID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.ApprovalDecisionDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	reqCtx, cancel := utils.ContextWithTimeout(ctx, requestTimeout)
	defer cancel()

	task, inv, err := c.approvalService.Decide(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	applyInvalidation(reqCtx, c.invalidator, inv, c.logger)
	return api.SuccessOne(ctx, http.StatusOK, "Решение сохранено", dto.TaskMutationResponseDTO{Task: task})
}
