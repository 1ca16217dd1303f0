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

type TaskController struct {
	taskService services.TaskServiceInterface
	invalidator CacheInvalidator
	logger      *zap.Logger
}

func NewTaskController(taskService services.TaskServiceInterface, invalidator CacheInvalidator, logger *zap.Logger) *TaskController {
	return &TaskController{
		taskService: taskService,
		invalidator: invalidator,
		logger:      logger,
	}
}

// GetTasks - GET /tasks?region=
func (c *TaskController) GetTasks(ctx echo.Context) error {
	reqCtx, cancel := utils.ContextWithTimeout(ctx, requestTimeout)
	defer cancel()

	tasks, err := c.taskService.GetAll(reqCtx, ctx.QueryParam("region"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Successfully", tasks, nil)
}

// GetTasksByStatus - GET /tasks/status/:status?region=
func (c *TaskController) GetTasksByStatus(ctx echo.Context) error {
	reqCtx, cancel := utils.ContextWithTimeout(ctx, requestTimeout)
	defer cancel()

	tasks, err := c.taskService.GetByStatus(reqCtx, ctx.Param("status"), ctx.QueryParam("region"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Successfully", tasks, nil)
}

func (c *TaskController) GetTask(ctx echo.Context) error {
	id, err := parseTaskID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	reqCtx, cancel := utils.ContextWithTimeout(ctx, requestTimeout)
	defer cancel()

	task, err := c.taskService.GetByID(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Successfully", task)
}

func (c *TaskController) GetHistory(ctx echo.Context) error {
	id, err := parseTaskID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	reqCtx, cancel := utils.ContextWithTimeout(ctx, requestTimeout)
	defer cancel()

	items, err := c.taskService.GetHistory(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Successfully", items, nil)
}

func (c *TaskController) CreateTask(ctx echo.Context) error {
	var payload dto.CreateTaskDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	reqCtx, cancel := utils.ContextWithTimeout(ctx, requestTimeout)
	defer cancel()

	task, inv, err := c.taskService.Create(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	applyInvalidation(reqCtx, c.invalidator, inv, c.logger)
	return api.SuccessOne(ctx, http.StatusCreated, "Заявка создана", dto.TaskMutationResponseDTO{Task: task})
}

func (c *TaskController) UpdateTask(ctx echo.Context) error {
	id, err := parseTaskID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateTaskDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	reqCtx, cancel := utils.ContextWithTimeout(ctx, requestTimeout)
	defer cancel()

	task, inv, err := c.taskService.Update(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	applyInvalidation(reqCtx, c.invalidator, inv, c.logger)
	return api.SuccessOne(ctx, http.StatusOK, "Заявка обновлена", dto.TaskMutationResponseDTO{Task: task})
}

func (c *TaskController) DeleteTask(ctx echo.Context) error {
	id, err := parseTaskID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	reqCtx, cancel := utils.ContextWithTimeout(ctx, requestTimeout)
	defer cancel()

	inv, err := c.taskService.Delete(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	applyInvalidation(reqCtx, c.invalidator, inv, c.logger)
	return utils.SuccessResponse(ctx, nil, "Заявка удалена", http.StatusOK)
}
