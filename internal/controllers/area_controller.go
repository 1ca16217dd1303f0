package controllers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"service-tasks/internal/services"
	"service-tasks/pkg/api"
	"service-tasks/pkg/utils"
)

type AreaController struct {
	areaService services.AreaServiceInterface
	logger      *zap.Logger
}

func NewAreaController(areaService services.AreaServiceInterface, logger *zap.Logger) *AreaController {
	return &AreaController{areaService: areaService, logger: logger}
}

// ListTasks - GET /areas/:area/tasks?tab=&sort=&dir=&filter[key]=value
func (c *AreaController) ListTasks(ctx echo.Context) error {
	query := utils.ParseTaskListQuery(ctx.QueryParams())

	reqCtx, cancel := utils.ContextWithTimeout(ctx, requestTimeout)
	defer cancel()

	rows, meta, err := c.areaService.List(reqCtx, ctx.Param("area"), query)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Successfully", rows, meta)
}
