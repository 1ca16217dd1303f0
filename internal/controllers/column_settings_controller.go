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

type ColumnSettingsController struct {
	settingsService services.ColumnSettingsServiceInterface
	invalidator     CacheInvalidator
	logger          *zap.Logger
}

func NewColumnSettingsController(settingsService services.ColumnSettingsServiceInterface, invalidator CacheInvalidator, logger *zap.Logger) *ColumnSettingsController {
	return &ColumnSettingsController{
		settingsService: settingsService,
		invalidator:     invalidator,
		logger:          logger,
	}
}

func (c *ColumnSettingsController) Get(ctx echo.Context) error {
	reqCtx, cancel := utils.ContextWithTimeout(ctx, requestTimeout)
	defer cancel()

	settings, err := c.settingsService.Get(reqCtx, ctx.Param("area"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Successfully", settings)
}

func (c *ColumnSettingsController) Save(ctx echo.Context) error {
	var payload dto.ColumnSettingsDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	reqCtx, cancel := utils.ContextWithTimeout(ctx, requestTimeout)
	defer cancel()

	settings, inv, err := c.settingsService.Save(reqCtx, ctx.Param("area"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	applyInvalidation(reqCtx, c.invalidator, inv, c.logger)
	return api.SuccessOne(ctx, http.StatusOK, "Настройки сохранены", settings)
}
