package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"service-tasks/internal/cache"
	apperrors "service-tasks/pkg/errors"
)

// Лимит на поход в БД и Redis в рамках одного запроса.
const requestTimeout = 15 * time.Second

// CacheInvalidator применяет токен сброса кеша (cache.TaskCache).
type CacheInvalidator interface {
	Apply(ctx context.Context, inv cache.Invalidation) error
}

// applyInvalidation сбрасывает кеш после успешного изменения.
// Ошибка сброса не отменяет уже сохраненное изменение.
func applyInvalidation(ctx context.Context, invalidator CacheInvalidator, inv cache.Invalidation, logger *zap.Logger) {
	if err := invalidator.Apply(ctx, inv); err != nil {
		logger.Error("не удалось сбросить кеш заявок",
			zap.String("reason", inv.Reason()),
			zap.Int64s("taskIds", inv.TaskIDs()),
			zap.Error(err))
	}
}

func parseTaskID(ctx echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewHttpError(http.StatusBadRequest, "некорректный ID заявки", apperrors.ErrBadRequest, map[string]interface{}{"param": ctx.Param(name)})
	}
	return id, nil
}

func bindAndValidate(ctx echo.Context, payload interface{}) error {
	if err := ctx.Bind(payload); err != nil {
		return apperrors.NewHttpError(http.StatusBadRequest, "неверный формат запроса", err, nil)
	}
	return ctx.Validate(payload)
}
