package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"service-tasks/internal/services"
	"service-tasks/pkg/api"
	apperrors "service-tasks/pkg/errors"
	"service-tasks/pkg/utils"
)

type AttachmentController struct {
	attachmentService services.AttachmentServiceInterface
	logger            *zap.Logger
}

func NewAttachmentController(
	attachmentService services.AttachmentServiceInterface,
	logger *zap.Logger,
) *AttachmentController {
	return &AttachmentController{
		attachmentService: attachmentService,
		logger:            logger,
	}
}

// Upload - POST /files/upload/:taskId, multipart поле "file".
func (c *AttachmentController) Upload(ctx echo.Context) error {
	taskID, err := parseTaskID(ctx, "taskId")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(
				http.StatusBadRequest,
				"Файл не был передан",
				apperrors.ErrBadRequest,
				nil,
			),
			c.logger,
		)
	}

	reqCtx, cancel := utils.ContextWithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := c.attachmentService.Upload(reqCtx, taskID, fileHeader)
	if err != nil {
		c.logger.Error("ошибка при загрузке файла", zap.Error(err), zap.Int64("taskId", taskID))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "Файл загружен", res)
}

func (c *AttachmentController) GetByTask(ctx echo.Context) error {
	taskID, err := parseTaskID(ctx, "taskId")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	reqCtx, cancel := utils.ContextWithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := c.attachmentService.GetByTaskID(reqCtx, taskID)
	if err != nil {
		c.logger.Error("ошибка при получении вложений", zap.Error(err), zap.Int64("taskId", taskID))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Successfully", res, nil)
}

func (c *AttachmentController) Delete(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("fileId"), 10, 64)
	if err != nil {
		c.logger.Error("неверный ID вложения", zap.Error(err))
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "неверный ID вложения"), c.logger)
	}
	reqCtx, cancel := utils.ContextWithTimeout(ctx, requestTimeout)
	defer cancel()

	if err := c.attachmentService.Delete(reqCtx, id); err != nil {
		c.logger.Error("ошибка при удалении вложения", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Attachment successfully deleted", http.StatusOK)
}
