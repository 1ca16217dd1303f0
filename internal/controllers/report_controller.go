package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"service-tasks/internal/services"
	"service-tasks/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetReport - GET /tasks/report?format=html|xlsx&area=&tab=&filter[key]=value
func (c *ReportController) GetReport(ctx echo.Context) error {
	query := utils.ParseTaskListQuery(ctx.QueryParams())
	format := strings.ToLower(ctx.QueryParam("format"))
	c.logger.Debug("Запрос на отчет с фильтрами", zap.Any("filters", query.Filters), zap.String("format", format))

	reqCtx, cancel := utils.ContextWithTimeout(ctx, requestTimeout)
	defer cancel()

	doc, err := c.reportService.Report(reqCtx, format, ctx.QueryParam("area"), query)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return respondWithDocument(ctx, doc, format == services.ReportFormatExcel)
}

// GetNaryad - GET /tasks/:id/naryad, файл для Word.
func (c *ReportController) GetNaryad(ctx echo.Context) error {
	id, err := parseTaskID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	reqCtx, cancel := utils.ContextWithTimeout(ctx, requestTimeout)
	defer cancel()

	doc, err := c.reportService.Naryad(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return respondWithDocument(ctx, doc, true)
}

func respondWithDocument(ctx echo.Context, doc *services.Document, attachment bool) error {
	disposition := "inline"
	if attachment {
		disposition = "attachment"
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("%s; filename=%q", disposition, doc.FileName))
	return ctx.Blob(http.StatusOK, doc.ContentType, doc.Body)
}
