package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"service-tasks/internal/documents"
	"service-tasks/internal/entities"
	"service-tasks/internal/tasklist"
	"service-tasks/pkg/api"
	apperrors "service-tasks/pkg/errors"
	"service-tasks/pkg/utils"
)

const (
	ReportFormatHTML  = "html"
	ReportFormatExcel = "xlsx"
)

// Document - готовый файл для отдачи клиенту.
type Document struct {
	ContentType string
	FileName    string
	Body        []byte
}

type ReportServiceInterface interface {
	Report(ctx context.Context, format, area string, query utils.TaskListQuery) (*Document, error)
	Naryad(ctx context.Context, taskID int64) (*Document, error)
}

type ReportService struct {
	tasks  TaskServiceInterface
	areas  AreaServiceInterface
	logger *zap.Logger
	now    clock
}

func NewReportService(tasks TaskServiceInterface, areas AreaServiceInterface, logger *zap.Logger) *ReportService {
	return &ReportService{tasks: tasks, areas: areas, logger: logger, now: time.Now}
}

// reportTasks - заявки вкладки области или, без области, все доступные заявки.
func (s *ReportService) reportTasks(ctx context.Context, area string, query utils.TaskListQuery) ([]entities.Task, string, error) {
	if area != "" {
		tasks, meta, err := s.areas.Tasks(ctx, area, query)
		if err != nil {
			return nil, "", err
		}
		return tasks, reportTitle(meta), nil
	}

	all, err := s.tasks.GetAll(ctx, query.Filters["region"])
	if err != nil {
		return nil, "", err
	}
	tasks := append([]entities.Task(nil), tasklist.Apply(all, query.Filters)...)
	tasklist.Sort(tasks, query.SortBy, query.SortDir)
	return tasks, "Звіт по заявках", nil
}

func reportTitle(meta *api.Meta) string {
	return fmt.Sprintf("Звіт по заявках: %s / %s", meta.Area, meta.Tab)
}

func (s *ReportService) Report(ctx context.Context, format, area string, query utils.TaskListQuery) (*Document, error) {
	if format == "" {
		format = ReportFormatHTML
	}
	if format != ReportFormatHTML && format != ReportFormatExcel {
		return nil, apperrors.NewInvalidInputError("неизвестный формат отчёта: %q", format)
	}

	tasks, title, err := s.reportTasks(ctx, area, query)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var buf bytes.Buffer
	doc := &Document{}
	switch format {
	case ReportFormatExcel:
		err = documents.WriteExcel(&buf, tasks)
		doc.ContentType = documents.ContentTypeExcel
		doc.FileName = fmt.Sprintf("report_%s.xlsx", now.Format("2006-01-02"))
	default:
		err = documents.RenderReport(&buf, title, tasks, now)
		doc.ContentType = documents.ContentTypeHTML
		doc.FileName = fmt.Sprintf("report_%s.html", now.Format("2006-01-02"))
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка формирования отчёта: %w", err)
	}
	doc.Body = buf.Bytes()

	s.logger.Info("сформирован отчёт", zap.String("format", format), zap.String("area", area), zap.Int("tasks", len(tasks)))
	return doc, nil
}

// Naryad - наряд-заказ по заявке для открытия в Word.
func (s *ReportService) Naryad(ctx context.Context, taskID int64) (*Document, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := documents.RenderNaryad(&buf, task); err != nil {
		return nil, fmt.Errorf("ошибка формирования наряда: %w", err)
	}
	return &Document{
		ContentType: documents.ContentTypeWord,
		FileName:    documents.NaryadFileName(task),
		Body:        buf.Bytes(),
	}, nil
}
