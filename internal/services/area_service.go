package services

import (
	"context"

	"go.uber.org/zap"

	"service-tasks/internal/dto"
	"service-tasks/internal/entities"
	"service-tasks/internal/tasklist"
	"service-tasks/internal/workflow"
	"service-tasks/pkg/api"
	apperrors "service-tasks/pkg/errors"
	"service-tasks/pkg/utils"
)

type AreaServiceInterface interface {
	List(ctx context.Context, area string, query utils.TaskListQuery) ([]dto.TaskRowDTO, *api.Meta, error)
	Tasks(ctx context.Context, area string, query utils.TaskListQuery) ([]entities.Task, *api.Meta, error)
}

// AreaService - таблица заявок рабочей области: вкладка, фильтры, сортировка, действия.
type AreaService struct {
	tasks  TaskServiceInterface
	rules  workflow.AccessRules
	logger *zap.Logger
}

func NewAreaService(tasks TaskServiceInterface, rules workflow.AccessRules, logger *zap.Logger) *AreaService {
	return &AreaService{tasks: tasks, rules: rules, logger: logger}
}

// Tasks возвращает заявки вкладки после фильтров и сортировки.
// Пустая вкладка - первая вкладка области.
func (s *AreaService) Tasks(ctx context.Context, area string, query utils.TaskListQuery) ([]entities.Task, *api.Meta, error) {
	rows, meta, err := s.rows(ctx, area, query)
	if err != nil {
		return nil, nil, err
	}
	tasks := make([]entities.Task, len(rows))
	for i, r := range rows {
		tasks[i] = *r.Task
	}
	return tasks, meta, nil
}

func (s *AreaService) List(ctx context.Context, area string, query utils.TaskListQuery) ([]dto.TaskRowDTO, *api.Meta, error) {
	return s.rows(ctx, area, query)
}

func (s *AreaService) rows(ctx context.Context, area string, query utils.TaskListQuery) ([]dto.TaskRowDTO, *api.Meta, error) {
	claims, err := utils.GetClaimsFromContext(ctx)
	if err != nil {
		return nil, nil, err
	}
	if !workflow.IsArea(area) {
		return nil, nil, apperrors.ErrNotFound
	}
	if s.rules.Lookup(claims.Role, area) == workflow.AccessNone {
		return nil, nil, apperrors.ErrForbidden
	}

	tabs := workflow.Tabs(area)
	tab := workflow.Bucket(query.Tab)
	if tab == "" {
		tab = tabs[0]
	}
	if !workflow.HasTab(area, tab) {
		return nil, nil, apperrors.NewInvalidInputError("в области %s нет вкладки %q", area, query.Tab)
	}

	all, err := s.tasks.GetAll(ctx, "")
	if err != nil {
		return nil, nil, err
	}

	inTab := make([]entities.Task, 0, len(all))
	for i := range all {
		if workflow.Classify(area, &all[i]) == tab {
			inTab = append(inTab, all[i])
		}
	}

	filtered := tasklist.Apply(inTab, query.Filters)
	// Apply может вернуть исходный срез, сортируем копию, чтобы не трогать кеш.
	sorted := append([]entities.Task(nil), filtered...)
	tasklist.Sort(sorted, query.SortBy, query.SortDir)

	rows := make([]dto.TaskRowDTO, 0, len(sorted))
	for i := range sorted {
		ev := workflow.Evaluate(area, claims.Role, s.rules, &sorted[i])
		rows = append(rows, dto.TaskRowDTO{
			Task:     &sorted[i],
			Bucket:   string(ev.Bucket),
			Actions:  workflow.ActionStrings(ev.Actions),
			Editable: ev.Editable,
		})
	}

	tabNames := make([]string, len(tabs))
	for i, t := range tabs {
		tabNames[i] = string(t)
	}
	meta := &api.Meta{
		Area:    area,
		Tab:     string(tab),
		Tabs:    tabNames,
		SortBy:  query.SortBy,
		SortDir: query.SortDir,
		Filters: query.Filters,
	}

	s.logger.Debug("таблица области",
		zap.String("area", area),
		zap.String("tab", string(tab)),
		zap.String("login", claims.Login),
		zap.Int("total", len(all)),
		zap.Int("rows", len(rows)))
	return rows, meta, nil
}
