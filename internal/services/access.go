package services

import (
	"context"
	"time"

	"service-tasks/internal/dto"
	"service-tasks/internal/entities"
	"service-tasks/internal/workflow"
	"service-tasks/pkg/constants"
	apperrors "service-tasks/pkg/errors"
	"service-tasks/pkg/eventbus"
	"service-tasks/pkg/utils"
)

// EventPublisher - публикация событий (eventbus.Bus).
type EventPublisher interface {
	Publish(ctx context.Context, event eventbus.Event)
}

// TaskListCache - кеш списков заявок (cache.TaskCache).
type TaskListCache interface {
	KeyFor(ctx context.Context, status, region string) string
	GetList(ctx context.Context, key string) ([]entities.Task, bool)
	SetList(ctx context.Context, key string, tasks []entities.Task)
}

// allowedAnywhere - действие доступно пользователю хотя бы в одной рабочей области.
func allowedAnywhere(rules workflow.AccessRules, role string, task *entities.Task, action workflow.Action) bool {
	for _, area := range constants.Areas {
		if workflow.Evaluate(area, role, rules, task).Allows(action) {
			return true
		}
	}
	return false
}

// checkRegion - пользователи с привязкой к региону работают только со своими заявками.
func checkRegion(claims *dto.UserClaims, task *entities.Task) error {
	region := utils.ScopeRegion(claims.Role, claims.Region, "")
	if region == constants.RegionAll || region == task.Region {
		return nil
	}
	return apperrors.ErrForbidden
}

type clock func() time.Time
