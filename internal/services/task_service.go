package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"service-tasks/internal/cache"
	"service-tasks/internal/dto"
	"service-tasks/internal/entities"
	"service-tasks/internal/events"
	"service-tasks/internal/repositories"
	"service-tasks/internal/workflow"
	"service-tasks/pkg/constants"
	apperrors "service-tasks/pkg/errors"
	"service-tasks/pkg/filestorage"
	"service-tasks/pkg/utils"
)

type TaskServiceInterface interface {
	GetAll(ctx context.Context, region string) ([]entities.Task, error)
	GetByStatus(ctx context.Context, status, region string) ([]entities.Task, error)
	GetByID(ctx context.Context, id int64) (*entities.Task, error)
	GetHistory(ctx context.Context, id int64) ([]dto.TaskHistoryDTO, error)
	Create(ctx context.Context, payload dto.CreateTaskDTO) (*entities.Task, cache.Invalidation, error)
	Update(ctx context.Context, id int64, payload dto.UpdateTaskDTO) (*entities.Task, cache.Invalidation, error)
	Delete(ctx context.Context, id int64) (cache.Invalidation, error)
}

type TaskService struct {
	txManager   repositories.TxManagerInterface
	repo        repositories.TaskRepositoryInterface
	historyRepo repositories.TaskHistoryRepositoryInterface
	attachRepo  repositories.AttachmentRepositoryInterface
	fileStorage filestorage.FileStorageInterface
	listCache   TaskListCache
	publisher   EventPublisher
	rules       workflow.AccessRules
	logger      *zap.Logger
	now         clock
}

func NewTaskService(
	txManager repositories.TxManagerInterface,
	repo repositories.TaskRepositoryInterface,
	historyRepo repositories.TaskHistoryRepositoryInterface,
	attachRepo repositories.AttachmentRepositoryInterface,
	fileStorage filestorage.FileStorageInterface,
	listCache TaskListCache,
	publisher EventPublisher,
	rules workflow.AccessRules,
	logger *zap.Logger,
) *TaskService {
	return &TaskService{
		txManager:   txManager,
		repo:        repo,
		historyRepo: historyRepo,
		attachRepo:  attachRepo,
		fileStorage: fileStorage,
		listCache:   listCache,
		publisher:   publisher,
		rules:       rules,
		logger:      logger,
		now:         time.Now,
	}
}

// GetAll - все заявки в пределах региона пользователя.
func (s *TaskService) GetAll(ctx context.Context, region string) ([]entities.Task, error) {
	return s.list(ctx, "", region)
}

func (s *TaskService) GetByStatus(ctx context.Context, status, region string) ([]entities.Task, error) {
	if !constants.IsTaskStatus(status) {
		return nil, apperrors.NewInvalidInputError("неизвестный статус заявки: %q", status)
	}
	return s.list(ctx, status, region)
}

// list читает список через кеш. Регион ограничивается правами пользователя.
func (s *TaskService) list(ctx context.Context, status, region string) ([]entities.Task, error) {
	claims, err := utils.GetClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	region = utils.ScopeRegion(claims.Role, claims.Region, region)

	key := s.listCache.KeyFor(ctx, status, region)
	if tasks, ok := s.listCache.GetList(ctx, key); ok {
		s.logger.Debug("список заявок из кеша", zap.String("key", key), zap.Int("count", len(tasks)))
		return tasks, nil
	}

	tasks, err := s.repo.List(ctx, repositories.TaskFilter{Status: status, Region: region})
	if err != nil {
		return nil, err
	}
	s.listCache.SetList(ctx, key, tasks)
	return tasks, nil
}

func (s *TaskService) GetByID(ctx context.Context, id int64) (*entities.Task, error) {
	claims, err := utils.GetClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkRegion(claims, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) GetHistory(ctx context.Context, id int64) ([]dto.TaskHistoryDTO, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	items, err := s.historyRepo.FindByTaskID(ctx, id)
	if err != nil {
		return nil, err
	}
	return historyToDTO(items), nil
}

func (s *TaskService) Create(ctx context.Context, payload dto.CreateTaskDTO) (*entities.Task, cache.Invalidation, error) {
	claims, err := utils.GetClaimsFromContext(ctx)
	if err != nil {
		return nil, cache.Invalidation{}, err
	}
	isAdmin := utils.IsAdmin(claims.Role)
	// заявки заводят операторы, инженер только ведёт их
	if !isAdmin && (claims.Role == constants.RoleEngineer || s.rules.Lookup(claims.Role, constants.AreaOperator) != workflow.AccessFull) {
		return nil, cache.Invalidation{}, apperrors.ErrForbidden
	}

	task := entities.Task{Status: constants.TaskStatusNew}
	if err := applyPayload(&task, payload.TaskPayload, isAdmin); err != nil {
		return nil, cache.Invalidation{}, err
	}
	if isAdmin {
		if err := applyAdminApprovals(&task, payload.TaskPayload, claims.DisplayName(), s.now()); err != nil {
			return nil, cache.Invalidation{}, err
		}
	}
	if region := utils.ScopeRegion(claims.Role, claims.Region, ""); region != constants.RegionAll {
		task.Region = region
	}
	workflow.StampBonus(&task, s.now())

	var created *entities.Task
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		if created, err = s.repo.Create(ctx, tx, &task); err != nil {
			return err
		}
		return s.historyRepo.Create(ctx, tx, entities.TaskHistory{
			TaskID:    created.ID,
			UserID:    claims.UserID,
			UserName:  claims.DisplayName(),
			EventType: entities.HistoryEventCreated,
			NewValue:  null.StringFrom(created.Status),
			TxID:      uuid.NewString(),
		})
	})
	if err != nil {
		return nil, cache.Invalidation{}, err
	}

	s.logger.Info("заявка создана", zap.Int64("taskId", created.ID), zap.String("login", claims.Login))
	s.publisher.Publish(ctx, events.TaskChangedEvent{TaskID: created.ID, Action: events.TaskActionCreated, ActorID: claims.UserID})
	return created, cache.TasksChanged(events.TaskActionCreated, created.ID), nil
}

func (s *TaskService) Update(ctx context.Context, id int64, payload dto.UpdateTaskDTO) (*entities.Task, cache.Invalidation, error) {
	claims, err := utils.GetClaimsFromContext(ctx)
	if err != nil {
		return nil, cache.Invalidation{}, err
	}
	isAdmin := utils.IsAdmin(claims.Role)
	txID := uuid.NewString()
	now := s.now()

	var updated *entities.Task
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		current, err := s.repo.FindForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := checkRegion(claims, current); err != nil {
			return err
		}
		if !allowedAnywhere(s.rules, claims.Role, current, workflow.ActionEdit) {
			return apperrors.ErrForbidden
		}
		if current.Version != payload.Version {
			return apperrors.ErrConflict
		}

		next := *current
		if err := applyPayload(&next, payload.TaskPayload, isAdmin); err != nil {
			return err
		}
		if isAdmin {
			if err := applyAdminApprovals(&next, payload.TaskPayload, claims.DisplayName(), now); err != nil {
				return err
			}
		}
		// заявку нельзя увести в чужой регион
		if region := utils.ScopeRegion(claims.Role, claims.Region, ""); region != constants.RegionAll {
			next.Region = region
		}
		stamped := workflow.StampBonus(&next, now)

		if updated, err = s.repo.Update(ctx, tx, &next); err != nil {
			return err
		}
		return s.historyRepo.Create(ctx, tx, updateHistory(current, updated, claims, txID, stamped)...)
	})
	if err != nil {
		return nil, cache.Invalidation{}, err
	}

	s.logger.Info("заявка изменена", zap.Int64("taskId", id), zap.Int64("version", updated.Version), zap.String("login", claims.Login))
	s.publisher.Publish(ctx, events.TaskChangedEvent{TaskID: id, Action: events.TaskActionUpdated, ActorID: claims.UserID})
	return updated, cache.TasksChanged(events.TaskActionUpdated, id), nil
}

func updateHistory(before, after *entities.Task, claims *dto.UserClaims, txID string, bonusStamped bool) []entities.TaskHistory {
	base := entities.TaskHistory{
		TaskID:   after.ID,
		UserID:   claims.UserID,
		UserName: claims.DisplayName(),
		TxID:     txID,
	}

	items := []entities.TaskHistory{}
	if before.Status != after.Status {
		h := base
		h.EventType = entities.HistoryEventStatus
		h.Field = null.StringFrom("status")
		h.OldValue = null.StringFrom(before.Status)
		h.NewValue = null.StringFrom(after.Status)
		items = append(items, h)
	}
	h := base
	h.EventType = entities.HistoryEventUpdated
	h.NewValue = null.StringFrom(fmt.Sprintf("v%d", after.Version))
	items = append(items, h)

	if bonusStamped {
		b := base
		b.EventType = entities.HistoryEventBonus
		b.Field = null.StringFrom("bonusApprovalDate")
		b.NewValue = after.BonusApprovalDate
		items = append(items, b)
	}
	return items
}

// Delete удаляет заявку вместе с вложениями.
func (s *TaskService) Delete(ctx context.Context, id int64) (cache.Invalidation, error) {
	claims, err := utils.GetClaimsFromContext(ctx)
	if err != nil {
		return cache.Invalidation{}, err
	}

	var files []entities.Attachment
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		current, err := s.repo.FindForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := checkRegion(claims, current); err != nil {
			return err
		}
		if !allowedAnywhere(s.rules, claims.Role, current, workflow.ActionDelete) {
			return apperrors.ErrForbidden
		}
		if files, err = s.attachRepo.FindAllByTaskID(ctx, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		return cache.Invalidation{}, err
	}

	for _, f := range files {
		if err := s.fileStorage.Delete(f.FilePath); err != nil {
			s.logger.Warn("не удалось удалить файл заявки", zap.Int64("taskId", id), zap.String("path", f.FilePath), zap.Error(err))
		}
	}

	s.logger.Info("заявка удалена", zap.Int64("taskId", id), zap.String("login", claims.Login))
	s.publisher.Publish(ctx, events.TaskChangedEvent{TaskID: id, Action: events.TaskActionDeleted, ActorID: claims.UserID})
	return cache.TasksChanged(events.TaskActionDeleted, id), nil
}
