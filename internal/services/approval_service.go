package services

import (
	"context"
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
	"service-tasks/pkg/utils"
)

type ApprovalServiceInterface interface {
	Decide(ctx context.Context, taskID int64, decision dto.ApprovalDecisionDTO) (*entities.Task, cache.Invalidation, error)
}

type ApprovalService struct {
	txManager   repositories.TxManagerInterface
	repo        repositories.TaskRepositoryInterface
	historyRepo repositories.TaskHistoryRepositoryInterface
	publisher   EventPublisher
	rules       workflow.AccessRules
	logger      *zap.Logger
	now         clock
}

func NewApprovalService(
	txManager repositories.TxManagerInterface,
	repo repositories.TaskRepositoryInterface,
	historyRepo repositories.TaskHistoryRepositoryInterface,
	publisher EventPublisher,
	rules workflow.AccessRules,
	logger *zap.Logger,
) *ApprovalService {
	return &ApprovalService{
		txManager:   txManager,
		repo:        repo,
		historyRepo: historyRepo,
		publisher:   publisher,
		rules:       rules,
		logger:      logger,
		now:         time.Now,
	}
}

// approverRoleFor - от чьего имени принимается решение.
// Администратор указывает роль явно, остальные согласуют от своей.
func approverRoleFor(claims *dto.UserClaims, requested string) (string, error) {
	if utils.IsAdmin(claims.Role) {
		if requested == "" {
			return "", apperrors.NewInvalidInputError("администратор должен указать роль согласующего")
		}
		return constants.NormalizeRole(requested), nil
	}
	role := constants.NormalizeRole(claims.Role)
	if !workflow.IsApproverRole(role) {
		return "", apperrors.ErrForbidden
	}
	if requested != "" && constants.NormalizeRole(requested) != role {
		return "", apperrors.ErrForbidden
	}
	return role, nil
}

// actionFor - какое действие в таблице соответствует решению.
func actionFor(value string) []workflow.Action {
	switch value {
	case constants.ApprovalApproved:
		return []workflow.Action{workflow.ActionApprove}
	case constants.ApprovalRejected:
		return []workflow.Action{workflow.ActionReject}
	}
	return []workflow.Action{workflow.ActionApprove, workflow.ActionReject}
}

// canDecide - в одной из областей этого согласующего пользователю доступно действие.
func (s *ApprovalService) canDecide(claims *dto.UserClaims, approver string, task *entities.Task, value string) bool {
	for _, area := range constants.Areas {
		if workflow.ApproverRole(area) != approver {
			continue
		}
		ev := workflow.Evaluate(area, claims.Role, s.rules, task)
		for _, action := range actionFor(value) {
			if ev.Allows(action) {
				return true
			}
		}
	}
	return false
}

// Decide записывает решение согласующего.
// Вызывающий обязан применить возвращенный токен сброса кеша.
func (s *ApprovalService) Decide(ctx context.Context, taskID int64, decision dto.ApprovalDecisionDTO) (*entities.Task, cache.Invalidation, error) {
	claims, err := utils.GetClaimsFromContext(ctx)
	if err != nil {
		return nil, cache.Invalidation{}, err
	}
	approver, err := approverRoleFor(claims, decision.Role)
	if err != nil {
		return nil, cache.Invalidation{}, err
	}

	now := s.now()
	txID := uuid.NewString()
	var (
		stored  *entities.Task
		stamped bool
	)
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		current, err := s.repo.FindForUpdate(ctx, tx, taskID)
		if err != nil {
			return err
		}
		if err := checkRegion(claims, current); err != nil {
			return err
		}
		if current.Version != decision.Version {
			return apperrors.ErrConflict
		}
		if !s.canDecide(claims, approver, current, decision.Value) {
			s.logger.Warn("решение недоступно",
				zap.Int64("taskId", taskID),
				zap.String("login", claims.Login),
				zap.String("approver", approver),
				zap.String("value", decision.Value))
			return apperrors.ErrForbidden
		}

		next, err := workflow.ApplyDecision(*current, workflow.Decision{
			Role:    approver,
			Value:   decision.Value,
			Comment: decision.Comment,
			Actor:   claims.DisplayName(),
			At:      now,
		})
		if err != nil {
			return err
		}
		stamped = next.BonusApprovalDate.String != current.BonusApprovalDate.String

		if stored, err = s.repo.Update(ctx, tx, &next); err != nil {
			return err
		}
		return s.historyRepo.Create(ctx, tx, decisionHistory(current, stored, approver, decision, claims, txID, stamped)...)
	})
	if err != nil {
		return nil, cache.Invalidation{}, err
	}

	s.logger.Info("решение по заявке",
		zap.Int64("taskId", taskID),
		zap.String("approver", approver),
		zap.String("value", decision.Value),
		zap.String("login", claims.Login),
		zap.Bool("bonusStamped", stamped))

	s.publisher.Publish(ctx, events.ApprovalDecidedEvent{
		Task:         *stored,
		Role:         approver,
		Value:        decision.Value,
		Comment:      decision.Comment,
		Actor:        claims.DisplayName(),
		ActorID:      claims.UserID,
		TxID:         txID,
		BonusStamped: stamped,
	})
	return stored, cache.TasksChanged("approval", taskID), nil
}

func decisionHistory(before, after *entities.Task, approver string, d dto.ApprovalDecisionDTO, claims *dto.UserClaims, txID string, stamped bool) []entities.TaskHistory {
	old := workflow.ApprovalOf(before, approver)
	h := entities.TaskHistory{
		TaskID:    after.ID,
		UserID:    claims.UserID,
		UserName:  claims.DisplayName(),
		EventType: entities.HistoryEventApproval,
		Field:     null.StringFrom(approver),
		OldValue:  null.NewString(old.String(), !old.IsNull()),
		NewValue:  null.StringFrom(d.Value),
		Comment:   null.NewString(d.Comment, d.Comment != ""),
		TxID:      txID,
	}
	items := []entities.TaskHistory{h}
	if stamped {
		items = append(items, entities.TaskHistory{
			TaskID:    after.ID,
			UserID:    claims.UserID,
			UserName:  claims.DisplayName(),
			EventType: entities.HistoryEventBonus,
			Field:     null.StringFrom("bonusApprovalDate"),
			NewValue:  after.BonusApprovalDate,
			TxID:      txID,
		})
	}
	return items
}
