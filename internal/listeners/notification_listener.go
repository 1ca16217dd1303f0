package listeners

import (
	"context"
	"errors"
	"fmt"
	"html"
	"slices"
	"strings"

	"go.uber.org/zap"

	"service-tasks/internal/events"
	"service-tasks/internal/repositories"
	"service-tasks/pkg/constants"
	"service-tasks/pkg/eventbus"
	"service-tasks/pkg/telegram"
	"service-tasks/pkg/websocket"
)

// Broadcaster - рассылка сообщений через websocket.
type Broadcaster interface {
	Broadcast(messageType string, payload interface{}) error
}

var roleTitles = map[string]string{
	constants.RoleWarehouse:       "Склад",
	constants.RoleAccountant:      "Бухгалтерія",
	constants.RoleRegionalManager: "Регіональний менеджер",
}

// NotificationListener - уведомления в Telegram и websocket о решениях по заявкам.
type NotificationListener struct {
	telegram       telegram.ServiceInterface
	hub            Broadcaster
	userRepo       repositories.UserRepositoryInterface
	approvalChatID int64
	logger         *zap.Logger
}

func NewNotificationListener(
	tg telegram.ServiceInterface,
	hub Broadcaster,
	userRepo repositories.UserRepositoryInterface,
	approvalChatID int64,
	logger *zap.Logger,
) *NotificationListener {
	return &NotificationListener{
		telegram:       tg,
		hub:            hub,
		userRepo:       userRepo,
		approvalChatID: approvalChatID,
		logger:         logger,
	}
}

func (l *NotificationListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(constants.EventApprovalDecided, l.handleApprovalDecided)
	bus.Subscribe(constants.EventTaskChanged, l.handleTaskChanged)
	l.logger.Info("NotificationListener подписан на события заявок")
}

func (l *NotificationListener) handleTaskChanged(_ context.Context, event eventbus.Event) error {
	e, ok := event.(events.TaskChangedEvent)
	if !ok {
		return nil
	}
	l.logger.Debug("заявка изменена", zap.Int64("taskId", e.TaskID), zap.String("action", e.Action), zap.Uint64("actorId", e.ActorID))
	return nil
}

func (l *NotificationListener) handleApprovalDecided(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.ApprovalDecidedEvent)
	if !ok {
		return nil
	}

	if err := l.hub.Broadcast(constants.WSMessageApprovalDecided, websocket.ApprovalDecidedPayload{
		TaskID:  e.Task.ID,
		Role:    e.Role,
		Value:   e.Value,
		Actor:   e.Actor,
		Comment: e.Comment,
	}); err != nil {
		l.logger.Warn("не удалось разослать решение по websocket", zap.Error(err))
	}

	message, roles := formatApprovalMessage(e)
	if message == "" || !l.telegram.Enabled() {
		return nil
	}

	chatIDs, err := l.recipients(ctx, roles)
	if err != nil {
		return err
	}

	// полное согласование - информационное, без звука
	options := []telegram.MessageOption{telegram.WithHTML()}
	if e.Value != constants.ApprovalRejected {
		options = append(options, telegram.Silent())
	}

	var errs []error
	for _, chatID := range chatIDs {
		if err := l.telegram.SendMessageEx(ctx, chatID, message, options...); err != nil {
			l.logger.Error("не удалось отправить уведомление в Telegram", zap.Int64("chatId", chatID), zap.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (l *NotificationListener) recipients(ctx context.Context, roles []string) ([]int64, error) {
	var chatIDs []int64
	if l.approvalChatID != 0 {
		chatIDs = append(chatIDs, l.approvalChatID)
	}
	if len(roles) > 0 {
		ids, err := l.userRepo.FindTelegramChatIDsByRoles(ctx, roles...)
		if err != nil {
			return nil, fmt.Errorf("получатели уведомления: %w", err)
		}
		for _, id := range ids {
			if !slices.Contains(chatIDs, id) {
				chatIDs = append(chatIDs, id)
			}
		}
	}
	return chatIDs, nil
}

// formatApprovalMessage - текст уведомления и роли получателей.
// Уведомляем только об отказе и о полном согласовании.
func formatApprovalMessage(e events.ApprovalDecidedEvent) (string, []string) {
	t := e.Task
	header := fmt.Sprintf("Заявка №%d, %s", t.ID, html.EscapeString(t.Client))

	switch {
	case e.Value == constants.ApprovalRejected:
		var sb strings.Builder
		fmt.Fprintf(&sb, "❌ <b>Відмова</b> (%s)\n%s\n", roleTitles[e.Role], header)
		fmt.Fprintf(&sb, "Відхилив: %s", html.EscapeString(e.Actor))
		if e.Comment != "" {
			fmt.Fprintf(&sb, "\nКоментар: %s", html.EscapeString(e.Comment))
		}
		return sb.String(), []string{constants.RoleOperator, constants.RoleAdmin}
	case e.BonusStamped:
		msg := fmt.Sprintf("✅ <b>Заявку повністю погоджено</b>\n%s\nПремія: %s", header, html.EscapeString(t.BonusApprovalDate.String))
		return msg, []string{constants.RoleAccountant, constants.RoleBuhgalteria, constants.RoleAdmin}
	}
	return "", nil
}
