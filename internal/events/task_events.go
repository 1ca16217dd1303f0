package events

import (
	"service-tasks/internal/entities"
	"service-tasks/pkg/constants"
)

// ApprovalDecidedEvent - согласующий принял решение по заявке.
type ApprovalDecidedEvent struct {
	Task    entities.Task
	Role    string
	Value   string
	Comment string
	Actor   string
	ActorID uint64
	TxID    string

	// BonusStamped - этим решением заявка стала полностью согласованной.
	BonusStamped bool
}

func (e ApprovalDecidedEvent) Name() string { return constants.EventApprovalDecided }

// TaskChangedEvent - заявка создана, изменена или удалена.
type TaskChangedEvent struct {
	TaskID  int64
	Action  string
	ActorID uint64
}

func (e TaskChangedEvent) Name() string { return constants.EventTaskChanged }

const (
	TaskActionCreated = "created"
	TaskActionUpdated = "updated"
	TaskActionDeleted = "deleted"
)
