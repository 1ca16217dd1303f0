package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Типы событий истории заявки.
const (
	HistoryEventCreated  = "CREATED"
	HistoryEventUpdated  = "UPDATED"
	HistoryEventApproval = "APPROVAL"
	HistoryEventStatus   = "STATUS_CHANGE"
	HistoryEventFile     = "FILE_ATTACHED"
	HistoryEventBonus    = "BONUS_STAMPED"
)

type TaskHistory struct {
	ID        uint64      `json:"id" db:"id"`
	TaskID    int64       `json:"taskId" db:"task_id"`
	UserID    uint64      `json:"userId" db:"user_id"`
	UserName  string      `json:"userName" db:"user_name"`
	EventType string      `json:"eventType" db:"event_type"`
	Field     null.String `json:"field" db:"field"`
	OldValue  null.String `json:"oldValue" db:"old_value"`
	NewValue  null.String `json:"newValue" db:"new_value"`
	Comment   null.String `json:"comment" db:"comment"`
	// Записи одного изменения объединяются общим идентификатором.
	TxID      string    `json:"txId" db:"tx_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
