package dto

import "time"

type TaskHistoryDTO struct {
	ID        uint64    `json:"id"`
	EventType string    `json:"eventType"`
	UserName  string    `json:"userName"`
	Field     string    `json:"field,omitempty"`
	OldValue  string    `json:"oldValue,omitempty"`
	NewValue  string    `json:"newValue,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
