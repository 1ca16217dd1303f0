package websocket

import "time"

// Envelope - конверт сообщения, по Type фронтенд понимает, что делать.
type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// TasksInvalidatedPayload - какие списки заявок нужно перезапросить.
type TasksInvalidatedPayload struct {
	TaskIDs []int64 `json:"taskIds,omitempty"`
	Reason  string  `json:"reason"`
}

// ApprovalDecidedPayload - уведомление о решении согласующего.
type ApprovalDecidedPayload struct {
	TaskID  int64  `json:"taskId"`
	Role    string `json:"role"`
	Value   string `json:"value"`
	Actor   string `json:"actor"`
	Comment string `json:"comment,omitempty"`
}
