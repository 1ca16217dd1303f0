package entities

import (
	"github.com/aarondl/null/v8"

	"service-tasks/pkg/types"
)

type User struct {
	ID       uint64 `json:"id" db:"id"`
	Login    string `json:"login" db:"login"`
	Name     string `json:"name" db:"name"`
	Role     string `json:"role" db:"role"`
	Region   string `json:"region" db:"region"`
	Password string `json:"-" db:"password"`

	TelegramChatID null.Int64 `json:"telegramChatId,omitempty" db:"telegram_chat_id"`

	types.BaseEntity
}

// DisplayName - имя для отметок об отказе и истории.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Login
}
