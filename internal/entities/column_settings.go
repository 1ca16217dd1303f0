package entities

import "time"

// ColumnSettings - настройки таблицы пользователя в рабочей области.
type ColumnSettings struct {
	UserLogin string             `json:"userLogin" db:"user_login"`
	Area      string             `json:"area" db:"area"`
	Visible   []string           `json:"visible" db:"visible"`
	Order     []string           `json:"order" db:"column_order"`
	Widths    map[string]float64 `json:"widths" db:"widths"`
	UpdatedAt time.Time          `json:"updatedAt" db:"updated_at"`
}
