package entities

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Approval - значение поля согласования. Хранит исходную форму:
// "" - не задано (null), "true"/"false" - булева форма,
// остальное - текстовая ("На розгляді", "Підтверджено", "Відмова").
type Approval string

const (
	ApprovalNull  Approval = ""
	ApprovalTrue  Approval = "true"
	ApprovalFalse Approval = "false"
)

func (a Approval) IsNull() bool { return a == ApprovalNull }

// IsBool - значение пришло как true/false, а не строкой.
func (a Approval) IsBool() bool { return a == ApprovalTrue || a == ApprovalFalse }

func (a Approval) String() string { return string(a) }

func (a Approval) MarshalJSON() ([]byte, error) {
	switch a {
	case ApprovalNull:
		return []byte("null"), nil
	case ApprovalTrue, ApprovalFalse:
		return []byte(a), nil
	}
	return json.Marshal(string(a))
}

func (a *Approval) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "null", "":
		*a = ApprovalNull
		return nil
	case "true":
		*a = ApprovalTrue
		return nil
	case "false":
		*a = ApprovalFalse
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("approval: ожидается null, bool или строка: %w", err)
	}
	// строки "true"/"false" совпали бы с булевой формой
	if Approval(s).IsBool() {
		return fmt.Errorf("approval: строка %q вместо булева значения", s)
	}
	*a = Approval(s)
	return nil
}

// Scan - колонка TEXT NULL.
func (a *Approval) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*a = ApprovalNull
	case string:
		*a = Approval(v)
	case []byte:
		*a = Approval(v)
	case bool:
		if v {
			*a = ApprovalTrue
		} else {
			*a = ApprovalFalse
		}
	default:
		return fmt.Errorf("approval: неподдерживаемый тип %T", src)
	}
	return nil
}

func (a Approval) Value() (driver.Value, error) {
	if a == ApprovalNull {
		return nil, nil
	}
	return string(a), nil
}
