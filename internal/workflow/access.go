package workflow

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"service-tasks/config"
	"service-tasks/internal/entities"
	"service-tasks/pkg/constants"
)

// Access - уровень доступа роли к рабочей области.
type Access string

const (
	AccessNone Access = ""
	AccessRead Access = "read"
	AccessFull Access = "full"
)

// Action - действие над строкой таблицы.
type Action string

const (
	ActionView    Action = "view"
	ActionEdit    Action = "edit"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionDelete  Action = "delete"
)

// AccessRules - role -> area -> access.
type AccessRules map[string]map[string]Access

func ParseAccessRules(data []byte) (AccessRules, error) {
	var rules AccessRules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("не удалось разобрать правила доступа: %w", err)
	}
	for role, areas := range rules {
		for area, access := range areas {
			if !IsArea(area) {
				return nil, fmt.Errorf("правила доступа: неизвестная область %q у роли %q", area, role)
			}
			if access != AccessRead && access != AccessFull {
				return nil, fmt.Errorf("правила доступа: недопустимое значение %q (%s/%s)", access, role, area)
			}
		}
	}
	return rules, nil
}

// LoadAccessRules читает правила из файла, пустой путь - встроенные правила.
func LoadAccessRules(path string) (AccessRules, error) {
	if path == "" {
		return ParseAccessRules(config.DefaultAccessRules)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать %s: %w", path, err)
	}
	return ParseAccessRules(data)
}

func (r AccessRules) Lookup(role, area string) Access {
	if access, ok := r[role][area]; ok {
		return access
	}
	return r[constants.NormalizeRole(role)][area]
}

// Evaluation - вкладка заявки и доступные пользователю действия.
type Evaluation struct {
	Bucket   Bucket
	Access   Access
	Actions  []Action
	Editable bool
}

func (e Evaluation) Allows(action Action) bool {
	for _, a := range e.Actions {
		if a == action {
			return true
		}
	}
	return false
}

// Evaluate - единый автомат согласования для всех рабочих областей.
// В архиве редактирование и согласование доступны только администратору.
func Evaluate(area, role string, rules AccessRules, t *entities.Task) Evaluation {
	ev := Evaluation{
		Bucket: Classify(area, t),
		Access: rules.Lookup(role, area),
	}
	if ev.Access == AccessNone {
		return ev
	}

	role = constants.NormalizeRole(role)
	isAdmin := role == constants.RoleAdmin
	isArchive := ev.Bucket == BucketArchive
	full := ev.Access == AccessFull

	ev.Actions = append(ev.Actions, ActionView)

	if full && (!isArchive || isAdmin) {
		ev.Editable = true
		ev.Actions = append(ev.Actions, ActionEdit)
	}

	if approver := ApproverRole(area); approver != "" && full && isDone(t) && (!isArchive || isAdmin) {
		if isAdmin || role == approver {
			own := ApprovalOf(t, approver)
			if !IsApproved(own) {
				ev.Actions = append(ev.Actions, ActionApprove)
			}
			if !IsRejected(own) {
				ev.Actions = append(ev.Actions, ActionReject)
			}
		}
	}

	if isAdmin || (area == constants.AreaOperator && role == constants.RoleOperator && full && !isDone(t)) {
		ev.Actions = append(ev.Actions, ActionDelete)
	}

	return ev
}

// ApprovalOf - текущее решение согласующего с ролью role.
func ApprovalOf(t *entities.Task, role string) entities.Approval {
	switch constants.NormalizeRole(role) {
	case constants.RoleWarehouse:
		return t.ApprovedByWarehouse
	case constants.RoleAccountant:
		return t.ApprovedByAccountant
	case constants.RoleRegionalManager:
		return t.ApprovedByRegionalManager
	}
	return entities.ApprovalNull
}

// ActionStrings - действия в виде строк для ответа API.
func ActionStrings(actions []Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = string(a)
	}
	return out
}
