package tasklist

import (
	"strconv"
	"strings"
	"time"

	"service-tasks/internal/entities"
)

// Ключи с точным совпадением значения.
var exactKeys = map[string]bool{
	"approvedByRegionalManager": true,
	"approvedByWarehouse":       true,
	"approvedByAccountant":      true,
	"paymentType":               true,
	"status":                    true,
}

// Ключи с числовым сравнением.
var numericKeys = map[string]bool{
	"airFilterCount": true,
	"airFilterPrice": true,
	"serviceBonus":   true,
}

const (
	suffixFrom = "From"
	suffixTo   = "To"
)

// Apply оставляет заявки, подходящие под все непустые фильтры.
// Пустой набор фильтров возвращает исходный срез.
func Apply(tasks []entities.Task, filters map[string]string) []entities.Task {
	active := make(map[string]string, len(filters))
	for k, v := range filters {
		if v != "" {
			active[k] = v
		}
	}
	if len(active) == 0 {
		return tasks
	}

	out := make([]entities.Task, 0, len(tasks))
	for i := range tasks {
		if Match(&tasks[i], active) {
			out = append(out, tasks[i])
		}
	}
	return out
}

// Match - заявка подходит под все фильтры.
func Match(t *entities.Task, filters map[string]string) bool {
	for key, want := range filters {
		if want == "" {
			continue
		}
		if !matchOne(t, key, want) {
			return false
		}
	}
	return true
}

func matchOne(t *entities.Task, key, want string) bool {
	if !HasField(key) {
		if base, ok := strings.CutSuffix(key, suffixFrom); ok && base != "" {
			return matchDateBound(t, base, want, true)
		}
		if base, ok := strings.CutSuffix(key, suffixTo); ok && base != "" {
			return matchDateBound(t, base, want, false)
		}
	}

	v, ok := fieldValue(t, key)

	switch {
	case exactKeys[key]:
		return ok && v.text == want
	case numericKeys[key]:
		n, err := strconv.ParseFloat(strings.TrimSpace(want), 64)
		return err == nil && ok && v.present && v.num == n
	}

	if !ok || !v.present {
		return false
	}
	return strings.Contains(strings.ToLower(v.text), strings.ToLower(want))
}

// matchDateBound - границы включительные, сравнение по календарным дням.
// Если хоть одну из дат не удалось разобрать, заявка отбрасывается.
func matchDateBound(t *entities.Task, base, bound string, from bool) bool {
	v, ok := fieldValue(t, base)
	if !ok || !v.present {
		return false
	}

	taskDate := v.date
	if v.kind != kindDate {
		parsed, ok := ParseDate(v.text)
		if !ok {
			return false
		}
		taskDate = parsed
	}

	boundDate, ok := ParseDate(strings.TrimSpace(bound))
	if !ok {
		return false
	}

	day, limit := truncateDay(taskDate), truncateDay(boundDate)
	if from {
		return !day.Before(limit)
	}
	return !day.After(limit)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
