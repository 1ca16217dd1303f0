package cache

import (
	"slices"

	"service-tasks/pkg/constants"
)

// Invalidation - что нужно сбросить после записи.
// Изменяющие методы сервисов возвращают его, вызывающий обязан передать его в TaskCache.Apply.
type Invalidation struct {
	patterns []string
	keys     []string
	taskIDs  []int64
	reason   string
}

// TasksChanged - изменились заявки, сбрасываются все кешированные списки.
func TasksChanged(reason string, taskIDs ...int64) Invalidation {
	return Invalidation{
		patterns: []string{constants.CacheKeyTasksAllPattern, constants.CacheKeyTasksByStatusPattern},
		taskIDs:  taskIDs,
		reason:   reason,
	}
}

// Keys - сброс конкретных ключей без оповещения клиентов.
func Keys(keys ...string) Invalidation {
	return Invalidation{keys: keys}
}

func (i Invalidation) IsZero() bool {
	return len(i.patterns) == 0 && len(i.keys) == 0
}

// TaskIDs - затронутые заявки.
func (i Invalidation) TaskIDs() []int64 { return i.taskIDs }

func (i Invalidation) Reason() string { return i.reason }

// notifies - об изменении заявок нужно сообщить клиентам.
func (i Invalidation) notifies() bool { return len(i.patterns) > 0 }

// Merge объединяет два токена без дублей.
func (i Invalidation) Merge(other Invalidation) Invalidation {
	merged := Invalidation{
		patterns: appendUnique(slices.Clone(i.patterns), other.patterns...),
		keys:     appendUnique(slices.Clone(i.keys), other.keys...),
		taskIDs:  appendUnique(slices.Clone(i.taskIDs), other.taskIDs...),
		reason:   i.reason,
	}
	if merged.reason == "" {
		merged.reason = other.reason
	}
	return merged
}

func appendUnique[T comparable](dst []T, items ...T) []T {
	for _, item := range items {
		if !slices.Contains(dst, item) {
			dst = append(dst, item)
		}
	}
	return dst
}
