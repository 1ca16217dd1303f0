package tasklist

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"service-tasks/internal/entities"
	"service-tasks/pkg/constants"
)

const (
	DirAsc  = "asc"
	DirDesc = "desc"
)

// Sort сортирует по одному полю. Пустые значения всегда в конце.
// Неизвестное поле - порядок по умолчанию.
func Sort(tasks []entities.Task, field, dir string) {
	if field == "" || !HasField(field) {
		DefaultOrder(tasks)
		return
	}

	desc := strings.EqualFold(dir, DirDesc)
	// Collator не потокобезопасен, поэтому создаётся на каждую сортировку.
	coll := collate.New(language.Ukrainian, collate.IgnoreCase, collate.Numeric)
	get := fields[field]

	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := get(&tasks[i]), get(&tasks[j])
		if a.present != b.present {
			return a.present
		}
		if !a.present {
			return false
		}
		c := compare(coll, a, b)
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func compare(coll *collate.Collator, a, b value) int {
	switch a.kind {
	case kindNumber:
		return cmpFloat(a.num, b.num)
	case kindDate:
		return a.date.Compare(b.date)
	case kindBool:
		return strings.Compare(a.text, b.text)
	}
	return coll.CompareString(a.text, b.text)
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// DefaultOrder: срочные сверху, затем по приоритету статуса, затем новые выше.
func DefaultOrder(tasks []entities.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := &tasks[i], &tasks[j]
		if a.UrgentRequest != b.UrgentRequest {
			return a.UrgentRequest
		}
		pa, pb := statusPriority(a.Status), statusPriority(b.Status)
		if pa != pb {
			return pa < pb
		}
		return a.ID > b.ID
	})
}

func statusPriority(status string) int {
	if p, ok := constants.StatusPriority[status]; ok {
		return p
	}
	return len(constants.StatusPriority) + 1
}
