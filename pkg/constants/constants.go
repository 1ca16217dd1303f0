// pkg/constants/constants.go
package constants

//============== UPLOAD CONTEXTS ==============

// UploadContext определяет тип для контекстов загрузки файлов.
type UploadContext string

const (
	// UploadContextTaskFile - вложения к заявке (фото с камеры, акты, накладные).
	UploadContextTaskFile UploadContext = "task_file"
)

// String возвращает строковое представление контекста.
func (uc UploadContext) String() string {
	return string(uc)
}

//============== CACHE KEYS ==============

// Префиксы для ключей в Redis/кеше.
const (
	// Список всех заявок региона.
	// Формат: tasks:all:<region>
	CacheKeyTasksAll = "tasks:all:%s"

	// Список заявок по статусу и региону.
	// Формат: tasks:status:<status>:<region>
	CacheKeyTasksByStatus = "tasks:status:%s:%s"

	// Шаблоны для сброса списков после изменения заявок.
	CacheKeyTasksAllPattern      = "tasks:all:*"
	CacheKeyTasksByStatusPattern = "tasks:status:*"

	// Поколение списков, растёт при каждом сбросе.
	CacheKeyTasksGeneration = "tasks:generation"

	// Настройки колонок пользователя.
	// Формат: columns:<login>:<area>
	CacheKeyColumnSettings = "columns:%s:%s"

	// Счетчик неудачных попыток входа.
	// Формат: login_attempts:<userID>
	CacheKeyLoginAttempts = "login_attempts:%d"

	// Блокировка входа.
	// Формат: lockout:<userID>
	CacheKeyLockout = "lockout:%d"
)

//============== EVENTS ==============

const (
	EventApprovalDecided = "task.approval.decided"
	EventTaskChanged     = "task.changed"
)

//============== WEBSOCKET MESSAGE TYPES ==============

const (
	WSMessageTasksInvalidated = "tasks.invalidated"
	WSMessageApprovalDecided  = "approval.decided"
)
