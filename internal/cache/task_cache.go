package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"service-tasks/internal/entities"
	"service-tasks/internal/repositories"
	"service-tasks/pkg/constants"
	"service-tasks/pkg/websocket"
)

// Broadcaster - рассылка сообщений подключённым клиентам.
type Broadcaster interface {
	Broadcast(messageType string, payload interface{}) error
}

// TaskCache - кеш списков заявок в Redis.
type TaskCache struct {
	repo   repositories.CacheRepositoryInterface
	hub    Broadcaster
	ttl    time.Duration
	logger *zap.Logger
}

func NewTaskCache(repo repositories.CacheRepositoryInterface, hub Broadcaster, ttl time.Duration, logger *zap.Logger) *TaskCache {
	return &TaskCache{repo: repo, hub: hub, ttl: ttl, logger: logger}
}

// ListKey - ключ списка заявок. Пустой статус - все заявки.
func ListKey(status, region string) string {
	if region == "" {
		region = constants.RegionAll
	}
	if status == "" {
		return fmt.Sprintf(constants.CacheKeyTasksAll, region)
	}
	return fmt.Sprintf(constants.CacheKeyTasksByStatus, status, region)
}

// KeyFor - ключ списка с текущим поколением кеша. Берётся до чтения из БД:
// список, прочитанный до сброса, запишется в старое поколение и читаться не будет.
func (c *TaskCache) KeyFor(ctx context.Context, status, region string) string {
	return fmt.Sprintf("%s:g%d", ListKey(status, region), c.generation(ctx))
}

func (c *TaskCache) generation(ctx context.Context) int64 {
	raw, err := c.repo.Get(ctx, constants.CacheKeyTasksGeneration)
	if err != nil {
		if !errors.Is(err, repositories.ErrCacheMiss) {
			c.logger.Warn("ошибка чтения поколения кеша заявок", zap.Error(err))
		}
		return 0
	}
	gen, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return gen
}

// GetList возвращает список из кеша. Ошибки Redis считаются промахом.
func (c *TaskCache) GetList(ctx context.Context, key string) ([]entities.Task, bool) {
	raw, err := c.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repositories.ErrCacheMiss) {
			c.logger.Warn("ошибка чтения кеша заявок", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	var tasks []entities.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		c.logger.Warn("битые данные в кеше заявок", zap.String("key", key), zap.Error(err))
		_ = c.repo.Del(ctx, key)
		return nil, false
	}
	return tasks, true
}

func (c *TaskCache) SetList(ctx context.Context, key string, tasks []entities.Task) {
	raw, err := json.Marshal(tasks)
	if err != nil {
		c.logger.Warn("не удалось сериализовать список заявок", zap.Error(err))
		return
	}
	if err := c.repo.Set(ctx, key, raw, c.ttl); err != nil {
		c.logger.Warn("не удалось записать список заявок в кеш", zap.String("key", key), zap.Error(err))
	}
}

// Apply сбрасывает ключи из токена и сообщает клиентам, что списки устарели.
// Повторное применение того же токена безопасно.
func (c *TaskCache) Apply(ctx context.Context, inv Invalidation) error {
	if inv.IsZero() {
		return nil
	}

	var errs []error
	if len(inv.patterns) > 0 {
		if _, err := c.repo.Incr(ctx, constants.CacheKeyTasksGeneration); err != nil {
			errs = append(errs, fmt.Errorf("смена поколения: %w", err))
		}
	}
	for _, pattern := range inv.patterns {
		if _, err := c.repo.DelByPattern(ctx, pattern); err != nil {
			errs = append(errs, fmt.Errorf("сброс %s: %w", pattern, err))
		}
	}
	if err := c.repo.Del(ctx, inv.keys...); err != nil {
		errs = append(errs, fmt.Errorf("сброс ключей: %w", err))
	}

	if inv.notifies() && c.hub != nil {
		payload := websocket.TasksInvalidatedPayload{TaskIDs: inv.taskIDs, Reason: inv.reason}
		if err := c.hub.Broadcast(constants.WSMessageTasksInvalidated, payload); err != nil {
			errs = append(errs, fmt.Errorf("оповещение клиентов: %w", err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		c.logger.Error("ошибка сброса кеша заявок", zap.Error(err))
		return err
	}
	return nil
}
