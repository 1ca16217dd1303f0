package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"service-tasks/internal/entities"
)

type TaskHistoryRepositoryInterface interface {
	Create(ctx context.Context, tx pgx.Tx, items ...entities.TaskHistory) error
	FindByTaskID(ctx context.Context, taskID int64) ([]entities.TaskHistory, error)
}

type TaskHistoryRepository struct {
	storage *pgxpool.Pool
}

func NewTaskHistoryRepository(storage *pgxpool.Pool) TaskHistoryRepositoryInterface {
	return &TaskHistoryRepository{storage: storage}
}

func (r *TaskHistoryRepository) Create(ctx context.Context, tx pgx.Tx, items ...entities.TaskHistory) error {
	if len(items) == 0 {
		return nil
	}
	builder := psql.Insert("task_history").
		Columns("task_id", "user_id", "user_name", "event_type", "field", "old_value", "new_value", "comment", "tx_id")
	for _, h := range items {
		builder = builder.Values(h.TaskID, h.UserID, h.UserName, h.EventType, h.Field, h.OldValue, h.NewValue, h.Comment, h.TxID)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}
	_, err = pickQuerier(r.storage, tx).Exec(ctx, query, args...)
	return err
}

func (r *TaskHistoryRepository) FindByTaskID(ctx context.Context, taskID int64) ([]entities.TaskHistory, error) {
	query := `
		SELECT id, task_id, user_id, user_name, event_type, field, old_value, new_value, comment, tx_id, created_at
		FROM task_history
		WHERE task_id = $1
		ORDER BY created_at ASC, id ASC`
	rows, err := r.storage.Query(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[entities.TaskHistory])
}
