package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"service-tasks/internal/entities"
	apperrors "service-tasks/pkg/errors"
)

type AttachmentRepositoryInterface interface {
	Create(ctx context.Context, tx pgx.Tx, attachment *entities.Attachment) (uint64, error)
	FindAllByTaskID(ctx context.Context, taskID int64) ([]entities.Attachment, error)
	FindByID(ctx context.Context, id uint64) (*entities.Attachment, error)
	Delete(ctx context.Context, tx pgx.Tx, id uint64) error
}

type attachmentRepository struct {
	storage *pgxpool.Pool
}

func NewAttachmentRepository(storage *pgxpool.Pool) AttachmentRepositoryInterface {
	return &attachmentRepository{storage: storage}
}

const attachmentSelect = `SELECT id, task_id, user_id, file_name, file_path, file_type, file_size, created_at FROM attachments`

func (r *attachmentRepository) Create(ctx context.Context, tx pgx.Tx, attachment *entities.Attachment) (uint64, error) {
	query := `
		INSERT INTO attachments (task_id, user_id, file_name, file_path, file_type, file_size)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	var attachmentID uint64
	err := pickQuerier(r.storage, tx).QueryRow(ctx, query,
		attachment.TaskID, attachment.UserID, attachment.FileName,
		attachment.FilePath, attachment.FileType, attachment.FileSize,
	).Scan(&attachmentID)
	return attachmentID, err
}

func (r *attachmentRepository) FindAllByTaskID(ctx context.Context, taskID int64) ([]entities.Attachment, error) {
	rows, err := r.storage.Query(ctx, attachmentSelect+" WHERE task_id = $1 ORDER BY created_at DESC, id DESC", taskID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[entities.Attachment])
}

func (r *attachmentRepository) FindByID(ctx context.Context, id uint64) (*entities.Attachment, error) {
	rows, err := r.storage.Query(ctx, attachmentSelect+" WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	attachment, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[entities.Attachment])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	return attachment, err
}

func (r *attachmentRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	result, err := pickQuerier(r.storage, tx).Exec(ctx, "DELETE FROM attachments WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
