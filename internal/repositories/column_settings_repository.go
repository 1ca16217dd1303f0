package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"service-tasks/internal/entities"
	apperrors "service-tasks/pkg/errors"
)

type ColumnSettingsRepositoryInterface interface {
	Find(ctx context.Context, userLogin, area string) (*entities.ColumnSettings, error)
	Save(ctx context.Context, settings *entities.ColumnSettings) error
}

type columnSettingsRepository struct {
	storage *pgxpool.Pool
}

func NewColumnSettingsRepository(storage *pgxpool.Pool) ColumnSettingsRepositoryInterface {
	return &columnSettingsRepository{storage: storage}
}

func (r *columnSettingsRepository) Find(ctx context.Context, userLogin, area string) (*entities.ColumnSettings, error) {
	query := `
		SELECT user_login, area, visible, column_order, widths, updated_at
		FROM column_settings
		WHERE user_login = $1 AND area = $2`
	rows, err := r.storage.Query(ctx, query, userLogin, area)
	if err != nil {
		return nil, err
	}
	settings, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[entities.ColumnSettings])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	return settings, err
}

func (r *columnSettingsRepository) Save(ctx context.Context, settings *entities.ColumnSettings) error {
	query := `
		INSERT INTO column_settings (user_login, area, visible, column_order, widths, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_login, area) DO UPDATE
		SET visible = EXCLUDED.visible, column_order = EXCLUDED.column_order,
		    widths = EXCLUDED.widths, updated_at = NOW()`
	_, err := r.storage.Exec(ctx, query,
		settings.UserLogin, settings.Area, settings.Visible, settings.Order, settings.Widths,
	)
	return err
}
