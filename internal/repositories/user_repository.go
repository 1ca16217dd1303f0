package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"service-tasks/internal/entities"
	apperrors "service-tasks/pkg/errors"
)

var userColumns = []string{"id", "login", "name", "role", "region", "password", "telegram_chat_id", "created_at", "updated_at"}

type UserRepositoryInterface interface {
	FindByID(ctx context.Context, id uint64) (*entities.User, error)
	FindByLogin(ctx context.Context, login string) (*entities.User, error)
	FindTelegramChatIDsByRoles(ctx context.Context, roles ...string) ([]int64, error)
	// Upsert создаёт пользователя или обновляет существующего с тем же логином.
	Upsert(ctx context.Context, user *entities.User) (uint64, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func (r *UserRepository) findOne(ctx context.Context, where sq.Eq) (*entities.User, error) {
	query, args, err := psql.Select(userColumns...).From("users").Where(where).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	user, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[entities.User])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования пользователя: %w", err)
	}
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*entities.User, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*entities.User, error) {
	return r.findOne(ctx, sq.Eq{"login": login})
}

func (r *UserRepository) FindTelegramChatIDsByRoles(ctx context.Context, roles ...string) ([]int64, error) {
	query, args, err := psql.Select("telegram_chat_id").From("users").
		Where(sq.Eq{"role": roles}).
		Where(sq.NotEq{"telegram_chat_id": nil}).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int64])
}

func (r *UserRepository) Upsert(ctx context.Context, user *entities.User) (uint64, error) {
	query := `
		INSERT INTO users (login, name, role, region, password, telegram_chat_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (login) DO UPDATE
		SET name = EXCLUDED.name, role = EXCLUDED.role, region = EXCLUDED.region,
		    password = EXCLUDED.password, telegram_chat_id = EXCLUDED.telegram_chat_id, updated_at = NOW()
		RETURNING id`
	var id uint64
	err := r.storage.QueryRow(ctx, query,
		user.Login, user.Name, user.Role, user.Region, user.Password, user.TelegramChatID,
	).Scan(&id)
	return id, err
}
