// Package migrations - схема БД в виде встроенных goose-миграций.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed *.sql
var FS embed.FS

// zapGooseLogger пишет вывод goose в общий лог.
type zapGooseLogger struct {
	logger *zap.SugaredLogger
}

func (l zapGooseLogger) Printf(format string, v ...interface{}) { l.logger.Infof(format, v...) }
func (l zapGooseLogger) Fatalf(format string, v ...interface{}) { l.logger.Fatalf(format, v...) }

func prepare(pool *pgxpool.Pool, logger *zap.Logger) (*sql.DB, error) {
	goose.SetBaseFS(FS)
	goose.SetLogger(zapGooseLogger{logger: logger.Sugar()})
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, err
	}
	return stdlib.OpenDBFromPool(pool), nil
}

// Up применяет все новые миграции.
func Up(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	db, err := prepare(pool, logger)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("ошибка применения миграций: %w", err)
	}
	return nil
}

// Down откатывает последнюю миграцию.
func Down(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	db, err := prepare(pool, logger)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := goose.DownContext(ctx, db, "."); err != nil {
		return fmt.Errorf("ошибка отката миграции: %w", err)
	}
	return nil
}

func Status(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	db, err := prepare(pool, logger)
	if err != nil {
		return err
	}
	defer db.Close()
	return goose.StatusContext(ctx, db, ".")
}
