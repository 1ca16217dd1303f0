package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"service-tasks/internal/repositories"
	"service-tasks/migrations"
	"service-tasks/pkg/config"
	"service-tasks/pkg/database/postgresql"
	applogger "service-tasks/pkg/logger"
	"service-tasks/seeders"
)

const commandTimeout = 5 * time.Minute

func main() {
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Level, "")
	defer func() { _ = logger.Sync() }()

	if err := newRootCmd(cfg, logger).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config, logger *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "seed",
		Short:         "Миграции и начальное наполнение БД",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCmd(cfg, logger))
	root.AddCommand(newUsersCmd(cfg, logger))
	return root
}

// withDB открывает пул на время одной команды.
func withDB(cmd *cobra.Command, cfg *config.Config, logger *zap.Logger, fn func(ctx context.Context, pool *pgxpool.Pool) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	logger.Info("подключение к БД", zap.String("dsn", cfg.Postgres.DSN))
	pool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, logger)
	if err != nil {
		return err
	}
	defer pool.Close()
	return fn(ctx, pool)
}

func newMigrateCmd(cfg *config.Config, logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Управление схемой БД (goose)",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Применить все новые миграции",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, cfg, logger, func(ctx context.Context, pool *pgxpool.Pool) error {
				return migrations.Up(ctx, pool, logger)
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Откатить последнюю миграцию",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, cfg, logger, func(ctx context.Context, pool *pgxpool.Pool) error {
				return migrations.Down(ctx, pool, logger)
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Показать состояние миграций",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, cfg, logger, func(ctx context.Context, pool *pgxpool.Pool) error {
				return migrations.Status(ctx, pool, logger)
			})
		},
	})
	return cmd
}

func newUsersCmd(cfg *config.Config, logger *zap.Logger) *cobra.Command {
	var (
		password string
		migrate  bool
	)
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Создать пользователей всех ролей",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("SEED_PASSWORD")
			}
			if password == "" {
				return fmt.Errorf("укажите --password или SEED_PASSWORD")
			}
			return withDB(cmd, cfg, logger, func(ctx context.Context, pool *pgxpool.Pool) error {
				if migrate {
					if err := migrations.Up(ctx, pool, logger); err != nil {
						return err
					}
				}
				return seeders.SeedUsers(ctx, repositories.NewUserRepository(pool, logger), password, logger)
			})
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "общий пароль для созданных пользователей")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "перед наполнением применить миграции")
	return cmd
}
