// Файл: seeders/users_seeder.go

package seeders

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"service-tasks/internal/entities"
	"service-tasks/internal/repositories"
	"service-tasks/pkg/utils"
)

// SeedUsers создает или обновляет пользователей всех ролей с общим паролем.
func SeedUsers(ctx context.Context, repo repositories.UserRepositoryInterface, password string, logger *zap.Logger) error {
	if len(password) < 6 {
		return fmt.Errorf("пароль для сидера должен быть не короче 6 символов")
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("не удалось захешировать пароль: %w", err)
	}

	for _, u := range defaultUsers {
		id, err := repo.Upsert(ctx, &entities.User{
			Login:    u.Login,
			Name:     u.Name,
			Role:     u.Role,
			Region:   u.Region,
			Password: hash,
		})
		if err != nil {
			return fmt.Errorf("пользователь %s: %w", u.Login, err)
		}
		logger.Info("пользователь создан", zap.String("login", u.Login), zap.String("role", u.Role), zap.Uint64("id", id))
	}
	return nil
}
