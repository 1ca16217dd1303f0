// Файл: internal/services/auth.go
package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"service-tasks/internal/dto"
	"service-tasks/internal/entities"
	"service-tasks/internal/repositories"
	"service-tasks/pkg/config"
	"service-tasks/pkg/constants"
	apperrors "service-tasks/pkg/errors"
	"service-tasks/pkg/service"
	"service-tasks/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error)
	Me(ctx context.Context) (*dto.UserPublicDTO, error)
}

type AuthService struct {
	userRepo   repositories.UserRepositoryInterface
	cacheRepo  repositories.CacheRepositoryInterface
	jwtService service.JWTService
	logger     *zap.Logger
	cfg        config.AuthConfig
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
	cfg config.AuthConfig,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		cacheRepo:  cacheRepo,
		jwtService: jwtService,
		logger:     logger,
		cfg:        cfg,
	}
}

func toUserPublicDTO(u *entities.User) dto.UserPublicDTO {
	return dto.UserPublicDTO{ID: u.ID, Login: u.Login, Name: u.Name, Role: u.Role, Region: u.Region}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	logger := s.logger.With(zap.String("login", payload.Login))

	user, err := s.userRepo.FindByLogin(ctx, payload.Login)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Warn("вход: пользователь не найден")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := s.checkLockout(ctx, user.ID); err != nil {
		logger.Warn("вход: учетная запись заблокирована")
		return nil, err
	}
	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		s.handleFailedLoginAttempt(ctx, user.ID)
		logger.Warn("вход: неверный пароль")
		return nil, apperrors.ErrInvalidCredentials
	}
	s.resetLoginAttempts(ctx, user.ID)

	token, expiresAt, err := s.jwtService.GenerateToken(service.TokenSubject{
		UserID: user.ID,
		Login:  user.Login,
		Name:   user.Name,
		Role:   user.Role,
		Region: user.Region,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("пользователь вошел", zap.String("role", user.Role))
	return &dto.AuthResponseDTO{
		AccessToken: token,
		ExpiresAt:   expiresAt.Unix(),
		User:        toUserPublicDTO(user),
	}, nil
}

func (s *AuthService) Me(ctx context.Context) (*dto.UserPublicDTO, error) {
	claims, err := utils.GetClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	result := toUserPublicDTO(user)
	return &result, nil
}

func (s *AuthService) checkLockout(ctx context.Context, userID uint64) error {
	locked, err := s.cacheRepo.Exists(ctx, fmt.Sprintf(constants.CacheKeyLockout, userID))
	if err != nil {
		s.logger.Warn("не удалось проверить блокировку", zap.Uint64("userID", userID), zap.Error(err))
		return nil
	}
	if locked {
		return apperrors.ErrAccountLocked
	}
	return nil
}

func (s *AuthService) handleFailedLoginAttempt(ctx context.Context, userID uint64) {
	attemptsKey := fmt.Sprintf(constants.CacheKeyLoginAttempts, userID)
	attempts, err := s.cacheRepo.Incr(ctx, attemptsKey)
	if err != nil {
		s.logger.Warn("не удалось учесть неудачную попытку входа", zap.Error(err))
		return
	}
	if attempts == 1 {
		_, _ = s.cacheRepo.Expire(ctx, attemptsKey, s.cfg.LockoutDuration)
	}
	if attempts >= int64(s.cfg.MaxLoginAttempts) {
		_ = s.cacheRepo.Set(ctx, fmt.Sprintf(constants.CacheKeyLockout, userID), "locked", s.cfg.LockoutDuration)
		_ = s.cacheRepo.Del(ctx, attemptsKey)
		s.logger.Warn("учетная запись заблокирована", zap.Uint64("userID", userID), zap.Duration("for", s.cfg.LockoutDuration))
	}
}

func (s *AuthService) resetLoginAttempts(ctx context.Context, userID uint64) {
	_ = s.cacheRepo.Del(ctx,
		fmt.Sprintf(constants.CacheKeyLoginAttempts, userID),
		fmt.Sprintf(constants.CacheKeyLockout, userID))
}
