package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"service-tasks/internal/cache"
	"service-tasks/internal/dto"
	"service-tasks/internal/entities"
	"service-tasks/internal/repositories"
	"service-tasks/internal/workflow"
	"service-tasks/pkg/constants"
	apperrors "service-tasks/pkg/errors"
	"service-tasks/pkg/utils"
)

const columnSettingsTTL = 24 * time.Hour

type ColumnSettingsServiceInterface interface {
	Get(ctx context.Context, area string) (*dto.ColumnSettingsDTO, error)
	Save(ctx context.Context, area string, payload dto.ColumnSettingsDTO) (*dto.ColumnSettingsDTO, cache.Invalidation, error)
}

// ColumnSettingsService - видимость, порядок и ширина колонок таблицы пользователя.
type ColumnSettingsService struct {
	repo      repositories.ColumnSettingsRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	logger    *zap.Logger
}

func NewColumnSettingsService(repo repositories.ColumnSettingsRepositoryInterface, cacheRepo repositories.CacheRepositoryInterface, logger *zap.Logger) *ColumnSettingsService {
	return &ColumnSettingsService{repo: repo, cacheRepo: cacheRepo, logger: logger}
}

func toColumnSettingsDTO(s *entities.ColumnSettings) *dto.ColumnSettingsDTO {
	out := &dto.ColumnSettingsDTO{Visible: s.Visible, Order: s.Order, Widths: s.Widths}
	if out.Visible == nil {
		out.Visible = []string{}
	}
	if out.Order == nil {
		out.Order = []string{}
	}
	if out.Widths == nil {
		out.Widths = map[string]float64{}
	}
	return out
}

func (s *ColumnSettingsService) Get(ctx context.Context, area string) (*dto.ColumnSettingsDTO, error) {
	claims, err := utils.GetClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !workflow.IsArea(area) {
		return nil, apperrors.ErrNotFound
	}

	key := fmt.Sprintf(constants.CacheKeyColumnSettings, claims.Login, area)
	if raw, err := s.cacheRepo.Get(ctx, key); err == nil {
		var cached dto.ColumnSettingsDTO
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return &cached, nil
		}
	}

	settings, err := s.repo.Find(ctx, claims.Login, area)
	if errors.Is(err, apperrors.ErrNotFound) {
		// Настроек еще нет - фронт покажет колонки по умолчанию.
		settings = &entities.ColumnSettings{UserLogin: claims.Login, Area: area}
	} else if err != nil {
		return nil, err
	}

	result := toColumnSettingsDTO(settings)
	if raw, err := json.Marshal(result); err == nil {
		if err := s.cacheRepo.Set(ctx, key, raw, columnSettingsTTL); err != nil {
			s.logger.Warn("не удалось закешировать настройки колонок", zap.String("key", key), zap.Error(err))
		}
	}
	return result, nil
}

func (s *ColumnSettingsService) Save(ctx context.Context, area string, payload dto.ColumnSettingsDTO) (*dto.ColumnSettingsDTO, cache.Invalidation, error) {
	claims, err := utils.GetClaimsFromContext(ctx)
	if err != nil {
		return nil, cache.Invalidation{}, err
	}
	if !workflow.IsArea(area) {
		return nil, cache.Invalidation{}, apperrors.ErrNotFound
	}

	settings := &entities.ColumnSettings{
		UserLogin: claims.Login,
		Area:      area,
		Visible:   payload.Visible,
		Order:     payload.Order,
		Widths:    payload.Widths,
	}
	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, cache.Invalidation{}, err
	}

	s.logger.Debug("настройки колонок сохранены", zap.String("login", claims.Login), zap.String("area", area))
	return toColumnSettingsDTO(settings), cache.Keys(fmt.Sprintf(constants.CacheKeyColumnSettings, claims.Login, area)), nil
}
