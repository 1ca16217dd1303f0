package middleware

import (
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"service-tasks/internal/dto"
	apperrors "service-tasks/pkg/errors"
	"service-tasks/pkg/service"
	"service-tasks/pkg/utils"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		logger:     logger,
	}
}

// bearerToken достает токен из заголовка "Bearer <token>".
// Браузерный websocket не умеет заголовки, поэтому для него берется ?token=.
func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		if token := c.QueryParam("token"); token != "" && c.IsWebSocket() {
			return token, nil
		}
		return "", apperrors.ErrEmptyAuthHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", apperrors.ErrInvalidAuthHeader
	}
	return parts[1], nil
}

// Auth проверяет токен и кладет данные пользователя в контекст запроса.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := bearerToken(c)
		if err != nil {
			m.logger.Warn("AuthMiddleware: нет токена", zap.String("uri", c.Request().RequestURI), zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			m.logger.Warn("AuthMiddleware: Ошибка валидации токена", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		userClaims := &dto.UserClaims{
			UserID: claims.UserID,
			Login:  claims.Login,
			Name:   claims.Name,
			Role:   claims.Role,
			Region: claims.Region,
		}
		c.SetRequest(c.Request().WithContext(utils.WithClaims(c.Request().Context(), userClaims)))

		m.logger.Debug("AuthMiddleware: пользователь аутентифицирован",
			zap.Uint64("userID", claims.UserID),
			zap.String("role", claims.Role))

		return next(c)
	}
}

// RequireRoles пропускает только перечисленные роли. Администратор проходит всегда.
func (m *AuthMiddleware) RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := utils.GetClaimsFromContext(c.Request().Context())
			if err != nil {
				return utils.ErrorResponse(c, err, m.logger)
			}
			if !utils.IsAdmin(claims.Role) && !slices.Contains(roles, claims.Role) {
				m.logger.Warn("доступ запрещён",
					zap.String("login", claims.Login),
					zap.String("role", claims.Role),
					zap.Strings("required", roles))
				return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
			}
			return next(c)
		}
	}
}
