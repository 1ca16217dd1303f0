// Файл: pkg/utils/context_utils.go

package utils

import (
	"context"

	"service-tasks/internal/dto"
	"service-tasks/pkg/contextkeys"
	apperrors "service-tasks/pkg/errors"
)

func GetClaimsFromContext(ctx context.Context) (*dto.UserClaims, error) {
	claims, ok := ctx.Value(contextkeys.UserClaimsKey).(*dto.UserClaims)
	if !ok || claims == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return claims, nil
}

func WithClaims(ctx context.Context, claims *dto.UserClaims) context.Context {
	return context.WithValue(ctx, contextkeys.UserClaimsKey, claims)
}
