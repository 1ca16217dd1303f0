package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"service-tasks/internal/dto"
	"service-tasks/internal/entities"
	"service-tasks/pkg/config"
	"service-tasks/pkg/constants"
	apperrors "service-tasks/pkg/errors"
	"service-tasks/pkg/service"
	"service-tasks/pkg/utils"
)

type fakeUserRepo struct {
	users map[string]entities.User
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint64) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) FindByLogin(_ context.Context, login string) (*entities.User, error) {
	u, ok := r.users[login]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) FindTelegramChatIDsByRoles(context.Context, ...string) ([]int64, error) {
	return nil, nil
}

func (r *fakeUserRepo) Upsert(_ context.Context, u *entities.User) (uint64, error) {
	r.users[u.Login] = *u
	return u.ID, nil
}

func newAuthFixture(t *testing.T) (*AuthService, *memoryCache, service.JWTService) {
	t.Helper()
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	users := &fakeUserRepo{users: map[string]entities.User{
		"olena": {ID: 1, Login: "olena", Name: "Олена", Role: constants.RoleAccountant, Region: "Київ", Password: hash},
	}}
	cacheRepo := newMemoryCache()
	jwtSvc := service.NewJWTService("test-secret", time.Hour, zap.NewNop())
	svc := NewAuthService(users, cacheRepo, jwtSvc, zap.NewNop(), config.AuthConfig{
		MaxLoginAttempts: 3,
		LockoutDuration:  time.Minute,
	})
	return svc, cacheRepo, jwtSvc
}

func TestAuthService_Login(t *testing.T) {
	svc, _, jwtSvc := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginDTO{Login: "olena", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, constants.RoleAccountant, resp.User.Role)

	claims, err := jwtSvc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), claims.UserID)
	assert.Equal(t, "Київ", claims.Region)
}

func TestAuthService_UnknownUser(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Login: "nobody", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_LockoutAfterFailedAttempts(t *testing.T) {
	svc, cacheRepo, _ := newAuthFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Login(ctx, dto.LoginDTO{Login: "olena", Password: "wrong-pass"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}
	assert.Contains(t, cacheRepo.data, fmt.Sprintf(constants.CacheKeyLockout, 1))

	_, err := svc.Login(ctx, dto.LoginDTO{Login: "olena", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrAccountLocked)
}

func TestAuthService_SuccessResetsAttempts(t *testing.T) {
	svc, cacheRepo, _ := newAuthFixture(t)
	ctx := context.Background()

	_, _ = svc.Login(ctx, dto.LoginDTO{Login: "olena", Password: "wrong-pass"})
	assert.Equal(t, "1", cacheRepo.data[fmt.Sprintf(constants.CacheKeyLoginAttempts, 1)])

	_, err := svc.Login(ctx, dto.LoginDTO{Login: "olena", Password: "secret123"})
	require.NoError(t, err)
	assert.NotContains(t, cacheRepo.data, fmt.Sprintf(constants.CacheKeyLoginAttempts, 1))
}

func TestAuthService_Me(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	me, err := svc.Me(ctxAs(constants.RoleAccountant, "olena", "Київ"))
	require.NoError(t, err)
	assert.Equal(t, "Олена", me.Name)

	_, err = svc.Me(context.Background())
	assert.Error(t, err)
}
