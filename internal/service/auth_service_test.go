package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/attendance-service/internal/config"
	"github.com/spec-kit/attendance-service/internal/repository/memory"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

func newAuthService() *AuthService {
	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 30,
			BcryptCost:            4,
		},
	}
	return NewAuthService(cfg, memory.NewAdminRepository(), zap.NewNop())
}

func TestEnsureDefaultAdminAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()

	require.NoError(t, svc.EnsureDefaultAdmin(ctx, "Admin", "admin@example.com", "hunter2"))

	admin, token, _, err := svc.Login(ctx, "admin@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "Admin", admin.Name)
	assert.NotEmpty(t, token)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.AdminID)
}

func TestEnsureDefaultAdminIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()

	require.NoError(t, svc.EnsureDefaultAdmin(ctx, "Admin", "admin@example.com", "hunter2"))
	require.NoError(t, svc.EnsureDefaultAdmin(ctx, "Admin", "admin@example.com", "hunter2"))

	_, _, _, err := svc.Login(ctx, "admin@example.com", "hunter2")
	require.NoError(t, err)
}

func TestEnsureDefaultAdminSkippedWithoutCredentials(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()

	require.NoError(t, svc.EnsureDefaultAdmin(ctx, "Admin", "", ""))

	_, _, _, err := svc.Login(ctx, "admin@example.com", "anything")
	require.Error(t, err)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()
	require.NoError(t, svc.EnsureDefaultAdmin(ctx, "Admin", "admin@example.com", "hunter2"))

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@example.com", "wrong"},
		{"unknown email", "other@example.com", "hunter2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := svc.Login(ctx, tc.email, tc.password)
			require.Error(t, err)
			assert.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(err).Code)
		})
	}
}
