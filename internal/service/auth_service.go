package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/attendance-service/internal/auth"
	"github.com/spec-kit/attendance-service/internal/config"
	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/repository"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

// AuthService coordinates admin login and default-admin seeding.
type AuthService struct {
	admins     repository.AdminRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
	logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, admins repository.AdminRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		admins:     admins,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
		logger:     logger,
	}
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Login authenticates an admin and returns a bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Admin, string, time.Time, error) {
	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	if err := auth.ComparePassword(admin.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	token, exp, err := s.tokenMgr.GenerateToken(admin.ID, admin.Name)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return admin, token, exp, nil
}

// EnsureDefaultAdmin seeds the configured admin account when none exists.
// Skipped when no password is configured.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context, name, email, password string) error {
	if email == "" || password == "" {
		s.logger.Warn("no default admin configured; mutation endpoints will be unreachable")
		return nil
	}

	if _, err := s.admins.GetByEmail(ctx, email); err == nil {
		return nil
	} else if err != pgx.ErrNoRows {
		return err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}
	admin := &domain.Admin{Name: name, Email: email, PasswordHash: hash}
	if err := s.admins.Create(ctx, admin); err != nil {
		return err
	}
	s.logger.Info("seeded default admin", zap.String("email", email))
	return nil
}
