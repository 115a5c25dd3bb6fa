package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"finz-affiliate/internal/adapters/persistence/repositories"
	"finz-affiliate/internal/config"
	"finz-affiliate/internal/core/domain"
	"finz-affiliate/internal/pkg/jwt"
	"finz-affiliate/internal/pkg/password"
)

// AuthService handles admin authentication
type AuthService struct {
	repo repositories.AdminUserRepository
	cfg  config.JWTConfig
	log  *zap.SugaredLogger
}

// NewAuthService creates a new auth service
func NewAuthService(repo repositories.AdminUserRepository, cfg config.JWTConfig, log *zap.SugaredLogger) *AuthService {
	return &AuthService{repo: repo, cfg: cfg, log: log}
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

// ChangePasswordInput represents the change password form
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

// AuthResponse is returned on successful login
type AuthResponse struct {
	User        *domain.AdminUser `json:"user"`
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	ExpiresAt   time.Time         `json:"expires_at"`
}

// Login checks the credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrMissingCredentials
	}
	// the password is compared as typed; ChangePassword stores it untrimmed
	pass := input.Password

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAdminUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(pass, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	if !password.IsHashed(user.Password) {
		s.upgradeLegacyPassword(ctx, user, pass)
	}

	token, expiresAt, err := jwt.GenerateAccessToken(user.ID, user.Username, user.Role, s.cfg.Secret, s.cfg.AccessTokenMins)
	if err != nil {
		return nil, err
	}

	s.log.Infow("🔐 Admin logged in", "username", user.Username)

	return &AuthResponse{
		User:        user,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// upgradeLegacyPassword rehashes a plaintext password after it verified.
// Failure leaves the old value in place and login still succeeds.
func (s *AuthService) upgradeLegacyPassword(ctx context.Context, user *domain.AdminUser, plain string) {
	hashed, err := password.Hash(plain)
	if err != nil {
		s.log.Warnw("⚠️ Failed to hash legacy password", "username", user.Username, "error", err)
		return
	}
	if err := s.repo.UpdatePassword(ctx, user.ID, hashed); err != nil {
		s.log.Warnw("⚠️ Failed to upgrade legacy password", "username", user.Username, "error", err)
		return
	}
	user.Password = hashed
}

// ChangePassword replaces the admin's password after checking the current one
func (s *AuthService) ChangePassword(ctx context.Context, userID string, input ChangePasswordInput) error {
	if input.CurrentPassword == "" || input.NewPassword == "" || input.ConfirmPassword == "" {
		return ErrMissingPasswordField
	}
	if input.NewPassword != input.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if !password.ValidatePassword(input.NewPassword) {
		return ErrPasswordTooShort
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !password.Verify(input.CurrentPassword, user.Password) {
		return ErrWrongCurrentPassword
	}

	hashed, err := password.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return err
	}

	s.log.Infow("🔑 Admin password changed", "username", user.Username)
	return nil
}

// Me returns the admin behind a token
func (s *AuthService) Me(ctx context.Context, userID string) (*domain.AdminUser, error) {
	return s.repo.GetByID(ctx, userID)
}
