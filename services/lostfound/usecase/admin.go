package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/adipras/campusfound/internal/pkg/logger"
	"github.com/adipras/campusfound/internal/pkg/models"
	"github.com/adipras/campusfound/services/lostfound/domain"
)

// AdminLogin checks the password against the configured credential and
// mints an opaque session token. When a bcrypt hash is configured it wins
// over the plaintext password.
func (u *LostFoundUC) AdminLogin(ctx context.Context, password string) (string, error) {
	if !u.checkAdminPassword(password) {
		return "", domain.ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := u.sessionRepo.Create(ctx, token); err != nil {
		return "", fmt.Errorf("failed to create admin session: %w", err)
	}

	logger.Info("admin logged in")
	return token, nil
}

func (u *LostFoundUC) checkAdminPassword(password string) bool {
	if u.cfg.Admin.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(u.cfg.Admin.PasswordHash), []byte(password)) == nil
	}
	if u.cfg.Admin.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(u.cfg.Admin.Password), []byte(password)) == 1
}

// AuthenticateAdmin reports whether the token belongs to a live admin
// session. Sessions last until the process exits.
func (u *LostFoundUC) AuthenticateAdmin(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	return u.sessionRepo.Exists(ctx, token)
}

// ListUsers returns every registered user in registration order.
func (u *LostFoundUC) ListUsers(ctx context.Context) ([]*models.User, error) {
	return u.userRepo.List(ctx)
}

// BlockUser marks the user as blocked. Their posts stay up but their token
// stops authenticating.
func (u *LostFoundUC) BlockUser(ctx context.Context, phone string) error {
	if err := u.userRepo.Block(ctx, phone); err != nil {
		return domain.ErrUserNotFound
	}
	logger.Info("user blocked", logger.String("phone", phone))
	return nil
}
