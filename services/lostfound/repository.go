package lostfound

import (
	"context"

	"github.com/adipras/campusfound/internal/pkg/models"
)

// OTPRepo holds at most one pending OTP challenge per phone number.
// Verification is single use: success and expiry both consume the challenge,
// a mismatch leaves it intact.
type OTPRepo interface {
	Issue(ctx context.Context, phone string) (*models.OTP, error)
	Verify(ctx context.Context, phone, code string) error
}

// UserRepo holds one user record per verified phone number
type UserRepo interface {
	GetOrCreate(ctx context.Context, phone string) (*models.User, error)
	Get(ctx context.Context, phone string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Block(ctx context.Context, phone string) error
	Delete(ctx context.Context, phone string) error
}

// PostRepo holds lost/found item posts with monotonic, never-reused ids
type PostRepo interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	DeleteByPoster(ctx context.Context, phone string) (int, error)
}

// AdminSessionRepo maps opaque admin tokens to active sessions.
// Sessions never expire; they live until process restart.
type AdminSessionRepo interface {
	Create(ctx context.Context, token string) error
	Exists(ctx context.Context, token string) bool
}
