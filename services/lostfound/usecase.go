package lostfound

import (
	"context"

	"github.com/adipras/campusfound/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/adipras/campusfound/services/lostfound LostFoundUC

// LostFoundUC represents the lost & found usecase interface
type LostFoundUC interface {
	// handle OTP
	GenerateOTP(ctx context.Context, phone string) (sent bool, err error)
	VerifyOTP(ctx context.Context, phone, code string) (token string, err error)

	// handle posts
	CreatePost(ctx context.Context, token string, req *models.CreatePostRequest) (*models.Post, error)
	ListPosts(ctx context.Context) ([]*models.Post, error)

	// handle accounts
	DeleteAccount(ctx context.Context, token string) error

	// handle admin
	AdminLogin(ctx context.Context, password string) (token string, err error)
	AuthenticateAdmin(ctx context.Context, token string) bool
	ListUsers(ctx context.Context) ([]*models.User, error)
	BlockUser(ctx context.Context, phone string) error
}
