package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/adipras/campusfound/internal/pkg/logger"
	"github.com/adipras/campusfound/internal/pkg/models"
	"github.com/adipras/campusfound/services/lostfound/domain"
)

// CreatePost validates and stores a listing on behalf of the token's user.
// The per-phone lock keeps a concurrent DeleteAccount from leaving a post
// behind with no owner.
func (u *LostFoundUC) CreatePost(ctx context.Context, token string, req *models.CreatePostRequest) (*models.Post, error) {
	unlock := u.lockPhone(token)
	user, err := u.authenticateUser(ctx, token)
	if err != nil {
		unlock()
		return nil, err
	}

	if req.Type != models.PostTypeLost && req.Type != models.PostTypeFound {
		unlock()
		return nil, domain.ErrInvalidPostType
	}
	if strings.TrimSpace(req.Title) == "" {
		unlock()
		return nil, domain.ErrTitleRequired
	}

	var contact *string
	if req.ContactPhone != "" {
		contact = &req.ContactPhone
	}

	post, err := u.postRepo.Create(ctx, &models.Post{
		PosterPhone:  user.Phone,
		Type:         req.Type,
		Title:        req.Title,
		Description:  req.Description,
		ContactPhone: contact,
	})
	unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	logger.Info("post created",
		logger.Int64("post_id", post.ID),
		logger.String("type", post.Type),
		logger.String("poster", post.PosterPhone))

	u.notifyPoster(ctx, post)
	return post, nil
}

// notifyPoster sends the best-effort SMS confirmations for a new post.
// Failures are logged and swallowed; the post already exists.
func (u *LostFoundUC) notifyPoster(ctx context.Context, post *models.Post) {
	body := fmt.Sprintf("You posted the item (%s) successfully: %s", post.Type, post.Title)
	if _, err := u.smsGW.Send(ctx, post.PosterPhone, body); err != nil {
		logger.Warn("post confirmation SMS failed",
			logger.Int64("post_id", post.ID),
			logger.Err(err))
	}

	if post.Type == models.PostTypeFound && post.ContactPhone != nil {
		body = fmt.Sprintf("Your item may have been found: %s. Contact: %s", post.Title, post.PosterPhone)
		if _, err := u.smsGW.Send(ctx, *post.ContactPhone, body); err != nil {
			logger.Warn("found-item notification SMS failed",
				logger.Int64("post_id", post.ID),
				logger.Err(err))
		}
	}
}

// ListPosts returns every post, oldest first.
func (u *LostFoundUC) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return u.postRepo.List(ctx)
}

// DeleteAccount removes the user and every post they authored. Blocked
// users may still delete themselves, so this looks the user up directly
// instead of going through authenticateUser.
func (u *LostFoundUC) DeleteAccount(ctx context.Context, token string) error {
	unlock := u.lockPhone(token)
	defer unlock()

	user, err := u.userRepo.Get(ctx, token)
	if err != nil {
		return domain.ErrUserNotFound
	}

	removed, err := u.postRepo.DeleteByPoster(ctx, user.Phone)
	if err != nil {
		return fmt.Errorf("failed to delete posts: %w", err)
	}
	if err := u.userRepo.Delete(ctx, user.Phone); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	logger.Info("account deleted",
		logger.String("phone", user.Phone),
		logger.Int("posts_removed", removed))
	return nil
}
