package repository

import (
	"context"
	"sync"
	"time"

	"github.com/adipras/campusfound/internal/pkg/models"
	"github.com/adipras/campusfound/services/lostfound/domain"
)

// UserRepo is the in-memory user directory, keyed uniquely by phone.
// Records are created lazily on first successful OTP verification and
// removed only by explicit account deletion.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]*models.User
	order []string // insertion order for listing

	now func() time.Time
}

// NewUserRepo creates a new in-memory user repository
func NewUserRepo() *UserRepo {
	return &UserRepo{
		users: make(map[string]*models.User),
		now:   time.Now,
	}
}

// GetOrCreate returns the existing record for the phone or creates a fresh
// unblocked one. Idempotent: verifying again never recreates the user.
func (r *UserRepo) GetOrCreate(ctx context.Context, phone string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user, ok := r.users[phone]; ok {
		out := *user
		return &out, nil
	}

	user := &models.User{
		Phone:     phone,
		CreatedAt: r.now(),
		Blocked:   false,
	}
	r.users[phone] = user
	r.order = append(r.order, phone)

	out := *user
	return &out, nil
}

// Get returns the user for the phone or ErrUserNotFound
func (r *UserRepo) Get(ctx context.Context, phone string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[phone]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	out := *user
	return &out, nil
}

// List returns all users in insertion order
func (r *UserRepo) List(ctx context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*models.User, 0, len(r.order))
	for _, phone := range r.order {
		if user, ok := r.users[phone]; ok {
			out := *user
			users = append(users, &out)
		}
	}
	return users, nil
}

// Block marks the user as blocked. There is no unblock path.
func (r *UserRepo) Block(ctx context.Context, phone string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[phone]
	if !ok {
		return domain.ErrUserNotFound
	}

	user.Blocked = true
	return nil
}

// Delete removes the user record entirely
func (r *UserRepo) Delete(ctx context.Context, phone string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[phone]; !ok {
		return domain.ErrUserNotFound
	}

	delete(r.users, phone)
	for i, p := range r.order {
		if p == phone {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
