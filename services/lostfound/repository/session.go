package repository

import (
	"context"
	"sync"
)

// AdminSessionRepo is the in-memory admin session set. Tokens never expire
// and there is no revoke path; the set is cleared only by process restart.
type AdminSessionRepo struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

// NewAdminSessionRepo creates a new in-memory admin session repository
func NewAdminSessionRepo() *AdminSessionRepo {
	return &AdminSessionRepo{
		tokens: make(map[string]struct{}),
	}
}

// Create registers a token as an active admin session
func (r *AdminSessionRepo) Create(ctx context.Context, token string) error {
	r.mu.Lock()
	r.tokens[token] = struct{}{}
	r.mu.Unlock()
	return nil
}

// Exists reports whether the token is a registered admin session
func (r *AdminSessionRepo) Exists(ctx context.Context, token string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.tokens[token]
	return ok
}
