package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAdminSessionRepo_CreateAndExists(t *testing.T) {
	repo := NewAdminSessionRepo()
	token := uuid.NewString()

	err := repo.Create(context.Background(), token)
	assert.NoError(t, err)

	assert.True(t, repo.Exists(context.Background(), token))
}

func TestAdminSessionRepo_UnknownToken(t *testing.T) {
	repo := NewAdminSessionRepo()

	assert.False(t, repo.Exists(context.Background(), uuid.NewString()))
}

func TestAdminSessionRepo_SessionsDoNotExpire(t *testing.T) {
	repo := NewAdminSessionRepo()
	first := uuid.NewString()
	second := uuid.NewString()

	repo.Create(context.Background(), first)
	repo.Create(context.Background(), second)

	// A new login does not invalidate earlier sessions.
	assert.True(t, repo.Exists(context.Background(), first))
	assert.True(t, repo.Exists(context.Background(), second))
}
