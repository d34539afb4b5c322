package repository

import (
	"context"
	"sync"
	"time"

	"github.com/adipras/campusfound/internal/pkg/models"
)

// PostRepo is the in-memory post catalog. Id assignment shares the mutex
// with the append, so ids are strictly increasing, 1-based, and never
// reused within a process run, even after deletions.
type PostRepo struct {
	mu     sync.RWMutex
	posts  []*models.Post
	nextID int64

	now func() time.Time
}

// NewPostRepo creates a new in-memory post repository
func NewPostRepo() *PostRepo {
	return &PostRepo{
		now: time.Now,
	}
}

// Create assigns the next id, stamps the creation time and appends the post
func (r *PostRepo) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	post.ID = r.nextID
	post.CreatedAt = r.now()
	r.posts = append(r.posts, post)

	out := *post
	return &out, nil
}

// List returns all posts in creation order
func (r *PostRepo) List(ctx context.Context) ([]*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]*models.Post, 0, len(r.posts))
	for _, post := range r.posts {
		out := *post
		posts = append(posts, &out)
	}
	return posts, nil
}

// DeleteByPoster removes every post whose poster matches the phone and
// returns how many were removed
func (r *PostRepo) DeleteByPoster(ctx context.Context, phone string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.posts[:0]
	removed := 0
	for _, post := range r.posts {
		if post.PosterPhone == phone {
			removed++
			continue
		}
		kept = append(kept, post)
	}
	r.posts = kept
	return removed, nil
}
