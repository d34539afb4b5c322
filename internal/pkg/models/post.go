package models

import (
	"time"
)

// Post types
const (
	PostTypeLost  = "lost"
	PostTypeFound = "found"
)

// Post represents a lost/found item post. IDs are monotonic, 1-based and
// never reused within a process run. ContactPhone is a pointer so posts
// without one serialize as null rather than dropping the field.
type Post struct {
	ID           int64     `json:"id"`
	PosterPhone  string    `json:"posterPhone"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ContactPhone *string   `json:"contactPhone"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreatePostRequest represents a request to create a post. Token mirrors the
// x-token header for clients that send the bearer in the body.
type CreatePostRequest struct {
	Token        string `json:"token"`
	Type         string `json:"type"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ContactPhone string `json:"contactPhone"`
}

// PostResponse wraps a single created post
type PostResponse struct {
	OK   bool  `json:"ok"`
	Post *Post `json:"post"`
}

// PostsResponse lists posts in creation order
type PostsResponse struct {
	OK    bool    `json:"ok"`
	Posts []*Post `json:"posts"`
}
