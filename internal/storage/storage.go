// Package storage defines the persistence contracts for blog data.
//
// The sqlite subpackage provides the production implementation; handlers and
// tests depend only on these interfaces.
package storage

import (
	"context"

	"github.com/louisbranch/inkwell/internal/blog"
	apperrors "github.com/louisbranch/inkwell/internal/platform/errors"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// UserStore persists user accounts.
type UserStore interface {
	// CreateUser inserts a user and returns it with its assigned ID.
	// A duplicate email yields CodeEmailTaken.
	CreateUser(ctx context.Context, u blog.User) (blog.User, error)
	GetUser(ctx context.Context, id int64) (blog.User, error)
	GetUserByEmail(ctx context.Context, email string) (blog.User, error)
	// AdminUserID reports the ID of the first registered user, the site
	// administrator by convention. Zero when no users exist.
	AdminUserID(ctx context.Context) (int64, error)
	// DeleteUser removes a user; their posts and comments cascade.
	DeleteUser(ctx context.Context, id int64) error
}

// PostStore persists blog posts.
type PostStore interface {
	// CreatePost inserts a post and returns it with its assigned ID.
	// A duplicate title yields CodePostTitleTaken.
	CreatePost(ctx context.Context, p blog.Post) (blog.Post, error)
	// GetPost loads a post with its author.
	GetPost(ctx context.Context, id int64) (blog.Post, error)
	// ListPosts returns all posts with authors, newest first.
	ListPosts(ctx context.Context) ([]blog.Post, error)
	UpdatePost(ctx context.Context, p blog.Post) error
	// DeletePost removes a post; its comments cascade.
	DeletePost(ctx context.Context, id int64) error
}

// CommentStore persists post comments.
type CommentStore interface {
	CreateComment(ctx context.Context, c blog.Comment) (blog.Comment, error)
	// ListComments returns a post's comments with authors, oldest first.
	ListComments(ctx context.Context, postID int64) ([]blog.Comment, error)
}

// Store aggregates every persistence contract the service needs.
type Store interface {
	UserStore
	PostStore
	CommentStore
}
