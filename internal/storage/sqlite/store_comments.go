package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/louisbranch/inkwell/internal/blog"
	"github.com/louisbranch/inkwell/internal/storage"
)

var _ storage.CommentStore = (*Store)(nil)

// CreateComment inserts a comment and returns it with the assigned ID.
func (s *Store) CreateComment(ctx context.Context, c blog.Comment) (blog.Comment, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	model := commentModel{
		AuthorID:  c.AuthorID,
		PostID:    c.PostID,
		Text:      c.Text,
		CreatedAt: toMillis(c.CreatedAt),
	}
	if _, err := s.bun.NewInsert().Model(&model).Exec(ctx); err != nil {
		return blog.Comment{}, fmt.Errorf("insert comment: %w", err)
	}
	c.ID = model.ID
	return c, nil
}

// ListComments returns a post's comments with authors, oldest first.
func (s *Store) ListComments(ctx context.Context, postID int64) ([]blog.Comment, error) {
	var models []commentModel
	err := s.bun.NewSelect().
		Model(&models).
		Relation("Author").
		Where("comment.post_id = ?", postID).
		OrderExpr("comment.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select comments: %w", err)
	}
	comments := make([]blog.Comment, 0, len(models))
	for _, m := range models {
		comments = append(comments, commentModelToBlog(m))
	}
	return comments, nil
}
