package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/louisbranch/inkwell/internal/blog"
	apperrors "github.com/louisbranch/inkwell/internal/platform/errors"
	"github.com/louisbranch/inkwell/internal/storage"
)

var _ storage.PostStore = (*Store)(nil)

// CreatePost inserts a post and returns it with the assigned ID.
func (s *Store) CreatePost(ctx context.Context, p blog.Post) (blog.Post, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	model := postModel{
		AuthorID:  p.AuthorID,
		Title:     p.Title,
		Subtitle:  p.Subtitle,
		Date:      p.Date,
		Body:      p.Body,
		ImageURL:  p.ImageURL,
		CreatedAt: toMillis(p.CreatedAt),
	}
	if _, err := s.bun.NewInsert().Model(&model).Exec(ctx); err != nil {
		if isUniqueViolation(err, "posts.title") {
			return blog.Post{}, apperrors.Wrap(apperrors.CodePostTitleTaken, "a post with that title already exists", err)
		}
		return blog.Post{}, fmt.Errorf("insert post: %w", err)
	}
	p.ID = model.ID
	return p, nil
}

// GetPost loads a post with its author.
func (s *Store) GetPost(ctx context.Context, id int64) (blog.Post, error) {
	var model postModel
	err := s.bun.NewSelect().
		Model(&model).
		Relation("Author").
		Where("post.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return blog.Post{}, storage.ErrNotFound
		}
		return blog.Post{}, fmt.Errorf("select post: %w", err)
	}
	return postModelToBlog(model), nil
}

// ListPosts returns all posts with authors, newest first.
func (s *Store) ListPosts(ctx context.Context) ([]blog.Post, error) {
	var models []postModel
	err := s.bun.NewSelect().
		Model(&models).
		Relation("Author").
		OrderExpr("post.id DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select posts: %w", err)
	}
	posts := make([]blog.Post, 0, len(models))
	for _, m := range models {
		posts = append(posts, postModelToBlog(m))
	}
	return posts, nil
}

// UpdatePost rewrites the editable fields of a post.
//
// The publication date and author never change on edit, matching the
// site's editing rules.
func (s *Store) UpdatePost(ctx context.Context, p blog.Post) error {
	res, err := s.bun.NewUpdate().
		Model((*postModel)(nil)).
		Set("title = ?", p.Title).
		Set("subtitle = ?", p.Subtitle).
		Set("body = ?", p.Body).
		Set("image_url = ?", p.ImageURL).
		Where("id = ?", p.ID).
		Exec(ctx)
	if err != nil {
		if isUniqueViolation(err, "posts.title") {
			return apperrors.Wrap(apperrors.CodePostTitleTaken, "a post with that title already exists", err)
		}
		return fmt.Errorf("update post: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update post rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeletePost removes a post. Comments cascade at the schema level.
func (s *Store) DeletePost(ctx context.Context, id int64) error {
	res, err := s.bun.NewDelete().Model((*postModel)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete post rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
