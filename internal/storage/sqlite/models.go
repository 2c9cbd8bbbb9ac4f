package sqlite

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/louisbranch/inkwell/internal/blog"
)

// toMillis normalizes timestamps into millisecond precision for storage.
func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// fromMillis restores millisecond precision and keeps UTC normalization.
func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// userModel maps the users table for Bun queries.
type userModel struct {
	bun.BaseModel `bun:"table:users,alias:user"`
	ID            int64  `bun:"id,pk,autoincrement"`
	Email         string `bun:"email"`
	Name          string `bun:"name"`
	PasswordHash  string `bun:"password_hash"`
	CreatedAt     int64  `bun:"created_at"`
}

// postModel maps the posts table for Bun queries.
type postModel struct {
	bun.BaseModel `bun:"table:posts,alias:post"`
	ID            int64      `bun:"id,pk,autoincrement"`
	AuthorID      int64      `bun:"author_id"`
	Author        *userModel `bun:"rel:belongs-to,join:author_id=id"`
	Title         string     `bun:"title"`
	Subtitle      string     `bun:"subtitle"`
	Date          string     `bun:"date"`
	Body          string     `bun:"body"`
	ImageURL      string     `bun:"image_url"`
	CreatedAt     int64      `bun:"created_at"`
}

// commentModel maps the comments table for Bun queries.
type commentModel struct {
	bun.BaseModel `bun:"table:comments,alias:comment"`
	ID            int64      `bun:"id,pk,autoincrement"`
	AuthorID      int64      `bun:"author_id"`
	Author        *userModel `bun:"rel:belongs-to,join:author_id=id"`
	PostID        int64      `bun:"post_id"`
	Text          string     `bun:"text"`
	CreatedAt     int64      `bun:"created_at"`
}

func userModelToBlog(m userModel) blog.User {
	return blog.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		CreatedAt:    fromMillis(m.CreatedAt),
	}
}

func postModelToBlog(m postModel) blog.Post {
	p := blog.Post{
		ID:        m.ID,
		AuthorID:  m.AuthorID,
		Title:     m.Title,
		Subtitle:  m.Subtitle,
		Date:      m.Date,
		Body:      m.Body,
		ImageURL:  m.ImageURL,
		CreatedAt: fromMillis(m.CreatedAt),
	}
	if m.Author != nil {
		author := userModelToBlog(*m.Author)
		p.Author = &author
	}
	return p
}

func commentModelToBlog(m commentModel) blog.Comment {
	c := blog.Comment{
		ID:        m.ID,
		AuthorID:  m.AuthorID,
		PostID:    m.PostID,
		Text:      m.Text,
		CreatedAt: fromMillis(m.CreatedAt),
	}
	if m.Author != nil {
		author := userModelToBlog(*m.Author)
		c.Author = &author
	}
	return c
}
