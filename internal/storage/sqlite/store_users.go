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

var _ storage.UserStore = (*Store)(nil)

// CreateUser inserts a user and returns it with the assigned ID.
func (s *Store) CreateUser(ctx context.Context, u blog.User) (blog.User, error) {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	model := userModel{
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		CreatedAt:    toMillis(u.CreatedAt),
	}
	if _, err := s.bun.NewInsert().Model(&model).Exec(ctx); err != nil {
		if isUniqueViolation(err, "users.email") {
			return blog.User{}, apperrors.Wrap(apperrors.CodeEmailTaken, "email is already registered", err)
		}
		return blog.User{}, fmt.Errorf("insert user: %w", err)
	}
	u.ID = model.ID
	return u, nil
}

// GetUser loads a user by ID.
func (s *Store) GetUser(ctx context.Context, id int64) (blog.User, error) {
	var model userModel
	err := s.bun.NewSelect().Model(&model).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return blog.User{}, storage.ErrNotFound
		}
		return blog.User{}, fmt.Errorf("select user: %w", err)
	}
	return userModelToBlog(model), nil
}

// GetUserByEmail loads a user by canonical email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (blog.User, error) {
	var model userModel
	err := s.bun.NewSelect().Model(&model).Where("email = ?", email).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return blog.User{}, storage.ErrNotFound
		}
		return blog.User{}, fmt.Errorf("select user by email: %w", err)
	}
	return userModelToBlog(model), nil
}

// AdminUserID returns the ID of the first registered user, or zero when the
// users table is empty.
func (s *Store) AdminUserID(ctx context.Context) (int64, error) {
	var id sql.NullInt64
	err := s.bun.NewSelect().
		Model((*userModel)(nil)).
		ColumnExpr("MIN(id)").
		Scan(ctx, &id)
	if err != nil {
		return 0, fmt.Errorf("select admin user id: %w", err)
	}
	if !id.Valid {
		return 0, nil
	}
	return id.Int64, nil
}

// DeleteUser removes a user. Posts and comments cascade at the schema level.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	res, err := s.bun.NewDelete().Model((*userModel)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
