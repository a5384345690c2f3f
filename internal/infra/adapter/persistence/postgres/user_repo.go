package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"article-desk/internal/domain/entity"
	"article-desk/internal/repository"
)

// UserRepo reads the users table owned by the account subsystem.
type UserRepo struct{ db *sqlx.DB }

// NewUserRepo wraps an existing pool; driverName selects the bind style ("pgx").
func NewUserRepo(db *sql.DB, driverName string) repository.UserRepository {
	return &UserRepo{db: sqlx.NewDb(db, driverName)}
}

type userRow struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
}

func (repo *UserRepo) Username(ctx context.Context, id int64) (string, error) {
	defer observe("get_username", time.Now())

	const query = `SELECT id, username FROM users WHERE id = $1 LIMIT 1`
	var row userRow
	err := repo.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", entity.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("Username: %w", err)
	}
	return row.Username, nil
}

func (repo *UserRepo) Exists(ctx context.Context, id int64) (bool, error) {
	defer observe("user_exists", time.Now())

	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
	var exists bool
	if err := repo.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("Exists: %w", err)
	}
	return exists, nil
}
