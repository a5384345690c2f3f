package repository

import (
	"context"

	"article-desk/internal/domain/entity"
)

// ArticleWithAuthor represents an article along with its author's username.
type ArticleWithAuthor struct {
	Article *entity.Article
	Author  string
}

// ArticleFilters contains optional filters for article listing.
// Empty slices and nil pointers mean "no filter".
type ArticleFilters struct {
	Categories []entity.Category // Optional: category IN (...)
	Status     *entity.Status    // Optional: exact status
	UserID     *int64            // Optional: articles of one author
}

// IsEmpty reports whether no filter is set.
func (f ArticleFilters) IsEmpty() bool {
	return len(f.Categories) == 0 && f.Status == nil && f.UserID == nil
}

type ArticleRepository interface {
	// Get retrieves an article by ID.
	// Returns (nil, nil) if the article is not found.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// ListWithAuthor retrieves a page of articles joined with their author names,
	// ordered by created_at DESC.
	ListWithAuthor(ctx context.Context, filters ArticleFilters, offset, limit int) ([]ArticleWithAuthor, error)
	// Count returns the number of articles matching filters.
	Count(ctx context.Context, filters ArticleFilters) (int64, error)
	// Create inserts the article and stores the generated ID on it.
	// Returns an error wrapping ErrForeignKeyViolation when user_id is unknown.
	Create(ctx context.Context, article *entity.Article) error
	// Update overwrites the stored row.
	// Returns an error wrapping ErrForeignKeyViolation when user_id is unknown.
	Update(ctx context.Context, article *entity.Article) error
}
