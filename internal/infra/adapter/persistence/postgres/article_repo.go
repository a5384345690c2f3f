package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"article-desk/internal/domain/entity"
	"article-desk/internal/observability/metrics"
	"article-desk/internal/repository"
)

// foreignKeyViolation is the SQLSTATE reported by PostgreSQL for FK failures.
const foreignKeyViolation = "23503"

// fkColumns maps constraint names declared in db.MigrateUp to their column.
var fkColumns = map[string]string{
	"fk_article_user": "user_id",
}

type ArticleRepo struct {
	db           *sql.DB
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

// observe records the duration of one query under the given operation name.
func observe(operation string, start time.Time) {
	metrics.RecordDBQuery(operation, time.Since(start))
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(s rowScanner, extra ...any) (*entity.Article, error) {
	var article entity.Article
	var category sql.NullInt64
	dest := []any{
		&article.ID, &article.UserID, &article.Title, &article.Summary, &article.Content,
		&article.Status, &category, &article.CreatedAt, &article.UpdatedAt,
	}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	if category.Valid {
		article.Category = entity.Category(category.Int64)
	}
	return &article, nil
}

// nullCategory stores an unset category as NULL.
func nullCategory(c entity.Category) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(c), Valid: c != 0}
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	defer observe("get_article", time.Now())

	const query = `
SELECT id, user_id, title, summary, content, status, category, created_at, updated_at
FROM article
WHERE id = $1
LIMIT 1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}

// ListWithAuthor retrieves a page of articles with author names.
// Uses LIMIT and OFFSET for pagination.
func (repo *ArticleRepo) ListWithAuthor(ctx context.Context, filters repository.ArticleFilters, offset, limit int) ([]repository.ArticleWithAuthor, error) {
	defer observe("list_articles", time.Now())

	whereClause, args := repo.queryBuilder.BuildWhereClause(filters, "a")

	paramIndex := len(args) + 1
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
SELECT a.id, a.user_id, a.title, a.summary, a.content, a.status, a.category, a.created_at, a.updated_at,
       u.username AS author
FROM article a
INNER JOIN users u ON a.user_id = u.id
%s
ORDER BY a.created_at DESC, a.id DESC
LIMIT $%d OFFSET $%d`, whereClause, paramIndex, paramIndex+1)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListWithAuthor: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.ArticleWithAuthor, 0, limit)
	for rows.Next() {
		var author string
		article, err := scanArticle(rows, &author)
		if err != nil {
			return nil, fmt.Errorf("ListWithAuthor: Scan: %w", err)
		}
		result = append(result, repository.ArticleWithAuthor{
			Article: article,
			Author:  author,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListWithAuthor: rows.Err: %w", err)
	}
	return result, nil
}

// Count returns the number of articles matching filters.
func (repo *ArticleRepo) Count(ctx context.Context, filters repository.ArticleFilters) (int64, error) {
	defer observe("count_articles", time.Now())

	whereClause, args := repo.queryBuilder.BuildWhereClause(filters, "")
	query := "SELECT COUNT(*) FROM article " + whereClause

	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	defer observe("insert_article", time.Now())

	const query = `
INSERT INTO article
       (user_id, title, summary, content, status, category, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		article.UserID, article.Title, article.Summary, article.Content,
		int64(article.Status), nullCategory(article.Category),
		article.CreatedAt, article.UpdatedAt,
	).Scan(&article.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", translateError(err))
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	defer observe("update_article", time.Now())

	const query = `
UPDATE article SET
       user_id    = $1,
       title      = $2,
       summary    = $3,
       content    = $4,
       status     = $5,
       category   = $6,
       updated_at = $7
WHERE id = $8`
	res, err := repo.db.ExecContext(ctx, query,
		article.UserID, article.Title, article.Summary, article.Content,
		int64(article.Status), nullCategory(article.Category),
		article.UpdatedAt, article.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", translateError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

// translateError converts driver errors the use case layer must understand.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return &repository.ForeignKeyError{
			Column:     fkColumns[pgErr.ConstraintName],
			Constraint: pgErr.ConstraintName,
		}
	}
	return err
}
