package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"

	"article-desk/internal/domain/entity"
	pg "article-desk/internal/infra/adapter/persistence/postgres"
	"article-desk/internal/repository"
)

/* ─────────────────────────── ヘルパ ─────────────────────────── */

var articleCols = []string{
	"id", "user_id", "title", "summary", "content",
	"status", "category", "created_at", "updated_at",
}

func categoryValue(c entity.Category) any {
	if c == 0 {
		return nil
	}
	return int64(c)
}

func artRow(a *entity.Article) *sqlmock.Rows {
	return sqlmock.NewRows(articleCols).AddRow(
		a.ID, a.UserID, a.Title, a.Summary, a.Content,
		int64(a.Status), categoryValue(a.Category), a.CreatedAt, a.UpdatedAt,
	)
}

/* ─────────────────────────── 1. Get ─────────────────────────── */

func TestArticleRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)
	want := &entity.Article{
		ID: 1, UserID: 2, Title: "Markets rally",
		Summary: "sum", Content: "body",
		Status: entity.StatusPublished, Category: entity.CategoryEconomy,
		CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id")).
		WithArgs(int64(1)).
		WillReturnRows(artRow(want))

	repo := pg.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Get_NullCategory(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("FROM article").
		WithArgs(int64(3)).
		WillReturnRows(artRow(&entity.Article{
			ID: 3, UserID: 1, Title: "t", Summary: "s", Content: "c",
			Status: entity.StatusDraft, CreatedAt: now, UpdatedAt: now,
		}))

	repo := pg.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 3)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got.Category != 0 {
		t.Fatalf("want unset category, got %d", got.Category)
	}
}

func TestArticleRepo_Get_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM article").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(articleCols))

	repo := pg.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 99)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got != nil {
		t.Fatalf("want nil, got %+v", got)
	}
}

/* ─────────────────────────── 2. ListWithAuthor ─────────────────────────── */

func TestArticleRepo_ListWithAuthor(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	rows := sqlmock.NewRows(append(append([]string{}, articleCols...), "author")).
		AddRow(int64(2), int64(7), "t2", "s", "c", int64(2), int64(1), now, now, "alice").
		AddRow(int64(1), int64(8), "t1", "s", "c", int64(1), nil, now, now, "bob")

	mock.ExpectQuery(regexp.QuoteMeta("INNER JOIN users u ON a.user_id = u.id")).
		WithArgs(sqlmock.AnyArg(), 20, 40).
		WillReturnRows(rows)

	repo := pg.NewArticleRepo(db)
	got, err := repo.ListWithAuthor(context.Background(), repository.ArticleFilters{
		Categories: []entity.Category{entity.CategoryEconomy},
	}, 40, 20)
	if err != nil {
		t.Fatalf("ListWithAuthor err=%v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 rows, got %d", len(got))
	}
	if got[0].Author != "alice" || got[1].Author != "bob" {
		t.Fatalf("unexpected authors: %q, %q", got[0].Author, got[1].Author)
	}
	if got[1].Article.Category != 0 {
		t.Fatalf("want unset category for NULL column, got %d", got[1].Article.Category)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_ListWithAuthor_NoFilters(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $1 OFFSET $2")).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(append(append([]string{}, articleCols...), "author")))

	repo := pg.NewArticleRepo(db)
	got, err := repo.ListWithAuthor(context.Background(), repository.ArticleFilters{}, 0, 10)
	if err != nil {
		t.Fatalf("ListWithAuthor err=%v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want empty, got %d", len(got))
	}
}

/* ─────────────────────────── 3. Count ─────────────────────────── */

func TestArticleRepo_Count(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	status := entity.StatusPublished
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM article WHERE status = $1")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(5)))

	repo := pg.NewArticleRepo(db)
	got, err := repo.Count(context.Background(), repository.ArticleFilters{Status: &status})
	if err != nil {
		t.Fatalf("Count err=%v", err)
	}
	if got != 5 {
		t.Fatalf("want 5, got %d", got)
	}
}

/* ─────────────────────────── 4. Create ─────────────────────────── */

func TestArticleRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO article")).
		WithArgs(int64(2), "title", "summary", "content", int64(1), int64(3), now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	repo := pg.NewArticleRepo(db)
	art := &entity.Article{
		UserID: 2, Title: "title", Summary: "summary", Content: "content",
		Status: entity.StatusDraft, Category: entity.CategorySport,
		CreatedAt: now, UpdatedAt: now,
	}
	if err := repo.Create(context.Background(), art); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if art.ID != 11 {
		t.Fatalf("want generated id 11, got %d", art.ID)
	}
}

func TestArticleRepo_Create_NullCategory(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO article")).
		WithArgs(int64(2), "t", "s", "c", int64(2), nil, now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	repo := pg.NewArticleRepo(db)
	err := repo.Create(context.Background(), &entity.Article{
		UserID: 2, Title: "t", Summary: "s", Content: "c",
		Status: entity.StatusPublished, CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
}

func TestArticleRepo_Create_ForeignKeyViolation(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO article")).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "fk_article_user"})

	repo := pg.NewArticleRepo(db)
	err := repo.Create(context.Background(), &entity.Article{UserID: 404, Title: "t", Status: entity.StatusDraft})
	if !errors.Is(err, repository.ErrForeignKeyViolation) {
		t.Fatalf("want ErrForeignKeyViolation, got %v", err)
	}
	var fkErr *repository.ForeignKeyError
	if !errors.As(err, &fkErr) || fkErr.Column != "user_id" {
		t.Fatalf("want FK error on user_id, got %v", err)
	}
}

/* ─────────────────────────── 5. Update ─────────────────────────── */

func TestArticleRepo_Update(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()

	mock.ExpectExec("UPDATE article").
		WithArgs(int64(2), "new", "sum", "body", int64(2), int64(1), now, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewArticleRepo(db)
	err := repo.Update(context.Background(), &entity.Article{
		ID: 1, UserID: 2, Title: "new", Summary: "sum", Content: "body",
		Status: entity.StatusPublished, Category: entity.CategoryEconomy, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
}

func TestArticleRepo_Update_NoRows(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("UPDATE article").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewArticleRepo(db)
	err := repo.Update(context.Background(), &entity.Article{ID: 1, Status: entity.StatusDraft})
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestArticleRepo_Update_ForeignKeyViolation(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("UPDATE article").
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "fk_article_user"})

	repo := pg.NewArticleRepo(db)
	err := repo.Update(context.Background(), &entity.Article{ID: 1, UserID: 404, Status: entity.StatusDraft})
	if !errors.Is(err, repository.ErrForeignKeyViolation) {
		t.Fatalf("want ErrForeignKeyViolation, got %v", err)
	}
}

func TestArticleRepo_Update_RowsAffectedError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("UPDATE article").
		WillReturnResult(sqlmock.NewErrorResult(errors.New("driver: rows affected unsupported")))

	repo := pg.NewArticleRepo(db)
	err := repo.Update(context.Background(), &entity.Article{ID: 1, Status: entity.StatusDraft})
	if err == nil || errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("want driver error, got %v", err)
	}
}
