package article

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/samber/lo"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"article-desk/internal/common/pagination"
	"article-desk/internal/domain/entity"
	"article-desk/internal/observability/logging"
	"article-desk/internal/observability/metrics"
	"article-desk/internal/observability/tracing"
	"article-desk/internal/repository"
)

// MediaLookup lists the files attached to an article.
type MediaLookup interface {
	Files(ctx context.Context, articleID int64) ([]entity.FileInfo, error)
}

// CreateInput represents the input parameters for creating a new article.
// Category may be zero (not set).
type CreateInput struct {
	UserID   int64
	Title    string
	Summary  string
	Content  string
	Status   entity.Status
	Category entity.Category
	// Rejected lists fields the caller could not decode. They are reported
	// together with the other validation failures and nothing is stored.
	Rejected entity.ValidationErrors
}

// UpdateInput represents the input parameters for updating an existing article.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID       int64
	UserID   *int64
	Title    *string
	Summary  *string
	Content  *string
	Status   *entity.Status
	Category *entity.Category
	Rejected entity.ValidationErrors
}

// ListInput selects a page of articles.
// Category is a display label resolved with entity.CategoryIDFromLabel; empty means all.
type ListInput struct {
	Category string
	Status   *entity.Status
	UserID   *int64
	Page     pagination.Params
}

// ListResult represents the result of a paginated query.
type ListResult struct {
	Data       []repository.ArticleWithAuthor
	Pagination pagination.Metadata
}

// Service provides article management use cases.
// Repo is required; Users, Media, Logger and Now are optional.
type Service struct {
	Repo       repository.ArticleRepository
	Users      repository.UserRepository
	Media      MediaLookup
	Logger     *slog.Logger
	Now        func() time.Time
	Pagination pagination.Config
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) logger(ctx context.Context) *slog.Logger {
	l := s.Logger
	if l == nil {
		l = logging.FromContext(ctx)
	}
	return logging.WithRequestID(ctx, l)
}

func (s *Service) paginationConfig() pagination.Config {
	if s.Pagination.MaxLimit == 0 {
		return pagination.DefaultConfig()
	}
	return s.Pagination
}

// Create validates and stores a new article.
// Returns entity.ValidationErrors when any field is invalid, including an unknown user.
func (s *Service) Create(ctx context.Context, in CreateInput) (art *entity.Article, err error) {
	ctx, span := tracing.Tracer().Start(ctx, "article.Create")
	defer func() { endSpan(span, err) }()

	now := s.now()
	art = &entity.Article{
		UserID:    in.UserID,
		Title:     in.Title,
		Summary:   in.Summary,
		Content:   in.Content,
		Status:    in.Status,
		Category:  in.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.validate(ctx, art, in.Rejected); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", s.translateWriteError(err))
	}
	span.SetAttributes(attribute.Int64("article.id", art.ID))

	metrics.RecordArticleCreated(art.Status)
	s.logger(ctx).Info("article created",
		slog.Int64("article_id", art.ID),
		slog.Int64("user_id", art.UserID),
		slog.String("status", entity.StatusLabel(art.Status)))
	return art, nil
}

// Update applies the non-nil fields of in to an existing article and stores it.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
// Returns entity.ValidationErrors if the resulting article is invalid.
func (s *Service) Update(ctx context.Context, in UpdateInput) (art *entity.Article, err error) {
	ctx, span := tracing.Tracer().Start(ctx, "article.Update",
		trace.WithAttributes(attribute.Int64("article.id", in.ID)))
	defer func() { endSpan(span, err) }()

	if in.ID <= 0 {
		return nil, ErrInvalidArticleID
	}

	art, err = s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}

	if in.UserID != nil {
		art.UserID = *in.UserID
	}
	if in.Title != nil {
		art.Title = *in.Title
	}
	if in.Summary != nil {
		art.Summary = *in.Summary
	}
	if in.Content != nil {
		art.Content = *in.Content
	}
	if in.Status != nil {
		art.Status = *in.Status
	}
	if in.Category != nil {
		art.Category = *in.Category
	}

	if err := s.validate(ctx, art, in.Rejected); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	art.UpdatedAt = s.now()

	if err := s.Repo.Update(ctx, art); err != nil {
		// 取得後に削除された場合
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("update article: %w", s.translateWriteError(err))
	}

	metrics.RecordArticleUpdated()
	s.logger(ctx).Info("article updated", slog.Int64("article_id", art.ID))
	return art, nil
}

// GetByID loads an article and derives its display values.
// The author lookup and the attachment lookup run concurrently, once, before the View is returned.
// A failing media service does not fail the call; the View then reports no attachments.
func (s *Service) GetByID(ctx context.Context, id int64) (v *View, err error) {
	ctx, span := tracing.Tracer().Start(ctx, "article.GetByID",
		trace.WithAttributes(attribute.Int64("article.id", id)))
	defer func() { endSpan(span, err) }()

	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}

	// 著者名と添付ファイルは独立しているので並行に取得する
	var (
		author string
		files  []entity.FileInfo
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		name, err := s.authorName(egCtx, art.UserID)
		if err != nil {
			return fmt.Errorf("get article author: %w", err)
		}
		author = name
		return nil
	})
	eg.Go(func() error {
		files = s.files(egCtx, art.ID)
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return newView(art, author, files), nil
}

// List returns a page of articles, newest first, with author names.
func (s *Service) List(ctx context.Context, in ListInput) (res *ListResult, err error) {
	ctx, span := tracing.Tracer().Start(ctx, "article.List")
	defer func() { endSpan(span, err) }()

	params := in.Page.WithDefaults(s.paginationConfig())
	filters := repository.ArticleFilters{Status: in.Status, UserID: in.UserID}
	if in.Category != "" {
		filters.Categories = []entity.Category{entity.CategoryIDFromLabel(in.Category)}
	}

	total, err := s.Repo.Count(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	data, err := s.Repo.ListWithAuthor(ctx, filters, params.Offset(), params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return &ListResult{
		Data:       data,
		Pagination: pagination.NewMetadata(params, total),
	}, nil
}

// validate runs field validation and, when a user collaborator is configured,
// the existence check of the owner. All failures are returned together.
func (s *Service) validate(ctx context.Context, art *entity.Article, rejected entity.ValidationErrors) error {
	errs := slices.Clone(rejected)
	if err := entity.ValidateArticle(art); err != nil {
		ve, ok := entity.AsValidationErrors(err)
		if !ok {
			return err
		}
		// 型エラーのフィールドは値が信用できないので重ねて報告しない
		errs = append(errs, lo.Reject(ve, func(e *entity.ValidationError, _ int) bool {
			return rejected.Has(e.Field)
		})...)
	}

	if s.Users != nil && art.UserID != 0 && !errs.Has("user_id") {
		exists, err := s.Users.Exists(ctx, art.UserID)
		if err != nil {
			return fmt.Errorf("check user: %w", err)
		}
		if !exists {
			errs = append(errs, entity.UnknownUserError())
		}
	}

	if len(errs) == 0 {
		return nil
	}
	metrics.RecordValidationFailures(errs.Fields())
	return errs
}

// translateWriteError maps a storage foreign key failure to a user_id validation error.
func (s *Service) translateWriteError(err error) error {
	if errors.Is(err, repository.ErrForeignKeyViolation) {
		metrics.RecordValidationFailures([]string{"user_id"})
		return entity.ValidationErrors{entity.UnknownUserError()}
	}
	return err
}

func (s *Service) authorName(ctx context.Context, userID int64) (string, error) {
	if s.Users == nil {
		return "", nil
	}
	name, err := s.Users.Username(ctx, userID)
	if errors.Is(err, entity.ErrNotFound) {
		return "", nil
	}
	return name, err
}

func (s *Service) files(ctx context.Context, articleID int64) []entity.FileInfo {
	if s.Media == nil {
		return nil
	}
	files, err := s.Media.Files(ctx, articleID)
	switch {
	case err != nil:
		metrics.RecordMediaLookup(metrics.MediaOutcomeError)
		s.logger(ctx).Warn("media lookup failed, reporting no attachments",
			slog.Int64("article_id", articleID),
			slog.Any("error", err))
		return nil
	case len(files) == 0:
		metrics.RecordMediaLookup(metrics.MediaOutcomeNone)
	default:
		metrics.RecordMediaLookup(metrics.MediaOutcomeFound)
	}
	return files
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
