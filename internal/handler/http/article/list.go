package article

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/samber/lo"

	"article-desk/internal/common/pagination"
	"article-desk/internal/domain/entity"
	"article-desk/internal/handler/http/respond"
	"article-desk/internal/observability/logging"
	artUC "article-desk/internal/usecase/article"
)

type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP 記事一覧取得
// @Summary      記事一覧取得（ページネーション対応）
// @Description  記事を作成日時の新しい順に取得します。category はラベル名で指定します（不明なラベルは Sport として扱われます）
// @Tags         articles
// @Produce      json
// @Param        category query    string false "カテゴリラベル (Economy, Society, Sport)"
// @Param        status   query    int    false "ステータス (1=Draft, 2=Published)"
// @Param        user_id  query    int    false "著者ID"
// @Param        page     query    int    false "ページ番号 (1-based)" default(1) minimum(1)
// @Param        limit    query    int    false "1ページあたりの件数" default(20) minimum(1) maximum(100)
// @Success      200 {object} pagination.Response[ListItemDTO] "ページネーション付き記事一覧"
// @Failure      400 {object} respond.ErrorBody "Invalid query parameters"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.WithRequestID(ctx, h.logger())

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters", slog.String("error", err.Error()))
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	in, err := parseListFilters(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	in.Page = params

	result, err := h.Svc.List(ctx, in)
	if err != nil {
		logger.Error("failed to list articles",
			slog.Int("page", params.Page),
			slog.Int("limit", params.Limit),
			slog.String("error", respond.SanitizeError(err)))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	items := lo.Map(result.Data, toListItemDTO)
	logger.Debug("article list served",
		slog.Int("page", params.Page),
		slog.Int("returned_count", len(items)),
		slog.Int64("total", result.Pagination.Total),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))

	respond.JSON(w, http.StatusOK, pagination.NewResponse(items, result.Pagination))
}

func (h ListHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

func parseListFilters(r *http.Request) (artUC.ListInput, error) {
	q := r.URL.Query()
	in := artUC.ListInput{Category: q.Get("category")}
	if in.Category == "" {
		// /articles/{label} から呼ばれた場合
		in.Category = r.PathValue("id")
	}

	if raw := q.Get("status"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || !entity.Status(n).Valid() {
			return in, errors.New("invalid query parameter: status must be 1 (Draft) or 2 (Published)")
		}
		s := entity.Status(n)
		in.Status = &s
	}

	if raw := q.Get("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return in, errors.New("invalid query parameter: user_id must be a positive integer")
		}
		in.UserID = &id
	}
	return in, nil
}
