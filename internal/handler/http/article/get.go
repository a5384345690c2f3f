package article

import (
	"net/http"
	"strconv"

	"article-desk/internal/handler/http/pathutil"
	"article-desk/internal/handler/http/respond"
	artUC "article-desk/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事詳細取得
// @Summary      記事詳細取得
// @Description  指定されたIDの記事を取得します（著者名・ラベル・添付ファイル有無を含む）
// @Tags         articles
// @Produce      json
// @Param        id path int true "記事ID"
// @Success      200 {object} ViewDTO "記事詳細"
// @Failure      400 {object} respond.ErrorBody "Bad request - invalid article ID"
// @Failure      404 {object} respond.ErrorBody "Not found - article not found"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	view, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toViewDTO(view))
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
