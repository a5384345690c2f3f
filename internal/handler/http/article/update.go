package article

import (
	"net/http"

	"article-desk/internal/handler/http/pathutil"
	"article-desk/internal/handler/http/respond"
	artUC "article-desk/internal/usecase/article"
)

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事更新
// @Summary      記事更新
// @Description  指定されたIDの記事を更新します。省略したフィールドは変更されません
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        id      path int           true "記事ID"
// @Param        article body updateRequest true "更新内容"
// @Success      200 {object} DTO "更新後の記事"
// @Failure      400 {object} respond.ErrorBody "Validation failed or invalid article ID"
// @Failure      404 {object} respond.ErrorBody "Not found - article not found"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /articles/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	req, rejected, ok := decodeBody[updateRequest](w, r)
	if !ok {
		return
	}

	in := req.toInput(id)
	in.Rejected = rejected
	art, err := h.Svc.Update(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(art))
}
