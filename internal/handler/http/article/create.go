package article

import (
	"net/http"

	"article-desk/internal/domain/entity"
	"article-desk/internal/handler/http/respond"
	artUC "article-desk/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事作成
// @Summary      記事作成
// @Description  新しい記事を作成します。category は省略可能です
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        article body createRequest true "記事情報"
// @Success      201 {object} DTO "作成された記事"
// @Failure      400 {object} respond.ErrorBody "Validation failed - per-field messages in fields"
// @Failure      413 {object} respond.ErrorBody "Request body too large"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, rejected, ok := decodeBody[createRequest](w, r)
	if !ok {
		return
	}

	art, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		UserID:   req.UserID,
		Title:    req.Title,
		Summary:  req.Summary,
		Content:  req.Content,
		Status:   entity.Status(req.Status),
		Category: entity.Category(req.Category),
		Rejected: rejected,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Location", "/articles/"+itoa(art.ID))
	respond.JSON(w, http.StatusCreated, toDTO(art))
}
