package article

import (
	"net/http"
	"strings"

	"github.com/samber/lo"

	"article-desk/internal/handler/http/respond"
	artUC "article-desk/internal/usecase/article"
)

type CategoriesHandler struct{ Svc *artUC.Service }

// ServeHTTP カテゴリナビゲーション取得
// @Summary      カテゴリナビゲーション取得
// @Description  カテゴリ一覧を li または menu 形式で返します。category パラメータと一致する項目が active になります
// @Tags         categories
// @Produce      json
// @Param        render   query string false "描画形式 (li, menu)" default(li)
// @Param        category query string false "現在選択中のカテゴリラベル"
// @Param        class    query string false "li 要素の class"
// @Success      200 {array} CategoryItemDTO "カテゴリ項目"
// @Router       /categories [get]
func (h CategoriesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	renderAs := artUC.RenderAs(strings.ToLower(q.Get("render")))
	if renderAs == "" {
		renderAs = artUC.RenderList
	}

	items := h.Svc.ListCategoryItems(nil, renderAs, artUC.ItemOptions{
		Class: q.Get("class"),
	}, q.Get("category"))

	respond.JSON(w, http.StatusOK, lo.Map(items, func(it artUC.CategoryItem, _ int) CategoryItemDTO {
		dto := CategoryItemDTO{CategoryItem: it}
		if renderAs == artUC.RenderList {
			dto.HTML = string(it.HTML())
		}
		return dto
	}))
}
