package article

import (
	"net/http"

	"github.com/samber/lo"

	"article-desk/internal/domain/entity"
	"article-desk/internal/handler/http/respond"
)

// OptionDTO is one value/label pair of a select box.
type OptionDTO struct {
	Value int    `json:"value" example:"1"`
	Label string `json:"label" example:"Draft"`
}

// OptionsResponse lists the choices offered by article edit forms.
type OptionsResponse struct {
	Statuses   []OptionDTO `json:"statuses"`
	Categories []OptionDTO `json:"categories"`
}

type OptionsHandler struct{}

// ServeHTTP 選択肢一覧取得
// @Summary      選択肢一覧取得
// @Description  記事フォーム用のステータスとカテゴリの選択肢を定義順に返します
// @Tags         articles
// @Produce      json
// @Success      200 {object} OptionsResponse "選択肢"
// @Router       /options [get]
func (OptionsHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, OptionsResponse{
		Statuses:   lo.Map(entity.StatusList(), toOptionDTO),
		Categories: lo.Map(entity.CategoryList(), toOptionDTO),
	})
}

func toOptionDTO(o entity.Option, _ int) OptionDTO {
	return OptionDTO{Value: o.Value, Label: o.Label}
}
