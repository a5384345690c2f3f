package article

import (
	"log/slog"
	"net/http"
	"strconv"

	"article-desk/internal/common/pagination"
	artUC "article-desk/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
// Patterns carry the method and the {id} wildcard read by pathutil.ParseID.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	list := ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	}

	mux.Handle("GET /articles", list)
	mux.Handle("GET /articles/{id}", articleOrCategory{get: GetHandler{svc}, list: list})
	mux.Handle("POST /articles", CreateHandler{svc})
	mux.Handle("PUT /articles/{id}", UpdateHandler{svc})

	mux.Handle("GET /categories", CategoriesHandler{svc})
	mux.Handle("GET /options", OptionsHandler{})
}

// articleOrCategory serves a single article for numeric ids and the category
// listing linked from the navigation (/articles/Economy) otherwise.
type articleOrCategory struct {
	get  GetHandler
	list ListHandler
}

func (h articleOrCategory) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, err := strconv.ParseInt(r.PathValue("id"), 10, 64); err == nil {
		h.get.ServeHTTP(w, r)
		return
	}
	h.list.ServeHTTP(w, r)
}
