// Package article provides HTTP handlers for article-related endpoints.
// It includes handlers for creating, reading, listing and updating articles
// and for the category navigation.
package article

import (
	"time"

	"article-desk/internal/domain/entity"
	"article-desk/internal/repository"
	artUC "article-desk/internal/usecase/article"
)

// DTO represents the JSON structure for article data transfer.
// Category is 0 when the article has none; CategoryLabel still reports the fallback label.
type DTO struct {
	ID            int64     `json:"id" example:"1"`
	UserID        int64     `json:"user_id" example:"7"`
	Title         string    `json:"title" example:"日銀、金利据え置き"`
	Summary       string    `json:"summary" example:"日銀は政策金利を据え置いた。"`
	Content       string    `json:"content" example:"本文..."`
	Status        int       `json:"status" example:"2"`
	StatusLabel   string    `json:"status_label" example:"Published"`
	Category      int       `json:"category" example:"1"`
	CategoryLabel string    `json:"category_label" example:"Economy"`
	CreatedAt     time.Time `json:"created_at" example:"2025-10-26T12:00:00Z"`
	UpdatedAt     time.Time `json:"updated_at" example:"2025-10-26T12:00:00Z"`
}

// ListItemDTO is a DTO with the author name joined in.
type ListItemDTO struct {
	DTO
	Author string `json:"author" example:"alice"`
}

// ViewDTO is the detail representation of an article.
type ViewDTO struct {
	DTO
	Author         string            `json:"author" example:"alice"`
	AuthorOption   map[int64]string  `json:"author_option"`
	HasAttachments bool              `json:"has_attachments"`
	Files          []entity.FileInfo `json:"files"`
}

// CategoryItemDTO is one category navigation entry. HTML is set in "li" mode.
type CategoryItemDTO struct {
	artUC.CategoryItem
	HTML string `json:"html,omitempty"`
}

// createRequest is the body of POST /articles.
type createRequest struct {
	UserID   int64  `json:"user_id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
	Status   int    `json:"status"`
	Category int    `json:"category"`
}

// updateRequest is the body of PUT /articles/{id}. Omitted fields are left unchanged.
type updateRequest struct {
	UserID   *int64  `json:"user_id"`
	Title    *string `json:"title"`
	Summary  *string `json:"summary"`
	Content  *string `json:"content"`
	Status   *int    `json:"status"`
	Category *int    `json:"category"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:            a.ID,
		UserID:        a.UserID,
		Title:         a.Title,
		Summary:       a.Summary,
		Content:       a.Content,
		Status:        int(a.Status),
		StatusLabel:   entity.StatusLabel(a.Status),
		Category:      int(a.Category),
		CategoryLabel: entity.CategoryLabel(a.Category),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func toListItemDTO(item repository.ArticleWithAuthor, _ int) ListItemDTO {
	return ListItemDTO{DTO: toDTO(item.Article), Author: item.Author}
}

func toViewDTO(v *artUC.View) ViewDTO {
	a := v.Article()
	files := v.Files()
	if files == nil {
		files = []entity.FileInfo{}
	}
	return ViewDTO{
		DTO:            toDTO(&a),
		Author:         v.AuthorName(),
		AuthorOption:   v.AuthorOption(),
		HasAttachments: v.HasAttachments(),
		Files:          files,
	}
}

func (req updateRequest) toInput(id int64) artUC.UpdateInput {
	in := artUC.UpdateInput{
		ID:      id,
		UserID:  req.UserID,
		Title:   req.Title,
		Summary: req.Summary,
		Content: req.Content,
	}
	if req.Status != nil {
		s := entity.Status(*req.Status)
		in.Status = &s
	}
	if req.Category != nil {
		c := entity.Category(*req.Category)
		in.Category = &c
	}
	return in
}
