package article

import (
	"time"

	"article-desk/internal/domain/entity"
)

// View is a loaded article together with the values derived from it.
// It is built once after load and never changes.
type View struct {
	article    entity.Article
	authorName string
	files      []entity.FileInfo
}

func newView(a *entity.Article, authorName string, files []entity.FileInfo) *View {
	return &View{
		article:    *a,
		authorName: authorName,
		files:      append([]entity.FileInfo(nil), files...),
	}
}

func (v *View) ID() int64                 { return v.article.ID }
func (v *View) UserID() int64             { return v.article.UserID }
func (v *View) Title() string             { return v.article.Title }
func (v *View) Summary() string           { return v.article.Summary }
func (v *View) Content() string           { return v.article.Content }
func (v *View) Status() entity.Status     { return v.article.Status }
func (v *View) Category() entity.Category { return v.article.Category }
func (v *View) CreatedAt() time.Time      { return v.article.CreatedAt }
func (v *View) UpdatedAt() time.Time      { return v.article.UpdatedAt }

// Article returns a copy of the underlying record.
func (v *View) Article() entity.Article { return v.article }

// AuthorName is the owner's username, empty when the user no longer exists.
func (v *View) AuthorName() string { return v.authorName }

// StatusLabel is the display label of the status.
func (v *View) StatusLabel() string { return entity.StatusLabel(v.article.Status) }

// CategoryLabel is the display label of the category ("Sport" when unset).
func (v *View) CategoryLabel() string { return entity.CategoryLabel(v.article.Category) }

// HasAttachments reports whether the media service listed any files.
func (v *View) HasAttachments() bool { return len(v.files) > 0 }

// Files returns a copy of the attached file descriptors.
func (v *View) Files() []entity.FileInfo {
	return append([]entity.FileInfo(nil), v.files...)
}

// AuthorOption is the single-entry author choice used to pre-fill edit forms.
func (v *View) AuthorOption() map[int64]string {
	return map[int64]string{v.article.UserID: v.authorName}
}
