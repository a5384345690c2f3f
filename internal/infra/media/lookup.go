// Package media asks the media service which files are attached to an article.
// Only presence matters to callers; the descriptors are passed through unchanged.
//
// The package includes an HTTP client and a no-op lookup for when the media
// service is not configured.
package media

import (
	"context"

	"article-desk/internal/domain/entity"
)

// Lookup returns the files attached to an article.
// An article without attachments yields an empty slice and a nil error.
type Lookup interface {
	Files(ctx context.Context, articleID int64) ([]entity.FileInfo, error)
}

// Noop never finds attachments.
type Noop struct{}

// NewNoop creates a Noop lookup.
func NewNoop() *Noop {
	return &Noop{}
}

// Files always returns no files.
func (Noop) Files(context.Context, int64) ([]entity.FileInfo, error) {
	return nil, nil
}
