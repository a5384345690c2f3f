// Package article provides use cases for managing article records.
// It implements creation, update, lookup and listing with validation, builds the
// read-only View with derived display values, and renders the category navigation.
package article

import (
	"errors"
	"fmt"

	"article-desk/internal/domain/entity"
)

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers. It wraps entity.ErrInvalidInput.
	ErrInvalidArticleID = fmt.Errorf("%w: article ID must be a positive integer", entity.ErrInvalidInput)
)
