// Package entity defines the core domain entities and validation logic for the application.
// It contains the Article record, its status and category enumerations, the read-only
// User and FileInfo collaborators, and the domain-specific errors.
package entity

import "time"

// Article represents a content article owned by a user.
// Category is optional: the zero value means "not set" and is stored as NULL.
type Article struct {
	ID        int64
	UserID    int64
	Title     string
	Summary   string
	Content   string
	Status    Status
	Category  Category
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreatedBy returns the id of the user that owns the article.
// Ownership rules of the authorization layer read it.
func (a *Article) CreatedBy() int64 {
	return a.UserID
}

// User is the subset of the user record this service reads.
type User struct {
	ID       int64
	Username string
}

// FileInfo describes a file attached to an article by the media service.
type FileInfo struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}
