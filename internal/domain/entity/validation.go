package entity

import (
	"fmt"
	"unicode/utf8"
)

// MaxTitleLength is the maximum number of characters in an article title.
const MaxTitleLength = 255

// attributeLabels are the human-readable names of article attributes.
var attributeLabels = map[string]string{
	"id":          "ID",
	"user_id":     "Author",
	"author":      "Author",
	"title":       "Title",
	"summary":     "Summary",
	"content":     "Content",
	"status":      "Status",
	"category":    "Category",
	"created_at":  "Created At",
	"updated_at":  "Updated At",
	"attachments": "Attachments",
}

// FieldLabel returns the display label of an article attribute.
// Unknown attributes are returned unchanged.
func FieldLabel(field string) string {
	if label, ok := attributeLabels[field]; ok {
		return label
	}
	return field
}

// ValidateArticle checks every rule of an article and returns all failures at once.
// It returns nil when the article is valid, otherwise ValidationErrors.
func ValidateArticle(a *Article) error {
	var errs ValidationErrors

	if a.UserID <= 0 {
		errs = append(errs, required("user_id"))
	}

	switch n := utf8.RuneCountInString(a.Title); {
	case n == 0:
		errs = append(errs, required("title"))
	case n > MaxTitleLength:
		errs = append(errs, &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("%s should contain at most %d characters", FieldLabel("title"), MaxTitleLength),
		})
	}

	if a.Summary == "" {
		errs = append(errs, required("summary"))
	}
	if a.Content == "" {
		errs = append(errs, required("content"))
	}

	switch {
	case a.Status == 0:
		errs = append(errs, required("status"))
	case !a.Status.Valid():
		errs = append(errs, invalid("status"))
	}

	// カテゴリは任意項目: 未設定(0)は許可
	if a.Category != 0 && !a.Category.Valid() {
		errs = append(errs, invalid("category"))
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UnknownUserError is the validation failure reported when user_id does not reference a user.
func UnknownUserError() *ValidationError {
	return &ValidationError{
		Field:   "user_id",
		Message: fmt.Sprintf("%s is invalid: user does not exist", FieldLabel("user_id")),
	}
}

func required(field string) *ValidationError {
	return &ValidationError{Field: field, Message: FieldLabel(field) + " is required"}
}

func invalid(field string) *ValidationError {
	return &ValidationError{Field: field, Message: FieldLabel(field) + " is invalid"}
}
