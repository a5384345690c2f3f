// Package repository declares the persistence ports of the article service.
// Adapters live under internal/infra/adapter/persistence.
package repository

import (
	"errors"
	"fmt"
)

// ErrForeignKeyViolation indicates that a write referenced a row that does not exist.
var ErrForeignKeyViolation = errors.New("foreign key violation")

// ForeignKeyError reports which column caused a foreign key violation.
type ForeignKeyError struct {
	Column     string
	Constraint string
}

func (e *ForeignKeyError) Error() string {
	return fmt.Sprintf("%s: column %q (constraint %q)", ErrForeignKeyViolation, e.Column, e.Constraint)
}

// Is makes ForeignKeyError match ErrForeignKeyViolation.
func (e *ForeignKeyError) Is(target error) bool {
	return target == ErrForeignKeyViolation
}
