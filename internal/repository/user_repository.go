package repository

import "context"

// UserRepository looks up users owned by the account subsystem.
// This service never writes to it.
type UserRepository interface {
	// Username returns the username of the user.
	// Returns entity.ErrNotFound if the user does not exist.
	Username(ctx context.Context, id int64) (string, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
