package identity

import (
	"context"
	"errors"
)

// ErrUserNotFound is returned when no user document matches a lookup.
var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	// GetByID looks up a user by the hex form of its document id. Returns
	// ErrUserNotFound when the id is malformed or matches nothing.
	GetByID(ctx context.Context, id string) (*User, error)
}
