package identity

import (
	"context"

	"github.com/medassist/medassist/internal/platform/db"
)

type unavailableRepo struct{}

// NewUnavailableRepo returns a repository whose every call reports
// db.ErrUnavailable. Installed when the server boots without a store.
func NewUnavailableRepo() UserRepository {
	return unavailableRepo{}
}

func (unavailableRepo) Create(context.Context, *User) error {
	return db.ErrUnavailable
}

func (unavailableRepo) GetByID(context.Context, string) (*User, error) {
	return nil, db.ErrUnavailable
}
