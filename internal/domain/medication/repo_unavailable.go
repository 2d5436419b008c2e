package medication

import (
	"context"

	"github.com/medassist/medassist/internal/platform/db"
)

type unavailableRepo struct{}

// NewUnavailableRepo returns a repository whose every call reports
// db.ErrUnavailable. Installed when the server boots without a store.
func NewUnavailableRepo() MedicationRepository {
	return unavailableRepo{}
}

func (unavailableRepo) Create(context.Context, *Medication) error {
	return db.ErrUnavailable
}

func (unavailableRepo) ListByUser(context.Context, string) ([]*Medication, error) {
	return nil, db.ErrUnavailable
}
