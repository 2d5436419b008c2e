package dose

import (
	"context"
	"time"

	"github.com/medassist/medassist/internal/platform/db"
)

// unavailableRepo is installed when the server boots without a configured
// document store. Every call reports db.ErrUnavailable, which handlers turn
// into the fixed 500 response.
type unavailableRepo struct{}

func NewUnavailableRepo() DoseEventRepository {
	return unavailableRepo{}
}

func (unavailableRepo) Create(context.Context, *DoseEvent) error {
	return db.ErrUnavailable
}

func (unavailableRepo) ListWindow(context.Context, string, time.Time, time.Time) ([]*DoseEvent, error) {
	return nil, db.ErrUnavailable
}

func (unavailableRepo) ListSince(context.Context, string, time.Time) ([]*DoseEvent, error) {
	return nil, db.ErrUnavailable
}

func (unavailableRepo) ListMissedSince(context.Context, string, time.Time) ([]*DoseEvent, error) {
	return nil, db.ErrUnavailable
}

func (unavailableRepo) Confirm(context.Context, string, string, time.Time, time.Time) (int64, error) {
	return 0, db.ErrUnavailable
}
