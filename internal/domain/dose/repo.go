package dose

import (
	"context"
	"time"
)

type DoseEventRepository interface {
	Create(ctx context.Context, ev *DoseEvent) error
	// ListWindow returns the user's dose events with scheduled_time in
	// [from, to). No ordering is guaranteed.
	ListWindow(ctx context.Context, userID string, from, to time.Time) ([]*DoseEvent, error)
	// ListSince returns the user's dose events with scheduled_time >= since,
	// ascending by scheduled_time.
	ListSince(ctx context.Context, userID string, since time.Time) ([]*DoseEvent, error)
	// ListMissedSince returns the user's missed dose events with
	// scheduled_time >= since, descending by scheduled_time.
	ListMissedSince(ctx context.Context, userID string, since time.Time) ([]*DoseEvent, error)
	// Confirm marks the dose event identified by (userID, medicationID,
	// scheduledTime) as taken in a single conditional update and returns
	// how many documents matched.
	Confirm(ctx context.Context, userID, medicationID string, scheduledTime, takenTime time.Time) (int64, error)
}
