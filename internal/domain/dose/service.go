package dose

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTime is returned when a scheduled_time_iso string does not parse
// as an ISO-8601 datetime.
var ErrInvalidTime = errors.New("invalid scheduled time")

// ErrNotFound is returned when no dose event matches a confirm request.
var ErrNotFound = errors.New("scheduled dose not found")

type Service struct {
	events DoseEventRepository
	now    func() time.Time
}

func NewService(events DoseEventRepository) *Service {
	return &Service{events: events, now: time.Now}
}

// SetClock overrides the service clock. Tests use it to pin "today".
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// TodayStatus classifies the user's dose events inside the current UTC day
// window. A stored status of taken or missed counts toward that bucket;
// everything else, including unrecognized statuses, counts as upcoming.
func (s *Service) TodayStatus(ctx context.Context, userID string) (*TodaySummary, error) {
	now := s.now().UTC()
	start, end := dayWindow(now)

	events, err := s.events.ListWindow(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	summary := &TodaySummary{
		UserID: userID,
		Date:   now.Format("2006-01-02"),
		Items:  []TodayItem{},
	}

	for _, ev := range events {
		status := ev.EffectiveStatus()
		switch status {
		case StatusTaken:
			summary.Taken++
		case StatusMissed:
			summary.Missed++
		default:
			summary.Upcoming++
		}
		summary.Items = append(summary.Items, TodayItem{
			DoseEventID:   ev.ID.Hex(),
			MedicationID:  ev.MedicationID,
			ScheduledTime: formatTime(ev.ScheduledTime),
			Status:        status,
		})
	}
	summary.TotalDoses = len(summary.Items)

	return summary, nil
}

// Confirm marks the dose event identified by (userID, medicationID,
// scheduledTimeISO) as taken. The update is a single conditional write, so
// there is no find-then-update race; re-confirming an already taken dose
// refreshes its taken_time.
func (s *Service) Confirm(ctx context.Context, userID, medicationID, scheduledTimeISO string) error {
	scheduled, err := ParseScheduledTime(scheduledTimeISO)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	matched, err := s.events.Confirm(ctx, userID, medicationID, scheduled, s.now().UTC())
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}
