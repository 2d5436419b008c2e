package dose

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dose lifecycle statuses. The only transition this service performs is
// scheduled -> taken via confirm; missed and skipped are written by
// external schedulers and by the demo seeder.
const (
	StatusScheduled = "scheduled"
	StatusTaken     = "taken"
	StatusMissed    = "missed"
	StatusSkipped   = "skipped"
)

var validStatuses = map[string]bool{
	StatusScheduled: true, StatusTaken: true, StatusMissed: true, StatusSkipped: true,
}

// KnownStatus reports whether s is one of the closed dose statuses.
func KnownStatus(s string) bool {
	return validStatuses[s]
}

// DoseEvent maps to the doseevent collection. MedicationID holds the hex
// form of the medication document id. A document with no status field
// classifies as scheduled.
type DoseEvent struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        string             `bson:"user_id" json:"user_id"`
	MedicationID  string             `bson:"medication_id" json:"medication_id"`
	ScheduledTime *time.Time         `bson:"scheduled_time,omitempty" json:"scheduled_time,omitempty"`
	TakenTime     *time.Time         `bson:"taken_time,omitempty" json:"taken_time,omitempty"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
}

// EffectiveStatus returns the stored status, defaulting to scheduled when
// the field is absent.
func (e *DoseEvent) EffectiveStatus() string {
	if e.Status == "" {
		return StatusScheduled
	}
	return e.Status
}

// TodayItem is one dose in the today summary.
type TodayItem struct {
	DoseEventID   string  `json:"dose_event_id"`
	MedicationID  string  `json:"medication_id"`
	ScheduledTime *string `json:"scheduled_time"`
	Status        string  `json:"status"`
}

// TodaySummary is the response body of the today-status query.
type TodaySummary struct {
	UserID     string      `json:"user_id"`
	Date       string      `json:"date"`
	TotalDoses int         `json:"total_doses"`
	Taken      int         `json:"taken"`
	Missed     int         `json:"missed"`
	Upcoming   int         `json:"upcoming"`
	Items      []TodayItem `json:"items"`
}

// scheduledTimeLayouts are the ISO-8601 shapes accepted by confirm, tried
// in order. Layouts without a zone parse as UTC; offset forms are
// converted to UTC after parsing.
var scheduledTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseScheduledTime parses an ISO-8601 datetime string into a UTC instant.
// A string without an offset is interpreted as UTC; a string with an offset
// is converted. 'Z', '+hh:mm', fractional seconds, a space separator, and a
// bare date are all accepted.
func ParseScheduledTime(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	for _, layout := range scheduledTimeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized datetime %q", value)
}

// dayWindow returns the UTC day [start, end) containing now.
func dayWindow(now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
