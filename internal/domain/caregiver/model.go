package caregiver

import (
	"time"

	"github.com/medassist/medassist/internal/domain/dose"
	"github.com/medassist/medassist/internal/domain/medication"
)

// EventView is the dashboard serialization of a dose event. Times are
// RFC3339 UTC or null.
type EventView struct {
	ID            string  `json:"id"`
	MedicationID  string  `json:"medication_id"`
	ScheduledTime *string `json:"scheduled_time"`
	TakenTime     *string `json:"taken_time"`
	Status        string  `json:"status"`
}

// Dashboard is the response body of GET /api/caregiver/dashboard.
type Dashboard struct {
	History         []EventView                 `json:"history"`
	Missed          []EventView                 `json:"missed"`
	InventoryAlerts []medication.InventoryAlert `json:"inventory_alerts"`
}

func eventView(ev *dose.DoseEvent) EventView {
	return EventView{
		ID:            ev.ID.Hex(),
		MedicationID:  ev.MedicationID,
		ScheduledTime: formatTime(ev.ScheduledTime),
		TakenTime:     formatTime(ev.TakenTime),
		Status:        ev.Status,
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
