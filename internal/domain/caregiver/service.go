package caregiver

import (
	"context"
	"errors"
	"time"

	"github.com/medassist/medassist/internal/domain/dose"
	"github.com/medassist/medassist/internal/domain/identity"
	"github.com/medassist/medassist/internal/domain/medication"
)

// Dashboard windows.
const (
	historyWindow = 30 * 24 * time.Hour
	missedWindow  = 7 * 24 * time.Hour
)

// ErrNoLinkedPatient is returned when a caregiver lookup cannot resolve a
// patient: unknown caregiver, a non-caregiver user, or a caregiver with no
// linked patient.
var ErrNoLinkedPatient = errors.New("no linked patient for caregiver")

type Service struct {
	events      dose.DoseEventRepository
	medications medication.MedicationRepository
	users       identity.UserRepository
	now         func() time.Time
}

func NewService(events dose.DoseEventRepository, meds medication.MedicationRepository, users identity.UserRepository) *Service {
	return &Service{events: events, medications: meds, users: users, now: time.Now}
}

// SetClock overrides the service clock. Tests use it to pin the windows.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Dashboard aggregates the patient's 30-day dose history (ascending), 7-day
// missed doses (descending), and low-inventory medications. The three
// queries are independent; any failure fails the whole request.
func (s *Service) Dashboard(ctx context.Context, patientID string) (*Dashboard, error) {
	now := s.now().UTC()

	history, err := s.events.ListSince(ctx, patientID, now.Add(-historyWindow))
	if err != nil {
		return nil, err
	}

	missed, err := s.events.ListMissedSince(ctx, patientID, now.Add(-missedWindow))
	if err != nil {
		return nil, err
	}

	meds, err := s.medications.ListByUser(ctx, patientID)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		History:         []EventView{},
		Missed:          []EventView{},
		InventoryAlerts: []medication.InventoryAlert{},
	}
	for _, ev := range history {
		d.History = append(d.History, eventView(ev))
	}
	for _, ev := range missed {
		d.Missed = append(d.Missed, eventView(ev))
	}
	for _, m := range meds {
		if m.LowInventory() {
			d.InventoryAlerts = append(d.InventoryAlerts, m.Alert())
		}
	}
	return d, nil
}

// DashboardForCaregiver resolves the caregiver's linked patient and builds
// that patient's dashboard.
func (s *Service) DashboardForCaregiver(ctx context.Context, caregiverID string) (*Dashboard, error) {
	u, err := s.users.GetByID(ctx, caregiverID)
	if errors.Is(err, identity.ErrUserNotFound) {
		return nil, ErrNoLinkedPatient
	}
	if err != nil {
		return nil, err
	}

	patientID := u.LinkedPatient()
	if patientID == "" {
		return nil, ErrNoLinkedPatient
	}
	return s.Dashboard(ctx, patientID)
}
