// Package seed generates deterministic demo data for development and demo
// environments: patients with a linked caregiver, medications with daily
// HH:MM schedules, a month of dose history with a realistic taken/missed
// mix, and today's scheduled doses.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/medassist/medassist/internal/domain/dose"
	"github.com/medassist/medassist/internal/domain/identity"
	"github.com/medassist/medassist/internal/domain/medication"
)

// Config controls the volume and shape of generated demo data.
type Config struct {
	PatientCount          int
	MedicationsPerPatient int
	HistoryDays           int
	Seed                  int64
}

// DefaultConfig returns the demo defaults.
func DefaultConfig() Config {
	return Config{
		PatientCount:          3,
		MedicationsPerPatient: 2,
		HistoryDays:           30,
		Seed:                  42,
	}
}

// Summary reports what a seeding run wrote.
type Summary struct {
	Users       int `json:"users"`
	Medications int `json:"medications"`
	DoseEvents  int `json:"dose_events"`
}

type Seeder struct {
	users identity.UserRepository
	meds  medication.MedicationRepository
	doses dose.DoseEventRepository
	now   func() time.Time
}

func NewSeeder(users identity.UserRepository, meds medication.MedicationRepository, doses dose.DoseEventRepository) *Seeder {
	return &Seeder{users: users, meds: meds, doses: doses, now: time.Now}
}

// SetClock overrides the seeder clock. Tests use it to pin "today".
func (s *Seeder) SetClock(now func() time.Time) {
	s.now = now
}

var patientNames = []string{
	"Rosa Martin", "Henry Okafor", "Mei Tanaka", "Samuel Price",
	"Ingrid Larsen", "Amara Diallo", "Viktor Hansen", "Lucia Romero",
}

var medicationCatalog = []struct {
	name   string
	dosage string
	times  []string
}{
	{"Metformin", "500mg", []string{"08:00", "20:00"}},
	{"Lisinopril", "10mg", []string{"09:00"}},
	{"Atorvastatin", "20mg", []string{"21:00"}},
	{"Levothyroxine", "50mcg", []string{"07:00"}},
	{"Amlodipine", "5mg", []string{"08:00"}},
	{"Omeprazole", "1 capsule", []string{"07:30"}},
}

// Run writes the demo data through the repositories. Generation is driven
// by cfg.Seed, so two runs with the same config produce the same documents
// (ids aside).
func (s *Seeder) Run(ctx context.Context, cfg Config) (*Summary, error) {
	if cfg.PatientCount <= 0 || cfg.MedicationsPerPatient <= 0 || cfg.HistoryDays < 0 {
		return nil, fmt.Errorf("invalid seed config: %+v", cfg)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	summary := &Summary{}

	for i := 0; i < cfg.PatientCount; i++ {
		patient := &identity.User{
			Name:  patientNames[i%len(patientNames)],
			Email: fmt.Sprintf("patient%d@example.com", i+1),
			Role:  identity.RolePatient,
		}
		if err := s.users.Create(ctx, patient); err != nil {
			return nil, fmt.Errorf("create patient: %w", err)
		}
		summary.Users++

		patientID := patient.ID.Hex()

		// Every patient gets a linked caregiver.
		caregiver := &identity.User{
			Name:      "Caregiver of " + patient.Name,
			Email:     fmt.Sprintf("caregiver%d@example.com", i+1),
			Role:      identity.RoleCaregiver,
			PatientID: patientID,
		}
		if err := s.users.Create(ctx, caregiver); err != nil {
			return nil, fmt.Errorf("create caregiver: %w", err)
		}
		summary.Users++

		for j := 0; j < cfg.MedicationsPerPatient; j++ {
			entry := medicationCatalog[(i*cfg.MedicationsPerPatient+j)%len(medicationCatalog)]
			med := &medication.Medication{
				UserID:         patientID,
				Name:           entry.name,
				Dosage:         entry.dosage,
				ScheduleTimes:  entry.times,
				InventoryCount: rng.Intn(40),
				LowThreshold:   10,
			}
			if err := s.meds.Create(ctx, med); err != nil {
				return nil, fmt.Errorf("create medication: %w", err)
			}
			summary.Medications++

			n, err := s.seedDoses(ctx, rng, patientID, med, today, cfg.HistoryDays)
			if err != nil {
				return nil, err
			}
			summary.DoseEvents += n
		}
	}

	return summary, nil
}

// seedDoses writes one dose event per schedule slot per day: historical days
// get a taken/missed mix, today's doses stay scheduled or taken so dashboards
// show something in every bucket.
func (s *Seeder) seedDoses(ctx context.Context, rng *rand.Rand, patientID string, med *medication.Medication, today time.Time, historyDays int) (int, error) {
	medID := med.ID.Hex()
	count := 0

	for day := historyDays; day >= 0; day-- {
		date := today.AddDate(0, 0, -day)
		for _, hhmm := range med.ScheduleTimes {
			scheduled, err := atClock(date, hhmm)
			if err != nil {
				return count, err
			}

			ev := &dose.DoseEvent{
				UserID:        patientID,
				MedicationID:  medID,
				ScheduledTime: &scheduled,
				Status:        dose.StatusScheduled,
			}

			if day > 0 {
				// Historical day: roughly 4 in 5 doses were taken.
				if rng.Intn(5) > 0 {
					ev.Status = dose.StatusTaken
					taken := scheduled.Add(time.Duration(rng.Intn(30)) * time.Minute)
					ev.TakenTime = &taken
				} else {
					ev.Status = dose.StatusMissed
				}
			} else if rng.Intn(2) == 0 {
				// Today: mark about half taken, leave the rest scheduled.
				ev.Status = dose.StatusTaken
				taken := scheduled.Add(time.Duration(rng.Intn(30)) * time.Minute)
				ev.TakenTime = &taken
			}

			if err := s.doses.Create(ctx, ev); err != nil {
				return count, fmt.Errorf("create dose event: %w", err)
			}
			count++
		}
	}

	return count, nil
}

// atClock combines a UTC date with an HH:MM schedule slot.
func atClock(date time.Time, hhmm string) (time.Time, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("bad schedule time %q", hhmm)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("bad schedule time %q", hhmm)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("bad schedule time %q", hhmm)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC), nil
}
