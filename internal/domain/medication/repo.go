package medication

import "context"

type MedicationRepository interface {
	Create(ctx context.Context, m *Medication) error
	// ListByUser returns every medication assigned to the patient. Inventory
	// filtering is the caller's job: the low-inventory rule lives in the
	// model, not the query.
	ListByUser(ctx context.Context, userID string) ([]*Medication, error)
}
