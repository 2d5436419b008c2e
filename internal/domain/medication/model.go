package medication

import "go.mongodb.org/mongo-driver/bson/primitive"

// Medication maps to the medication collection: one document per drug
// assigned to a patient, carrying its daily schedule and inventory state.
type Medication struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         string             `bson:"user_id" json:"user_id"`
	Name           string             `bson:"name" json:"name"`
	Dosage         string             `bson:"dosage" json:"dosage"`
	ScheduleTimes  []string           `bson:"schedule_times" json:"schedule_times"`
	InventoryCount int                `bson:"inventory_count,omitempty" json:"inventory_count"`
	LowThreshold   int                `bson:"low_threshold,omitempty" json:"low_threshold"`
}

// LowInventory reports whether the medication should trigger a restock
// alert. Documents missing both inventory fields decode to zero values, and
// 0 <= 0 holds, so an uninitialized medication is flagged low. That matches
// the stored-data semantics existing dashboards rely on.
func (m *Medication) LowInventory() bool {
	return m.InventoryCount <= m.LowThreshold
}

// InventoryAlert is the dashboard projection of a low medication.
type InventoryAlert struct {
	MedicationID   string `json:"medication_id"`
	Name           string `json:"name"`
	InventoryCount int    `json:"inventory_count"`
	LowThreshold   int    `json:"low_threshold"`
}

// Alert projects the medication into its dashboard alert shape.
func (m *Medication) Alert() InventoryAlert {
	return InventoryAlert{
		MedicationID:   m.ID.Hex(),
		Name:           m.Name,
		InventoryCount: m.InventoryCount,
		LowThreshold:   m.LowThreshold,
	}
}
