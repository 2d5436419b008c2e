package identity

import "go.mongodb.org/mongo-driver/bson/primitive"

// User roles.
const (
	RolePatient   = "patient"
	RoleCaregiver = "caregiver"
)

// User maps to the user collection. Caregivers carry the id of the patient
// they monitor in PatientID; for patients the field is empty.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Role      string             `bson:"role,omitempty" json:"role"`
	PatientID string             `bson:"patient_id,omitempty" json:"patient_id,omitempty"`
}

// EffectiveRole returns the stored role, defaulting to patient when the
// field is absent.
func (u *User) EffectiveRole() string {
	if u.Role == "" {
		return RolePatient
	}
	return u.Role
}

// LinkedPatient returns the patient id this caregiver monitors, or "" when
// the user is not a caregiver or has no link.
func (u *User) LinkedPatient() string {
	if u.EffectiveRole() != RoleCaregiver {
		return ""
	}
	return u.PatientID
}
