package identity

import "testing"

func TestEffectiveRole(t *testing.T) {
	u := &User{Name: "Rosa"}
	if got := u.EffectiveRole(); got != RolePatient {
		t.Errorf("expected absent role to default to patient, got %q", got)
	}

	u.Role = RoleCaregiver
	if got := u.EffectiveRole(); got != RoleCaregiver {
		t.Errorf("expected caregiver, got %q", got)
	}
}

func TestLinkedPatient(t *testing.T) {
	patient := &User{Name: "Rosa", Role: RolePatient, PatientID: "stray-value"}
	if got := patient.LinkedPatient(); got != "" {
		t.Errorf("expected no link for a patient, got %q", got)
	}

	caregiver := &User{Name: "Ana", Role: RoleCaregiver, PatientID: "p1"}
	if got := caregiver.LinkedPatient(); got != "p1" {
		t.Errorf("expected p1, got %q", got)
	}

	unlinked := &User{Name: "Ana", Role: RoleCaregiver}
	if got := unlinked.LinkedPatient(); got != "" {
		t.Errorf("expected no link, got %q", got)
	}
}
