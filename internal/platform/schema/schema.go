// Package schema serves the collection schema document consumed by external
// document-store viewers. The document is hand-built: it describes the three
// collections, their field types, defaults, and enum values.
package schema

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Field describes one document field.
type Field struct {
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Default     any      `json:"default,omitempty"`
	Enum        []string `json:"enum,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Collection describes one document collection.
type Collection struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Fields      map[string]Field `json:"fields"`
}

// Document builds the full schema document.
func Document() map[string]Collection {
	return map[string]Collection{
		"user": {
			Name:        "user",
			Description: "Patients and the caregivers who monitor them",
			Fields: map[string]Field{
				"name":  {Type: "string", Required: true, Description: "Full name"},
				"email": {Type: "string", Description: "Email address"},
				"role": {
					Type:    "string",
					Default: "patient",
					Enum:    []string{"patient", "caregiver"},
				},
				"patient_id": {
					Type:        "string",
					Description: "For caregivers, the patient this caregiver monitors",
				},
			},
		},
		"medication": {
			Name:        "medication",
			Description: "Medications assigned to a patient",
			Fields: map[string]Field{
				"user_id": {Type: "string", Required: true, Description: "Patient user id"},
				"name":    {Type: "string", Required: true, Description: "Medication name"},
				"dosage":  {Type: "string", Required: true, Description: "Dosage description, e.g. '5mg' or '1 tablet'"},
				"schedule_times": {
					Type:        "array<string>",
					Required:    true,
					Description: "HH:MM times the medication should be taken each day",
				},
				"inventory_count": {Type: "int", Default: 0, Description: "Current pill count in inventory"},
				"low_threshold":   {Type: "int", Default: 10, Description: "Threshold to trigger low-inventory alert"},
			},
		},
		"doseevent": {
			Name:        "doseevent",
			Description: "Scheduled and taken doses, one document per planned administration",
			Fields: map[string]Field{
				"user_id":        {Type: "string", Required: true, Description: "Patient user id"},
				"medication_id":  {Type: "string", Required: true, Description: "Medication id"},
				"scheduled_time": {Type: "datetime", Required: true, Description: "Scheduled date-time for this dose (UTC)"},
				"taken_time":     {Type: "datetime", Description: "When the dose was confirmed (UTC)"},
				"status": {
					Type:    "string",
					Default: "scheduled",
					Enum:    []string{"scheduled", "taken", "missed", "skipped"},
				},
			},
		},
	}
}

// Handler serves GET /schema.
func Handler() echo.HandlerFunc {
	doc := Document()
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	}
}
