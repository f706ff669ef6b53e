package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

// PrescribeMedicationRequest names the medication to prescribe. It is added
// to the catalogue first when the name is new.
type PrescribeMedicationRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Information string `json:"information" validate:"omitempty,max=4000"`
}

// Response DTOs

type MedicationResponse struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Information string `json:"information,omitempty"`
}

type MedicationListResponse struct {
	Medications []MedicationResponse `json:"medications"`
	Total       int                  `json:"total"`
}

type PrescriptionResponse struct {
	AppointmentID uuid.UUID          `json:"appointment_id"`
	Medication    MedicationResponse `json:"medication"`
	// Created is false when the appointment already held the medication.
	Created bool `json:"created"`
}

type AppointmentMedicationsResponse struct {
	AppointmentID uuid.UUID            `json:"appointment_id"`
	Medications   []MedicationResponse `json:"medications"`
	Total         int                  `json:"total"`
}
