package dto

import "time"

type CreateSurgeryRequest struct {
	Title       string  `json:"title" validate:"required"`
	PatientID   string  `json:"patientId" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=emergency elective"`
	Status      string  `json:"status" validate:"required,oneof=scheduled successful failed"`
	Datetime    string  `json:"datetime" validate:"required"`
	DurationMin *int    `json:"durationMin" validate:"omitempty,gte=0"`
	Surgeon     *string `json:"surgeon"`
	Notes       *string `json:"notes"`
}

type UpdateSurgeryRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	PatientID   *string `json:"patientId" validate:"omitempty,min=1"`
	Type        *string `json:"type" validate:"omitempty,oneof=emergency elective"`
	Status      *string `json:"status" validate:"omitempty,oneof=scheduled successful failed"`
	Datetime    *string `json:"datetime"`
	DurationMin *int    `json:"durationMin" validate:"omitempty,gte=0"`
	Surgeon     *string `json:"surgeon"`
	Notes       *string `json:"notes"`
}

type SurgeryResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	PatientID   string    `json:"patientId"`
	PatientName string    `json:"patientName,omitempty"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Datetime    string    `json:"datetime"`
	DurationMin *int      `json:"durationMin"`
	Surgeon     *string   `json:"surgeon"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SurgeryListQuery mirrors the supported query parameters of the list
// endpoint. Datetime bounds are inclusive.
type SurgeryListQuery struct {
	PatientID string
	Status    string
	Surgeon   string
	DateFrom  string
	DateTo    string
}
