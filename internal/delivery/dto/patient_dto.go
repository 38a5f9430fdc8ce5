package dto

import "time"

type CreatePatientRequest struct {
	FirstName   string  `json:"firstName" validate:"required"`
	LastName    string  `json:"lastName" validate:"required"`
	DateOfBirth *string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Sex         *string `json:"sex"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Allergies   *string `json:"allergies"`
}

// UpdatePatientRequest carries only the fields the client supplied; nil
// means "leave unchanged". A supplied empty name still fails validation.
type UpdatePatientRequest struct {
	FirstName   *string `json:"firstName" validate:"omitempty,min=1"`
	LastName    *string `json:"lastName" validate:"omitempty,min=1"`
	DateOfBirth *string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Sex         *string `json:"sex"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Allergies   *string `json:"allergies"`
}

type PatientResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	DateOfBirth *string   `json:"dateOfBirth"`
	Sex         *string   `json:"sex"`
	Phone       *string   `json:"phone"`
	Email       *string   `json:"email"`
	Allergies   *string   `json:"allergies"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
