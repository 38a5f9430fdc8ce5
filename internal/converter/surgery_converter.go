package converter

import (
	"time"

	"surgitrack/internal/delivery/dto"
	"surgitrack/internal/domain/entity"
)

func SurgeryToResponse(surgery *entity.Surgery) *dto.SurgeryResponse {
	response := &dto.SurgeryResponse{
		ID:          surgery.ID,
		Title:       surgery.Title,
		PatientID:   surgery.PatientID,
		Type:        surgery.Type,
		Status:      surgery.Status,
		Datetime:    surgery.Datetime.UTC().Format(time.RFC3339),
		DurationMin: surgery.DurationMin,
		Surgeon:     surgery.Surgeon,
		Notes:       surgery.Notes,
		CreatedAt:   surgery.CreatedAt,
		UpdatedAt:   surgery.UpdatedAt,
	}

	// The patient is preloaded by list/read queries; the display name is
	// computed here, never stored.
	if surgery.Patient.ID != "" {
		response.PatientName = surgery.Patient.DisplayName()
	}

	return response
}

func SurgeriesToResponses(surgeries []entity.Surgery) []dto.SurgeryResponse {
	responses := make([]dto.SurgeryResponse, len(surgeries))
	for i := range surgeries {
		responses[i] = *SurgeryToResponse(&surgeries[i])
	}
	return responses
}
