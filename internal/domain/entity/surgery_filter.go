package entity

import "time"

// SurgeryFilter narrows surgery listings. Zero values mean "no constraint".
type SurgeryFilter struct {
	PatientID string
	Status    string
	Surgeon   string
	From      *time.Time
	To        *time.Time
}
