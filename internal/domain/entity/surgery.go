package entity

import "time"

// Surgery type values.
const (
	SurgeryTypeEmergency = "emergency"
	SurgeryTypeElective  = "elective"
)

// Surgery status values.
const (
	SurgeryStatusScheduled  = "scheduled"
	SurgeryStatusSuccessful = "successful"
	SurgeryStatusFailed     = "failed"
)

// Surgery references exactly one Patient. The reference must resolve both
// at creation and whenever an update supplies a new patient id.
type Surgery struct {
	ID          string    `gorm:"type:varchar(32);primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	PatientID   string    `gorm:"type:varchar(32);not null;index:idx_surgeries_patient_datetime"`
	Type        string    `gorm:"type:varchar(16);not null"`
	Status      string    `gorm:"type:varchar(16);not null;index"`
	Datetime    time.Time `gorm:"not null;index:idx_surgeries_patient_datetime"`
	DurationMin *int      `gorm:"check:duration_min >= 0"`
	Surgeon     *string   `gorm:"type:varchar(255)"`
	Notes       *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	Patient Patient `gorm:"foreignKey:PatientID;references:ID"`
}

func (Surgery) TableName() string {
	return "surgeries"
}
