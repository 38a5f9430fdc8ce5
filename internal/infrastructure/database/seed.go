package database

import (
	"time"

	"surgitrack/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// Seed inserts a small sample data set when the patients table is empty.
// It is a no-op on a populated database.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Patient{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	patients := []entity.Patient{
		{
			ID: "p1", FirstName: "John", LastName: "Doe",
			DateOfBirth: strPtr("1985-04-12"), Sex: strPtr("M"),
			Phone: strPtr("555-0101"), Email: strPtr("john.doe@example.com"),
			Allergies: strPtr("Penicillin"),
		},
		{
			ID: "p2", FirstName: "Anna", LastName: "Smith",
			DateOfBirth: strPtr("1990-09-05"), Sex: strPtr("F"),
			Phone: strPtr("555-0102"), Email: strPtr("anna.smith@example.com"),
		},
		{
			ID: "p3", FirstName: "Mark", LastName: "Wilson",
			DateOfBirth: strPtr("1978-11-21"), Sex: strPtr("M"),
			Phone: strPtr("555-0103"), Email: strPtr("mark.wilson@example.com"),
			Allergies: strPtr("Latex"),
		},
	}

	surgeries := []entity.Surgery{
		{
			ID: "s1", Title: "Appendectomy", PatientID: "p1",
			Type: entity.SurgeryTypeEmergency, Status: entity.SurgeryStatusSuccessful,
			Datetime:    time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC),
			DurationMin: intPtr(75), Surgeon: strPtr("Dr. Miller"),
			Notes: strPtr("successful with complications"),
		},
		{
			ID: "s2", Title: "Inguinal Hernia Repair", PatientID: "p2",
			Type: entity.SurgeryTypeElective, Status: entity.SurgeryStatusSuccessful,
			Datetime:    time.Date(2024, 1, 18, 10, 0, 0, 0, time.UTC),
			DurationMin: intPtr(90), Surgeon: strPtr("Dr. Wilson"),
		},
		{
			ID: "s3", Title: "Laparoscopic Cholecystectomy", PatientID: "p3",
			Type: entity.SurgeryTypeElective, Status: entity.SurgeryStatusSuccessful,
			Datetime:    time.Date(2024, 1, 15, 13, 0, 0, 0, time.UTC),
			DurationMin: intPtr(120), Surgeon: strPtr("Dr. Anderson"),
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&patients).Error; err != nil {
			return err
		}
		if err := tx.Omit("Patient").Create(&surgeries).Error; err != nil {
			return err
		}
		logrus.Info("Seeded sample patients and surgeries")
		return nil
	})
}
