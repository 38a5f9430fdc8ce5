package repository

import (
	"context"

	"surgitrack/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindByID(ctx context.Context, db *gorm.DB, id string) (*entity.Patient, error)
	// Search returns patients whose first name, last name or id contains q
	// (case-insensitive), ordered by last name ascending. An empty q
	// returns all patients in the same order.
	Search(ctx context.Context, db *gorm.DB, q string) ([]entity.Patient, error)
	Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
