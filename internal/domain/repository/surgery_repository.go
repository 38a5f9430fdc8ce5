package repository

import (
	"context"
	"time"

	"surgitrack/internal/domain/entity"

	"gorm.io/gorm"
)

type SurgeryRepository interface {
	Create(ctx context.Context, db *gorm.DB, surgery *entity.Surgery) error
	// FindByID loads the surgery together with its referenced patient.
	FindByID(ctx context.Context, db *gorm.DB, id string) (*entity.Surgery, error)
	// FindWithFilter returns at most limit surgeries matching the filter,
	// ordered by occurrence instant descending, patients preloaded.
	FindWithFilter(ctx context.Context, db *gorm.DB, filter entity.SurgeryFilter, limit int) ([]entity.Surgery, error)
	Update(ctx context.Context, db *gorm.DB, surgery *entity.Surgery) error
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	CountByStatus(ctx context.Context, db *gorm.DB, status string) (int64, error)
	// CountBetween counts surgeries whose occurrence instant falls in
	// [from, to).
	CountBetween(ctx context.Context, db *gorm.DB, from, to time.Time) (int64, error)
	// FindRecent returns the limit most recently occurring surgeries,
	// patients preloaded.
	FindRecent(ctx context.Context, db *gorm.DB, limit int) ([]entity.Surgery, error)
}
