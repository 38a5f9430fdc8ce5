package repository

import (
	"context"
	"errors"
	"time"

	"surgitrack/internal/domain/entity"
	domainRepo "surgitrack/internal/domain/repository"

	"gorm.io/gorm"
)

type surgeryRepository struct{}

func NewSurgeryRepository() domainRepo.SurgeryRepository {
	return &surgeryRepository{}
}

func (r *surgeryRepository) Create(ctx context.Context, db *gorm.DB, surgery *entity.Surgery) error {
	return db.WithContext(ctx).Omit("Patient").Create(surgery).Error
}

func (r *surgeryRepository) FindByID(ctx context.Context, db *gorm.DB, id string) (*entity.Surgery, error) {
	var surgery entity.Surgery
	err := db.WithContext(ctx).Preload("Patient").Where("id = ?", id).First(&surgery).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &surgery, nil
}

func (r *surgeryRepository) FindWithFilter(ctx context.Context, db *gorm.DB, filter entity.SurgeryFilter, limit int) ([]entity.Surgery, error) {
	var surgeries []entity.Surgery
	query := db.WithContext(ctx).Model(&entity.Surgery{}).Preload("Patient")

	if filter.PatientID != "" {
		query = query.Where("patient_id = ?", filter.PatientID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Surgeon != "" {
		query = query.Where("surgeon ILIKE ?", "%"+filter.Surgeon+"%")
	}
	if filter.From != nil {
		query = query.Where("datetime >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("datetime <= ?", *filter.To)
	}

	err := query.Order("datetime DESC").Limit(limit).Find(&surgeries).Error
	return surgeries, err
}

func (r *surgeryRepository) Update(ctx context.Context, db *gorm.DB, surgery *entity.Surgery) error {
	return db.WithContext(ctx).Omit("Patient").Save(surgery).Error
}

func (r *surgeryRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Surgery{}).Count(&count).Error
	return count, err
}

func (r *surgeryRepository) CountByStatus(ctx context.Context, db *gorm.DB, status string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Surgery{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *surgeryRepository) CountBetween(ctx context.Context, db *gorm.DB, from, to time.Time) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Surgery{}).
		Where("datetime >= ? AND datetime < ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *surgeryRepository) FindRecent(ctx context.Context, db *gorm.DB, limit int) ([]entity.Surgery, error) {
	var surgeries []entity.Surgery
	err := db.WithContext(ctx).Model(&entity.Surgery{}).Preload("Patient").
		Order("datetime DESC").Limit(limit).Find(&surgeries).Error
	return surgeries, err
}
