package usecase

import (
	"context"
	"errors"
	"time"

	"surgitrack/internal/converter"
	"surgitrack/internal/delivery/dto"
	"surgitrack/internal/domain/entity"
	"surgitrack/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSurgeryNotFound  = errors.New("surgery not found")
	ErrPatientReference = errors.New("invalid patientId")
	ErrInvalidDatetime  = errors.New("invalid datetime, use RFC 3339")
)

// surgeryListLimit caps list results; callers needing more must narrow
// their filters.
const surgeryListLimit = 100

type SurgeryUsecase interface {
	Create(ctx context.Context, req *dto.CreateSurgeryRequest) (*dto.SurgeryResponse, error)
	Get(ctx context.Context, id string) (*dto.SurgeryResponse, error)
	List(ctx context.Context, query dto.SurgeryListQuery) ([]dto.SurgeryResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateSurgeryRequest) (*dto.SurgeryResponse, error)
}

type surgeryUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	surgeryRepo repository.SurgeryRepository
	patientRepo repository.PatientRepository
}

func NewSurgeryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	surgeryRepo repository.SurgeryRepository,
	patientRepo repository.PatientRepository,
) SurgeryUsecase {
	return &surgeryUsecase{
		db:          db,
		log:         log,
		surgeryRepo: surgeryRepo,
		patientRepo: patientRepo,
	}
}

func (u *surgeryUsecase) Create(ctx context.Context, req *dto.CreateSurgeryRequest) (*dto.SurgeryResponse, error) {
	datetime, err := time.Parse(time.RFC3339, req.Datetime)
	if err != nil {
		return nil, ErrInvalidDatetime
	}

	// Reference check and insert share one transaction so the surgery can
	// never be written against a patient that vanished in between.
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to check patient reference: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientReference
	}

	surgery := &entity.Surgery{
		ID:          newRecordID("s"),
		Title:       req.Title,
		PatientID:   req.PatientID,
		Type:        req.Type,
		Status:      req.Status,
		Datetime:    datetime,
		DurationMin: req.DurationMin,
		Surgeon:     req.Surgeon,
		Notes:       req.Notes,
	}

	if err := u.surgeryRepo.Create(ctx, tx, surgery); err != nil {
		u.log.Warnf("Failed to create surgery: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	surgery.Patient = *patient
	return converter.SurgeryToResponse(surgery), nil
}

func (u *surgeryUsecase) Get(ctx context.Context, id string) (*dto.SurgeryResponse, error) {
	surgery, err := u.surgeryRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find surgery: %+v", err)
		return nil, err
	}
	if surgery == nil {
		return nil, ErrSurgeryNotFound
	}
	return converter.SurgeryToResponse(surgery), nil
}

func (u *surgeryUsecase) List(ctx context.Context, query dto.SurgeryListQuery) ([]dto.SurgeryResponse, error) {
	filter := entity.SurgeryFilter{
		PatientID: query.PatientID,
		Status:    query.Status,
		Surgeon:   query.Surgeon,
	}

	if query.DateFrom != "" {
		from, err := time.Parse(time.RFC3339, query.DateFrom)
		if err != nil {
			return nil, ErrInvalidDatetime
		}
		filter.From = &from
	}
	if query.DateTo != "" {
		to, err := time.Parse(time.RFC3339, query.DateTo)
		if err != nil {
			return nil, ErrInvalidDatetime
		}
		filter.To = &to
	}

	surgeries, err := u.surgeryRepo.FindWithFilter(ctx, u.db, filter, surgeryListLimit)
	if err != nil {
		u.log.Warnf("Failed to list surgeries: %+v", err)
		return nil, err
	}
	return converter.SurgeriesToResponses(surgeries), nil
}

func (u *surgeryUsecase) Update(ctx context.Context, id string, req *dto.UpdateSurgeryRequest) (*dto.SurgeryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	surgery, err := u.surgeryRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find surgery: %+v", err)
		return nil, err
	}
	if surgery == nil {
		return nil, ErrSurgeryNotFound
	}

	// A supplied patient reference is re-validated inside the same
	// transaction as the write.
	if req.PatientID != nil {
		patient, err := u.patientRepo.FindByID(ctx, tx, *req.PatientID)
		if err != nil {
			u.log.Warnf("Failed to check patient reference: %+v", err)
			return nil, err
		}
		if patient == nil {
			return nil, ErrPatientReference
		}
		surgery.Patient = *patient
	}

	if err := applySurgeryUpdate(surgery, req); err != nil {
		return nil, err
	}

	if err := u.surgeryRepo.Update(ctx, tx, surgery); err != nil {
		u.log.Warnf("Failed to update surgery: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.SurgeryToResponse(surgery), nil
}

// applySurgeryUpdate merges the supplied fields into the existing row.
// Nil request fields leave the current values untouched; the identifier
// and creation timestamp are never modified.
func applySurgeryUpdate(surgery *entity.Surgery, req *dto.UpdateSurgeryRequest) error {
	if req.Title != nil {
		surgery.Title = *req.Title
	}
	if req.PatientID != nil {
		surgery.PatientID = *req.PatientID
	}
	if req.Type != nil {
		surgery.Type = *req.Type
	}
	if req.Status != nil {
		surgery.Status = *req.Status
	}
	if req.Datetime != nil {
		datetime, err := time.Parse(time.RFC3339, *req.Datetime)
		if err != nil {
			return ErrInvalidDatetime
		}
		surgery.Datetime = datetime
	}
	if req.DurationMin != nil {
		surgery.DurationMin = req.DurationMin
	}
	if req.Surgeon != nil {
		surgery.Surgeon = req.Surgeon
	}
	if req.Notes != nil {
		surgery.Notes = req.Notes
	}
	return nil
}
