package usecase

import (
	"context"
	"math"
	"time"

	"surgitrack/internal/converter"
	"surgitrack/internal/delivery/dto"
	"surgitrack/internal/domain/entity"
	"surgitrack/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// statsRecentLimit is how many recent surgeries the dashboard shows.
const statsRecentLimit = 10

type StatsUsecase interface {
	// GetStats recomputes the dashboard summary from scratch; nothing is
	// cached or stored between calls.
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}

type statsUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	surgeryRepo repository.SurgeryRepository
}

func NewStatsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	surgeryRepo repository.SurgeryRepository,
) StatsUsecase {
	return &statsUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		surgeryRepo: surgeryRepo,
	}
}

func (u *statsUsecase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	totalPatients, err := u.patientRepo.Count(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	totalSurgeries, err := u.surgeryRepo.Count(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count surgeries: %+v", err)
		return nil, err
	}

	successfulSurgeries, err := u.surgeryRepo.CountByStatus(ctx, u.db, entity.SurgeryStatusSuccessful)
	if err != nil {
		u.log.Warnf("Failed to count successful surgeries: %+v", err)
		return nil, err
	}

	dayStart, dayEnd := utcDayBounds(time.Now())
	todaySurgeries, err := u.surgeryRepo.CountBetween(ctx, u.db, dayStart, dayEnd)
	if err != nil {
		u.log.Warnf("Failed to count today's surgeries: %+v", err)
		return nil, err
	}

	recent, err := u.surgeryRepo.FindRecent(ctx, u.db, statsRecentLimit)
	if err != nil {
		u.log.Warnf("Failed to load recent surgeries: %+v", err)
		return nil, err
	}

	return &dto.StatsResponse{
		TotalPatients:  totalPatients,
		TotalSurgeries: totalSurgeries,
		TodaySurgeries: todaySurgeries,
		SuccessRate:    successRate(successfulSurgeries, totalSurgeries),
		Recent:         converter.SurgeriesToResponses(recent),
	}, nil
}

// successRate is the rounded percentage of successful surgeries, 0 when
// there are none at all.
func successRate(successful, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(successful) / float64(total) * 100))
}

// utcDayBounds returns the [start, end) instants of the UTC calendar day
// containing t.
func utcDayBounds(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}
