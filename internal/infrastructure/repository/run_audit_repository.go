package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/courtdata/judicial-sync/internal/domain/judicial"
	"github.com/courtdata/judicial-sync/internal/infrastructure/db/models"
)

type RunAuditRepository struct {
	db *gorm.DB
}

func NewRunAuditRepository(db *gorm.DB) *RunAuditRepository {
	return &RunAuditRepository{db: db}
}

func (r *RunAuditRepository) StartRun(ctx context.Context, schedulerName, apiName string, startTime time.Time) (int64, error) {
	row := models.SchedulerRun{
		SchedulerName: schedulerName,
		APIName:       apiName,
		StartTime:     startTime,
		Status:        string(domain.RunInProgress),
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, fmt.Errorf("create scheduler run: %w", err)
	}
	return row.ID, nil
}

func (r *RunAuditRepository) CompleteRun(ctx context.Context, runID int64, endTime time.Time, status domain.RunStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.SchedulerRun{}).
		Where("id = ?", runID).
		Updates(map[string]any{
			"end_time": endTime,
			"status":   string(status),
		})
	if result.Error != nil {
		return fmt.Errorf("complete scheduler run %d: %w", runID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("complete scheduler run %d: no such run", runID)
	}
	return nil
}

func (r *RunAuditRepository) LatestRun(ctx context.Context, apiName string) (*domain.SchedulerRun, error) {
	var row models.SchedulerRun

	err := r.db.WithContext(ctx).
		Where("api_name = ?", apiName).
		Order("start_time DESC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find latest scheduler run for %s: %w", apiName, err)
	}

	return &domain.SchedulerRun{
		ID:            row.ID,
		SchedulerName: row.SchedulerName,
		APIName:       row.APIName,
		StartTime:     row.StartTime,
		EndTime:       row.EndTime,
		Status:        domain.RunStatus(row.Status),
	}, nil
}
