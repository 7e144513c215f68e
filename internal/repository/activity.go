package repository

import (
	"context"
	"fmt"

	"github.com/Harshalloke/The-Daily-Chronicle/internal/models"
	"gorm.io/gorm"
)

// ActivityRepository defines the interface for activity log operations.
type ActivityRepository interface {
	Log(ctx context.Context, entry *models.ActivityLog) error
	Recent(ctx context.Context, limit int) ([]models.ActivityLog, error)
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new ActivityRepository instance.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Log(ctx context.Context, entry *models.ActivityLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}
	return nil
}

func (r *activityRepository) Recent(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recent activity: %w", err)
	}
	return entries, nil
}
