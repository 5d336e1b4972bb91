package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Isaac-1-lang/BrainBridge/internal/models"
)

// AnalyticsRepository defines persistence operations for analytics events.
// Events are append-only; there is no update or delete.
type AnalyticsRepository interface {
	Create(ctx context.Context, event *models.Analytics) error
	GetByID(ctx context.Context, id uint) (*models.Analytics, error)
	ListByProject(ctx context.Context, projectID uint, limit, offset int) ([]models.Analytics, error)
	SummaryByProject(ctx context.Context, projectID uint) (map[string]int64, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository returns a new AnalyticsRepository implementation.
func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) Create(ctx context.Context, event *models.Analytics) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *analyticsRepository) GetByID(ctx context.Context, id uint) (*models.Analytics, error) {
	var event models.Analytics
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Analytics", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &event, nil
}

func (r *analyticsRepository) ListByProject(ctx context.Context, projectID uint, limit, offset int) ([]models.Analytics, error) {
	var events []models.Analytics
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&events).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return events, nil
}

func (r *analyticsRepository) SummaryByProject(ctx context.Context, projectID uint) (map[string]int64, error) {
	type row struct {
		EventType string
		Count     int64
	}
	var rows []row
	if err := r.db.WithContext(ctx).Model(&models.Analytics{}).
		Select("event_type, count(*) AS count").
		Where("project_id = ?", projectID).
		Group("event_type").
		Find(&rows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	summary := make(map[string]int64, len(rows))
	for _, r := range rows {
		summary[r.EventType] = r.Count
	}
	return summary, nil
}
