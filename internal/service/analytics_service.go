package service

import (
	"context"

	"github.com/Isaac-1-lang/BrainBridge/internal/models"
	"github.com/Isaac-1-lang/BrainBridge/internal/observability"
	"github.com/Isaac-1-lang/BrainBridge/internal/repository"
)

// AnalyticsService records and reports append-only project events.
type AnalyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	projectRepo   repository.ProjectRepository
}

type TrackEventInput struct {
	ProjectID uint
	EventType string
	EventData string
	IPAddress string
	UserAgent string
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository, projectRepo repository.ProjectRepository) *AnalyticsService {
	return &AnalyticsService{analyticsRepo: analyticsRepo, projectRepo: projectRepo}
}

// TrackEvent appends an event for an existing project. Event types are free
// strings; the well-known ones are the EventType* constants.
func (s *AnalyticsService) TrackEvent(ctx context.Context, in TrackEventInput) (*models.Analytics, error) {
	if _, err := s.projectRepo.GetByID(ctx, in.ProjectID); err != nil {
		return nil, err
	}

	event := &models.Analytics{
		ProjectID: in.ProjectID,
		EventType: in.EventType,
		EventData: in.EventData,
		IPAddress: in.IPAddress,
		UserAgent: in.UserAgent,
	}
	if err := s.analyticsRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	observability.AnalyticsEventsRecorded.WithLabelValues(event.EventType).Inc()
	return event, nil
}

// TrackView records a VIEW event.
func (s *AnalyticsService) TrackView(ctx context.Context, projectID uint, ip, userAgent string) (*models.Analytics, error) {
	return s.TrackEvent(ctx, TrackEventInput{
		ProjectID: projectID,
		EventType: models.EventTypeView,
		IPAddress: ip,
		UserAgent: userAgent,
	})
}

// TrackLike records a LIKE event.
func (s *AnalyticsService) TrackLike(ctx context.Context, projectID uint, ip, userAgent string) (*models.Analytics, error) {
	return s.TrackEvent(ctx, TrackEventInput{
		ProjectID: projectID,
		EventType: models.EventTypeLike,
		IPAddress: ip,
		UserAgent: userAgent,
	})
}

// TrackComment records a COMMENT event.
func (s *AnalyticsService) TrackComment(ctx context.Context, projectID uint, ip, userAgent string) (*models.Analytics, error) {
	return s.TrackEvent(ctx, TrackEventInput{
		ProjectID: projectID,
		EventType: models.EventTypeComment,
		IPAddress: ip,
		UserAgent: userAgent,
	})
}

func (s *AnalyticsService) GetEvent(ctx context.Context, id uint) (*models.Analytics, error) {
	return s.analyticsRepo.GetByID(ctx, id)
}

// ListProjectEvents returns a project's events, newest first.
func (s *AnalyticsService) ListProjectEvents(ctx context.Context, projectID uint, limit, offset int) ([]models.Analytics, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.analyticsRepo.ListByProject(ctx, projectID, limit, offset)
}

// ProjectSummary returns per-event-type counts for a project.
func (s *AnalyticsService) ProjectSummary(ctx context.Context, projectID uint) (map[string]int64, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.analyticsRepo.SummaryByProject(ctx, projectID)
}
