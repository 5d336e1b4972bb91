package server

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/Isaac-1-lang/BrainBridge/internal/dto"
	"github.com/Isaac-1-lang/BrainBridge/internal/models"
	"github.com/Isaac-1-lang/BrainBridge/internal/service"
	"github.com/Isaac-1-lang/BrainBridge/internal/validation"
)

// CreateAnalyticsEvent handles POST /api/analytics
func (s *Server) CreateAnalyticsEvent(c *fiber.Ctx) error {
	var req dto.AnalyticsRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Invalid request body"))
	}

	if fields := validation.ValidateAnalytics(req); len(fields) > 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationFailedError(fields))
	}

	// Fall back to the request's own address when the caller omits it
	ip := req.IPAddress
	if ip == "" {
		ip = clientIP(c)
	}
	userAgent := req.UserAgent
	if userAgent == "" {
		userAgent = c.Get("User-Agent")
	}

	event, err := s.analyticsService.TrackEvent(c.Context(), service.TrackEventInput{
		ProjectID: req.ProjectID,
		EventType: req.EventType,
		EventData: req.EventData,
		IPAddress: ip,
		UserAgent: userAgent,
	})
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewAnalyticsResponse(event))
}

// GetAnalyticsEvent handles GET /api/analytics/:id
func (s *Server) GetAnalyticsEvent(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	event, err := s.analyticsService.GetEvent(c.Context(), id)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(dto.NewAnalyticsResponse(event))
}

// ListProjectAnalytics handles GET /api/analytics/project/:projectId
func (s *Server) ListProjectAnalytics(c *fiber.Ctx) error {
	projectID, err := s.parseID(c, "projectId")
	if err != nil {
		return nil
	}
	p := parsePagination(c, 20)

	events, err := s.analyticsService.ListProjectEvents(c.Context(), projectID, p.Limit, p.Offset)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(dto.NewAnalyticsResponses(events))
}

// GetProjectAnalyticsSummary handles GET /api/analytics/project/:projectId/summary
func (s *Server) GetProjectAnalyticsSummary(c *fiber.Ctx) error {
	projectID, err := s.parseID(c, "projectId")
	if err != nil {
		return nil
	}

	summary, err := s.analyticsService.ProjectSummary(c.Context(), projectID)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(summary)
}

// TrackProjectView handles POST /api/analytics/project/:projectId/track/view
func (s *Server) TrackProjectView(c *fiber.Ctx) error {
	return s.trackProjectEvent(c, s.analyticsService.TrackView)
}

// TrackProjectLike handles POST /api/analytics/project/:projectId/track/like
func (s *Server) TrackProjectLike(c *fiber.Ctx) error {
	return s.trackProjectEvent(c, s.analyticsService.TrackLike)
}

// TrackProjectComment handles POST /api/analytics/project/:projectId/track/comment
func (s *Server) TrackProjectComment(c *fiber.Ctx) error {
	return s.trackProjectEvent(c, s.analyticsService.TrackComment)
}

func (s *Server) trackProjectEvent(c *fiber.Ctx, track func(ctx context.Context, projectID uint, ip, userAgent string) (*models.Analytics, error)) error {
	projectID, err := s.parseID(c, "projectId")
	if err != nil {
		return nil
	}

	event, err := track(c.Context(), projectID, clientIP(c), c.Get("User-Agent"))
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewAnalyticsResponse(event))
}
