package dto

import (
	"time"

	"github.com/Isaac-1-lang/BrainBridge/internal/models"
)

// AnalyticsRequest is the body of POST /api/analytics.
type AnalyticsRequest struct {
	ProjectID uint   `json:"project_id"`
	EventType string `json:"event_type"`
	EventData string `json:"event_data"`
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
}

// AnalyticsResponse is the public view of one analytics event row.
type AnalyticsResponse struct {
	ID        uint      `json:"id"`
	ProjectID uint      `json:"project_id"`
	EventType string    `json:"event_type"`
	EventData string    `json:"event_data,omitempty"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAnalyticsResponse maps an Analytics entity to its transfer shape.
func NewAnalyticsResponse(a *models.Analytics) AnalyticsResponse {
	return AnalyticsResponse{
		ID:        a.ID,
		ProjectID: a.ProjectID,
		EventType: a.EventType,
		EventData: a.EventData,
		IPAddress: a.IPAddress,
		UserAgent: a.UserAgent,
		CreatedAt: a.CreatedAt,
	}
}

// NewAnalyticsResponses maps a slice of analytics rows.
func NewAnalyticsResponses(rows []models.Analytics) []AnalyticsResponse {
	out := make([]AnalyticsResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewAnalyticsResponse(&rows[i]))
	}
	return out
}
