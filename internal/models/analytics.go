package models

import "time"

// Common analytics event types. EventType is stored as free text so new
// event kinds do not require a schema change.
const (
	EventTypeView    = "VIEW"
	EventTypeLike    = "LIKE"
	EventTypeComment = "COMMENT"
	EventTypeShare   = "SHARE"
)

// Analytics is one append-only event row recorded against a project.
// Rows are never updated or deleted through the service surface.
type Analytics struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"not null;index" json:"project_id"`
	EventType string    `gorm:"size:50;not null" json:"event_type"`
	EventData string    `gorm:"type:text" json:"event_data,omitempty"`
	IPAddress string    `gorm:"size:45" json:"ip_address,omitempty"`
	UserAgent string    `gorm:"size:500" json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
