package dto

import (
	"time"

	"github.com/Isaac-1-lang/BrainBridge/internal/models"
)

// ProjectRequest is the body of project create and update calls. On update,
// nil fields are left untouched; a nil IsPublic on create defaults to true.
type ProjectRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Languages   []string `json:"languages"`
	IsPublic    *bool    `json:"is_public"`
}

// ProjectResponse is the public view of a project, including the owner's
// username and the live comment count resolved at query time.
type ProjectResponse struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Languages    []string  `json:"languages"`
	IsPublic     bool      `json:"is_public"`
	IsActive     bool      `json:"is_active"`
	ViewCount    int64     `json:"view_count"`
	LikeCount    int64     `json:"like_count"`
	UserID       uint      `json:"user_id"`
	Username     string    `json:"username"`
	CommentCount int64     `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewProjectResponse maps a Project entity to its transfer shape.
func NewProjectResponse(p *models.Project) ProjectResponse {
	languages := p.Languages
	if languages == nil {
		languages = []string{}
	}
	return ProjectResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Languages:    languages,
		IsPublic:     p.IsPublic,
		IsActive:     p.IsActive,
		ViewCount:    p.ViewCount,
		LikeCount:    p.LikeCount,
		UserID:       p.UserID,
		Username:     p.OwnerUsername,
		CommentCount: p.CommentCount,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// NewProjectResponses maps a slice of projects.
func NewProjectResponses(projects []models.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, NewProjectResponse(&projects[i]))
	}
	return out
}
