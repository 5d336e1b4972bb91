package dto

import (
	"time"

	"github.com/Isaac-1-lang/BrainBridge/internal/models"
)

// CommentRequest is the body of POST /api/comments.
type CommentRequest struct {
	Content   string `json:"content"`
	ProjectID uint   `json:"project_id"`
}

// CommentUpdateRequest is the body of PUT /api/comments/{id}.
type CommentUpdateRequest struct {
	Content string `json:"content"`
}

// CommentResponse is the public view of a comment.
type CommentResponse struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	ProjectID uint      `json:"project_id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	IsEdited  bool      `json:"is_edited"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCommentResponse maps a Comment entity to its transfer shape.
func NewCommentResponse(c *models.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		ProjectID: c.ProjectID,
		UserID:    c.UserID,
		Username:  c.AuthorUsername,
		IsEdited:  c.IsEdited,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// NewCommentResponses maps a slice of comments.
func NewCommentResponses(comments []models.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, NewCommentResponse(&comments[i]))
	}
	return out
}
