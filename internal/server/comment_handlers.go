package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Isaac-1-lang/BrainBridge/internal/dto"
	"github.com/Isaac-1-lang/BrainBridge/internal/models"
	"github.com/Isaac-1-lang/BrainBridge/internal/service"
	"github.com/Isaac-1-lang/BrainBridge/internal/validation"
)

// CreateComment handles POST /api/comments?userId=
func (s *Server) CreateComment(c *fiber.Ctx) error {
	userID, err := s.parseUserIDQuery(c)
	if err != nil {
		return nil
	}

	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Invalid request body"))
	}

	if fields := validation.ValidateComment(req); len(fields) > 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationFailedError(fields))
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		Content:   req.Content,
		ProjectID: req.ProjectID,
		UserID:    userID,
	})
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewCommentResponse(comment))
}

// GetComment handles GET /api/comments/:id
func (s *Server) GetComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.GetComment(c.Context(), id)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(dto.NewCommentResponse(comment))
}

// ListProjectComments handles GET /api/comments/project/:projectId
func (s *Server) ListProjectComments(c *fiber.Ctx) error {
	projectID, err := s.parseID(c, "projectId")
	if err != nil {
		return nil
	}
	p := parsePagination(c, 20)

	comments, err := s.commentService.ListProjectComments(c.Context(), projectID, p.Limit, p.Offset)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(dto.NewCommentResponses(comments))
}

// ListUserComments handles GET /api/comments/user/:userId
func (s *Server) ListUserComments(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	p := parsePagination(c, 20)

	comments, err := s.commentService.ListUserComments(c.Context(), userID, p.Limit, p.Offset)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(dto.NewCommentResponses(comments))
}

// UpdateComment handles PUT /api/comments/:id?userId=
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := s.parseUserIDQuery(c)
	if err != nil {
		return nil
	}

	var req dto.CommentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Invalid request body"))
	}

	if fields := validation.ValidateCommentUpdate(req); len(fields) > 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationFailedError(fields))
	}

	comment, err := s.commentService.UpdateComment(c.Context(), service.UpdateCommentInput{
		CommentID: id,
		UserID:    userID,
		Content:   req.Content,
	})
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(dto.NewCommentResponse(comment))
}

// DeleteComment handles DELETE /api/comments/:id?userId=
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := s.parseUserIDQuery(c)
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.Context(), id, userID); err != nil {
		return s.respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
