package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Isaac-1-lang/BrainBridge/internal/dto"
	"github.com/Isaac-1-lang/BrainBridge/internal/models"
	"github.com/Isaac-1-lang/BrainBridge/internal/service"
	"github.com/Isaac-1-lang/BrainBridge/internal/validation"
)

// CreateProject handles POST /api/projects?userId=
func (s *Server) CreateProject(c *fiber.Ctx) error {
	userID, err := s.parseUserIDQuery(c)
	if err != nil {
		return nil
	}

	var req dto.ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Invalid request body"))
	}

	if fields := validation.ValidateProjectCreate(req); len(fields) > 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationFailedError(fields))
	}

	in := service.CreateProjectInput{
		UserID:    userID,
		Languages: req.Languages,
		IsPublic:  req.IsPublic,
	}
	if req.Title != nil {
		in.Title = *req.Title
	}
	if req.Description != nil {
		in.Description = *req.Description
	}

	project, err := s.projectService.CreateProject(c.Context(), in)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewProjectResponse(project))
}

// GetProject handles GET /api/projects/:id. Every successful read counts as
// a view.
func (s *Server) GetProject(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	project, err := s.projectService.GetProject(c.Context(), id)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(dto.NewProjectResponse(project))
}

// ListPublicProjects handles GET /api/projects and GET /api/projects/public
func (s *Server) ListPublicProjects(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	projects, err := s.projectService.ListPublicProjects(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(dto.NewProjectResponses(projects))
}

// ListUserProjects handles GET /api/projects/user/:userId
func (s *Server) ListUserProjects(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	p := parsePagination(c, 20)

	projects, err := s.projectService.ListUserProjects(c.Context(), userID, p.Limit, p.Offset)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(dto.NewProjectResponses(projects))
}

// UpdateProject handles PUT /api/projects/:id?userId=
func (s *Server) UpdateProject(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := s.parseUserIDQuery(c)
	if err != nil {
		return nil
	}

	var req dto.ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Invalid request body"))
	}

	if fields := validation.ValidateProjectUpdate(req); len(fields) > 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationFailedError(fields))
	}

	project, err := s.projectService.UpdateProject(c.Context(), service.UpdateProjectInput{
		ProjectID:   id,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Languages:   req.Languages,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(dto.NewProjectResponse(project))
}

// DeleteProject handles DELETE /api/projects/:id?userId=
func (s *Server) DeleteProject(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := s.parseUserIDQuery(c)
	if err != nil {
		return nil
	}

	if err := s.projectService.DeleteProject(c.Context(), id, userID); err != nil {
		return s.respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// RecordProjectView handles POST /api/projects/:id/view
func (s *Server) RecordProjectView(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	viewCount, err := s.projectService.IncrementView(c.Context(), id)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(fiber.Map{"view_count": viewCount})
}

// LikeProject handles POST /api/projects/:id/like
func (s *Server) LikeProject(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	project, err := s.projectService.LikeProject(c.Context(), id)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(dto.NewProjectResponse(project))
}

// UnlikeProject handles DELETE /api/projects/:id/like
func (s *Server) UnlikeProject(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	project, err := s.projectService.UnlikeProject(c.Context(), id)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(dto.NewProjectResponse(project))
}
