package service

import (
	"context"

	"github.com/Isaac-1-lang/BrainBridge/internal/models"
	"github.com/Isaac-1-lang/BrainBridge/internal/observability"
	"github.com/Isaac-1-lang/BrainBridge/internal/repository"
)

// ProjectService handles project lifecycle, counters, and visibility rules.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

type CreateProjectInput struct {
	UserID      uint
	Title       string
	Description string
	Languages   []string
	IsPublic    *bool
}

type UpdateProjectInput struct {
	ProjectID   uint
	UserID      uint
	Title       *string
	Description *string
	Languages   []string
	IsPublic    *bool
}

func NewProjectService(projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo, userRepo: userRepo}
}

func (s *ProjectService) CreateProject(ctx context.Context, in CreateProjectInput) (*models.Project, error) {
	owner, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		Title:       in.Title,
		Description: in.Description,
		Languages:   in.Languages,
		UserID:      owner.ID,
		IsPublic:    true,
		IsActive:    true,
	}
	if in.IsPublic != nil {
		project.IsPublic = *in.IsPublic
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	project.OwnerUsername = owner.Username
	return project, nil
}

// GetProject fetches a project by ID and records the view. The counter is a
// plain read-modify-write; concurrent views may lose increments and that is
// acceptable for a popularity signal.
func (s *ProjectService) GetProject(ctx context.Context, id uint) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project.ViewCount++
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	observability.ProjectEngagement.WithLabelValues(observability.ActionView).Inc()
	return project, nil
}

// IncrementView bumps the view counter without returning the full record.
func (s *ProjectService) IncrementView(ctx context.Context, id uint) (int64, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	project.ViewCount++
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return 0, err
	}
	observability.ProjectEngagement.WithLabelValues(observability.ActionView).Inc()
	return project.ViewCount, nil
}

// LikeProject increments the like counter.
func (s *ProjectService) LikeProject(ctx context.Context, id uint) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	project.LikeCount++
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	observability.ProjectEngagement.WithLabelValues(observability.ActionLike).Inc()
	return project, nil
}

// UnlikeProject decrements the like counter, flooring at zero. Unliking a
// project with no likes is a no-op, not an error.
func (s *ProjectService) UnlikeProject(ctx context.Context, id uint) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project.LikeCount > 0 {
		project.LikeCount--
		if err := s.projectRepo.Update(ctx, project); err != nil {
			return nil, err
		}
		observability.ProjectEngagement.WithLabelValues(observability.ActionUnlike).Inc()
	}
	return project, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, in UpdateProjectInput) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.UserID != in.UserID {
		return nil, models.NewBadRequestError("You are not the owner of this project")
	}

	if in.Title != nil {
		project.Title = *in.Title
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.Languages != nil {
		project.Languages = in.Languages
	}
	if in.IsPublic != nil {
		project.IsPublic = *in.IsPublic
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject soft-deletes by clearing the active flag. The row remains
// fetchable by ID; it only drops out of listings.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID, userID uint) error {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project.UserID != userID {
		return models.NewBadRequestError("You are not the owner of this project")
	}

	project.IsActive = false
	return s.projectRepo.Update(ctx, project)
}

// ListPublicProjects returns public, active projects, newest first.
func (s *ProjectService) ListPublicProjects(ctx context.Context, limit, offset int) ([]models.Project, error) {
	return s.projectRepo.ListPublicActive(ctx, limit, offset)
}

// ListUserProjects returns a user's active projects, newest first.
func (s *ProjectService) ListUserProjects(ctx context.Context, userID uint, limit, offset int) ([]models.Project, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.projectRepo.ListByOwner(ctx, userID, limit, offset)
}
