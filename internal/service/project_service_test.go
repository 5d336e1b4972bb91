package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Isaac-1-lang/BrainBridge/internal/models"
)

func TestProjectService_GetProject_IncrementsViewCount(t *testing.T) {
	t.Parallel()

	stored := &models.Project{ID: 1, Title: "Demo", UserID: 1, ViewCount: 5, IsActive: true}
	projectRepo := noopProjectRepo()
	projectRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Project, error) {
		copy := *stored
		return &copy, nil
	}
	projectRepo.updateFn = func(_ context.Context, p *models.Project) error {
		stored = p
		return nil
	}
	svc := NewProjectService(projectRepo, noopUserRepo())

	project, err := svc.GetProject(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(6), project.ViewCount)
	assert.Equal(t, int64(6), stored.ViewCount)

	// Each read counts again
	project, err = svc.GetProject(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), project.ViewCount)
}

func TestProjectService_LikeAndUnlike(t *testing.T) {
	t.Parallel()

	t.Run("like increments", func(t *testing.T) {
		t.Parallel()
		stored := &models.Project{ID: 1, UserID: 1, LikeCount: 0}
		projectRepo := noopProjectRepo()
		projectRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Project, error) {
			copy := *stored
			return &copy, nil
		}
		projectRepo.updateFn = func(_ context.Context, p *models.Project) error {
			stored = p
			return nil
		}
		svc := NewProjectService(projectRepo, noopUserRepo())

		project, err := svc.LikeProject(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), project.LikeCount)
	})

	t.Run("unlike floors at zero", func(t *testing.T) {
		t.Parallel()
		updated := false
		projectRepo := noopProjectRepo()
		projectRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Project, error) {
			return &models.Project{ID: 1, UserID: 1, LikeCount: 0}, nil
		}
		projectRepo.updateFn = func(_ context.Context, _ *models.Project) error {
			updated = true
			return nil
		}
		svc := NewProjectService(projectRepo, noopUserRepo())

		project, err := svc.UnlikeProject(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(0), project.LikeCount)
		assert.False(t, updated, "no write should happen at zero likes")
	})
}

func TestProjectService_UpdateProject_Ownership(t *testing.T) {
	t.Parallel()

	t.Run("non-owner cannot update", func(t *testing.T) {
		t.Parallel()
		projectRepo := noopProjectRepo()
		projectRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Project, error) {
			return &models.Project{ID: 1, UserID: 10}, nil
		}
		svc := NewProjectService(projectRepo, noopUserRepo())

		newTitle := "Hijacked"
		_, err := svc.UpdateProject(context.Background(), UpdateProjectInput{ProjectID: 1, UserID: 1, Title: &newTitle})
		assertBadRequestError(t, err)
	})

	t.Run("owner partial update", func(t *testing.T) {
		t.Parallel()
		projectRepo := noopProjectRepo()
		projectRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Project, error) {
			return &models.Project{ID: 1, UserID: 1, Title: "Old", Description: "keep me", IsPublic: true}, nil
		}
		svc := NewProjectService(projectRepo, noopUserRepo())

		newTitle := "New"
		project, err := svc.UpdateProject(context.Background(), UpdateProjectInput{ProjectID: 1, UserID: 1, Title: &newTitle})
		require.NoError(t, err)
		assert.Equal(t, "New", project.Title)
		assert.Equal(t, "keep me", project.Description)
		assert.True(t, project.IsPublic)
	})
}

func TestProjectService_DeleteProject(t *testing.T) {
	t.Parallel()

	t.Run("soft delete clears active flag", func(t *testing.T) {
		t.Parallel()
		stored := &models.Project{ID: 1, UserID: 1, IsActive: true}
		projectRepo := noopProjectRepo()
		projectRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Project, error) {
			copy := *stored
			return &copy, nil
		}
		projectRepo.updateFn = func(_ context.Context, p *models.Project) error {
			stored = p
			return nil
		}
		svc := NewProjectService(projectRepo, noopUserRepo())

		require.NoError(t, svc.DeleteProject(context.Background(), 1, 1))
		assert.False(t, stored.IsActive)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		t.Parallel()
		projectRepo := noopProjectRepo()
		projectRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Project, error) {
			return &models.Project{ID: 1, UserID: 10, IsActive: true}, nil
		}
		svc := NewProjectService(projectRepo, noopUserRepo())

		err := svc.DeleteProject(context.Background(), 1, 1)
		assertBadRequestError(t, err)
	})
}

func TestProjectService_CreateProject(t *testing.T) {
	t.Parallel()

	t.Run("defaults to public", func(t *testing.T) {
		t.Parallel()
		var created *models.Project
		projectRepo := noopProjectRepo()
		projectRepo.createFn = func(_ context.Context, p *models.Project) error {
			p.ID = 42
			created = p
			return nil
		}
		svc := NewProjectService(projectRepo, noopUserRepo())

		project, err := svc.CreateProject(context.Background(), CreateProjectInput{
			UserID:    1,
			Title:     "Demo",
			Languages: []string{"Go", "TypeScript"},
		})
		require.NoError(t, err)
		assert.Equal(t, uint(42), project.ID)
		assert.True(t, created.IsPublic)
		assert.True(t, created.IsActive)
	})

	t.Run("unknown owner", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		}
		svc := NewProjectService(noopProjectRepo(), userRepo)

		_, err := svc.CreateProject(context.Background(), CreateProjectInput{UserID: 99, Title: "Demo"})
		assertNotFoundError(t, err)
	})
}
