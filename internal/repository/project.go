package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Isaac-1-lang/BrainBridge/internal/models"
)

// projectColumns selects project rows enriched with the owner's username and
// the live comment count, so list and detail responses need no extra queries.
const projectColumns = "projects.*, users.username AS owner_username, " +
	"(SELECT count(*) FROM comments WHERE comments.project_id = projects.id) AS comment_count"

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	ListPublicActive(ctx context.Context, limit, offset int) ([]models.Project, error)
	ListByOwner(ctx context.Context, userID uint, limit, offset int) ([]models.Project, error)
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository returns a new ProjectRepository implementation.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).
		Select(projectColumns).
		Joins("JOIN users ON users.id = projects.user_id").
		Where("projects.id = ?", id).
		First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Project", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &project, nil
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Save(project).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *projectRepository) ListPublicActive(ctx context.Context, limit, offset int) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.WithContext(ctx).
		Select(projectColumns).
		Joins("JOIN users ON users.id = projects.user_id").
		Where("projects.is_public = ? AND projects.is_active = ?", true, true).
		Order("projects.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&projects).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return projects, nil
}

func (r *projectRepository) ListByOwner(ctx context.Context, userID uint, limit, offset int) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.WithContext(ctx).
		Select(projectColumns).
		Joins("JOIN users ON users.id = projects.user_id").
		Where("projects.user_id = ? AND projects.is_active = ?", userID, true).
		Order("projects.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&projects).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return projects, nil
}
