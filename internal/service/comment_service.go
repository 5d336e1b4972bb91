package service

import (
	"context"

	"github.com/Isaac-1-lang/BrainBridge/internal/models"
	"github.com/Isaac-1-lang/BrainBridge/internal/repository"
)

// CommentService handles comment creation and owner-only mutation.
type CommentService struct {
	commentRepo repository.CommentRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

type CreateCommentInput struct {
	Content   string
	ProjectID uint
	UserID    uint
}

type UpdateCommentInput struct {
	CommentID uint
	UserID    uint
	Content   string
}

func NewCommentService(commentRepo repository.CommentRepository, projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, projectRepo: projectRepo, userRepo: userRepo}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if _, err := s.projectRepo.GetByID(ctx, in.ProjectID); err != nil {
		return nil, err
	}
	author, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content:   in.Content,
		ProjectID: in.ProjectID,
		UserID:    in.UserID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	comment.AuthorUsername = author.Username
	return comment, nil
}

func (s *CommentService) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

// UpdateComment replaces the content and marks the comment edited. Only the
// author may update.
func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != in.UserID {
		return nil, models.NewBadRequestError("You are not the author of this comment")
	}

	comment.Content = in.Content
	comment.IsEdited = true
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment. Only the author may delete.
func (s *CommentService) DeleteComment(ctx context.Context, commentID, userID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return models.NewBadRequestError("You are not the author of this comment")
	}
	return s.commentRepo.Delete(ctx, commentID)
}

// ListProjectComments returns a project's comments, newest first.
func (s *CommentService) ListProjectComments(ctx context.Context, projectID uint, limit, offset int) ([]models.Comment, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByProject(ctx, projectID, limit, offset)
}

// ListUserComments returns a user's comments, newest first.
func (s *CommentService) ListUserComments(ctx context.Context, userID uint, limit, offset int) ([]models.Comment, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByUser(ctx, userID, limit, offset)
}
