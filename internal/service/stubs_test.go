package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Isaac-1-lang/BrainBridge/internal/models"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn          func(context.Context, uint) (*models.User, error)
	getByEmailFn       func(context.Context, string) (*models.User, error)
	getByUsernameFn    func(context.Context, string) (*models.User, error)
	existsByEmailFn    func(context.Context, string) (bool, error)
	existsByUsernameFn func(context.Context, string) (bool, error)
	createFn           func(context.Context, *models.User) error
	updateFn           func(context.Context, *models.User) error
	deleteFn           func(context.Context, uint) error
	listFn             func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.existsByEmailFn(ctx, email)
}
func (s *userRepoStub) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return s.existsByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "stubuser", IsActive: true}, nil
		},
		getByEmailFn:       func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		existsByEmailFn:    func(_ context.Context, _ string) (bool, error) { return false, nil },
		existsByUsernameFn: func(_ context.Context, _ string) (bool, error) { return false, nil },
		createFn:           func(_ context.Context, _ *models.User) error { return nil },
		updateFn:           func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:           func(_ context.Context, _ uint) error { return nil },
		listFn:             func(_ context.Context, _, _ int) ([]models.User, error) { return nil, nil },
	}
}

// projectRepoStub is a stub for repository.ProjectRepository.
type projectRepoStub struct {
	getByIDFn          func(context.Context, uint) (*models.Project, error)
	createFn           func(context.Context, *models.Project) error
	updateFn           func(context.Context, *models.Project) error
	listPublicActiveFn func(context.Context, int, int) ([]models.Project, error)
	listByOwnerFn      func(context.Context, uint, int, int) ([]models.Project, error)
}

func (s *projectRepoStub) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	return s.getByIDFn(ctx, id)
}
func (s *projectRepoStub) Create(ctx context.Context, p *models.Project) error {
	return s.createFn(ctx, p)
}
func (s *projectRepoStub) Update(ctx context.Context, p *models.Project) error {
	return s.updateFn(ctx, p)
}
func (s *projectRepoStub) ListPublicActive(ctx context.Context, limit, offset int) ([]models.Project, error) {
	return s.listPublicActiveFn(ctx, limit, offset)
}
func (s *projectRepoStub) ListByOwner(ctx context.Context, userID uint, limit, offset int) ([]models.Project, error) {
	return s.listByOwnerFn(ctx, userID, limit, offset)
}

func noopProjectRepo() *projectRepoStub {
	return &projectRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.Project, error) {
			return &models.Project{ID: id, UserID: 1, IsPublic: true, IsActive: true}, nil
		},
		createFn:           func(_ context.Context, _ *models.Project) error { return nil },
		updateFn:           func(_ context.Context, _ *models.Project) error { return nil },
		listPublicActiveFn: func(_ context.Context, _, _ int) ([]models.Project, error) { return nil, nil },
		listByOwnerFn:      func(_ context.Context, _ uint, _, _ int) ([]models.Project, error) { return nil, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	getByIDFn        func(context.Context, uint) (*models.Comment, error)
	createFn         func(context.Context, *models.Comment) error
	updateFn         func(context.Context, *models.Comment) error
	deleteFn         func(context.Context, uint) error
	listByProjectFn  func(context.Context, uint, int, int) ([]models.Comment, error)
	listByUserFn     func(context.Context, uint, int, int) ([]models.Comment, error)
	countByProjectFn func(context.Context, uint) (int64, error)
}

func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) Create(ctx context.Context, c *models.Comment) error {
	return s.createFn(ctx, c)
}
func (s *commentRepoStub) Update(ctx context.Context, c *models.Comment) error {
	return s.updateFn(ctx, c)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }
func (s *commentRepoStub) ListByProject(ctx context.Context, projectID uint, limit, offset int) ([]models.Comment, error) {
	return s.listByProjectFn(ctx, projectID, limit, offset)
}
func (s *commentRepoStub) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Comment, error) {
	return s.listByUserFn(ctx, userID, limit, offset)
}
func (s *commentRepoStub) CountByProject(ctx context.Context, projectID uint) (int64, error) {
	return s.countByProjectFn(ctx, projectID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, UserID: 1}, nil
		},
		createFn:         func(_ context.Context, _ *models.Comment) error { return nil },
		updateFn:         func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:         func(_ context.Context, _ uint) error { return nil },
		listByProjectFn:  func(_ context.Context, _ uint, _, _ int) ([]models.Comment, error) { return nil, nil },
		listByUserFn:     func(_ context.Context, _ uint, _, _ int) ([]models.Comment, error) { return nil, nil },
		countByProjectFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// analyticsRepoStub is a stub for repository.AnalyticsRepository.
type analyticsRepoStub struct {
	createFn           func(context.Context, *models.Analytics) error
	getByIDFn          func(context.Context, uint) (*models.Analytics, error)
	listByProjectFn    func(context.Context, uint, int, int) ([]models.Analytics, error)
	summaryByProjectFn func(context.Context, uint) (map[string]int64, error)
}

func (s *analyticsRepoStub) Create(ctx context.Context, e *models.Analytics) error {
	return s.createFn(ctx, e)
}
func (s *analyticsRepoStub) GetByID(ctx context.Context, id uint) (*models.Analytics, error) {
	return s.getByIDFn(ctx, id)
}
func (s *analyticsRepoStub) ListByProject(ctx context.Context, projectID uint, limit, offset int) ([]models.Analytics, error) {
	return s.listByProjectFn(ctx, projectID, limit, offset)
}
func (s *analyticsRepoStub) SummaryByProject(ctx context.Context, projectID uint) (map[string]int64, error) {
	return s.summaryByProjectFn(ctx, projectID)
}

func noopAnalyticsRepo() *analyticsRepoStub {
	return &analyticsRepoStub{
		createFn:        func(_ context.Context, _ *models.Analytics) error { return nil },
		getByIDFn:       func(_ context.Context, id uint) (*models.Analytics, error) { return &models.Analytics{ID: id}, nil },
		listByProjectFn: func(_ context.Context, _ uint, _, _ int) ([]models.Analytics, error) { return nil, nil },
		summaryByProjectFn: func(_ context.Context, _ uint) (map[string]int64, error) {
			return map[string]int64{}, nil
		},
	}
}

// tokenRepoStub is a stub for repository.TokenRepository.
type tokenRepoStub struct {
	createRefreshFn        func(context.Context, *models.RefreshToken) error
	getRefreshFn           func(context.Context, string) (*models.RefreshToken, error)
	deleteRefreshFn        func(context.Context, string) error
	deleteRefreshForUserFn func(context.Context, uint) error
	createVerificationFn   func(context.Context, *models.EmailVerificationToken) error
	getVerificationFn      func(context.Context, string) (*models.EmailVerificationToken, error)
	deleteVerificationFn   func(context.Context, string) error
}

func (s *tokenRepoStub) CreateRefreshToken(ctx context.Context, t *models.RefreshToken) error {
	return s.createRefreshFn(ctx, t)
}
func (s *tokenRepoStub) GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	return s.getRefreshFn(ctx, token)
}
func (s *tokenRepoStub) DeleteRefreshToken(ctx context.Context, token string) error {
	return s.deleteRefreshFn(ctx, token)
}
func (s *tokenRepoStub) DeleteRefreshTokensForUser(ctx context.Context, userID uint) error {
	return s.deleteRefreshForUserFn(ctx, userID)
}
func (s *tokenRepoStub) CreateVerificationToken(ctx context.Context, t *models.EmailVerificationToken) error {
	return s.createVerificationFn(ctx, t)
}
func (s *tokenRepoStub) GetVerificationToken(ctx context.Context, token string) (*models.EmailVerificationToken, error) {
	return s.getVerificationFn(ctx, token)
}
func (s *tokenRepoStub) DeleteVerificationToken(ctx context.Context, token string) error {
	return s.deleteVerificationFn(ctx, token)
}

func noopTokenRepo() *tokenRepoStub {
	return &tokenRepoStub{
		createRefreshFn:        func(_ context.Context, _ *models.RefreshToken) error { return nil },
		getRefreshFn:           func(_ context.Context, _ string) (*models.RefreshToken, error) { return nil, nil },
		deleteRefreshFn:        func(_ context.Context, _ string) error { return nil },
		deleteRefreshForUserFn: func(_ context.Context, _ uint) error { return nil },
		createVerificationFn:   func(_ context.Context, _ *models.EmailVerificationToken) error { return nil },
		getVerificationFn: func(_ context.Context, _ string) (*models.EmailVerificationToken, error) {
			return nil, nil
		},
		deleteVerificationFn: func(_ context.Context, _ string) error { return nil },
	}
}

func assertBadRequestError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeBadRequest, appErr.Code)
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
