package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Isaac-1-lang/BrainBridge/internal/database"
	"github.com/Isaac-1-lang/BrainBridge/internal/models"
	"github.com/Isaac-1-lang/BrainBridge/internal/repository"
)

// setupTestDB opens a fresh in-memory database per test. The shared cache
// keeps the schema alive across the pooled connections gorm opens.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

type testServices struct {
	users     *UserService
	projects  *ProjectService
	comments  *CommentService
	analytics *AnalyticsService
}

func newTestServices(db *gorm.DB) *testServices {
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	return &testServices{
		users:     NewUserService(db, userRepo, tokenRepo, "integration-secret"),
		projects:  NewProjectService(projectRepo, userRepo),
		comments:  NewCommentService(commentRepo, projectRepo, userRepo),
		analytics: NewAnalyticsService(analyticsRepo, projectRepo),
	}
}

func registerUser(t *testing.T, svc *testServices, email, username string) *models.User {
	t.Helper()
	user, err := svc.users.Register(context.Background(), RegisterInput{
		Email:     email,
		Username:  username,
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
	})
	require.NoError(t, err)
	return user
}

func createProject(t *testing.T, svc *testServices, userID uint, title string, public bool) *models.Project {
	t.Helper()
	project, err := svc.projects.CreateProject(context.Background(), CreateProjectInput{
		UserID:   userID,
		Title:    title,
		IsPublic: &public,
	})
	require.NoError(t, err)
	return project
}

func TestIntegration_RegisterAndLogin(t *testing.T) {
	svc := newTestServices(setupTestDB(t))
	ctx := context.Background()

	user := registerUser(t, svc, "alice@example.com", "alice")
	assert.NotZero(t, user.ID)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsEmailVerified)

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := svc.users.Register(ctx, RegisterInput{
			Email: "alice@example.com", Username: "other", Password: "password123",
		})
		assertBadRequestError(t, err)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		_, err := svc.users.Register(ctx, RegisterInput{
			Email: "other@example.com", Username: "alice", Password: "password123",
		})
		assertBadRequestError(t, err)
	})

	t.Run("login by email and by username", func(t *testing.T) {
		byEmail, err := svc.users.Login(ctx, LoginInput{EmailOrUsername: "alice@example.com", Password: "password123"})
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.User.ID)

		byUsername, err := svc.users.Login(ctx, LoginInput{EmailOrUsername: "alice", Password: "password123"})
		require.NoError(t, err)
		assert.Equal(t, user.ID, byUsername.User.ID)
	})

	t.Run("refresh rotates the token", func(t *testing.T) {
		login, err := svc.users.Login(ctx, LoginInput{EmailOrUsername: "alice", Password: "password123"})
		require.NoError(t, err)

		refreshed, err := svc.users.Refresh(ctx, login.RefreshToken)
		require.NoError(t, err)
		assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

		// The consumed token is gone
		_, err = svc.users.Refresh(ctx, login.RefreshToken)
		assertBadRequestError(t, err)
	})
}

func TestIntegration_ViewCountAccumulates(t *testing.T) {
	svc := newTestServices(setupTestDB(t))
	ctx := context.Background()

	owner := registerUser(t, svc, "owner@example.com", "owner")
	project := createProject(t, svc, owner.ID, "Viewed", true)

	for i := 0; i < 5; i++ {
		_, err := svc.projects.GetProject(ctx, project.ID)
		require.NoError(t, err)
	}

	got, err := svc.projects.GetProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(6), got.ViewCount)
}

func TestIntegration_LikeFloorsAtZero(t *testing.T) {
	svc := newTestServices(setupTestDB(t))
	ctx := context.Background()

	owner := registerUser(t, svc, "owner@example.com", "owner")
	project := createProject(t, svc, owner.ID, "Liked", true)

	liked, err := svc.projects.LikeProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), liked.LikeCount)

	unliked, err := svc.projects.UnlikeProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unliked.LikeCount)

	// Unliking again stays at zero without error
	unliked, err = svc.projects.UnlikeProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unliked.LikeCount)
}

func TestIntegration_ProjectVisibility(t *testing.T) {
	svc := newTestServices(setupTestDB(t))
	ctx := context.Background()

	owner := registerUser(t, svc, "owner@example.com", "owner")
	public := createProject(t, svc, owner.ID, "Public", true)
	createProject(t, svc, owner.ID, "Private", false)
	deleted := createProject(t, svc, owner.ID, "Deleted", true)
	require.NoError(t, svc.projects.DeleteProject(ctx, deleted.ID, owner.ID))

	t.Run("public listing excludes private and deleted", func(t *testing.T) {
		projects, err := svc.projects.ListPublicProjects(ctx, 20, 0)
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, public.ID, projects[0].ID)
		assert.Equal(t, "owner", projects[0].OwnerUsername)
	})

	t.Run("owner listing excludes deleted but keeps private", func(t *testing.T) {
		projects, err := svc.projects.ListUserProjects(ctx, owner.ID, 20, 0)
		require.NoError(t, err)
		assert.Len(t, projects, 2)
	})

	t.Run("deleted project still fetchable by id", func(t *testing.T) {
		got, err := svc.projects.GetProject(ctx, deleted.ID)
		require.NoError(t, err)
		assert.False(t, got.IsActive)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		intruder := registerUser(t, svc, "intruder@example.com", "intruder")
		err := svc.projects.DeleteProject(ctx, public.ID, intruder.ID)
		assertBadRequestError(t, err)
	})
}

func TestIntegration_CommentsNewestFirst(t *testing.T) {
	svc := newTestServices(setupTestDB(t))
	ctx := context.Background()

	owner := registerUser(t, svc, "owner@example.com", "owner")
	project := createProject(t, svc, owner.ID, "Discussed", true)

	for _, content := range []string{"first", "second", "third"} {
		_, err := svc.comments.CreateComment(ctx, CreateCommentInput{
			Content: content, ProjectID: project.ID, UserID: owner.ID,
		})
		require.NoError(t, err)
	}

	comments, err := svc.comments.ListProjectComments(ctx, project.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	for _, c := range comments {
		assert.Equal(t, "owner", c.AuthorUsername)
	}

	// The comment count surfaces on the project
	got, err := svc.projects.GetProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.CommentCount)
}

func TestIntegration_AnalyticsSummary(t *testing.T) {
	svc := newTestServices(setupTestDB(t))
	ctx := context.Background()

	owner := registerUser(t, svc, "owner@example.com", "owner")
	project := createProject(t, svc, owner.ID, "Tracked", true)

	for i := 0; i < 3; i++ {
		_, err := svc.analytics.TrackView(ctx, project.ID, "127.0.0.1", "ua")
		require.NoError(t, err)
	}
	_, err := svc.analytics.TrackLike(ctx, project.ID, "127.0.0.1", "ua")
	require.NoError(t, err)

	summary, err := svc.analytics.ProjectSummary(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"VIEW": 3, "LIKE": 1}, summary)

	events, err := svc.analytics.ListProjectEvents(ctx, project.ID, 20, 0)
	require.NoError(t, err)
	assert.Len(t, events, 4)
}
