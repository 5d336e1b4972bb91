package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Isaac-1-lang/BrainBridge/internal/models"
)

func TestCommentRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "content", "project_id", "user_id", "author_username"}).
			AddRow(1, "Nice work", 2, 7, "alice")
		mock.ExpectQuery(`author_username`).
			WithArgs(1, 1).
			WillReturnRows(rows)

		comment, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, comment)
		assert.Equal(t, "Nice work", comment.Content)
		assert.Equal(t, "alice", comment.AuthorUsername)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`author_username`).
			WithArgs(99, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		comment, err := repo.GetByID(ctx, 99)
		assert.Error(t, err)
		assert.Nil(t, comment)
		var appErr *models.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.CodeNotFound, appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCommentRepository_ListByProject(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	// Newest first ordering
	rows := sqlmock.NewRows([]string{"id", "content", "project_id"}).
		AddRow(3, "third", 2).
		AddRow(2, "second", 2).
		AddRow(1, "first", 2)
	mock.ExpectQuery(regexp.QuoteMeta(`comments.project_id = $1 ORDER BY comments.created_at DESC`)).
		WithArgs(2, 20).
		WillReturnRows(rows)

	comments, err := repo.ListByProject(ctx, 2, 20, 0)
	assert.NoError(t, err)
	assert.Len(t, comments, 3)
	assert.Equal(t, "third", comments[0].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	comment := &models.Comment{Content: "Great project", ProjectID: 2, UserID: 7}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "comments"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Create(ctx, comment)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "comments"`)).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(ctx, 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_CountByProject(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "comments" WHERE project_id = $1`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountByProject(ctx, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
