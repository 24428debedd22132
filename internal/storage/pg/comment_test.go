package pg

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opendiscuss/forum/internal/domain"
	internal_errors "github.com/opendiscuss/forum/internal/errors"
)

func TestAddComment(t *testing.T) {
	s, mock := newMockStorage(t)

	expectQuery(mock, "INSERT INTO comments").
		WithArgs(sqlmock.AnyArg(), "a comment", sqlmock.AnyArg(), "user-123", "thread-123").
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "owner"}).
			AddRow("comment-abc", "a comment", "user-123"))

	added, err := s.AddComment(domain.AddComment{Content: "a comment", Owner: "user-123", ThreadId: "thread-123"})

	require.NoError(t, err)
	assert.Equal(t, domain.AddedComment{Id: "comment-abc", Content: "a comment", Owner: "user-123"}, added)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyCommentOnThread(t *testing.T) {
	t.Run("comment on thread", func(t *testing.T) {
		s, mock := newMockStorage(t)
		expectQuery(mock, "SELECT 1 FROM comments WHERE id = $1 AND thread_id = $2").
			WithArgs("comment-123", "thread-123").
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

		assert.NoError(t, s.VerifyCommentOnThread("thread-123", "comment-123"))
	})

	t.Run("comment on another thread", func(t *testing.T) {
		s, mock := newMockStorage(t)
		noRows(mock, "SELECT 1 FROM comments WHERE id = $1 AND thread_id = $2")

		err := s.VerifyCommentOnThread("thread-123", "comment-other")
		require.Error(t, err)
		assert.True(t, internal_errors.IsNotFound(err))
	})
}

func TestVerifyCommentAccess(t *testing.T) {
	t.Run("missing comment fails NotFound before ownership", func(t *testing.T) {
		s, mock := newMockStorage(t)
		noRows(mock, "SELECT owner FROM comments WHERE id = $1")

		err := s.VerifyCommentAccess("comment-missing", "user-456")
		require.Error(t, err)
		assert.True(t, internal_errors.IsNotFound(err))
	})

	t.Run("wrong owner fails Authorization", func(t *testing.T) {
		s, mock := newMockStorage(t)
		expectQuery(mock, "SELECT owner FROM comments WHERE id = $1").
			WithArgs("comment-123").
			WillReturnRows(sqlmock.NewRows([]string{"owner"}).AddRow("user-123"))

		err := s.VerifyCommentAccess("comment-123", "user-456")
		require.Error(t, err)
		assert.True(t, internal_errors.IsAuthorization(err))
	})

	t.Run("owner passes", func(t *testing.T) {
		s, mock := newMockStorage(t)
		expectQuery(mock, "SELECT owner FROM comments WHERE id = $1").
			WithArgs("comment-123").
			WillReturnRows(sqlmock.NewRows([]string{"owner"}).AddRow("user-123"))

		assert.NoError(t, s.VerifyCommentAccess("comment-123", "user-123"))
	})
}

func TestGetCommentsByThreadId(t *testing.T) {
	s, mock := newMockStorage(t)
	first := time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Minute)

	expectQuery(mock, "ORDER BY comments.date ASC").
		WithArgs("thread-123").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "date", "content", "is_delete"}).
			AddRow("comment-123", "johndoe", first, "Just a comment", false).
			AddRow("comment-124", "dicoding", second, "Leaving a comment", true))

	comments, err := s.GetCommentsByThreadId("thread-123")

	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "comment-123", comments[0].Id)
	assert.False(t, comments[0].Deleted)
	assert.True(t, comments[1].Deleted)
	// masking is a projection, stored content comes back as-is
	assert.Equal(t, "Leaving a comment", comments[1].Content)
}

func TestDeleteCommentById(t *testing.T) {
	t.Run("flags the row", func(t *testing.T) {
		s, mock := newMockStorage(t)
		expectExec(mock, "UPDATE comments SET is_delete = TRUE WHERE id = $1").
			WithArgs("comment-123").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, s.DeleteCommentById("comment-123"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing comment", func(t *testing.T) {
		s, mock := newMockStorage(t)
		expectExec(mock, "UPDATE comments SET is_delete = TRUE WHERE id = $1").
			WithArgs("comment-missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := s.DeleteCommentById("comment-missing")
		require.Error(t, err)
		assert.True(t, internal_errors.IsNotFound(err))
	})
}
