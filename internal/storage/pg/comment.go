package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/opendiscuss/forum/internal/domain"
	internal_errors "github.com/opendiscuss/forum/internal/errors"
)

func (s *Storage) AddComment(comment domain.AddComment) (domain.AddedComment, error) {
	id := newId("comment")
	date := time.Now().UTC()

	var added domain.AddedComment
	err := s.db.QueryRow(`
        INSERT INTO comments (id, content, date, owner, thread_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, content, owner
    `, id, comment.Content, date, comment.Owner, comment.ThreadId).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}

	return added, nil
}

func (s *Storage) VerifyCommentById(id domain.CommentId) error {
	var exists int
	err := s.db.QueryRow("SELECT 1 FROM comments WHERE id = $1", id).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NewNotFound("Comment not found")
		}
		return fmt.Errorf("failed to verify comment: %w", err)
	}
	return nil
}

// VerifyCommentOnThread guards cross-thread reply and like attempts.
func (s *Storage) VerifyCommentOnThread(threadId domain.ThreadId, commentId domain.CommentId) error {
	var exists int
	err := s.db.QueryRow(
		"SELECT 1 FROM comments WHERE id = $1 AND thread_id = $2",
		commentId, threadId,
	).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NewNotFound("Comment not found on this thread")
		}
		return fmt.Errorf("failed to verify comment on thread: %w", err)
	}
	return nil
}

// VerifyCommentAccess fails NotFound when the comment is missing, before the
// ownership check can fail with Authorization. The order is part of the
// error-precedence contract.
func (s *Storage) VerifyCommentAccess(commentId domain.CommentId, user domain.UserId) error {
	var owner domain.UserId
	err := s.db.QueryRow("SELECT owner FROM comments WHERE id = $1", commentId).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NewNotFound("Comment not found")
		}
		return fmt.Errorf("failed to fetch comment owner: %w", err)
	}

	if owner != user {
		return internal_errors.NewAuthorization("You are not allowed to access this comment")
	}
	return nil
}

func (s *Storage) GetCommentsByThreadId(threadId domain.ThreadId) ([]domain.CommentRecord, error) {
	rows, err := s.db.Query(`
        SELECT comments.id, users.username, comments.date, comments.content, comments.is_delete
        FROM comments
        LEFT JOIN users ON users.id = comments.owner
        WHERE comments.thread_id = $1
        ORDER BY comments.date ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.CommentRecord
	for rows.Next() {
		var comment domain.CommentRecord
		if err := rows.Scan(&comment.Id, &comment.Username, &comment.Date, &comment.Content, &comment.Deleted); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return comments, nil
}

// DeleteCommentById sets the soft-delete flag. Re-deleting an already deleted
// comment is a no-op at the flag level.
func (s *Storage) DeleteCommentById(id domain.CommentId) error {
	result, err := s.db.Exec("UPDATE comments SET is_delete = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NewNotFound("Comment not found")
	}
	return nil
}
