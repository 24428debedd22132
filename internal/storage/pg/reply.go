package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/opendiscuss/forum/internal/domain"
	internal_errors "github.com/opendiscuss/forum/internal/errors"
)

func (s *Storage) AddReply(reply domain.AddReply) (domain.AddedReply, error) {
	id := newId("reply")
	date := time.Now().UTC()

	var added domain.AddedReply
	err := s.db.QueryRow(`
        INSERT INTO replies (id, content, date, owner, comment_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, content, owner
    `, id, reply.Content, date, reply.Owner, reply.CommentId).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		return domain.AddedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}

	return added, nil
}

func (s *Storage) VerifyReplyById(id domain.ReplyId) error {
	var exists int
	err := s.db.QueryRow("SELECT 1 FROM replies WHERE id = $1", id).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NewNotFound("Reply not found")
		}
		return fmt.Errorf("failed to verify reply: %w", err)
	}
	return nil
}

func (s *Storage) VerifyReplyAccess(replyId domain.ReplyId, user domain.UserId) error {
	var owner domain.UserId
	err := s.db.QueryRow("SELECT owner FROM replies WHERE id = $1", replyId).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NewNotFound("Reply not found")
		}
		return fmt.Errorf("failed to fetch reply owner: %w", err)
	}

	if owner != user {
		return internal_errors.NewAuthorization("You are not allowed to access this reply")
	}
	return nil
}

// GetRepliesByThreadCommentId bulk-fetches every reply in a thread restricted
// to the given comment ids, one query for the whole thread rather than one
// per comment.
func (s *Storage) GetRepliesByThreadCommentId(threadId domain.ThreadId, commentIds []domain.CommentId) ([]domain.ReplyRecord, error) {
	rows, err := s.db.Query(`
        SELECT replies.id, users.username, replies.date, replies.content, replies.is_delete, replies.comment_id
        FROM replies
        LEFT JOIN comments ON replies.comment_id = comments.id
        LEFT JOIN users ON replies.owner = users.id
        WHERE comments.thread_id = $1 AND replies.comment_id = ANY($2)
        ORDER BY replies.date ASC
    `, threadId, pq.Array(commentIds))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer rows.Close()

	var replies []domain.ReplyRecord
	for rows.Next() {
		var reply domain.ReplyRecord
		if err := rows.Scan(&reply.Id, &reply.Username, &reply.Date, &reply.Content, &reply.Deleted, &reply.CommentId); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		replies = append(replies, reply)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return replies, nil
}

func (s *Storage) DeleteReplyById(id domain.ReplyId) error {
	result, err := s.db.Exec("UPDATE replies SET is_delete = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NewNotFound("Reply not found")
	}
	return nil
}
