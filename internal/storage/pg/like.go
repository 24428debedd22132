package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/opendiscuss/forum/internal/domain"
)

func (s *Storage) CheckCommentAlreadyLiked(commentId domain.CommentId, user domain.UserId) (bool, error) {
	var exists int
	err := s.db.QueryRow(
		"SELECT 1 FROM likes WHERE comment_id = $1 AND owner = $2",
		commentId, user,
	).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return true, nil
}

func (s *Storage) AddLike(commentId domain.CommentId, user domain.UserId) error {
	id := newId("like")
	if _, err := s.db.Exec(
		"INSERT INTO likes (id, comment_id, owner) VALUES ($1, $2, $3)",
		id, commentId, user,
	); err != nil {
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

func (s *Storage) RemoveLike(commentId domain.CommentId, user domain.UserId) error {
	if _, err := s.db.Exec(
		"DELETE FROM likes WHERE comment_id = $1 AND owner = $2",
		commentId, user,
	); err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}
	return nil
}

// CountLikes returns one aggregate row per comment that has at least one
// like. Comments without likes produce no row.
func (s *Storage) CountLikes(commentIds []domain.CommentId) ([]domain.LikeCount, error) {
	rows, err := s.db.Query(`
        SELECT comment_id, COUNT(*)
        FROM likes
        WHERE comment_id = ANY($1)
        GROUP BY comment_id
    `, pq.Array(commentIds))
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}
	defer rows.Close()

	var counts []domain.LikeCount
	for rows.Next() {
		var count domain.LikeCount
		if err := rows.Scan(&count.CommentId, &count.Count); err != nil {
			return nil, fmt.Errorf("failed to scan like count: %w", err)
		}
		counts = append(counts, count)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return counts, nil
}
