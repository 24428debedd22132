package service

import (
	"github.com/opendiscuss/forum/internal/domain"
)

type LikeService interface {
	Toggle(threadId domain.ThreadId, commentId domain.CommentId, user domain.UserId) error
}

type Like struct {
	comments CommentStorage
	likes    LikeStorage
}

type LikeStorage interface {
	CheckCommentAlreadyLiked(commentId domain.CommentId, user domain.UserId) (bool, error)
	AddLike(commentId domain.CommentId, user domain.UserId) error
	RemoveLike(commentId domain.CommentId, user domain.UserId) error
	CountLikes(commentIds []domain.CommentId) ([]domain.LikeCount, error)
}

func NewLike(comments CommentStorage, likes LikeStorage) *Like {
	return &Like{comments, likes}
}

// Toggle flips the like state for (comment, user): a present row is removed,
// an absent one is inserted. Two consecutive calls restore the original state.
func (s *Like) Toggle(threadId domain.ThreadId, commentId domain.CommentId, user domain.UserId) error {
	if err := s.comments.VerifyCommentOnThread(threadId, commentId); err != nil {
		return err
	}

	liked, err := s.likes.CheckCommentAlreadyLiked(commentId, user)
	if err != nil {
		return err
	}

	if liked {
		return s.likes.RemoveLike(commentId, user)
	}
	return s.likes.AddLike(commentId, user)
}
