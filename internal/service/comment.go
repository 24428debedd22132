package service

import (
	"github.com/opendiscuss/forum/internal/domain"
)

type CommentService interface {
	Create(content any, owner domain.UserId, threadId domain.ThreadId) (domain.AddedComment, error)
	Delete(threadId domain.ThreadId, commentId domain.CommentId, user domain.UserId) error
}

type Comment struct {
	threads   ThreadStorage
	comments  CommentStorage
	sanitizer *Sanitizer
}

type CommentStorage interface {
	AddComment(comment domain.AddComment) (domain.AddedComment, error)
	VerifyCommentById(id domain.CommentId) error
	VerifyCommentOnThread(threadId domain.ThreadId, commentId domain.CommentId) error
	VerifyCommentAccess(commentId domain.CommentId, user domain.UserId) error
	GetCommentsByThreadId(threadId domain.ThreadId) ([]domain.CommentRecord, error)
	DeleteCommentById(id domain.CommentId) error
}

func NewComment(threads ThreadStorage, comments CommentStorage, sanitizer *Sanitizer) *Comment {
	return &Comment{threads, comments, sanitizer}
}

func (s *Comment) Create(content any, owner domain.UserId, threadId domain.ThreadId) (domain.AddedComment, error) {
	// parent must exist before validating the payload is persisted
	if err := s.threads.VerifyThreadById(threadId); err != nil {
		return domain.AddedComment{}, err
	}

	comment, err := domain.NewAddComment(content, owner, threadId)
	if err != nil {
		return domain.AddedComment{}, err
	}
	comment.Content = s.sanitizer.Clean(comment.Content)

	return s.comments.AddComment(comment)
}

// Delete soft-deletes a comment. The existence checks fail NotFound before the
// ownership check so a missing comment never reads as a permission problem.
func (s *Comment) Delete(threadId domain.ThreadId, commentId domain.CommentId, user domain.UserId) error {
	if err := s.comments.VerifyCommentOnThread(threadId, commentId); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentAccess(commentId, user); err != nil {
		return err
	}

	return s.comments.DeleteCommentById(commentId)
}
