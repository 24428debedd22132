package service

import (
	"github.com/opendiscuss/forum/internal/domain"
)

type ReplyService interface {
	Create(content any, owner domain.UserId, threadId domain.ThreadId, commentId domain.CommentId) (domain.AddedReply, error)
	Delete(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, user domain.UserId) error
}

type Reply struct {
	comments  CommentStorage
	replies   ReplyStorage
	sanitizer *Sanitizer
}

type ReplyStorage interface {
	AddReply(reply domain.AddReply) (domain.AddedReply, error)
	VerifyReplyById(id domain.ReplyId) error
	VerifyReplyAccess(replyId domain.ReplyId, user domain.UserId) error
	GetRepliesByThreadCommentId(threadId domain.ThreadId, commentIds []domain.CommentId) ([]domain.ReplyRecord, error)
	DeleteReplyById(id domain.ReplyId) error
}

func NewReply(comments CommentStorage, replies ReplyStorage, sanitizer *Sanitizer) *Reply {
	return &Reply{comments, replies, sanitizer}
}

func (s *Reply) Create(content any, owner domain.UserId, threadId domain.ThreadId, commentId domain.CommentId) (domain.AddedReply, error) {
	// guards cross-thread replies: the comment must belong to this thread
	if err := s.comments.VerifyCommentOnThread(threadId, commentId); err != nil {
		return domain.AddedReply{}, err
	}

	reply, err := domain.NewAddReply(content, owner, threadId, commentId)
	if err != nil {
		return domain.AddedReply{}, err
	}
	reply.Content = s.sanitizer.Clean(reply.Content)

	return s.replies.AddReply(reply)
}

func (s *Reply) Delete(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, user domain.UserId) error {
	if err := s.comments.VerifyCommentOnThread(threadId, commentId); err != nil {
		return err
	}
	if err := s.replies.VerifyReplyAccess(replyId, user); err != nil {
		return err
	}

	return s.replies.DeleteReplyById(replyId)
}
