// Package storage holds the shared pieces of the gateway implementations in
// its subpackages (pg, memory).
package storage

import (
	"github.com/opendiscuss/forum/internal/domain"
	"github.com/opendiscuss/forum/internal/errors"
)

// Unimplemented fails every gateway method with errors.ErrNotImplemented.
// Embed it in partial test doubles so that a use case reaching for a method
// the test did not stub produces a distinct, detectable failure instead of a
// silent zero value.
type Unimplemented struct{}

func (Unimplemented) AddThread(domain.AddThread) (domain.AddedThread, error) {
	return domain.AddedThread{}, errors.ErrNotImplemented
}

func (Unimplemented) VerifyThreadById(domain.ThreadId) error {
	return errors.ErrNotImplemented
}

func (Unimplemented) GetDetailThreadById(domain.ThreadId) (domain.DetailThread, error) {
	return domain.DetailThread{}, errors.ErrNotImplemented
}

func (Unimplemented) AddComment(domain.AddComment) (domain.AddedComment, error) {
	return domain.AddedComment{}, errors.ErrNotImplemented
}

func (Unimplemented) VerifyCommentById(domain.CommentId) error {
	return errors.ErrNotImplemented
}

func (Unimplemented) VerifyCommentOnThread(domain.ThreadId, domain.CommentId) error {
	return errors.ErrNotImplemented
}

func (Unimplemented) VerifyCommentAccess(domain.CommentId, domain.UserId) error {
	return errors.ErrNotImplemented
}

func (Unimplemented) VerifyReplyAccess(domain.ReplyId, domain.UserId) error {
	return errors.ErrNotImplemented
}

func (Unimplemented) GetCommentsByThreadId(domain.ThreadId) ([]domain.CommentRecord, error) {
	return nil, errors.ErrNotImplemented
}

func (Unimplemented) DeleteCommentById(domain.CommentId) error {
	return errors.ErrNotImplemented
}

func (Unimplemented) AddReply(domain.AddReply) (domain.AddedReply, error) {
	return domain.AddedReply{}, errors.ErrNotImplemented
}

func (Unimplemented) VerifyReplyById(domain.ReplyId) error {
	return errors.ErrNotImplemented
}

func (Unimplemented) GetRepliesByThreadCommentId(domain.ThreadId, []domain.CommentId) ([]domain.ReplyRecord, error) {
	return nil, errors.ErrNotImplemented
}

func (Unimplemented) DeleteReplyById(domain.ReplyId) error {
	return errors.ErrNotImplemented
}

func (Unimplemented) CheckCommentAlreadyLiked(domain.CommentId, domain.UserId) (bool, error) {
	return false, errors.ErrNotImplemented
}

func (Unimplemented) AddLike(domain.CommentId, domain.UserId) error {
	return errors.ErrNotImplemented
}

func (Unimplemented) RemoveLike(domain.CommentId, domain.UserId) error {
	return errors.ErrNotImplemented
}

func (Unimplemented) CountLikes([]domain.CommentId) ([]domain.LikeCount, error) {
	return nil, errors.ErrNotImplemented
}

func (Unimplemented) SaveUser(domain.User) (domain.AddedUser, error) {
	return domain.AddedUser{}, errors.ErrNotImplemented
}

func (Unimplemented) UserByUsername(domain.Username) (domain.User, error) {
	return domain.User{}, errors.ErrNotImplemented
}
