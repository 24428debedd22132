package service

import (
	"github.com/opendiscuss/forum/internal/domain"
	"github.com/opendiscuss/forum/internal/storage"
)

// Hand-rolled mocks with func fields. Unstubbed methods fall through to
// storage.Unimplemented so a use case touching an unexpected gateway method
// fails loudly with the not-implemented marker.

type MockThreadStorage struct {
	storage.Unimplemented
	addThreadFunc           func(domain.AddThread) (domain.AddedThread, error)
	verifyThreadByIdFunc    func(domain.ThreadId) error
	getDetailThreadByIdFunc func(domain.ThreadId) (domain.DetailThread, error)
}

func (m *MockThreadStorage) AddThread(thread domain.AddThread) (domain.AddedThread, error) {
	if m.addThreadFunc != nil {
		return m.addThreadFunc(thread)
	}
	return m.Unimplemented.AddThread(thread)
}

func (m *MockThreadStorage) VerifyThreadById(id domain.ThreadId) error {
	if m.verifyThreadByIdFunc != nil {
		return m.verifyThreadByIdFunc(id)
	}
	return m.Unimplemented.VerifyThreadById(id)
}

func (m *MockThreadStorage) GetDetailThreadById(id domain.ThreadId) (domain.DetailThread, error) {
	if m.getDetailThreadByIdFunc != nil {
		return m.getDetailThreadByIdFunc(id)
	}
	return m.Unimplemented.GetDetailThreadById(id)
}

type MockCommentStorage struct {
	storage.Unimplemented
	addCommentFunc            func(domain.AddComment) (domain.AddedComment, error)
	verifyCommentOnThreadFunc func(domain.ThreadId, domain.CommentId) error
	verifyCommentAccessFunc   func(domain.CommentId, domain.UserId) error
	getCommentsByThreadIdFunc func(domain.ThreadId) ([]domain.CommentRecord, error)
	deleteCommentByIdFunc     func(domain.CommentId) error

	deleteCommentCalled bool
}

func (m *MockCommentStorage) AddComment(comment domain.AddComment) (domain.AddedComment, error) {
	if m.addCommentFunc != nil {
		return m.addCommentFunc(comment)
	}
	return m.Unimplemented.AddComment(comment)
}

func (m *MockCommentStorage) VerifyCommentOnThread(threadId domain.ThreadId, commentId domain.CommentId) error {
	if m.verifyCommentOnThreadFunc != nil {
		return m.verifyCommentOnThreadFunc(threadId, commentId)
	}
	return m.Unimplemented.VerifyCommentOnThread(threadId, commentId)
}

func (m *MockCommentStorage) VerifyCommentAccess(commentId domain.CommentId, user domain.UserId) error {
	if m.verifyCommentAccessFunc != nil {
		return m.verifyCommentAccessFunc(commentId, user)
	}
	return m.Unimplemented.VerifyCommentAccess(commentId, user)
}

func (m *MockCommentStorage) GetCommentsByThreadId(threadId domain.ThreadId) ([]domain.CommentRecord, error) {
	if m.getCommentsByThreadIdFunc != nil {
		return m.getCommentsByThreadIdFunc(threadId)
	}
	return m.Unimplemented.GetCommentsByThreadId(threadId)
}

func (m *MockCommentStorage) DeleteCommentById(id domain.CommentId) error {
	m.deleteCommentCalled = true
	if m.deleteCommentByIdFunc != nil {
		return m.deleteCommentByIdFunc(id)
	}
	return m.Unimplemented.DeleteCommentById(id)
}

type MockReplyStorage struct {
	storage.Unimplemented
	addReplyFunc                    func(domain.AddReply) (domain.AddedReply, error)
	verifyReplyAccessFunc           func(domain.ReplyId, domain.UserId) error
	getRepliesByThreadCommentIdFunc func(domain.ThreadId, []domain.CommentId) ([]domain.ReplyRecord, error)
	deleteReplyByIdFunc             func(domain.ReplyId) error

	addReplyCalled   bool
	deleteReplyCalled bool
}

func (m *MockReplyStorage) AddReply(reply domain.AddReply) (domain.AddedReply, error) {
	m.addReplyCalled = true
	if m.addReplyFunc != nil {
		return m.addReplyFunc(reply)
	}
	return m.Unimplemented.AddReply(reply)
}

func (m *MockReplyStorage) VerifyReplyAccess(replyId domain.ReplyId, user domain.UserId) error {
	if m.verifyReplyAccessFunc != nil {
		return m.verifyReplyAccessFunc(replyId, user)
	}
	return m.Unimplemented.VerifyReplyAccess(replyId, user)
}

func (m *MockReplyStorage) GetRepliesByThreadCommentId(threadId domain.ThreadId, commentIds []domain.CommentId) ([]domain.ReplyRecord, error) {
	if m.getRepliesByThreadCommentIdFunc != nil {
		return m.getRepliesByThreadCommentIdFunc(threadId, commentIds)
	}
	return m.Unimplemented.GetRepliesByThreadCommentId(threadId, commentIds)
}

func (m *MockReplyStorage) DeleteReplyById(id domain.ReplyId) error {
	m.deleteReplyCalled = true
	if m.deleteReplyByIdFunc != nil {
		return m.deleteReplyByIdFunc(id)
	}
	return m.Unimplemented.DeleteReplyById(id)
}

type MockLikeStorage struct {
	storage.Unimplemented
	checkLikedFunc func(domain.CommentId, domain.UserId) (bool, error)
	countLikesFunc func([]domain.CommentId) ([]domain.LikeCount, error)

	addLikeCalled    bool
	removeLikeCalled bool
}

func (m *MockLikeStorage) CheckCommentAlreadyLiked(commentId domain.CommentId, user domain.UserId) (bool, error) {
	if m.checkLikedFunc != nil {
		return m.checkLikedFunc(commentId, user)
	}
	return m.Unimplemented.CheckCommentAlreadyLiked(commentId, user)
}

func (m *MockLikeStorage) AddLike(commentId domain.CommentId, user domain.UserId) error {
	m.addLikeCalled = true
	return nil
}

func (m *MockLikeStorage) RemoveLike(commentId domain.CommentId, user domain.UserId) error {
	m.removeLikeCalled = true
	return nil
}

func (m *MockLikeStorage) CountLikes(commentIds []domain.CommentId) ([]domain.LikeCount, error) {
	if m.countLikesFunc != nil {
		return m.countLikesFunc(commentIds)
	}
	return m.Unimplemented.CountLikes(commentIds)
}

type MockAuthStorage struct {
	storage.Unimplemented
	saveUserFunc       func(domain.User) (domain.AddedUser, error)
	userByUsernameFunc func(domain.Username) (domain.User, error)
}

func (m *MockAuthStorage) SaveUser(user domain.User) (domain.AddedUser, error) {
	if m.saveUserFunc != nil {
		return m.saveUserFunc(user)
	}
	return m.Unimplemented.SaveUser(user)
}

func (m *MockAuthStorage) UserByUsername(username domain.Username) (domain.User, error) {
	if m.userByUsernameFunc != nil {
		return m.userByUsernameFunc(username)
	}
	return m.Unimplemented.UserByUsername(username)
}
