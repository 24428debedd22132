package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opendiscuss/forum/internal/domain"
	internal_errors "github.com/opendiscuss/forum/internal/errors"
)

func TestReplyCreate(t *testing.T) {
	t.Run("comment on another thread stops the insert", func(t *testing.T) {
		comments := &MockCommentStorage{
			verifyCommentOnThreadFunc: func(threadId domain.ThreadId, commentId domain.CommentId) error {
				return internal_errors.NewNotFound("Comment not found on this thread")
			},
		}
		replies := &MockReplyStorage{}
		s := NewReply(comments, replies, NewSanitizer())

		_, err := s.Create("a reply", "user-123", "thread-123", "comment-on-other-thread")

		require.Error(t, err)
		assert.True(t, internal_errors.IsNotFound(err))
		assert.False(t, replies.addReplyCalled)
	})

	t.Run("missing content", func(t *testing.T) {
		comments := &MockCommentStorage{
			verifyCommentOnThreadFunc: func(threadId domain.ThreadId, commentId domain.CommentId) error { return nil },
		}
		s := NewReply(comments, &MockReplyStorage{}, NewSanitizer())

		_, err := s.Create(nil, "user-123", "thread-123", "comment-123")

		require.Error(t, err)
		assert.Equal(t, "ADD_REPLY.NOT_CONTAIN_NEEDED_PROPERTY", err.Error())
	})

	t.Run("valid reply stored sanitized", func(t *testing.T) {
		comments := &MockCommentStorage{
			verifyCommentOnThreadFunc: func(threadId domain.ThreadId, commentId domain.CommentId) error { return nil },
		}
		var stored domain.AddReply
		replies := &MockReplyStorage{
			addReplyFunc: func(reply domain.AddReply) (domain.AddedReply, error) {
				stored = reply
				return domain.AddedReply{Id: "reply-123", Content: reply.Content, Owner: reply.Owner}, nil
			},
		}
		s := NewReply(comments, replies, NewSanitizer())

		added, err := s.Create("  a <i>reply</i>  ", "user-123", "thread-123", "comment-123")

		require.NoError(t, err)
		assert.Equal(t, "a reply", stored.Content)
		assert.Equal(t, domain.CommentId("comment-123"), stored.CommentId)
		assert.Equal(t, domain.ReplyId("reply-123"), added.Id)
	})
}

func TestReplyDelete(t *testing.T) {
	commentOnThread := &MockCommentStorage{
		verifyCommentOnThreadFunc: func(threadId domain.ThreadId, commentId domain.CommentId) error { return nil },
	}

	t.Run("access failure stops the delete", func(t *testing.T) {
		replies := &MockReplyStorage{
			verifyReplyAccessFunc: func(replyId domain.ReplyId, user domain.UserId) error {
				return internal_errors.NewAuthorization("You are not allowed to access this reply")
			},
		}
		s := NewReply(commentOnThread, replies, NewSanitizer())

		err := s.Delete("thread-123", "comment-123", "reply-123", "user-456")

		require.Error(t, err)
		assert.True(t, internal_errors.IsAuthorization(err))
		assert.False(t, replies.deleteReplyCalled)
	})

	t.Run("missing parent stops the delete", func(t *testing.T) {
		comments := &MockCommentStorage{
			verifyCommentOnThreadFunc: func(threadId domain.ThreadId, commentId domain.CommentId) error {
				return internal_errors.NewNotFound("Comment not found on this thread")
			},
		}
		replies := &MockReplyStorage{}
		s := NewReply(comments, replies, NewSanitizer())

		err := s.Delete("thread-123", "comment-missing", "reply-123", "user-123")

		require.Error(t, err)
		assert.True(t, internal_errors.IsNotFound(err))
		assert.False(t, replies.deleteReplyCalled)
	})

	t.Run("owner delete goes through", func(t *testing.T) {
		replies := &MockReplyStorage{
			verifyReplyAccessFunc: func(replyId domain.ReplyId, user domain.UserId) error { return nil },
			deleteReplyByIdFunc:   func(id domain.ReplyId) error { return nil },
		}
		s := NewReply(commentOnThread, replies, NewSanitizer())

		require.NoError(t, s.Delete("thread-123", "comment-123", "reply-123", "user-123"))
		assert.True(t, replies.deleteReplyCalled)
	})
}
