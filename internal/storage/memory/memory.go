// Package memory is an in-process storage backend with the same gateway
// surface as pg. It backs the "storage: memory" configuration for local runs
// and serves as the test double for service round-trip tests.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/opendiscuss/forum/internal/domain"
	"github.com/opendiscuss/forum/internal/errors"
)

type threadRow struct {
	id    domain.ThreadId
	title string
	body  string
	date  time.Time
	owner domain.UserId
}

type commentRow struct {
	id       domain.CommentId
	content  string
	date     time.Time
	owner    domain.UserId
	threadId domain.ThreadId
	deleted  bool
}

type replyRow struct {
	id        domain.ReplyId
	content   string
	date      time.Time
	owner     domain.UserId
	commentId domain.CommentId
	deleted   bool
}

type likeRow struct {
	id        string
	commentId domain.CommentId
	owner     domain.UserId
}

type Storage struct {
	mu sync.Mutex

	// slices keep insertion order, which equals creation-date order
	users    []domain.User
	threads  []threadRow
	comments []*commentRow
	replies  []*replyRow
	likes    []likeRow
}

func New() *Storage {
	return &Storage{}
}

func (s *Storage) Cleanup() error { return nil }

func (s *Storage) Ping() error { return nil }

func newId(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// --- ThreadStorage ---

func (s *Storage) AddThread(thread domain.AddThread) (domain.AddedThread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := threadRow{
		id:    newId("thread"),
		title: thread.Title,
		body:  thread.Body,
		date:  time.Now().UTC(),
		owner: thread.Owner,
	}
	s.threads = append(s.threads, row)

	return domain.AddedThread{Id: row.id, Title: row.title, Owner: row.owner}, nil
}

func (s *Storage) VerifyThreadById(id domain.ThreadId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findThread(id) == nil {
		return errors.NewNotFound("Thread not found")
	}
	return nil
}

func (s *Storage) GetDetailThreadById(id domain.ThreadId) (domain.DetailThread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	thread := s.findThread(id)
	if thread == nil {
		return domain.DetailThread{}, errors.NewNotFound("Thread not found")
	}

	return domain.DetailThread{
		Id:       thread.id,
		Title:    thread.title,
		Body:     thread.body,
		Date:     thread.date,
		Username: s.username(thread.owner),
	}, nil
}

func (s *Storage) findThread(id domain.ThreadId) *threadRow {
	for i := range s.threads {
		if s.threads[i].id == id {
			return &s.threads[i]
		}
	}
	return nil
}

// --- CommentStorage ---

func (s *Storage) AddComment(comment domain.AddComment) (domain.AddedComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := &commentRow{
		id:       newId("comment"),
		content:  comment.Content,
		date:     time.Now().UTC(),
		owner:    comment.Owner,
		threadId: comment.ThreadId,
	}
	s.comments = append(s.comments, row)

	return domain.AddedComment{Id: row.id, Content: row.content, Owner: row.owner}, nil
}

func (s *Storage) VerifyCommentById(id domain.CommentId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findComment(id) == nil {
		return errors.NewNotFound("Comment not found")
	}
	return nil
}

func (s *Storage) VerifyCommentOnThread(threadId domain.ThreadId, commentId domain.CommentId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment := s.findComment(commentId)
	if comment == nil || comment.threadId != threadId {
		return errors.NewNotFound("Comment not found on this thread")
	}
	return nil
}

func (s *Storage) VerifyCommentAccess(commentId domain.CommentId, user domain.UserId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment := s.findComment(commentId)
	if comment == nil {
		return errors.NewNotFound("Comment not found")
	}
	if comment.owner != user {
		return errors.NewAuthorization("You are not allowed to access this comment")
	}
	return nil
}

func (s *Storage) GetCommentsByThreadId(threadId domain.ThreadId) ([]domain.CommentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var records []domain.CommentRecord
	for _, comment := range s.comments {
		if comment.threadId != threadId {
			continue
		}
		records = append(records, domain.CommentRecord{
			Id:       comment.id,
			Username: s.username(comment.owner),
			Date:     comment.date,
			Content:  comment.content,
			Deleted:  comment.deleted,
		})
	}
	return records, nil
}

func (s *Storage) DeleteCommentById(id domain.CommentId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment := s.findComment(id)
	if comment == nil {
		return errors.NewNotFound("Comment not found")
	}
	comment.deleted = true
	return nil
}

func (s *Storage) findComment(id domain.CommentId) *commentRow {
	for _, comment := range s.comments {
		if comment.id == id {
			return comment
		}
	}
	return nil
}

// --- ReplyStorage ---

func (s *Storage) AddReply(reply domain.AddReply) (domain.AddedReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := &replyRow{
		id:        newId("reply"),
		content:   reply.Content,
		date:      time.Now().UTC(),
		owner:     reply.Owner,
		commentId: reply.CommentId,
	}
	s.replies = append(s.replies, row)

	return domain.AddedReply{Id: row.id, Content: row.content, Owner: row.owner}, nil
}

func (s *Storage) VerifyReplyById(id domain.ReplyId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findReply(id) == nil {
		return errors.NewNotFound("Reply not found")
	}
	return nil
}

func (s *Storage) VerifyReplyAccess(replyId domain.ReplyId, user domain.UserId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reply := s.findReply(replyId)
	if reply == nil {
		return errors.NewNotFound("Reply not found")
	}
	if reply.owner != user {
		return errors.NewAuthorization("You are not allowed to access this reply")
	}
	return nil
}

func (s *Storage) GetRepliesByThreadCommentId(threadId domain.ThreadId, commentIds []domain.CommentId) ([]domain.ReplyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[domain.CommentId]bool, len(commentIds))
	for _, id := range commentIds {
		wanted[id] = true
	}

	var records []domain.ReplyRecord
	for _, reply := range s.replies {
		if !wanted[reply.commentId] {
			continue
		}
		parent := s.findComment(reply.commentId)
		if parent == nil || parent.threadId != threadId {
			continue
		}
		records = append(records, domain.ReplyRecord{
			Id:        reply.id,
			Username:  s.username(reply.owner),
			Date:      reply.date,
			Content:   reply.content,
			Deleted:   reply.deleted,
			CommentId: reply.commentId,
		})
	}
	return records, nil
}

func (s *Storage) DeleteReplyById(id domain.ReplyId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reply := s.findReply(id)
	if reply == nil {
		return errors.NewNotFound("Reply not found")
	}
	reply.deleted = true
	return nil
}

func (s *Storage) findReply(id domain.ReplyId) *replyRow {
	for _, reply := range s.replies {
		if reply.id == id {
			return reply
		}
	}
	return nil
}

// --- LikeStorage ---

func (s *Storage) CheckCommentAlreadyLiked(commentId domain.CommentId, user domain.UserId) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, like := range s.likes {
		if like.commentId == commentId && like.owner == user {
			return true, nil
		}
	}
	return false, nil
}

func (s *Storage) AddLike(commentId domain.CommentId, user domain.UserId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.likes = append(s.likes, likeRow{id: newId("like"), commentId: commentId, owner: user})
	return nil
}

func (s *Storage) RemoveLike(commentId domain.CommentId, user domain.UserId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, like := range s.likes {
		if like.commentId == commentId && like.owner == user {
			s.likes = append(s.likes[:i], s.likes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *Storage) CountLikes(commentIds []domain.CommentId) ([]domain.LikeCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[domain.CommentId]bool, len(commentIds))
	for _, id := range commentIds {
		wanted[id] = true
	}

	counts := make(map[domain.CommentId]int)
	var order []domain.CommentId
	for _, like := range s.likes {
		if !wanted[like.commentId] {
			continue
		}
		if counts[like.commentId] == 0 {
			order = append(order, like.commentId)
		}
		counts[like.commentId]++
	}

	var result []domain.LikeCount
	for _, id := range order {
		result = append(result, domain.LikeCount{CommentId: id, Count: counts[id]})
	}
	return result, nil
}

// --- AuthStorage ---

func (s *Storage) SaveUser(user domain.User) (domain.AddedUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return domain.AddedUser{}, errors.NewValidation("Username already taken")
		}
	}

	user.Id = newId("user")
	s.users = append(s.users, user)

	return domain.AddedUser{Id: user.Id, Username: user.Username, Fullname: user.Fullname}, nil
}

func (s *Storage) UserByUsername(username domain.Username) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return domain.User{}, errors.NewNotFound("User not found")
}

func (s *Storage) username(id domain.UserId) domain.Username {
	for _, user := range s.users {
		if user.Id == id {
			return user.Username
		}
	}
	return ""
}
