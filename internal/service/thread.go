package service

import (
	"github.com/opendiscuss/forum/internal/domain"
)

type ThreadService interface {
	Create(title, body any, owner domain.UserId) (domain.AddedThread, error)
	GetDetail(id domain.ThreadId) (domain.DetailThread, error)
}

type Thread struct {
	threads   ThreadStorage
	comments  CommentStorage
	replies   ReplyStorage
	likes     LikeStorage
	sanitizer *Sanitizer
}

type ThreadStorage interface {
	AddThread(thread domain.AddThread) (domain.AddedThread, error)
	VerifyThreadById(id domain.ThreadId) error
	GetDetailThreadById(id domain.ThreadId) (domain.DetailThread, error)
}

func NewThread(threads ThreadStorage, comments CommentStorage, replies ReplyStorage, likes LikeStorage, sanitizer *Sanitizer) *Thread {
	return &Thread{threads, comments, replies, likes, sanitizer}
}

func (s *Thread) Create(title, body any, owner domain.UserId) (domain.AddedThread, error) {
	thread, err := domain.NewAddThread(title, body, owner)
	if err != nil {
		return domain.AddedThread{}, err
	}
	thread.Title = s.sanitizer.Clean(thread.Title)
	thread.Body = s.sanitizer.Clean(thread.Body)

	return s.threads.AddThread(thread)
}

// GetDetail assembles the full thread view: thread row, comments in creation
// order, each comment's replies and like count. Soft-deleted comments and
// replies appear with their placeholder content.
func (s *Thread) GetDetail(id domain.ThreadId) (domain.DetailThread, error) {
	if err := s.threads.VerifyThreadById(id); err != nil {
		return domain.DetailThread{}, err
	}

	thread, err := s.threads.GetDetailThreadById(id)
	if err != nil {
		return domain.DetailThread{}, err
	}

	comments, err := s.comments.GetCommentsByThreadId(id)
	if err != nil {
		return domain.DetailThread{}, err
	}

	commentIds := make([]domain.CommentId, len(comments))
	for i, comment := range comments {
		commentIds[i] = comment.Id
	}

	replies, err := s.replies.GetRepliesByThreadCommentId(id, commentIds)
	if err != nil {
		return domain.DetailThread{}, err
	}

	likeCounts, err := s.likes.CountLikes(commentIds)
	if err != nil {
		return domain.DetailThread{}, err
	}

	// group replies per parent comment, keeping fetch order
	repliesByComment := make(map[domain.CommentId][]domain.DetailReply)
	for _, reply := range replies {
		repliesByComment[reply.CommentId] = append(repliesByComment[reply.CommentId], domain.NewDetailReply(reply))
	}

	// comments with no likes have no aggregate row; absence means zero
	countByComment := make(map[domain.CommentId]int, len(likeCounts))
	for _, likeCount := range likeCounts {
		countByComment[likeCount.CommentId] = likeCount.Count
	}

	thread.Comments = make([]domain.DetailComment, 0, len(comments))
	for _, comment := range comments {
		thread.Comments = append(thread.Comments,
			domain.NewDetailComment(comment, repliesByComment[comment.Id], countByComment[comment.Id]))
	}

	return thread, nil
}
