package domain

import (
	"time"

	"github.com/opendiscuss/forum/internal/errors"
)

// ReplyDeletedPlaceholder replaces the content of soft-deleted replies at
// read time. Part of the API contract, same as the comment placeholder.
const ReplyDeletedPlaceholder = "**balasan telah dihapus**"

type AddReply struct {
	Content   string
	Owner     UserId
	ThreadId  ThreadId
	CommentId CommentId
}

func NewAddReply(content, owner, threadId, commentId any) (AddReply, error) {
	if missing(content) || missing(owner) || missing(threadId) || missing(commentId) {
		return AddReply{}, errors.NewValidation("ADD_REPLY.NOT_CONTAIN_NEEDED_PROPERTY")
	}

	c, contentOk := content.(string)
	o, ownerOk := owner.(string)
	t, threadOk := threadId.(string)
	cm, commentOk := commentId.(string)
	if !contentOk || !ownerOk || !threadOk || !commentOk {
		return AddReply{}, errors.NewValidation("ADD_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION")
	}

	return AddReply{Content: c, Owner: o, ThreadId: t, CommentId: cm}, nil
}

type AddedReply struct {
	Id      ReplyId `json:"id"`
	Content string  `json:"content"`
	Owner   UserId  `json:"owner"`
}

// ReplyRecord is a reply row joined with the owner's username. CommentId is
// kept so the service can attach each reply to its parent comment.
type ReplyRecord struct {
	Id        ReplyId
	Username  Username
	Date      time.Time
	Content   string
	Deleted   bool
	CommentId CommentId
}

func (r ReplyRecord) DisplayContent() string {
	if r.Deleted {
		return ReplyDeletedPlaceholder
	}
	return r.Content
}

type DetailReply struct {
	Id       ReplyId   `json:"id"`
	Username Username  `json:"username"`
	Date     time.Time `json:"date"`
	Content  string    `json:"content"`
}

func NewDetailReply(record ReplyRecord) DetailReply {
	return DetailReply{
		Id:       record.Id,
		Username: record.Username,
		Date:     record.Date,
		Content:  record.DisplayContent(),
	}
}
