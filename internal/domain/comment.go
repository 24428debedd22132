package domain

import (
	"time"

	"github.com/opendiscuss/forum/internal/errors"
)

// CommentDeletedPlaceholder replaces the content of soft-deleted comments at
// read time. The string is part of the API contract and must not be changed.
const CommentDeletedPlaceholder = "**komentar telah dihapus**"

type AddComment struct {
	Content  string
	Owner    UserId
	ThreadId ThreadId
}

func NewAddComment(content, owner, threadId any) (AddComment, error) {
	if missing(content) || missing(owner) || missing(threadId) {
		return AddComment{}, errors.NewValidation("ADD_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	}

	c, contentOk := content.(string)
	o, ownerOk := owner.(string)
	t, threadOk := threadId.(string)
	if !contentOk || !ownerOk || !threadOk {
		return AddComment{}, errors.NewValidation("ADD_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION")
	}

	return AddComment{Content: c, Owner: o, ThreadId: t}, nil
}

type AddedComment struct {
	Id      CommentId `json:"id"`
	Content string    `json:"content"`
	Owner   UserId    `json:"owner"`
}

// CommentRecord is a comment row joined with the owner's username, exactly as
// stored. Content stays untouched at rest; masking happens on projection.
type CommentRecord struct {
	Id       CommentId
	Username Username
	Date     time.Time
	Content  string
	Deleted  bool
}

// DisplayContent is the read-time projection of the soft-delete state.
func (c CommentRecord) DisplayContent() string {
	if c.Deleted {
		return CommentDeletedPlaceholder
	}
	return c.Content
}

type DetailComment struct {
	Id        CommentId     `json:"id"`
	Username  Username      `json:"username"`
	Date      time.Time     `json:"date"`
	Content   string        `json:"content"`
	Replies   []DetailReply `json:"replies"`
	LikeCount int           `json:"likeCount"`
}

// NewDetailComment builds the output record for one comment, applying the
// deletion mask and attaching its replies and like count.
func NewDetailComment(record CommentRecord, replies []DetailReply, likeCount int) DetailComment {
	if replies == nil {
		replies = []DetailReply{}
	}
	return DetailComment{
		Id:        record.Id,
		Username:  record.Username,
		Date:      record.Date,
		Content:   record.DisplayContent(),
		Replies:   replies,
		LikeCount: likeCount,
	}
}
