package domain

type (
	UserId    = string
	ThreadId  = string
	CommentId = string
	ReplyId   = string

	Username = string
)
