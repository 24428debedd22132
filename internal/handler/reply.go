package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/opendiscuss/forum/internal/domain"
	"github.com/opendiscuss/forum/internal/middleware"
	"github.com/opendiscuss/forum/internal/utils"
)

type createReplyRequest struct {
	Content any `json:"content"`
}

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	vars := mux.Vars(r)
	threadId := domain.ThreadId(vars["threadId"])
	commentId := domain.CommentId(vars["commentId"])

	var body createReplyRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.replies.Create(body.Content, user.Id, threadId, commentId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"addedReply": added})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	vars := mux.Vars(r)
	threadId := domain.ThreadId(vars["threadId"])
	commentId := domain.CommentId(vars["commentId"])
	replyId := domain.ReplyId(vars["replyId"])

	if err := h.replies.Delete(threadId, commentId, replyId, user.Id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}
