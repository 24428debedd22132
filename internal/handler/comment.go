package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/opendiscuss/forum/internal/domain"
	"github.com/opendiscuss/forum/internal/middleware"
	"github.com/opendiscuss/forum/internal/utils"
)

type createCommentRequest struct {
	Content any `json:"content"`
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	threadId := domain.ThreadId(mux.Vars(r)["threadId"])

	var body createCommentRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.comments.Create(body.Content, user.Id, threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"addedComment": added})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	vars := mux.Vars(r)
	threadId := domain.ThreadId(vars["threadId"])
	commentId := domain.CommentId(vars["commentId"])

	if err := h.comments.Delete(threadId, commentId, user.Id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}
