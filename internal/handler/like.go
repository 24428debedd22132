package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/opendiscuss/forum/internal/domain"
	"github.com/opendiscuss/forum/internal/middleware"
	"github.com/opendiscuss/forum/internal/utils"
)

func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	vars := mux.Vars(r)
	threadId := domain.ThreadId(vars["threadId"])
	commentId := domain.CommentId(vars["commentId"])

	if err := h.likes.Toggle(threadId, commentId, user.Id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}
