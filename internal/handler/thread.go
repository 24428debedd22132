package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/opendiscuss/forum/internal/domain"
	"github.com/opendiscuss/forum/internal/middleware"
	"github.com/opendiscuss/forum/internal/utils"
)

// Payload fields stay untyped so the value objects can tell a missing field
// from a wrong-typed one.
type createThreadRequest struct {
	Title any `json:"title"`
	Body  any `json:"body"`
}

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body createThreadRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.threads.Create(body.Title, body.Body, user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"addedThread": added})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := domain.ThreadId(mux.Vars(r)["threadId"])

	thread, err := h.threads.GetDetail(threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"thread": thread})
}
