package handler

import (
	"encoding/json"
	"net/http"

	"github.com/opendiscuss/forum/internal/config"
	"github.com/opendiscuss/forum/internal/logger"
	"github.com/opendiscuss/forum/internal/service"
)

type Handler struct {
	auth     service.AuthService
	threads  service.ThreadService
	comments service.CommentService
	replies  service.ReplyService
	likes    service.LikeService
	health   Pinger
	cfg      *config.Config
}

// Pinger reports whether the storage backend can serve requests.
type Pinger interface {
	Ping() error
}

func New(auth service.AuthService, threads service.ThreadService, comments service.CommentService, replies service.ReplyService, likes service.LikeService, health Pinger, cfg *config.Config) *Handler {
	return &Handler{auth, threads, comments, replies, likes, health, cfg}
}

type successEnvelope struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(successEnvelope{Status: "success", Data: data}); err != nil {
		logger.Log.Error("can't encode response", "error", err)
	}
}
