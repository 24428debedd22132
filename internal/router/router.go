package router

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/opendiscuss/forum/internal/config"
	"github.com/opendiscuss/forum/internal/middleware"
	"github.com/opendiscuss/forum/internal/middleware/metrics"
	"github.com/opendiscuss/forum/internal/setup"
)

// New creates and configures a new mux router with all the routes.
func New(deps *setup.Dependencies, cfg *config.Config) *mux.Router {
	r := mux.NewRouter()

	r.Use(metrics.Middleware)

	// Enable gzip compression for all responses
	r.Use(handlers.CompressHandler)

	r.Use(handlers.CORS(
		handlers.AllowedOrigins(cfg.Public.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	))

	// Add a wildcard OPTIONS handler to avoid 404s for preflight requests
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := deps.Handler

	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/ready", h.Ready).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	r.HandleFunc("/auth/register", h.Register).Methods("POST")
	r.HandleFunc("/auth/login", h.Login).Methods("POST")
	r.HandleFunc("/auth/logout", h.Logout).Methods("POST")

	// thread detail is public, everything that writes needs a user
	r.HandleFunc("/threads/{threadId}", h.GetThread).Methods("GET")

	authed := r.NewRoute().Subrouter()
	authed.Use(middleware.Auth(deps.Jwt))

	authed.HandleFunc("/threads", h.CreateThread).Methods("POST")
	authed.HandleFunc("/threads/{threadId}/comments", h.CreateComment).Methods("POST")
	authed.HandleFunc("/threads/{threadId}/comments/{commentId}", h.DeleteComment).Methods("DELETE")
	authed.HandleFunc("/threads/{threadId}/comments/{commentId}/likes", h.ToggleLike).Methods("PUT")
	authed.HandleFunc("/threads/{threadId}/comments/{commentId}/replies", h.CreateReply).Methods("POST")
	authed.HandleFunc("/threads/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply).Methods("DELETE")

	return r
}
