package setup

import (
	"fmt"

	"github.com/opendiscuss/forum/internal/config"
	"github.com/opendiscuss/forum/internal/handler"
	"github.com/opendiscuss/forum/internal/jwt"
	"github.com/opendiscuss/forum/internal/service"
	"github.com/opendiscuss/forum/internal/storage/memory"
	"github.com/opendiscuss/forum/internal/storage/pg"
)

// Storage is the full gateway surface a backend must provide.
type Storage interface {
	service.ThreadStorage
	service.CommentStorage
	service.ReplyStorage
	service.LikeStorage
	service.AuthStorage
	Ping() error
	Cleanup() error
}

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage Storage
	Handler *handler.Handler
	Jwt     jwt.JwtService
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	sanitizer := service.NewSanitizer()

	auth := service.NewAuth(storage, jwtService)
	threads := service.NewThread(storage, storage, storage, storage, sanitizer)
	comments := service.NewComment(storage, storage, sanitizer)
	replies := service.NewReply(storage, storage, sanitizer)
	likes := service.NewLike(storage, storage)

	h := handler.New(auth, threads, comments, replies, likes, storage, cfg)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Jwt:     jwtService,
	}, nil
}

func newStorage(cfg *config.Config) (Storage, error) {
	switch cfg.Public.Storage {
	case "postgres":
		return pg.New(cfg.Public.Pg)
	case "memory":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Public.Storage)
	}
}
