// Package pg is the production storage backend.
//
// Expected schema (migrations are managed outside this service):
//
//	users(id TEXT PK, username TEXT UNIQUE, password TEXT, fullname TEXT)
//	threads(id TEXT PK, title TEXT, body TEXT, date TIMESTAMPTZ, owner TEXT REFERENCES users)
//	comments(id TEXT PK, content TEXT, date TIMESTAMPTZ, owner TEXT REFERENCES users,
//	         thread_id TEXT REFERENCES threads, is_delete BOOLEAN DEFAULT FALSE)
//	replies(id TEXT PK, content TEXT, date TIMESTAMPTZ, owner TEXT REFERENCES users,
//	        comment_id TEXT REFERENCES comments, is_delete BOOLEAN DEFAULT FALSE)
//	likes(id TEXT PK, comment_id TEXT REFERENCES comments, owner TEXT REFERENCES users,
//	      UNIQUE (comment_id, owner))
package pg

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/opendiscuss/forum/internal/config"
	"github.com/opendiscuss/forum/internal/logger"
)

type Storage struct {
	db *sql.DB
}

func New(cfg config.Pg) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Host, "dbname", cfg.Dbname)
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return &Storage{db}, nil
}

// NewWithDB wraps an existing connection. Used by tests.
func NewWithDB(db *sql.DB) *Storage {
	return &Storage{db}
}

func Connect(cfg config.Pg) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

func (s *Storage) Ping() error {
	return s.db.Ping()
}

// newId mirrors the prefixed string ids used across the schema
// (thread-..., comment-..., reply-..., like-..., user-...).
func newId(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
