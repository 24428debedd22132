package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/opendiscuss/forum/internal/domain"
	internal_errors "github.com/opendiscuss/forum/internal/errors"
)

func (s *Storage) AddThread(thread domain.AddThread) (domain.AddedThread, error) {
	id := newId("thread")
	date := time.Now().UTC()

	var added domain.AddedThread
	err := s.db.QueryRow(`
        INSERT INTO threads (id, title, body, date, owner)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, title, owner
    `, id, thread.Title, thread.Body, date, thread.Owner).Scan(&added.Id, &added.Title, &added.Owner)
	if err != nil {
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}

	return added, nil
}

func (s *Storage) VerifyThreadById(id domain.ThreadId) error {
	var exists int
	err := s.db.QueryRow("SELECT 1 FROM threads WHERE id = $1", id).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NewNotFound("Thread not found")
		}
		return fmt.Errorf("failed to verify thread: %w", err)
	}
	return nil
}

// GetDetailThreadById fetches the thread row joined with the owner's
// username. Comments are populated later by the service, not here.
func (s *Storage) GetDetailThreadById(id domain.ThreadId) (domain.DetailThread, error) {
	var thread domain.DetailThread
	err := s.db.QueryRow(`
        SELECT threads.id, threads.title, threads.body, threads.date, users.username
        FROM threads
        LEFT JOIN users ON threads.owner = users.id
        WHERE threads.id = $1
    `, id).Scan(&thread.Id, &thread.Title, &thread.Body, &thread.Date, &thread.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DetailThread{}, internal_errors.NewNotFound("Thread not found")
		}
		return domain.DetailThread{}, fmt.Errorf("failed to fetch thread detail: %w", err)
	}

	return thread, nil
}
