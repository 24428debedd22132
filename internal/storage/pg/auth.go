package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/opendiscuss/forum/internal/domain"
	internal_errors "github.com/opendiscuss/forum/internal/errors"
)

const uniqueViolation = "23505"

func (s *Storage) SaveUser(user domain.User) (domain.AddedUser, error) {
	id := newId("user")

	var added domain.AddedUser
	err := s.db.QueryRow(`
        INSERT INTO users (id, username, password, fullname)
        VALUES ($1, $2, $3, $4)
        RETURNING id, username, fullname
    `, id, user.Username, user.Password, user.Fullname).Scan(&added.Id, &added.Username, &added.Fullname)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.AddedUser{}, internal_errors.NewValidation("Username already taken")
		}
		return domain.AddedUser{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return added, nil
}

func (s *Storage) UserByUsername(username domain.Username) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRow(`
        SELECT id, username, password, fullname FROM users WHERE username = $1
    `, username).Scan(&user.Id, &user.Username, &user.Password, &user.Fullname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NewNotFound("User not found")
		}
		return domain.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}

	return user, nil
}
