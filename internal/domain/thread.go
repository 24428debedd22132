package domain

import (
	"time"

	"github.com/opendiscuss/forum/internal/errors"
)

// to iterate thru layers: handler -> service -> storage
type AddThread struct {
	Title string
	Body  string
	Owner UserId
}

// NewAddThread validates the raw payload fields. The fields come in untyped
// so a wrong JSON type can be reported distinctly from a missing one.
func NewAddThread(title, body, owner any) (AddThread, error) {
	if missing(title) || missing(body) || missing(owner) {
		return AddThread{}, errors.NewValidation("ADD_THREAD.NOT_CONTAIN_NEEDED_PROPERTY")
	}

	t, titleOk := title.(string)
	b, bodyOk := body.(string)
	o, ownerOk := owner.(string)
	if !titleOk || !bodyOk || !ownerOk {
		return AddThread{}, errors.NewValidation("ADD_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION")
	}

	return AddThread{Title: t, Body: b, Owner: o}, nil
}

// AddedThread is the minimal echo returned after creation.
type AddedThread struct {
	Id    ThreadId `json:"id"`
	Title string   `json:"title"`
	Owner UserId   `json:"owner"`
}

// DetailThread is the aggregated read model: thread row joined with the
// owner's username, comments populated by the service layer.
type DetailThread struct {
	Id       ThreadId        `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     time.Time       `json:"date"`
	Username Username        `json:"username"`
	Comments []DetailComment `json:"comments"`
}
