package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/opendiscuss/forum/internal/errors"
	"github.com/opendiscuss/forum/internal/logger"
)

type failEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// WriteErrorAndStatusCode maps the error kind to its http status code and
// writes the fail envelope. Unknown errors default to 500.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	statusCode := errors.StatusCode(err)
	message := err.Error()
	if statusCode == http.StatusInternalServerError {
		// don't leak driver errors to clients
		logger.Log.Error("internal error", "error", err)
		message = "Internal server error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(failEnvelope{Status: "fail", Message: message})
}

// Decode parses the request body as JSON without field validation. Used where
// the domain value objects own the validation rules.
func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return errors.NewValidation("Body is invalid json")
	}
	return nil
}

// DecodeValidate parses the request body and enforces `validate` struct tags.
func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return errors.NewValidation("Body is invalid json")
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		return errors.NewValidation("Required fields missing")
	}
	return nil
}
