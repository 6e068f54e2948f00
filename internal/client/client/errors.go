package client

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport covers connection and I/O errors and non-2xx responses.
	ErrTransport = errors.New("transport failure")
	// ErrParse covers malformed JSON and missing or mistyped required fields.
	ErrParse = errors.New("parse failure")
)

// StatusError is the cause attached to ErrTransport when the backend
// answered with a non-success status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

func transportError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrTransport, err)
}

func parseError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrParse, err)
}
