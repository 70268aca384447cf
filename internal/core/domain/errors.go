package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSessionExpired    = errors.New("session expired")
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("access forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNoStore           = errors.New("no store attached to session")
	ErrKeyNotFound       = errors.New("key not found")
)

// APIError carries a user-facing message returned by the platform in a
// non-success envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error (status %d)", e.Status)
	}
	return e.Message
}

// APIMessage extracts the server-provided message from err, if any.
func APIMessage(err error) (string, bool) {
	var ae *APIError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message, true
	}
	return "", false
}
