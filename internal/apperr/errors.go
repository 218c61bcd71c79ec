// Package apperr defines the failure kinds a push can end with.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Push failure kinds. Every kind except ErrIndexUpdate ends a push.
var (
	ErrPreconditionMissing = errors.New("github settings are not configured")
	ErrExtractionFailed    = errors.New("could not extract the solution")
	ErrRemoteAuth          = errors.New("github token is invalid or expired")
	ErrRemoteNotFound      = errors.New("repository not found")
	ErrRemotePermission    = errors.New("permission denied")
	ErrRemoteValidation    = errors.New("invalid request")
	ErrRemote              = errors.New("github api error")
	ErrIndexUpdate         = errors.New("readme update failed")
)

// Precondition reports missing or malformed settings.
func Precondition(reason string) error {
	return fmt.Errorf("%w: %s", ErrPreconditionMissing, reason)
}

// Extraction reports that the problem page or source could not be read.
func Extraction(reason string) error {
	return fmt.Errorf("%w: %s", ErrExtractionFailed, reason)
}

// RemoteError is a non-success answer from the hosting API.
type RemoteError struct {
	Kind       error
	Status     int
	Message    string
	Repository string
}

// FromStatus classifies a failed write by its HTTP status.
func FromStatus(status int, message, repository string) *RemoteError {
	kind := ErrRemote
	switch status {
	case http.StatusUnauthorized:
		kind = ErrRemoteAuth
	case http.StatusNotFound:
		kind = ErrRemoteNotFound
	case http.StatusForbidden:
		kind = ErrRemotePermission
	case http.StatusUnprocessableEntity:
		kind = ErrRemoteValidation
	}
	return &RemoteError{Kind: kind, Status: status, Message: message, Repository: repository}
}

func (e *RemoteError) Error() string {
	switch e.Kind {
	case ErrRemoteAuth:
		return "github token is invalid or expired, update it with `leetlink config set`"
	case ErrRemoteNotFound:
		return fmt.Sprintf("repository %q not found or not accessible (check that it exists, the name is spelled correctly and the token can see it)", e.Repository)
	case ErrRemotePermission:
		return `permission denied, the token needs the "repo" scope`
	case ErrRemoteValidation:
		return fmt.Sprintf("invalid request: %s", e.Message)
	default:
		return fmt.Sprintf("github api error (%d): %s", e.Status, e.Message)
	}
}

func (e *RemoteError) Unwrap() error {
	return e.Kind
}

// UserMessage renders err for people rather than logs.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.Error()
	}

	if errors.Is(err, ErrPreconditionMissing) {
		return "please configure GitHub settings first: " + err.Error()
	}
	return err.Error()
}
