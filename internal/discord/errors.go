package discord

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches every "<thing> not found" failure.
	ErrNotFound = errors.New("not found")

	ErrNoGuild            = errors.New("No guild ID provided and no default guild ID configured")
	ErrInvalidWebhookURL  = errors.New("Invalid webhook URL")
	ErrNotReady           = errors.New("discord: client not ready")
	ErrClosed             = errors.New("discord: client closed")
	ErrTokenMissing       = errors.New("discord: token not configured")
	ErrAuthentication     = errors.New("discord: authentication failed")
	ErrDisallowedIntents  = errors.New("discord: invalid or disallowed gateway intents")
	ErrInvalidSession     = errors.New("discord: gateway invalidated the session")
	errReconnectRequested = errors.New("discord: gateway requested reconnect")
)

// NotFoundError reports a referenced resource that does not exist or is not
// visible to the bot. It matches ErrNotFound with errors.Is.
type NotFoundError struct {
	Kind string // "Guild", "Channel", "Text channel", ...
	ID   string
	Hint string
}

func (e *NotFoundError) Error() string {
	msg := e.Kind + " not found: " + e.ID
	if e.Hint != "" {
		msg += ". " + e.Hint
	}
	return msg
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// APIError is a non-2xx response from the Discord REST API. Its message is
// the one Discord returned, e.g. "Unknown Message" or "Missing Permissions".
type APIError struct {
	Status  int
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("Discord API error: HTTP %d", e.Status)
	}
	return e.Message
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == 404
}

// Discord JSON error codes used for classification.
const (
	codeMissingAccess = 50001
)

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}
	var payload struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		apiErr.Code = payload.Code
		apiErr.Message = payload.Message
	}
	return apiErr
}

// isInaccessible reports whether err means the resource is unknown to the bot:
// a 404, or a 403 "Missing Access" (the bot is not a member).
func isInaccessible(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == 404 || (apiErr.Status == 403 && apiErr.Code == codeMissingAccess)
}
