package service

import (
	"errors"
	"fmt"
)

// ErrorKind classifies relay failures by origin. Handlers branch on the
// kind to pick an HTTP status; the associated message is the only detail
// that ever crosses the wire.
type ErrorKind int

const (
	// KindInvalidInput means the caller's request was malformed (missing
	// or empty message).
	KindInvalidInput ErrorKind = iota
	// KindNotConfigured means the server-side upstream credential is absent.
	KindNotConfigured
	// KindUpstreamTransport means the call to the provider failed at the
	// network level (DNS, connect, timeout, unreadable body).
	KindUpstreamTransport
	// KindUpstreamRejected means the provider answered but reported an
	// error inside its payload.
	KindUpstreamRejected
)

// Wire-facing error messages. Raw causes are logged server-side only and
// never leak past these strings.
const (
	MsgMessageRequired  = "Message is required"
	MsgKeyNotConfigured = "API key not configured"
	MsgUpstreamFailure  = "Something went wrong while calling the AI service."
	MsgUpstreamDefault  = "AI error"
)

// RelayError is a tagged relay failure: a kind for dispatch plus a
// client-safe message. The underlying cause is kept for logging.
type RelayError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *RelayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("relay error (%s): %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("relay error (%s): %s", e.Kind, e.Message)
}

func (e *RelayError) Unwrap() error {
	return e.Err
}

// String returns a stable name for the kind, used in logs.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNotConfigured:
		return "not_configured"
	case KindUpstreamTransport:
		return "upstream_transport"
	case KindUpstreamRejected:
		return "upstream_rejected"
	default:
		return "unknown"
	}
}

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// AsRelayError extracts a *RelayError from an error chain.
func AsRelayError(err error) (*RelayError, bool) {
	var relayErr *RelayError
	if errors.As(err, &relayErr) {
		return relayErr, true
	}
	return nil, false
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
