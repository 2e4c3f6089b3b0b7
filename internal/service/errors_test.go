package service

import (
	"errors"
	"fmt"
	"testing"
)

func TestRelayError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &RelayError{
		Kind:    KindUpstreamTransport,
		Message: MsgUpstreamFailure,
		Err:     cause,
	}

	if !errors.Is(err, cause) {
		t.Error("RelayError should unwrap to its cause")
	}

	relayErr, ok := AsRelayError(fmt.Errorf("wrapped: %w", err))
	if !ok {
		t.Fatal("AsRelayError() did not find RelayError in chain")
	}
	if relayErr.Kind != KindUpstreamTransport {
		t.Errorf("AsRelayError() kind = %v, want KindUpstreamTransport", relayErr.Kind)
	}

	if _, ok := AsRelayError(errors.New("plain")); ok {
		t.Error("AsRelayError() matched a plain error")
	}
}

func TestRelayError_Error(t *testing.T) {
	withCause := &RelayError{Kind: KindUpstreamRejected, Message: "AI error", Err: errors.New("boom")}
	if withCause.Error() == "" {
		t.Error("Error() returned empty string")
	}

	withoutCause := &RelayError{Kind: KindInvalidInput, Message: MsgMessageRequired}
	if withoutCause.Error() == "" {
		t.Error("Error() returned empty string")
	}
}

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindInvalidInput, "invalid_input"},
		{KindNotConfigured, "not_configured"},
		{KindUpstreamTransport, "upstream_transport"},
		{KindUpstreamRejected, "upstream_rejected"},
		{ErrorKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{
		Field:   "email",
		Message: "Please enter a valid email address",
	}

	expected := "validation error on field email: Please enter a valid email address"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	base := errors.New("base error")
	wrapped := WrapError(base, "additional context")
	if wrapped == nil {
		t.Fatal("WrapError() returned nil for non-nil error")
	}
	if !errors.Is(wrapped, base) {
		t.Error("WrapError() result should wrap the base error")
	}
	if wrapped.Error() != "additional context: base error" {
		t.Errorf("WrapError() message = %v", wrapped.Error())
	}
}
