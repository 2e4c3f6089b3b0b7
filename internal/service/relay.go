package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_llm_client.go -package=mocks softsell/internal/service LLMClient
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_relay_service.go -package=mocks -mock_names=RelayService=MockRelayService softsell/internal/service RelayService

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"softsell/internal/contextutil"
	"softsell/internal/llm"
)

// LLMClient is an interface for the upstream completion provider.
// This interface is defined from the service layer's perspective (consumer-first).
type LLMClient interface {
	// Complete sends a single-turn completion request and returns the
	// provider's response body verbatim.
	Complete(ctx context.Context, message string) (json.RawMessage, error)
}

// RelayRequest represents a relay request in the domain layer.
type RelayRequest struct {
	Message string
}

// RelayResponse carries the upstream provider's body, passed through
// unreshaped. Callers index into it at their own risk; a provider schema
// change is a breaking change for them.
type RelayResponse struct {
	Body json.RawMessage
}

// RelayService forwards chat messages to the upstream provider.
type RelayService interface {
	// Relay validates the request and forwards it upstream. Failures are
	// returned as *RelayError so callers can branch on kind.
	Relay(ctx context.Context, req RelayRequest) (RelayResponse, error)
}

// relayService implements RelayService.
type relayService struct {
	llmClient LLMClient
	apiKeySet bool
	logger    *slog.Logger
}

// NewRelayService creates a new RelayService. Startup configuration
// already guarantees a credential, but the per-request guard stays so a
// directly constructed service without one fails safely instead of
// sending unauthenticated upstream calls.
func NewRelayService(llmClient LLMClient, apiKeySet bool) RelayService {
	return &relayService{
		llmClient: llmClient,
		apiKeySet: apiKeySet,
		logger:    slog.Default(),
	}
}

// Relay validates and forwards a single chat message.
func (s *relayService) Relay(ctx context.Context, req RelayRequest) (RelayResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if strings.TrimSpace(req.Message) == "" {
		logger.WarnContext(ctx, "empty message in relay request")
		return RelayResponse{}, &RelayError{
			Kind:    KindInvalidInput,
			Message: MsgMessageRequired,
		}
	}

	if !s.apiKeySet {
		logger.ErrorContext(ctx, "upstream credential not configured")
		return RelayResponse{}, &RelayError{
			Kind:    KindNotConfigured,
			Message: MsgKeyNotConfigured,
		}
	}

	body, err := s.llmClient.Complete(ctx, req.Message)
	if err != nil {
		var upstreamErr *llm.UpstreamError
		if errors.As(err, &upstreamErr) {
			logger.ErrorContext(ctx, "upstream provider rejected request", "error", err)
			message := upstreamErr.Message
			if message == "" {
				message = MsgUpstreamDefault
			}
			return RelayResponse{}, &RelayError{
				Kind:    KindUpstreamRejected,
				Message: message,
				Err:     err,
			}
		}

		logger.ErrorContext(ctx, "upstream call failed", "error", err)
		return RelayResponse{}, &RelayError{
			Kind:    KindUpstreamTransport,
			Message: MsgUpstreamFailure,
			Err:     err,
		}
	}

	logger.InfoContext(ctx, "relay request processed", "message_length", len(req.Message), "body_length", len(body))
	return RelayResponse{Body: body}, nil
}
