package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"go.uber.org/mock/gomock"

	"softsell/internal/llm"
	"softsell/internal/service"
	"softsell/internal/service/mocks"
)

func init() {
	// Set default logger to discard output for cleaner test output
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNewRelayService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLLMClient := mocks.NewMockLLMClient(ctrl)
	svc := service.NewRelayService(mockLLMClient, true)

	if svc == nil {
		t.Fatal("NewRelayService() returned nil")
	}
}

func TestRelayService_Relay(t *testing.T) {
	successBody := json.RawMessage(`{"choices":[{"message":{"content":"Hi!"}}]}`)

	tests := []struct {
		name        string
		req         service.RelayRequest
		apiKeySet   bool
		mockSetup   func(*mocks.MockLLMClient)
		wantErr     bool
		wantKind    service.ErrorKind
		wantMessage string
		wantBody    string
	}{
		{
			name:      "successful relay passes body through",
			req:       service.RelayRequest{Message: "Hello"},
			apiKeySet: true,
			mockSetup: func(m *mocks.MockLLMClient) {
				m.EXPECT().
					Complete(gomock.Any(), "Hello").
					Return(successBody, nil)
			},
			wantErr:  false,
			wantBody: string(successBody),
		},
		{
			name:      "empty message rejected before any upstream call",
			req:       service.RelayRequest{Message: "   "},
			apiKeySet: true,
			mockSetup: func(m *mocks.MockLLMClient) {
				// No calls expected
			},
			wantErr:     true,
			wantKind:    service.KindInvalidInput,
			wantMessage: service.MsgMessageRequired,
		},
		{
			name:      "missing credential rejected before any upstream call",
			req:       service.RelayRequest{Message: "Hello"},
			apiKeySet: false,
			mockSetup: func(m *mocks.MockLLMClient) {
				// No calls expected
			},
			wantErr:     true,
			wantKind:    service.KindNotConfigured,
			wantMessage: service.MsgKeyNotConfigured,
		},
		{
			name:      "transport failure collapses to generic message",
			req:       service.RelayRequest{Message: "Hello"},
			apiKeySet: true,
			mockSetup: func(m *mocks.MockLLMClient) {
				m.EXPECT().
					Complete(gomock.Any(), "Hello").
					Return(nil, errors.New("dial tcp: connection refused"))
			},
			wantErr:     true,
			wantKind:    service.KindUpstreamTransport,
			wantMessage: service.MsgUpstreamFailure,
		},
		{
			name:      "provider-rejected failure surfaces provider message",
			req:       service.RelayRequest{Message: "Hello"},
			apiKeySet: true,
			mockSetup: func(m *mocks.MockLLMClient) {
				m.EXPECT().
					Complete(gomock.Any(), "Hello").
					Return(nil, &llm.UpstreamError{Message: "Rate limit exceeded"})
			},
			wantErr:     true,
			wantKind:    service.KindUpstreamRejected,
			wantMessage: "Rate limit exceeded",
		},
		{
			name:      "provider-rejected failure without message falls back",
			req:       service.RelayRequest{Message: "Hello"},
			apiKeySet: true,
			mockSetup: func(m *mocks.MockLLMClient) {
				m.EXPECT().
					Complete(gomock.Any(), "Hello").
					Return(nil, &llm.UpstreamError{})
			},
			wantErr:     true,
			wantKind:    service.KindUpstreamRejected,
			wantMessage: service.MsgUpstreamDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLLMClient := mocks.NewMockLLMClient(ctrl)
			tt.mockSetup(mockLLMClient)

			svc := service.NewRelayService(mockLLMClient, tt.apiKeySet)
			resp, err := svc.Relay(context.Background(), tt.req)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Relay() expected error, got nil")
				}
				relayErr, ok := service.AsRelayError(err)
				if !ok {
					t.Fatalf("Relay() error is not a *RelayError: %v", err)
				}
				if relayErr.Kind != tt.wantKind {
					t.Errorf("Relay() error kind = %v, want %v", relayErr.Kind, tt.wantKind)
				}
				if relayErr.Message != tt.wantMessage {
					t.Errorf("Relay() error message = %q, want %q", relayErr.Message, tt.wantMessage)
				}
				return
			}
			if err != nil {
				t.Fatalf("Relay() unexpected error: %v", err)
			}
			if string(resp.Body) != tt.wantBody {
				t.Errorf("Relay() body = %s, want %s", resp.Body, tt.wantBody)
			}
		})
	}
}
