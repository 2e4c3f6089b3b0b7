package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"softsell/internal/contextutil"
	"softsell/internal/service"
)

// ChatHandler handles HTTP requests for the chat relay endpoint.
// It is a stateless forwarding boundary: the server-held credential never
// reaches the browser, and upstream failure detail never leaves the logs.
type ChatHandler struct {
	relayService service.RelayService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(relayService service.RelayService) *ChatHandler {
	return &ChatHandler{
		relayService: relayService,
	}
}

// ChatRequest represents the HTTP request payload for chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ServeHTTP handles HTTP requests for the chat relay.
//
// POST only. A valid request carries {"message": "..."}; the success
// response is the upstream provider's completion body passed through
// verbatim with a 200 status. All failures come back as {"error": "..."}.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, service.MsgMessageRequired)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		logger.WarnContext(ctx, "missing message field")
		writeError(w, http.StatusBadRequest, service.MsgMessageRequired)
		return
	}

	resp, err := h.relayService.Relay(ctx, service.RelayRequest{Message: req.Message})
	if err != nil {
		h.handleRelayError(w, r, err)
		return
	}

	// Pass the upstream body through unreshaped.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(resp.Body); err != nil {
		logger.ErrorContext(ctx, "failed to write response", "error", err)
	}
}

// handleRelayError maps tagged relay errors to HTTP statuses. The error's
// message is the only detail that crosses the wire.
func (h *ChatHandler) handleRelayError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "relay request failed", "error", err)

	if relayErr, ok := service.AsRelayError(err); ok {
		switch relayErr.Kind {
		case service.KindInvalidInput:
			writeError(w, http.StatusBadRequest, relayErr.Message)
		case service.KindNotConfigured, service.KindUpstreamTransport, service.KindUpstreamRejected:
			writeError(w, http.StatusInternalServerError, relayErr.Message)
		default:
			writeError(w, http.StatusInternalServerError, service.MsgUpstreamFailure)
		}
		return
	}

	writeError(w, http.StatusInternalServerError, service.MsgUpstreamFailure)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
	})
}
