package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"softsell/internal/contextutil"
	"softsell/internal/service"
)

// ContactHandler handles HTTP requests for contact form submissions.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// ContactRequest represents the HTTP request payload for the contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	License string `json:"license"`
	Message string `json:"message"`
}

// ContactResponse represents the HTTP response for a stored submission.
type ContactResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ServeHTTP handles HTTP requests for contact form submissions.
func (h *ContactHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	svcResp, err := h.contactService.ProcessContact(ctx, service.ContactRequest{
		Name:        req.Name,
		Email:       req.Email,
		Company:     req.Company,
		LicenseType: req.License,
		Message:     req.Message,
	})
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			logger.WarnContext(ctx, "contact validation failed", "field", validationErr.Field)
			writeError(w, http.StatusBadRequest, validationErr.Message)
			return
		}
		logger.ErrorContext(ctx, "failed to process contact submission", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to process submission")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(ContactResponse{
		ID:     svcResp.ID,
		Status: "received",
	})
}
