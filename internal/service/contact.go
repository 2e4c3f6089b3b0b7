package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_contact_service.go -package=mocks -mock_names=ContactService=MockContactService softsell/internal/service ContactService

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"softsell/internal/contextutil"
	"softsell/internal/storage"
)

// emailPattern is deliberately loose: one @ with something on both sides
// and a dot in the domain. Real validation happens when we reply.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ContactRequest represents a contact form submission in the domain layer.
type ContactRequest struct {
	Name        string
	Email       string
	Company     string
	LicenseType string
	Message     string
}

// ContactResponse represents the result of a stored submission.
type ContactResponse struct {
	ID string
}

// ContactService handles contact form submissions.
type ContactService interface {
	// ProcessContact validates a submission and stores it as a lead.
	ProcessContact(ctx context.Context, req ContactRequest) (ContactResponse, error)
}

// contactService implements ContactService.
type contactService struct {
	leads  storage.LeadStore
	logger *slog.Logger
}

// NewContactService creates a new ContactService.
func NewContactService(leads storage.LeadStore) ContactService {
	return &contactService{
		leads:  leads,
		logger: slog.Default(),
	}
}

// ProcessContact validates and persists a contact form submission.
func (s *contactService) ProcessContact(ctx context.Context, req ContactRequest) (ContactResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if strings.TrimSpace(req.Name) == "" {
		return ContactResponse{}, &ValidationError{Field: "name", Message: "Name is required"}
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return ContactResponse{}, &ValidationError{Field: "email", Message: "Email is required"}
	}
	if !emailPattern.MatchString(email) {
		return ContactResponse{}, &ValidationError{Field: "email", Message: "Please enter a valid email address"}
	}
	if strings.TrimSpace(req.LicenseType) == "" {
		return ContactResponse{}, &ValidationError{Field: "license", Message: "Please select a license type"}
	}

	lead := &storage.LeadRecord{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(req.Name),
		Email:       email,
		Company:     strings.TrimSpace(req.Company),
		LicenseType: req.LicenseType,
		Message:     strings.TrimSpace(req.Message),
	}

	if err := s.leads.Insert(ctx, lead); err != nil {
		logger.ErrorContext(ctx, "failed to store lead", "error", err)
		return ContactResponse{}, WrapError(err, "failed to store lead")
	}

	logger.InfoContext(ctx, "lead stored", "lead_id", lead.ID, "license_type", lead.LicenseType)
	return ContactResponse{ID: lead.ID}, nil
}
