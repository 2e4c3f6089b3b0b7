package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_lead_store.go -package=mocks softsell/internal/storage LeadStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// LeadStore defines the interface for lead storage operations.
type LeadStore interface {
	// Insert stores a new lead.
	Insert(ctx context.Context, lead *LeadRecord) error
	// GetByID gets a lead by ID. Returns nil and ErrNotFound if not found.
	GetByID(ctx context.Context, id string) (*LeadRecord, error)
	// ListRecent returns the most recent leads, newest first.
	ListRecent(ctx context.Context, limit int) ([]*LeadRecord, error)
}

// LeadRepo provides methods for lead operations.
// It implements the LeadStore interface.
type LeadRepo struct {
	db *sql.DB
}

// NewLeadRepo creates a new LeadRepo.
func NewLeadRepo(db *sql.DB) *LeadRepo {
	return &LeadRepo{db: db}
}

// Insert stores a new lead.
func (r *LeadRepo) Insert(ctx context.Context, lead *LeadRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO leads (id, name, email, company, license_type, message)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		lead.ID, lead.Name, lead.Email, lead.Company, lead.LicenseType, lead.Message,
	)
	if err != nil {
		return fmt.Errorf("failed to insert lead: %w", err)
	}
	return nil
}

// GetByID gets a lead by ID. Returns nil and ErrNotFound if not found.
func (r *LeadRepo) GetByID(ctx context.Context, id string) (*LeadRecord, error) {
	var lead LeadRecord
	var createdAtStr string

	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, email, company, license_type, message, created_at FROM leads WHERE id = ?",
		id,
	).Scan(&lead.ID, &lead.Name, &lead.Email, &lead.Company, &lead.LicenseType, &lead.Message, &createdAtStr)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query lead: %w", err)
	}

	lead.CreatedAt, err = parseTimestamp(createdAtStr)
	if err != nil {
		return nil, err
	}

	return &lead, nil
}

// ListRecent returns the most recent leads, newest first.
func (r *LeadRepo) ListRecent(ctx context.Context, limit int) ([]*LeadRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, email, company, license_type, message, created_at FROM leads ORDER BY created_at DESC, id LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var leads []*LeadRecord
	for rows.Next() {
		var lead LeadRecord
		var createdAtStr string
		if err := rows.Scan(&lead.ID, &lead.Name, &lead.Email, &lead.Company, &lead.LicenseType, &lead.Message, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		lead.CreatedAt, err = parseTimestamp(createdAtStr)
		if err != nil {
			return nil, err
		}
		leads = append(leads, &lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leads: %w", err)
	}

	return leads, nil
}

// parseTimestamp parses a SQLite DATETIME column value.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err == nil {
		return t, nil
	}
	// SQLite might use a different format depending on how the value was written
	t, err = time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}
	return t, nil
}
