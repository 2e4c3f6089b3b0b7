package storage

import "time"

// LeadRecord represents a contact form submission in the database.
type LeadRecord struct {
	ID          string // UUID
	Name        string
	Email       string
	Company     string
	LicenseType string // One of the license types offered on the contact form
	Message     string
	CreatedAt   time.Time
}
