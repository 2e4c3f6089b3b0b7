package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func newTestDB(t *testing.T) *LeadRepo {
	t.Helper()

	db, err := New(t.TempDir() + "/test.db")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	return NewLeadRepo(db)
}

func TestLeadRepo_InsertAndGet(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	lead := &LeadRecord{
		ID:          uuid.New().String(),
		Name:        "Alice Johnson",
		Email:       "alice@technova.example",
		Company:     "TechNova Inc.",
		LicenseType: "Adobe Creative Cloud",
		Message:     "We have 40 unused seats.",
	}

	if err := repo.Insert(ctx, lead); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, err := repo.GetByID(ctx, lead.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != lead.Name || got.Email != lead.Email || got.LicenseType != lead.LicenseType || got.Message != lead.Message {
		t.Errorf("GetByID() = %+v, want %+v", got, lead)
	}
	if got.CreatedAt.IsZero() {
		t.Error("GetByID() created_at not populated")
	}
}

func TestLeadRepo_GetByID_NotFound(t *testing.T) {
	repo := newTestDB(t)

	_, err := repo.GetByID(context.Background(), "missing-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestLeadRepo_ListRecent(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		lead := &LeadRecord{
			ID:          uuid.New().String(),
			Name:        fmt.Sprintf("Lead %d", i),
			Email:       fmt.Sprintf("lead%d@example.com", i),
			LicenseType: "Other",
		}
		if err := repo.Insert(ctx, lead); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	leads, err := repo.ListRecent(ctx, 3)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(leads) != 3 {
		t.Errorf("ListRecent() returned %d leads, want 3", len(leads))
	}
}

func TestLeadRepo_InsertDuplicateID(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	lead := &LeadRecord{
		ID:          "fixed-id",
		Name:        "Alice",
		Email:       "alice@example.com",
		LicenseType: "Other",
	}
	if err := repo.Insert(ctx, lead); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if err := repo.Insert(ctx, lead); err == nil {
		t.Error("Insert() expected error for duplicate primary key")
	}
}
