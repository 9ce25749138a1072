package ports

import (
	"context"

	"github.com/leadflow/contact-research/internal/domain"
)

// ContactStore defines the contract for persisting resolved contacts so the
// outreach layer can pick them up later.
type ContactStore interface {
	// SaveContact inserts or updates a resolved contact (upsert on
	// company domain + email, so re-research refreshes confidence).
	SaveContact(ctx context.Context, contact *domain.ResolvedContact) error

	// RecentContacts returns the most recently resolved contacts.
	RecentContacts(ctx context.Context, limit int) ([]domain.ResolvedContact, error)

	// Lifecycle
	Close() error
}
