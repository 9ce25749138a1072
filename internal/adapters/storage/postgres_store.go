package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/leadflow/contact-research/internal/domain"
)

// PostgresStore implements ports.ContactStore for PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new PostgreSQL storage instance
func NewPostgresStore(connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Set connection pool settings
	// In production, should be set based on workload
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &PostgresStore{db: db}, nil
}

// Close closes the database connection
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// InitSchema creates database tables if they don't exist
// In production, use proper migration tools
func (s *PostgresStore) InitSchema() error {
	schema := `
	-- ============================================================================
	-- RESOLVED CONTACTS TABLE
	-- ============================================================================
	-- One row per (company domain, email): re-researching the same person
	-- refreshes confidence/method instead of duplicating the contact.
	--
	-- confidence and method are the resolution engine's closed enums; CHECK
	-- constraints keep out anything the outreach layer can't handle. The
	-- method column also carries the "+quota_fallback" suffix for degraded
	-- resolutions, hence the LIKE alternative.
	CREATE TABLE IF NOT EXISTS resolved_contacts (
		id UUID PRIMARY KEY,
		full_name VARCHAR(200) NOT NULL,
		role_title VARCHAR(200),
		company_name VARCHAR(200) NOT NULL,
		company_domain VARCHAR(253) NOT NULL,
		email VARCHAR(254) NOT NULL,
		confidence VARCHAR(10) NOT NULL CHECK (confidence IN ('high', 'medium', 'low')),
		method VARCHAR(40) NOT NULL CHECK (
			method IN ('website_scrape', 'smtp_verified', 'web_mention',
			           'context_match', 'pattern_guess', 'github')
			OR method LIKE '%+quota_fallback'
		),
		linkedin_url TEXT,
		resolved_at TIMESTAMP NOT NULL DEFAULT NOW(),
		UNIQUE(company_domain, email)
	);

	-- Backs RecentContacts and the outreach layer's "newest leads first" pull
	CREATE INDEX IF NOT EXISTS idx_contacts_resolved_at ON resolved_contacts(resolved_at DESC);

	-- Backs per-company dedup queries from the lead pipeline
	CREATE INDEX IF NOT EXISTS idx_contacts_company ON resolved_contacts(company_name, resolved_at DESC);
	`

	_, err := s.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SaveContact inserts or refreshes a resolved contact
func (s *PostgresStore) SaveContact(ctx context.Context, contact *domain.ResolvedContact) error {
	query := `
		INSERT INTO resolved_contacts (
			id, full_name, role_title, company_name, company_domain,
			email, confidence, method, linkedin_url, resolved_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (company_domain, email) DO UPDATE
		SET full_name = EXCLUDED.full_name,
		    role_title = EXCLUDED.role_title,
		    confidence = EXCLUDED.confidence,
		    method = EXCLUDED.method,
		    linkedin_url = EXCLUDED.linkedin_url,
		    resolved_at = EXCLUDED.resolved_at
	`
	_, err := s.db.ExecContext(ctx, query,
		contact.ID, contact.FullName, contact.RoleTitle, contact.CompanyName,
		contact.CompanyDomain, contact.Email, contact.Confidence, contact.Method,
		contact.LinkedInURL, contact.ResolvedAt,
	)
	return err
}

// RecentContacts retrieves the most recently resolved contacts
func (s *PostgresStore) RecentContacts(ctx context.Context, limit int) ([]domain.ResolvedContact, error) {
	query := `
		SELECT id, full_name, role_title, company_name, company_domain,
		       email, confidence, method, linkedin_url, resolved_at
		FROM resolved_contacts
		ORDER BY resolved_at DESC
		LIMIT $1
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := make([]domain.ResolvedContact, 0)
	for rows.Next() {
		var contact domain.ResolvedContact
		var roleTitle, linkedinURL sql.NullString

		err := rows.Scan(
			&contact.ID, &contact.FullName, &roleTitle, &contact.CompanyName,
			&contact.CompanyDomain, &contact.Email, &contact.Confidence,
			&contact.Method, &linkedinURL, &contact.ResolvedAt,
		)
		if err != nil {
			return nil, err
		}
		contact.RoleTitle = roleTitle.String
		contact.LinkedInURL = linkedinURL.String

		contacts = append(contacts, contact)
	}

	return contacts, rows.Err()
}
