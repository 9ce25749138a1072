package application

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/leadflow/contact-research/internal/domain"
	"github.com/leadflow/contact-research/internal/ports"
)

// DomainFinder resolves a company name (plus optional hint) to a domain.
// Implemented by discovery.Finder; an interface here so tests can fake it.
type DomainFinder interface {
	FindDomain(ctx context.Context, companyName, domainHint string) string
}

// EmailResolver resolves a person's best email at a company domain.
// Implemented by research.Resolver.
type EmailResolver interface {
	FindBestEmail(ctx context.Context, fullName, companyDomain, companyName, linkedinURL string) domain.Resolution
}

// ResearchService orchestrates contact research: domain discovery, email
// resolution, and persistence of the outcome
type ResearchService struct {
	finder   DomainFinder
	resolver EmailResolver
	store    ports.ContactStore // may be nil: resolution-only mode

	// Fingerprints of leads already handled this run; keeps a batch from
	// re-researching the same post twice.
	seen map[string]struct{}
}

// NewResearchService creates a research service with dependency injection.
// store may be nil when no persistence is configured.
func NewResearchService(finder DomainFinder, resolver EmailResolver, store ports.ContactStore) *ResearchService {
	return &ResearchService{
		finder:   finder,
		resolver: resolver,
		store:    store,
		seen:     make(map[string]struct{}),
	}
}

// Fingerprint identifies a lead by its source URL, falling back to the name
// and company when the post URL is missing.
func Fingerprint(lead domain.Lead) string {
	raw := lead.SourceURL
	if raw == "" {
		raw = lead.FullName + ":" + lead.CompanyName
	}
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])[:16]
}

// ResearchLead resolves and stores one contact.
//
// Returns (nil, nil) when the lead is skippable (duplicate, or identity too
// weak to generate candidates) and an error only when the company's domain
// cannot be found at all — the caller should skip that company rather than
// retry.
func (s *ResearchService) ResearchLead(ctx context.Context, lead domain.Lead) (*domain.ResolvedContact, error) {
	fp := Fingerprint(lead)
	if _, dup := s.seen[fp]; dup {
		log.Printf("Duplicate lead skipped: %s (%s)", lead.FullName, lead.CompanyName)
		return nil, nil
	}
	s.seen[fp] = struct{}{}

	companyDomain := s.finder.FindDomain(ctx, lead.CompanyName, lead.DomainHint)
	if companyDomain == "" {
		return nil, fmt.Errorf("no domain found for company %q", lead.CompanyName)
	}

	resolution := s.resolver.FindBestEmail(ctx, lead.FullName, companyDomain, lead.CompanyName, lead.LinkedInURL)
	if resolution.Email == "" {
		log.Printf("No usable identity for lead %q at %s", lead.FullName, companyDomain)
		return nil, nil
	}

	contact := &domain.ResolvedContact{
		ID:            uuid.New(),
		FullName:      lead.FullName,
		RoleTitle:     lead.RoleTitle,
		CompanyName:   lead.CompanyName,
		CompanyDomain: companyDomain,
		Email:         resolution.Email,
		Confidence:    resolution.Confidence,
		Method:        resolution.Method,
		LinkedInURL:   lead.LinkedInURL,
		ResolvedAt:    time.Now(),
	}

	if s.store != nil {
		// Storage failure shouldn't discard a successful resolution; the
		// caller still gets the contact.
		if err := s.store.SaveContact(ctx, contact); err != nil {
			log.Printf("Failed to store contact %s: %v", contact.Email, err)
		}
	}

	return contact, nil
}

// ResearchLeads processes a batch with partial-success semantics: individual
// failures are logged and skipped so one bad lead never halts the run.
func (s *ResearchService) ResearchLeads(ctx context.Context, leads []domain.Lead) []domain.ResolvedContact {
	contacts := make([]domain.ResolvedContact, 0, len(leads))
	for _, lead := range leads {
		contact, err := s.ResearchLead(ctx, lead)
		if err != nil {
			log.Printf("Lead %q (%s) skipped: %v", lead.FullName, lead.CompanyName, err)
			continue
		}
		if contact == nil {
			continue
		}
		log.Printf("Resolved %s -> %s (%s via %s)",
			contact.FullName, contact.Email, contact.Confidence, contact.Method)
		contacts = append(contacts, *contact)
	}
	return contacts
}
