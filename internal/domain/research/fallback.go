package research

import (
	"context"
	"log"

	"github.com/leadflow/contact-research/internal/domain"
	"github.com/leadflow/contact-research/internal/ports"
)

// Fallback is the single-pass resolver used when the deep quota is exhausted,
// or wherever a cheap answer is good enough.
//
// Unlike the deep resolver, it guarantees a non-empty address for non-empty
// identity inputs: downstream outreach needs *some* address to attempt, so the
// last resort is always the best-guess pattern at low confidence.
type Fallback struct {
	patterns []string
	source   ports.WebsiteEmails
	verifier *SMTPVerifier
	profiles ports.DevProfileSource
}

// NewFallback creates the lightweight resolver. source, verifier, and
// profiles may each be nil; a missing strategy is simply skipped.
func NewFallback(patterns []string, source ports.WebsiteEmails, verifier *SMTPVerifier, profiles ports.DevProfileSource) *Fallback {
	return &Fallback{patterns: patterns, source: source, verifier: verifier, profiles: profiles}
}

// FindEmail tries website scraping, SMTP pattern verification, and developer
// profiles in order, then falls back to the first generated pattern.
func (f *Fallback) FindEmail(ctx context.Context, firstName, lastName, companyDomain string) domain.Resolution {
	first := normalizePart(firstName)
	last := normalizePart(lastName)

	// Strategy 1: an address the company's own website publishes.
	if f.source != nil {
		if emails, err := f.source.PublicEmails(ctx, companyDomain); err == nil {
			if match := matchKnownEmail(first, last, emails); match != "" {
				log.Printf("[email-fallback] website scrape hit: %s", match)
				return domain.Resolution{
					Email:      match,
					Confidence: domain.ConfidenceHigh,
					Candidates: []string{match},
					Method:     domain.MethodWebsiteScrape,
				}
			}
		}
	}

	candidates := BuildCandidates(first, last, companyDomain, f.patterns)

	// Strategy 2: SMTP verification across the pattern candidates.
	if f.verifier.Enabled() && len(candidates) > 0 {
		result := f.verifier.Verify(ctx, candidates, companyDomain)
		if result.Ran && result.Accepted != "" {
			if result.CatchAll {
				// Acceptance on a catch-all proves nothing; keep the first
				// pattern but don't call it verified.
				log.Printf("[email-fallback] catch-all domain, accepting first pattern: %s", result.Accepted)
				return domain.Resolution{
					Email:      result.Accepted,
					Confidence: domain.ConfidenceMedium,
					Candidates: candidates,
					Method:     domain.MethodPatternGuess,
				}
			}
			log.Printf("[email-fallback] SMTP-verified: %s", result.Accepted)
			return domain.Resolution{
				Email:      result.Accepted,
				Confidence: domain.ConfidenceHigh,
				Candidates: candidates,
				Method:     domain.MethodSMTPVerified,
			}
		}
	}

	// Strategy 3: public developer-profile email at the company domain.
	if f.profiles != nil && first != "" {
		fullName := first
		if last != "" && last != first {
			fullName += " " + last
		}
		if email, err := f.profiles.EmailForName(ctx, fullName, DomainRoot(companyDomain)); err == nil && email != "" {
			log.Printf("[email-fallback] developer profile hit: %s", email)
			return domain.Resolution{
				Email:      email,
				Confidence: domain.ConfidenceMedium,
				Candidates: append(candidates, email),
				Method:     domain.MethodGitHub,
			}
		}
	}

	// Last resort: never return empty when the identity is usable.
	if len(candidates) > 0 {
		return domain.Resolution{
			Email:      candidates[0],
			Confidence: domain.ConfidenceLow,
			Candidates: candidates,
			Method:     domain.MethodPatternGuess,
		}
	}
	return domain.Resolution{Confidence: domain.ConfidenceLow, Candidates: []string{}}
}
