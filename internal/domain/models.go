package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Confidence is the discrete trust level attached to a resolved email address
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Method identifies which evidence type produced a resolution.
//
// Kept as a closed set rather than free-form strings so downstream consumers
// (storage, outreach filters) can switch on it safely.
type Method string

const (
	MethodWebsiteScrape Method = "website_scrape"
	MethodSMTPVerified  Method = "smtp_verified"
	MethodWebMention    Method = "web_mention"
	MethodContextMatch  Method = "context_match"
	MethodPatternGuess  Method = "pattern_guess"
	MethodGitHub        Method = "github"
)

// quotaFallbackSuffix marks resolutions produced by the lightweight fallback
// after the daily deep-research quota ran out.
const quotaFallbackSuffix = "+quota_fallback"

// WithQuotaFallback tags the method as a degraded (quota-exhausted) result.
func (m Method) WithQuotaFallback() Method {
	if m == "" {
		m = MethodPatternGuess
	}
	return m + quotaFallbackSuffix
}

// IsQuotaFallback reports whether this resolution came from the fallback path.
func (m Method) IsQuotaFallback() bool {
	return strings.HasSuffix(string(m), quotaFallbackSuffix)
}

// Lead is the input handed over by the scraping/classification layer: a person
// spotted in a hiring or funding announcement, plus whatever company context
// the source post carried.
type Lead struct {
	FullName    string `json:"full_name"`
	RoleTitle   string `json:"role_title,omitempty"`
	CompanyName string `json:"company_name"`
	// DomainHint is a domain extracted from a URL seen in the source post.
	// May be empty; when present it is validated before use.
	DomainHint  string `json:"domain_hint,omitempty"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
	SourceURL   string `json:"source_url,omitempty"`
}

// Resolution is the outcome of one email resolution call.
//
// Email may be empty only when the identity inputs were unusable; Candidates
// preserves generation order, which is significant for tie-breaking.
type Resolution struct {
	Email      string     `json:"email"`
	Confidence Confidence `json:"confidence"`
	Candidates []string   `json:"all_candidates"`
	Method     Method     `json:"method"`
}

// ResolvedContact is the persisted record produced by the research workflow
// and consumed by the outreach layer.
type ResolvedContact struct {
	ID            uuid.UUID  `json:"id"`
	FullName      string     `json:"full_name"`
	RoleTitle     string     `json:"role_title,omitempty"`
	CompanyName   string     `json:"company_name"`
	CompanyDomain string     `json:"company_domain"`
	Email         string     `json:"email"`
	Confidence    Confidence `json:"confidence"`
	Method        Method     `json:"method"`
	LinkedInURL   string     `json:"linkedin_url,omitempty"`
	ResolvedAt    time.Time  `json:"resolved_at"`
}
